// Package viz renders annotated 3D trajectory plots with axis-plane
// shadow projections, plus small presentation helpers.
//
// Plot3DProj draws a 3D curve through an orthographic view transform
// onto an explicit gonum/plot surface, together with its shadows on the
// three coordinate planes. The caller owns the plot's lifecycle:
//
//	p := plot.New()
//	if err := viz.Plot3DProj(p, x, y, z, nil); err != nil {
//	    log.Fatal(err)
//	}
//	p.Save(7*vg.Inch, 7*vg.Inch, "attractor.png")
//
// Lighter brightens an RGB color toward white, and FixedAspectRatio
// pads a plot's axis ranges to force a visual aspect ratio.
package viz
