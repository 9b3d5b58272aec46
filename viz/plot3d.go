package viz

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ProjOptions holds options for Plot3DProj.
type ProjOptions struct {
	Color      color.Color // Color of the 3D curve (default: black)
	ProjColor  color.Color // Color of the shadow projections (default: Lighter(Color, 0.6))
	ShadowDist [3]float64  // Relative distance of each shadow plane along x, y, z (default: {1, 1, 1})
	Elev       float64     // Viewing elevation in degrees (default: 39)
	Azim       float64     // Viewing azimuth in degrees (default: -47)
	ShowLabels bool        // Whether to keep axis tick marks (default: false)
	Width      vg.Length   // Line width (default: 1pt)
}

// DefaultProjOptions returns default options for Plot3DProj.
func DefaultProjOptions() *ProjOptions {
	return &ProjOptions{
		Color:      color.Black,
		ShadowDist: [3]float64{1, 1, 1},
		Elev:       39,
		Azim:       -47,
		Width:      vg.Points(1),
	}
}

// UniformShadow returns a ShadowDist placing all three shadow planes at
// the same relative distance.
func UniformShadow(d float64) [3]float64 {
	return [3]float64{d, d, d}
}

// Plot3DProj draws the 3D curve through the points (x, y, z) onto p,
// along with its shadow projections onto the three coordinate planes.
// The scene is flattened by an orthographic view transform: rotation by
// the azimuth about the vertical axis, then tilt by the elevation.
// Shadow planes sit at ShadowDist[1]*max(y), ShadowDist[0]*min(x) and
// ShadowDist[2]*min(z), each drawn in ProjColor beneath the curve.
//
// The plot is an explicit drawing surface owned by the caller; nothing
// global is touched.
func Plot3DProj(p *plot.Plot, x, y, z []float64, opts *ProjOptions) error {
	if opts == nil {
		opts = DefaultProjOptions()
	}
	if len(x) == 0 {
		return errors.New("viz: no points to plot")
	}
	if len(y) != len(x) || len(z) != len(x) {
		return fmt.Errorf("viz: coordinate lengths differ: %d, %d, %d", len(x), len(y), len(z))
	}

	mainColor := opts.Color
	if mainColor == nil {
		mainColor = color.Black
	}
	projColor := opts.ProjColor
	if projColor == nil {
		projColor = Lighter(mainColor, 0.6)
	}
	width := opts.Width
	if width == 0 {
		width = vg.Points(1)
	}

	planeX := opts.ShadowDist[0] * floats.Min(x)
	planeY := opts.ShadowDist[1] * floats.Max(y)
	planeZ := opts.ShadowDist[2] * floats.Min(z)

	n := len(x)
	shadowX := make(plotter.XYs, n) // projection onto the x plane
	shadowY := make(plotter.XYs, n) // projection onto the y plane
	shadowZ := make(plotter.XYs, n) // projection onto the z plane
	curve := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		shadowX[i].X, shadowX[i].Y = viewProject(planeX, y[i], z[i], opts.Elev, opts.Azim)
		shadowY[i].X, shadowY[i].Y = viewProject(x[i], planeY, z[i], opts.Elev, opts.Azim)
		shadowZ[i].X, shadowZ[i].Y = viewProject(x[i], y[i], planeZ, opts.Elev, opts.Azim)
		curve[i].X, curve[i].Y = viewProject(x[i], y[i], z[i], opts.Elev, opts.Azim)
	}

	// Shadows first so the curve paints over them.
	for _, pts := range []plotter.XYs{shadowY, shadowX, shadowZ} {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = projColor
		line.Width = width
		p.Add(line)
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.Color = mainColor
	line.Width = width
	p.Add(line)

	if !opts.ShowLabels {
		p.X.Tick.Marker = plot.ConstantTicks(nil)
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
	}
	return nil
}

// viewProject maps a 3D point to screen coordinates: rotate by the
// azimuth about the vertical (z) axis, then tilt by the elevation.
// At elev = azim = 0 the screen shows the x-z plane directly.
func viewProject(x, y, z, elev, azim float64) (u, v float64) {
	az := azim * math.Pi / 180
	el := elev * math.Pi / 180
	u = x*math.Cos(az) + y*math.Sin(az)
	depth := y*math.Cos(az) - x*math.Sin(az)
	v = z*math.Cos(el) + depth*math.Sin(el)
	return u, v
}

// FixedAspectRatio pads the axis ranges of p so that the x range divided
// by the y range equals ratio, forcing a fixed visual aspect regardless
// of data units. The plot must already contain data (its ranges must be
// set). ratio must be positive.
func FixedAspectRatio(p *plot.Plot, ratio float64) error {
	if ratio <= 0 {
		return fmt.Errorf("viz: aspect ratio must be positive, got %v", ratio)
	}
	xr := p.X.Max - p.X.Min
	yr := p.Y.Max - p.Y.Min
	if math.IsInf(xr, 0) || math.IsInf(yr, 0) || xr <= 0 || yr <= 0 {
		return errors.New("viz: plot has no data range to rescale")
	}

	if xr/yr < ratio {
		pad := (yr*ratio - xr) / 2
		p.X.Min -= pad
		p.X.Max += pad
	} else {
		pad := (xr/ratio - yr) / 2
		p.Y.Min -= pad
		p.Y.Max += pad
	}
	return nil
}
