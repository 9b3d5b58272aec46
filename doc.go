// Package godelay provides data-preparation utilities for time series
// analysis based on delay embedding.
//
// GoDelay builds Hankel (delay-embedding) matrices from one- or
// multi-channel time series, normalizes series channel-wise, loads
// labeled time-series datasets in the UCR/UEA ARFF layouts, and renders
// annotated 3D trajectory plots with axis-plane shadow projections.
// Every function is a stateless transformation over in-memory arrays:
// there is no model fitting and no persistent state.
//
// # Quick Start
//
// Embed a series and split it into standardized train/test matrices:
//
//	series := timeseries.New(values)
//	hm, _ := hankel.New(series, 16, 0) // width 16, default height
//
//	train, test, _ := hankel.TrainTest(values, 500, 16, nil)
//
// Standardize a multichannel series:
//
//	norm := series.Standardize(1.0)
//
// Load a labeled dataset:
//
//	ds, _ := arff.Load("Trace_TRAIN.arff", arff.LayoutFlat)
//	n, t, c := ds.Shape()
//
// Plot a trajectory with its coordinate-plane shadows:
//
//	p := plot.New()
//	viz.Plot3DProj(p, x, y, z, nil)
//	p.Save(7*vg.Inch, 7*vg.Inch, "attractor.png")
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: multichannel series containers and normalization
//   - hankel: delay-embedding matrices and train/test partitioning
//   - arff: labeled time-series dataset loading
//   - viz: 3D projection plotting helpers
//
// # References
//
//   - Takens, F. (1981). Detecting Strange Attractors in Turbulence
//   - Gilpin, W. (2020). Deep Reconstruction of Strange Attractors from Time Series
package godelay
