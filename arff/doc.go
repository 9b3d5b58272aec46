// Package arff loads labeled time-series datasets in the ARFF layouts
// used by the UCR/UEA time series classification archive
// (http://www.timeseriesclassification.com/).
//
// Two layouts occur in the archive and must be selected explicitly:
//
//   - LayoutFlat: univariate data, one numeric attribute per time point
//     and the class attribute last. Each data row is a series.
//   - LayoutRelational: multivariate data, a single relational attribute
//     holding one row per channel, followed by the class attribute.
//
// Unknown layout values are rejected; there is no guessing fallback.
//
// Loaded datasets are always oriented (N, T, D): N series of T time
// points with D channels, univariate data getting a singleton channel.
//
//	ds, err := arff.Load("BasicMotions_TRAIN.arff", arff.LayoutRelational)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, t, c := ds.Shape()
//	first := ds.Series[0] // a T x D timeseries.Series
package arff
