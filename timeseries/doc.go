// Package timeseries provides multichannel time series containers and
// normalization utilities.
//
// A Series holds T samples of a D-channel signal; a Batch is an ordered
// collection of series. Series are treated as immutable: every transform
// returns a new Series.
//
// # Construction
//
// Build a series from raw values:
//
//	s := timeseries.New([]float64{1, 2, 3, 4})       // univariate, D=1
//	m, _ := timeseries.NewMulti([][]float64{         // rows are time steps
//	    {1.0, 10.0},
//	    {2.0, 20.0},
//	})
//
// # Normalization
//
// Standardize z-scores each channel independently along the time axis.
// Channels with zero variance are mean-centered but left unscaled:
//
//	norm := s.Standardize(1.0)
//
// # Loading
//
// Series can be read from CSV files, one column per channel:
//
//	s, err := timeseries.LoadCSV("lorenz.csv", nil)
package timeseries
