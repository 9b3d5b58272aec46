// Package hankel builds delay-embedding (Hankel) matrices from time
// series and partitions a series into standardized train/test embeddings.
//
// A delay embedding represents the state of a dynamical system by a
// window of q past samples instead of a single instantaneous
// measurement. For a series of length T and an embedding of p rows,
// row i column j of each channel slice holds
//
//	H[i, j, d] = x[d][T - p - q + 1 + i + j]
//
// so every row is a length-q window into the trailing part of the
// series, each row shifted one step forward in time from the previous
// one. The resulting matrix is constant along anti-diagonals within each
// channel (the Hankel property).
//
// # Embedding
//
//	s := timeseries.New(values)
//	hm, err := hankel.New(s, 16, 0) // q=16, p defaults to T-16
//	p, q, d := hm.Dims()
//
// # Train/test partitioning
//
//	train, test, err := hankel.TrainTest(values, 500, 16, nil)
//
// Both matrices are rescaled by the global mean and standard deviation
// of the training matrix, so train and test share a common scale.
package hankel
