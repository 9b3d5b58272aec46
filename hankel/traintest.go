package hankel

import (
	"fmt"
	"math"
)

// TrainTestOptions holds options for TrainTest.
type TrainTestOptions struct {
	Std   float64 // Number of standard deviations by which to rescale (default: 1.0)
	Split float64 // Relative size of the test partition versus train (default: 0.5)
}

// DefaultTrainTestOptions returns default options for TrainTest.
func DefaultTrainTestOptions() *TrainTestOptions {
	return &TrainTestOptions{
		Std:   1.0,
		Split: 0.5,
	}
}

// TrainTest builds standardized train and test delay embeddings from a
// raw univariate series.
//
// The training matrix embeds the full series with sampleSize rows and
// window columns. The test matrix embeds only the first nSplit + window
// samples, where nSplit = round((Split/(1-Split)) * sampleSize), giving
// it nSplit rows. Both matrices are then rescaled by the global mean and
// population standard deviation of the training matrix:
//
//	(v - meanTrain) / (Std * stdTrain)
//
// The series must be strictly longer than sampleSize + nSplit; shorter
// input returns ErrInsufficientData.
func TrainTest(x []float64, sampleSize, window int, opts *TrainTestOptions) (train, test *Matrix, err error) {
	if opts == nil {
		opts = DefaultTrainTestOptions()
	}
	if sampleSize < 1 {
		return nil, nil, fmt.Errorf("hankel: sample size must be >= 1, got %d", sampleSize)
	}
	if window < 1 {
		return nil, nil, fmt.Errorf("hankel: time window must be >= 1, got %d", window)
	}
	if opts.Split <= 0 || opts.Split >= 1 {
		return nil, nil, fmt.Errorf("hankel: split must be in (0, 1), got %v", opts.Split)
	}
	std := opts.Std
	if std == 0 {
		std = 1
	}

	nSplit := int(math.Round(opts.Split / (1 - opts.Split) * float64(sampleSize)))
	if nSplit < 1 {
		return nil, nil, fmt.Errorf("hankel: split %v of sample size %d leaves no test rows", opts.Split, sampleSize)
	}
	if len(x) <= sampleSize+nSplit {
		return nil, nil, fmt.Errorf("%w: need more than %d samples to split, got %d",
			ErrInsufficientData, sampleSize+nSplit, len(x))
	}

	train, err = NewFromValues(x, window, sampleSize)
	if err != nil {
		return nil, nil, err
	}
	// Default p on the truncated prefix yields exactly nSplit rows.
	test, err = NewFromValues(x[:nSplit+window], window, 0)
	if err != nil {
		return nil, nil, err
	}

	mean, sd := train.Mean(), train.Std()
	div := std * sd
	if div == 0 {
		div = 1
	}
	return train.rescale(mean, div), test.rescale(mean, div), nil
}
