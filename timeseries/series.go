package timeseries

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Series represents a time series of T samples with D channels.
// Values are stored in a T x D matrix: row t is the sample at time t,
// column d is channel d. A Series is never mutated after construction;
// all transforms return a new Series.
type Series struct {
	data *mat.Dense // T x D
	Name string
}

// New creates a univariate (single-channel) series from values.
func New(values []float64) *Series {
	v := make([]float64, len(values))
	copy(v, values)
	return &Series{data: mat.NewDense(len(values), 1, v)}
}

// NewMulti creates a multichannel series. Each element of values is one
// time step holding D channel readings; all rows must have equal length.
func NewMulti(values [][]float64) (*Series, error) {
	if len(values) == 0 {
		return nil, errors.New("timeseries: empty input")
	}
	d := len(values[0])
	if d == 0 {
		return nil, errors.New("timeseries: zero channels")
	}
	flat := make([]float64, 0, len(values)*d)
	for t, row := range values {
		if len(row) != d {
			return nil, fmt.Errorf("timeseries: row %d has %d channels, want %d", t, len(row), d)
		}
		flat = append(flat, row...)
	}
	return &Series{data: mat.NewDense(len(values), d, flat)}, nil
}

// FromDense creates a series from a T x D matrix. The matrix is copied.
func FromDense(m *mat.Dense) *Series {
	return &Series{data: mat.DenseCopyOf(m)}
}

// Len returns the number of time steps T.
func (s *Series) Len() int {
	if s.data == nil {
		return 0
	}
	t, _ := s.data.Dims()
	return t
}

// Channels returns the number of channels D.
func (s *Series) Channels() int {
	if s.data == nil {
		return 0
	}
	_, d := s.data.Dims()
	return d
}

// At returns the value of channel d at time t.
func (s *Series) At(t, d int) float64 {
	return s.data.At(t, d)
}

// Channel returns a copy of channel d as a flat slice of length T.
func (s *Series) Channel(d int) []float64 {
	t, _ := s.data.Dims()
	out := make([]float64, t)
	mat.Col(out, d, s.data)
	return out
}

// Values returns a copy of the underlying T x D matrix.
func (s *Series) Values() *mat.Dense {
	return mat.DenseCopyOf(s.data)
}

// Slice returns the sub-series covering time steps [start, end).
// Bounds are clamped to the series length.
func (s *Series) Slice(start, end int) *Series {
	t, d := s.data.Dims()
	if start < 0 {
		start = 0
	}
	if end > t {
		end = t
	}
	if start >= end {
		return &Series{Name: s.Name} // empty
	}
	sub := s.data.Slice(start, end, 0, d)
	return &Series{data: mat.DenseCopyOf(sub), Name: s.Name}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	return &Series{data: mat.DenseCopyOf(s.data), Name: s.Name}
}

// Standardize z-scores the series along the time axis, each channel
// independently: (x - mean) / (scale * std), using the population
// standard deviation. Channels with zero variance are divided by one
// instead, leaving them mean-centered but unscaled. A scale <= 0 is
// treated as 1.
func (s *Series) Standardize(scale float64) *Series {
	if scale <= 0 {
		scale = 1
	}
	t, d := s.data.Dims()
	out := mat.NewDense(t, d, nil)
	col := make([]float64, t)
	for j := 0; j < d; j++ {
		mat.Col(col, j, s.data)
		mean := stat.Mean(col, nil)
		std := stat.PopStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		div := scale * std
		for i := 0; i < t; i++ {
			out.Set(i, j, (col[i]-mean)/div)
		}
	}
	return &Series{data: out, Name: s.Name}
}

// Standardize z-scores a series along the time axis. See
// (*Series).Standardize.
func Standardize(s *Series, scale float64) *Series {
	return s.Standardize(scale)
}

// Batch is an ordered collection of series, typically the samples of a
// labeled dataset. Items may differ in length or channel count;
// operations that need uniform shapes check it themselves.
type Batch []*Series
