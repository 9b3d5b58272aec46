package hankel

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/godelay/timeseries"
)

// ErrInsufficientData is returned when a series is too short for the
// requested embedding dimensions.
var ErrInsufficientData = errors.New("hankel: insufficient data")

// Matrix is a delay-embedding matrix with p rows, q columns, and d
// channels. Within each channel slice the anti-diagonals are constant.
type Matrix struct {
	data    []float64 // row-major, index (i*q + j)*d + k
	p, q, d int
}

// Dims returns the number of rows p, columns q, and channels d.
func (m *Matrix) Dims() (p, q, d int) {
	return m.p, m.q, m.d
}

// At returns the value at row i, column j, channel d.
func (m *Matrix) At(i, j, d int) float64 {
	if i < 0 || i >= m.p || j < 0 || j >= m.q || d < 0 || d >= m.d {
		panic("hankel: index out of range")
	}
	return m.data[(i*m.q+j)*m.d+d]
}

// Channel returns a copy of channel d as a p x q matrix.
func (m *Matrix) Channel(d int) *mat.Dense {
	if d < 0 || d >= m.d {
		panic("hankel: channel out of range")
	}
	out := mat.NewDense(m.p, m.q, nil)
	for i := 0; i < m.p; i++ {
		for j := 0; j < m.q; j++ {
			out.Set(i, j, m.data[(i*m.q+j)*m.d+d])
		}
	}
	return out
}

// Raw returns a copy of the underlying values in row-major
// (row, column, channel) order.
func (m *Matrix) Raw() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Mean returns the mean over all elements of the matrix.
func (m *Matrix) Mean() float64 {
	return stat.Mean(m.data, nil)
}

// Std returns the population standard deviation over all elements.
func (m *Matrix) Std() float64 {
	return stat.PopStdDev(m.data, nil)
}

// rescale returns a copy with every element mapped to (v - shift) / div.
func (m *Matrix) rescale(shift, div float64) *Matrix {
	out := &Matrix{data: make([]float64, len(m.data)), p: m.p, q: m.q, d: m.d}
	for i, v := range m.data {
		out.data[i] = (v - shift) / div
	}
	return out
}

// New builds the delay embedding of a series with window width q and p
// rows. If p <= 0 it defaults to T - q, the largest embedding that uses
// each window once. The series must satisfy T >= p + q; shorter input
// returns ErrInsufficientData.
func New(s *timeseries.Series, q, p int) (*Matrix, error) {
	t, d := s.Len(), s.Channels()
	if q < 1 {
		return nil, fmt.Errorf("hankel: window width q must be >= 1, got %d", q)
	}
	if p <= 0 {
		p = t - q
	}
	if p < 1 {
		return nil, fmt.Errorf("%w: series length %d leaves no rows for window width %d", ErrInsufficientData, t, q)
	}
	if t < p+q {
		return nil, fmt.Errorf("%w: series length %d < p+q = %d", ErrInsufficientData, t, p+q)
	}

	m := &Matrix{data: make([]float64, p*q*d), p: p, q: q, d: d}
	base := t - p - q + 1
	for k := 0; k < d; k++ {
		ch := s.Channel(k)
		for i := 0; i < p; i++ {
			for j := 0; j < q; j++ {
				m.data[(i*q+j)*d+k] = ch[base+i+j]
			}
		}
	}
	return m, nil
}

// NewFromValues builds the delay embedding of a univariate series given
// as a raw slice. See New.
func NewFromValues(x []float64, q, p int) (*Matrix, error) {
	return New(timeseries.New(x), q, p)
}

// NewBatch embeds each series of a batch independently, preserving
// order: element i of the result is the single-series embedding of
// series i. The first failing series aborts with its error.
func NewBatch(b timeseries.Batch, q, p int) ([]*Matrix, error) {
	out := make([]*Matrix, len(b))
	for i, s := range b {
		m, err := New(s, q, p)
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}
