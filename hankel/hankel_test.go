package hankel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/godelay/timeseries"
)

func rampSeries(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

func TestNewShape(t *testing.T) {
	cases := []struct {
		name    string
		t, q, p int
		wantP   int
	}{
		{"explicit p", 20, 4, 10, 10},
		{"default p", 20, 4, 0, 16},
		{"exact fit", 12, 5, 7, 7},
		{"single row", 6, 5, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewFromValues(rampSeries(tc.t), tc.q, tc.p)
			require.NoError(t, err)

			p, q, d := m.Dims()
			require.Equal(t, tc.wantP, p)
			require.Equal(t, tc.q, q)
			require.Equal(t, 1, d)
		})
	}
}

func TestNewWindowing(t *testing.T) {
	// For a ramp x[i] = i the embedding is fully predictable:
	// H[i,j] = T - p - q + 1 + i + j.
	const T, q, p = 15, 4, 6
	m, err := NewFromValues(rampSeries(T), q, p)
	require.NoError(t, err)

	base := float64(T - p - q + 1)
	for i := 0; i < p; i++ {
		for j := 0; j < q; j++ {
			require.Equal(t, base+float64(i+j), m.At(i, j, 0), "row %d col %d", i, j)
		}
	}

	// The last window ends on the final observation.
	require.Equal(t, float64(T-1), m.At(p-1, q-1, 0))
}

func TestNewHankelProperty(t *testing.T) {
	// Anti-diagonals within each channel slice must be constant.
	rng := rand.New(rand.NewSource(1))
	rows := make([][]float64, 40)
	for i := range rows {
		rows[i] = []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	}
	s, err := timeseries.NewMulti(rows)
	require.NoError(t, err)

	m, err := New(s, 5, 12)
	require.NoError(t, err)

	p, q, d := m.Dims()
	require.Equal(t, 3, d)
	for k := 0; k < d; k++ {
		for i := 1; i < p; i++ {
			for j := 1; j < q; j++ {
				require.Equal(t, m.At(i-1, j, k), m.At(i, j-1, k),
					"anti-diagonal broken at (%d,%d) channel %d", i, j, k)
			}
		}
	}
}

func TestNewMultichannelMatchesPerChannel(t *testing.T) {
	rows := [][]float64{}
	for i := 0; i < 20; i++ {
		rows = append(rows, []float64{float64(i), float64(i * i)})
	}
	s, err := timeseries.NewMulti(rows)
	require.NoError(t, err)

	m, err := New(s, 3, 8)
	require.NoError(t, err)

	for k := 0; k < 2; k++ {
		single, err := NewFromValues(s.Channel(k), 3, 8)
		require.NoError(t, err)
		for i := 0; i < 8; i++ {
			for j := 0; j < 3; j++ {
				require.Equal(t, single.At(i, j, 0), m.At(i, j, k))
			}
		}
	}
}

func TestNewInsufficientData(t *testing.T) {
	_, err := NewFromValues(rampSeries(10), 4, 7) // p+q = 11 > 10
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = NewFromValues(rampSeries(4), 4, 0) // default p = 0
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = NewFromValues(rampSeries(10), 0, 2)
	require.Error(t, err) // invalid width, not a data problem
}

func TestNewBatch(t *testing.T) {
	b := timeseries.Batch{
		timeseries.New(rampSeries(15)),
		timeseries.New([]float64{5, 3, 8, 1, 9, 2, 7, 4, 6, 0, 5, 5, 1, 2, 3}),
	}

	ms, err := NewBatch(b, 4, 6)
	require.NoError(t, err)
	require.Len(t, ms, 2)

	for i, s := range b {
		single, err := New(s, 4, 6)
		require.NoError(t, err)
		require.Equal(t, single.Raw(), ms[i].Raw(), "batch slice %d", i)
	}
}

func TestNewBatchPropagatesError(t *testing.T) {
	b := timeseries.Batch{
		timeseries.New(rampSeries(15)),
		timeseries.New(rampSeries(5)), // too short for p+q = 10
	}

	_, err := NewBatch(b, 4, 6)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestChannelAndRaw(t *testing.T) {
	m, err := NewFromValues(rampSeries(10), 3, 4)
	require.NoError(t, err)

	ch := m.Channel(0)
	r, c := ch.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 3, c)
	require.Equal(t, m.At(2, 1, 0), ch.At(2, 1))

	raw := m.Raw()
	require.Len(t, raw, 4*3)
	raw[0] = -999 // copies must not alias internal storage
	require.NotEqual(t, raw[0], m.At(0, 0, 0))
}
