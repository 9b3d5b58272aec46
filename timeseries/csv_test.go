package timeseries

import (
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `t,y
0,100
1,101
2,102
3,103
4,104`

	opts := DefaultCSVOptions()
	opts.Columns = []string{"y"}

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}
	if series.Channels() != 1 {
		t.Errorf("Expected 1 channel, got %d", series.Channels())
	}

	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.At(i, 0) != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.At(i, 0))
		}
	}
}

func TestLoadCSVMultipleChannels(t *testing.T) {
	csvData := `x,y,z
1.0,10.0,100.0
2.0,20.0,200.0
3.0,30.0,300.0`

	opts := DefaultCSVOptions()
	opts.Columns = []string{"x", "z"}

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Channels() != 2 {
		t.Fatalf("Expected 2 channels, got %d", series.Channels())
	}
	if series.At(1, 1) != 200.0 {
		t.Errorf("Expected z[1]=200, got %f", series.At(1, 1))
	}
}

func TestLoadCSVWithNAValues(t *testing.T) {
	csvData := `y
100
NA
102
NaN
104`

	opts := DefaultCSVOptions()
	opts.Columns = []string{"y"}

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	// NA and NaN rows should be skipped.
	if series.Len() != 3 {
		t.Errorf("Expected 3 observations (NA values skipped), got %d", series.Len())
	}

	expected := []float64{100, 102, 104}
	for i, v := range expected {
		if series.At(i, 0) != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.At(i, 0))
		}
	}
}

func TestLoadCSVAutoColumns(t *testing.T) {
	// Without an explicit selection, numeric columns are discovered from
	// the first data row; the text column is ignored.
	csvData := `label,a,b
foo,1,4
bar,2,5
baz,3,6`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Channels() != 2 {
		t.Fatalf("Expected 2 channels, got %d", series.Channels())
	}
	if series.Len() != 3 {
		t.Errorf("Expected 3 observations, got %d", series.Len())
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	csvData := `a,b
1,2`

	opts := DefaultCSVOptions()
	opts.Columns = []string{"nope"}

	if _, err := LoadCSVFromReader(strings.NewReader(csvData), opts); err == nil {
		t.Error("Expected error for missing column")
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	opts := DefaultCSVOptions()
	if _, err := LoadCSVFromReader(strings.NewReader("y\n"), opts); err == nil {
		t.Error("Expected error for empty CSV")
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}
	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
