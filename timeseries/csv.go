package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Columns   []string // Column names to load as channels (default: all numeric columns)
	HasHeader bool     // Whether the CSV has a header row (default: true)
	Delimiter rune     // Field delimiter (default: ',')
	SkipRows  int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a multichannel time series from a CSV file, one selected
// column per channel.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a multichannel time series from an io.Reader.
// Rows with blank, NA, or unparseable values in any selected column are
// skipped.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var colIdx []int
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i := range header {
			header[i] = strings.TrimSpace(strings.Trim(header[i], "\""))
		}
		if len(opts.Columns) > 0 {
			for _, name := range opts.Columns {
				found := -1
				for i, h := range header {
					if h == name {
						found = i
						break
					}
				}
				if found < 0 {
					return nil, fmt.Errorf("timeseries: column %q not found in header", name)
				}
				colIdx = append(colIdx, found)
			}
		}
	}

	var rows [][]float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// Without an explicit selection, take every column that parses
		// as a number on the first data row.
		if colIdx == nil {
			for i, field := range record {
				if _, perr := strconv.ParseFloat(cleanField(field), 64); perr == nil {
					colIdx = append(colIdx, i)
				}
			}
			if len(colIdx) == 0 {
				continue
			}
		}

		row := make([]float64, 0, len(colIdx))
		ok := true
		for _, i := range colIdx {
			if i >= len(record) {
				ok = false
				break
			}
			field := cleanField(record[i])
			if field == "" || field == "NA" || field == "NaN" || field == "null" {
				ok = false
				break
			}
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				ok = false
				break
			}
			row = append(row, v)
		}
		if ok {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil, errors.New("timeseries: no valid data found in CSV")
	}
	return NewMulti(rows)
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}
