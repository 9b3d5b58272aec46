package arff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sartorproj/godelay/timeseries"
)

// ErrUnknownLayout is returned for a Layout value this package does not
// support.
var ErrUnknownLayout = errors.New("arff: unknown layout")

// Layout selects the nesting convention of an ARFF file. The archive
// distributes univariate datasets flat and multivariate datasets behind
// a relational attribute; the right layout must be chosen by the caller.
type Layout int

const (
	// LayoutFlat is one numeric attribute per time point, class last.
	LayoutFlat Layout = iota
	// LayoutRelational is a single relational attribute holding one row
	// per channel, class last.
	LayoutRelational
)

// String returns the name of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutFlat:
		return "flat"
	case LayoutRelational:
		return "relational"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Dataset is a labeled collection of series, oriented (N, T, D).
type Dataset struct {
	Series timeseries.Batch // N series, each T x D
	Labels []string         // N class tokens, kept verbatim from the file
}

// Len returns the number of series N.
func (d *Dataset) Len() int {
	return len(d.Series)
}

// Shape returns (N, T, D). T and D are taken from the first series;
// loading guarantees all series agree.
func (d *Dataset) Shape() (n, t, c int) {
	if len(d.Series) == 0 {
		return 0, 0, 0
	}
	return len(d.Series), d.Series[0].Len(), d.Series[0].Channels()
}

// Load parses an ARFF file into a dataset. See LoadFromReader.
func Load(path string, layout Layout) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFromReader(file, layout)
}

// LoadFromReader parses ARFF text into a dataset. Header keywords are
// matched case-insensitively; '%' comments and blank lines are skipped.
// Every data row must produce the same (T, D) shape.
func LoadFromReader(r io.Reader, layout Layout) (*Dataset, error) {
	if layout != LayoutFlat && layout != LayoutRelational {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayout, int(layout))
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	inData := false
	ds := &Dataset{}
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		if !inData {
			if strings.HasPrefix(strings.ToLower(text), "@data") {
				inData = true
			}
			// @relation and @attribute declarations carry no shape
			// information beyond what the layout already states.
			continue
		}

		var s *timeseries.Series
		var label string
		var err error
		switch layout {
		case LayoutFlat:
			s, label, err = parseFlatRow(text)
		case LayoutRelational:
			s, label, err = parseRelationalRow(text)
		}
		if err != nil {
			return nil, fmt.Errorf("arff: line %d: %w", line, err)
		}

		if len(ds.Series) > 0 {
			if s.Len() != ds.Series[0].Len() || s.Channels() != ds.Series[0].Channels() {
				return nil, fmt.Errorf("arff: line %d: series shape (%d,%d) differs from (%d,%d)",
					line, s.Len(), s.Channels(), ds.Series[0].Len(), ds.Series[0].Channels())
			}
		}
		ds.Series = append(ds.Series, s)
		ds.Labels = append(ds.Labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !inData {
		return nil, errors.New("arff: no @data section found")
	}
	if len(ds.Series) == 0 {
		return nil, errors.New("arff: no data rows found")
	}
	return ds, nil
}

// parseFlatRow reads T numeric fields followed by a class token,
// producing a T x 1 series.
func parseFlatRow(text string) (*timeseries.Series, string, error) {
	fields := strings.Split(text, ",")
	if len(fields) < 2 {
		return nil, "", errors.New("want at least one value and a label")
	}
	label := cleanToken(fields[len(fields)-1])
	values := make([]float64, len(fields)-1)
	for i, f := range fields[:len(fields)-1] {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, "", fmt.Errorf("field %d: %w", i+1, err)
		}
		values[i] = v
	}
	return timeseries.New(values), label, nil
}

// parseRelationalRow reads a quoted D x T block followed by a class
// token, reorienting the block to a T x D series. Channel rows inside
// the block are separated by escaped or literal newlines.
func parseRelationalRow(text string) (*timeseries.Series, string, error) {
	if len(text) == 0 || (text[0] != '\'' && text[0] != '"') {
		return nil, "", errors.New("relational row must start with a quoted block")
	}
	quote := text[0]
	end := strings.IndexByte(text[1:], quote)
	if end < 0 {
		return nil, "", errors.New("unterminated relational block")
	}
	block := text[1 : 1+end]
	rest := strings.TrimSpace(text[2+end:])
	rest = strings.TrimPrefix(rest, ",")
	label := cleanToken(rest)
	if label == "" {
		return nil, "", errors.New("missing label after relational block")
	}

	block = strings.ReplaceAll(block, `\n`, "\n")
	chLines := strings.Split(block, "\n")

	var channels [][]float64 // D x T on disk
	for _, cl := range chLines {
		cl = strings.TrimSpace(cl)
		if cl == "" {
			continue
		}
		fields := strings.Split(cl, ",")
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, "", fmt.Errorf("channel %d field %d: %w", len(channels)+1, i+1, err)
			}
			row[i] = v
		}
		channels = append(channels, row)
	}
	if len(channels) == 0 {
		return nil, "", errors.New("empty relational block")
	}
	t := len(channels[0])
	for i, ch := range channels {
		if len(ch) != t {
			return nil, "", fmt.Errorf("channel %d has %d time points, want %d", i+1, len(ch), t)
		}
	}

	// Reorient (D, T) -> (T, D).
	rows := make([][]float64, t)
	for i := range rows {
		row := make([]float64, len(channels))
		for d, ch := range channels {
			row[d] = ch[i]
		}
		rows[i] = row
	}
	s, err := timeseries.NewMulti(rows)
	if err != nil {
		return nil, "", err
	}
	return s, label, nil
}

func cleanToken(s string) string {
	return strings.Trim(strings.TrimSpace(s), "'\"")
}
