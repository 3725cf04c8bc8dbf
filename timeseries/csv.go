package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	IndexColumn string   // Column name for the time index (default: "time")
	Columns     []string // Signal columns to load (default: every other column)
	HasHeader   bool     // Whether CSV has header row (default: true)
	Delimiter   rune     // Field delimiter (default: ',')
	SkipRows    int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		IndexColumn: "time",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// LoadCSVFromReader loads a table from an io.Reader.
// Empty, NA, NaN and null cells load as NaN so that columns stay aligned
// with the index. Rows with an unparseable index are rejected.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
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

	indexIdx := 0
	var names []string
	var positions []int

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		indexIdx = -1
		for i, h := range header {
			h = cleanField(h)
			if h == opts.IndexColumn || (opts.IndexColumn == "" && (h == "time" || h == "t" || h == "index")) {
				indexIdx = i
				break
			}
		}
		if indexIdx == -1 {
			return nil, fmt.Errorf("%w: index %q", ErrColumnNotFound, opts.IndexColumn)
		}

		if len(opts.Columns) == 0 {
			for i, h := range header {
				if i != indexIdx {
					names = append(names, cleanField(h))
					positions = append(positions, i)
				}
			}
		} else {
			for _, want := range opts.Columns {
				found := false
				for i, h := range header {
					if cleanField(h) == want {
						names = append(names, want)
						positions = append(positions, i)
						found = true
						break
					}
				}
				if !found {
					return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, want)
				}
			}
		}
	}

	var index []float64
	var values [][]float64

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// Without a header every column after the index is a signal named by position.
		if names == nil {
			for i := range record {
				if i != indexIdx {
					names = append(names, "col"+strconv.Itoa(i))
					positions = append(positions, i)
				}
			}
		}
		if values == nil {
			values = make([][]float64, len(names))
		}

		if indexIdx >= len(record) {
			return nil, fmt.Errorf("row %d: missing index field", line)
		}
		ts, err := strconv.ParseFloat(cleanField(record[indexIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: index: %w", line, err)
		}
		index = append(index, ts)

		for c, pos := range positions {
			v := math.NaN()
			if pos < len(record) {
				v = parseValue(record[pos])
			}
			values[c] = append(values[c], v)
		}
	}

	if len(index) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	t := New(index)
	for c, name := range names {
		if err := t.SetColumn(name, values[c]); err != nil {
			return nil, err
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// SaveCSV writes the table as CSV with the index in the first column.
func SaveCSV(t *Table, w io.Writer, indexName string) error {
	if indexName == "" {
		indexName = "time"
	}
	writer := bufio.NewWriter(w)

	names := t.Columns()
	writer.WriteString(indexName)
	for _, name := range names {
		writer.WriteString(",")
		writer.WriteString(name)
	}
	writer.WriteString("\n")

	for i, ts := range t.Index {
		writer.WriteString(strconv.FormatFloat(ts, 'f', -1, 64))
		for _, name := range names {
			writer.WriteString(",")
			writer.WriteString(strconv.FormatFloat(t.columns[name][i], 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return writer.Flush()
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func parseValue(s string) float64 {
	s = cleanField(s)
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
