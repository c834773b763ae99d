// Package seriesio loads and saves numeric sequences from CSV files for the
// scoring commands.
package seriesio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrNoData reports a CSV with no data rows.
var ErrNoData = errors.New("no data rows found in CSV")

// Options holds options for CSV sequence loading.
type Options struct {
	ValueColumn string // column name holding the values (default "y")
	HasHeader   bool   // whether the CSV has a header row (default true)
	Delimiter   rune   // field delimiter (default ',')
}

// DefaultOptions returns the default loading options.
func DefaultOptions() *Options {
	return &Options{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// missing reports whether a cell token denotes a missing observation.
// Missing cells load as NaN; the metrics layer owns missing-data policy.
func missing(token string) bool {
	switch token {
	case "", "NA", "NaN", "nan", "null":
		return true
	}
	return false
}

// LoadCSV loads a numeric sequence from a CSV file.
func LoadCSV(filename string, opts *Options) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	values, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return values, nil
}

// LoadCSVFromReader loads a numeric sequence from an io.Reader. With a
// header, the value column is located by name and falls back to the last
// column; without one, the last column is used. Missing tokens become NaN
// and any other non-numeric cell is a hard error.
func LoadCSVFromReader(r io.Reader, opts *Options) ([]float64, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	valueIdx := -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoData
		}
		if err != nil {
			return nil, err
		}
		for i, h := range header {
			if strings.TrimSpace(strings.Trim(h, "\"")) == opts.ValueColumn {
				valueIdx = i
				break
			}
		}
		if valueIdx == -1 {
			valueIdx = len(header) - 1
		}
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		idx := valueIdx
		if idx == -1 {
			idx = len(record) - 1
		}
		if idx < 0 || idx >= len(record) {
			return nil, fmt.Errorf("row %d: no value column at index %d", len(values)+1, idx)
		}

		token := strings.TrimSpace(strings.Trim(record[idx], "\""))
		if missing(token) {
			values = append(values, math.NaN())
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: cannot parse %q as number", len(values)+1, token)
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	return values, nil
}

// SaveCSV writes a numeric sequence as a single-column CSV with a "y"
// header. NaN values round-trip through the missing-token convention.
func SaveCSV(w io.Writer, values []float64) error {
	if _, err := io.WriteString(w, "y\n"); err != nil {
		return err
	}
	for _, v := range values {
		line := strconv.FormatFloat(v, 'f', -1, 64)
		if math.IsNaN(v) {
			line = "NaN"
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
