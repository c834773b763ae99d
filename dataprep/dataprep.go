// Package dataprep cleans tabular datasets before modeling: currency fields,
// textual boolean flags, and multi-valued categorical columns expanded into
// one indicator column per distinct tag.
package dataprep

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Options control which columns LoadListings cleans.
type Options struct {
	PriceColumns []string // currency columns converted to float
	BoolColumns  []string // "t"-flag columns converted to bool
	ExpandColumn string   // multi-valued column expanded into indicators
}

// priceReplacer strips the characters the raw export wraps prices in.
var priceReplacer = strings.NewReplacer("$", "", ",", "", ")", "")

// listReplacer strips the set-literal wrapping around multi-valued cells.
var listReplacer = strings.NewReplacer("\"", "", "{", "", "}", "")

// col fetches a named column or fails with a column-not-found error.
func col(df dataframe.DataFrame, column string) (series.Series, error) {
	s := df.Col(column)
	if s.Err != nil {
		return s, fmt.Errorf("column %q: %w", column, s.Err)
	}
	return s, nil
}

// ReformatPrices converts currency-formatted columns to float columns.
// Cells that do not parse after stripping (including empties) become NaN so
// the metrics layer can decide how to treat them.
func ReformatPrices(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, error) {
	for _, column := range columns {
		s, err := col(df, column)
		if err != nil {
			return df, err
		}
		records := s.Records()
		values := make([]float64, len(records))
		for i, rec := range records {
			v, err := strconv.ParseFloat(priceReplacer.Replace(strings.TrimSpace(rec)), 64)
			if err != nil {
				values[i] = math.NaN()
				continue
			}
			values[i] = v
		}
		df = df.Mutate(series.New(values, series.Float, column))
		if df.Err != nil {
			return df, fmt.Errorf("mutate %q: %w", column, df.Err)
		}
	}
	return df, nil
}

// ReformatBooleans converts "t"-flag columns to boolean columns. Anything
// other than the literal "t" is false.
func ReformatBooleans(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, error) {
	for _, column := range columns {
		s, err := col(df, column)
		if err != nil {
			return df, err
		}
		records := s.Records()
		values := make([]bool, len(records))
		for i, rec := range records {
			values[i] = rec == "t"
		}
		df = df.Mutate(series.New(values, series.Bool, column))
		if df.Err != nil {
			return df, fmt.Errorf("mutate %q: %w", column, df.Err)
		}
	}
	return df, nil
}

// ExpandListColumn expands one multi-valued text column into one 0/1
// indicator column per distinct observed tag and drops the source column.
// Tags are lowercased with spaces replaced by underscores; empty tags and
// "translation missing" placeholders from the raw export are discarded.
// The sorted tag list is returned alongside the expanded frame.
func ExpandListColumn(df dataframe.DataFrame, column string) (dataframe.DataFrame, []string, error) {
	s, err := col(df, column)
	if err != nil {
		return df, nil, err
	}

	records := s.Records()
	rowTags := make([]map[string]struct{}, len(records))
	tagSet := make(map[string]struct{})
	for i, rec := range records {
		parts := strings.Split(listReplacer.Replace(rec), ",")
		row := make(map[string]struct{}, len(parts))
		for _, p := range parts {
			tag := strings.ReplaceAll(strings.ToLower(p), " ", "_")
			if tag == "" || strings.HasPrefix(tag, "translation_missing:") {
				continue
			}
			row[tag] = struct{}{}
			tagSet[tag] = struct{}{}
		}
		rowTags[i] = row
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		indicators := make([]int, len(rowTags))
		for i, row := range rowTags {
			if _, ok := row[tag]; ok {
				indicators[i] = 1
			}
		}
		df = df.Mutate(series.New(indicators, series.Int, tag))
		if df.Err != nil {
			return df, nil, fmt.Errorf("mutate %q: %w", tag, df.Err)
		}
	}

	df = df.Drop(column)
	if df.Err != nil {
		return df, nil, fmt.Errorf("drop %q: %w", column, df.Err)
	}
	return df, tags, nil
}

// LoadListings reads a raw CSV dataset and applies the configured cleaners:
// prices, booleans, then column expansion. It returns the cleaned frame and
// the tags produced by expansion, if any.
func LoadListings(r io.Reader, opts Options) (dataframe.DataFrame, []string, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, nil, fmt.Errorf("read csv: %w", df.Err)
	}

	df, err := ReformatPrices(df, opts.PriceColumns)
	if err != nil {
		return df, nil, err
	}
	df, err = ReformatBooleans(df, opts.BoolColumns)
	if err != nil {
		return df, nil, err
	}

	var tags []string
	if opts.ExpandColumn != "" {
		df, tags, err = ExpandListColumn(df, opts.ExpandColumn)
		if err != nil {
			return df, nil, err
		}
	}
	return df, tags, nil
}
