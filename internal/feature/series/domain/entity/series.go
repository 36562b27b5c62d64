// Package entity defines the domain models for the series feature.
package entity

import (
	"encoding/json"
	"strings"
)

// DateColumn is the observation date column EVDS returns for every row.
const DateColumn = "Tarih"

// SeriesRequest is a query for one or more EVDS series over a date range.
type SeriesRequest struct {
	Codes     []string // Series codes in caller order (e.g., "TP.DK.USD.A"); duplicates kept
	StartDate string   // DD-MM-YYYY, passed through verbatim
	EndDate   string   // DD-MM-YYYY, passed through verbatim

	// Optional EVDS parameters, sent only when non-empty.
	Frequency        string
	AggregationTypes string
	Formulas         string
}

// SplitCodes splits a comma-delimited series parameter, keeping order and duplicates.
func SplitCodes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Table is a tabular upstream result: one row per observation date and one column per series.
// Cells hold the upstream's raw JSON values; a cell missing from an upstream row is null.
type Table struct {
	Columns []string
	Rows    [][]json.RawMessage
}

// Empty reports whether the table is absent, has no rows or has no columns.
// Rows left without any column (e.g. only bookkeeping fields were dropped) count as empty.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0 || len(t.Columns) == 0
}

// HasColumn reports whether a column with the exact name exists.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Rename applies all renamings (old name -> new name) in a single pass.
// Columns that are not in the map keep their name.
func (t *Table) Rename(renames map[string]string) {
	for i, c := range t.Columns {
		if to, ok := renames[c]; ok {
			t.Columns[i] = to
		}
	}
}

// Records serializes the table row-wise, keeping row order and column order.
func (t *Table) Records() []Record {
	if t.Empty() {
		return []Record{}
	}
	out := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		fields := make([]Field, 0, len(t.Columns))
		for i, c := range t.Columns {
			v := json.RawMessage("null")
			if i < len(row) && row[i] != nil {
				v = row[i]
			}
			fields = append(fields, Field{Name: c, Value: v})
		}
		out = append(out, Record{Fields: fields})
	}
	return out
}

// Field is a single column value in a Record.
type Field struct {
	Name  string
	Value json.RawMessage
}

// Record is one normalized row keyed by the caller's original series codes.
type Record struct {
	Fields []Field
}

// Get returns the raw value of the named field.
func (r Record) Get(name string) (json.RawMessage, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
