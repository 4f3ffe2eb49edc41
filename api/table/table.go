// Package table provides the generic tabular structure returned by dataset
// fetches, plus CSV/JSON codecs and best-effort column normalization.
package table

import (
	"strings"

	"github.com/samber/lo"
)

// Column is a named, ordered sequence of scalar values.
// A value is a string, a float64, a time.Time, or nil for missing.
type Column struct {
	Name   string
	Values []any
}

// Table is an ordered collection of equally sized named columns.
type Table struct {
	Columns []Column
}

// New creates an empty table
func New() *Table {
	return &Table{}
}

// Len returns the number of rows
func (t *Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Names returns the column names in order
func (t *Table) Names() []string {
	return lo.Map(t.Columns, func(c Column, _ int) string {
		return c.Name
	})
}

// Column returns the column with the given name.
// The lookup is case-insensitive so that callers can address columns
// the same way before and after normalization.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if strings.EqualFold(t.Columns[i].Name, name) {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// AddColumn appends a column. Shorter columns are padded with missing
// values so that every column keeps the same row count.
func (t *Table) AddColumn(name string, values []any) {
	rows := t.Len()
	if len(t.Columns) > 0 && len(values) < rows {
		padded := make([]any, rows)
		copy(padded, values)
		values = padded
	}
	t.Columns = append(t.Columns, Column{Name: name, Values: values})
	t.padRows()
}

// padRows extends every column to the longest column's length with
// missing values
func (t *Table) padRows() {
	max := 0
	for i := range t.Columns {
		if n := len(t.Columns[i].Values); n > max {
			max = n
		}
	}
	for i := range t.Columns {
		for len(t.Columns[i].Values) < max {
			t.Columns[i].Values = append(t.Columns[i].Values, nil)
		}
	}
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	out := &Table{Columns: make([]Column, len(t.Columns))}
	for i, c := range t.Columns {
		values := make([]any, len(c.Values))
		copy(values, c.Values)
		out.Columns[i] = Column{Name: c.Name, Values: values}
	}
	return out
}
