package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/morikuni/failure/v2"
)

// dateLayout is the format used when writing date values back out
const dateLayout = "2006-01-02"

// ParseCSV parses a CSV body with a header row into a table.
// Parsing is lenient the way the publisher's files require: quotes are
// lazy, ragged rows are padded with missing values, and surplus fields
// beyond the header width are dropped.
func ParseCSV(body []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, failure.New(ErrParse,
			failure.Message("Failed to read CSV header"),
			failure.Context{"cause": err.Error()},
		)
	}

	t := New()
	values := make([][]any, len(header))

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, failure.New(ErrParse,
				failure.Message("Failed to parse CSV record"),
				failure.Context{"cause": err.Error()},
			)
		}
		for i := range header {
			if i < len(record) {
				values[i] = append(values[i], strings.TrimSpace(record[i]))
			} else {
				values[i] = append(values[i], nil)
			}
		}
	}

	for i, name := range header {
		t.AddColumn(strings.TrimSpace(name), values[i])
	}
	return t, nil
}

// WriteCSV writes the table as comma-separated text with a header row
// and no row index column
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Names()); err != nil {
		return failure.Wrap(err)
	}

	rows := t.Len()
	record := make([]string, len(t.Columns))
	for i := 0; i < rows; i++ {
		for j := range t.Columns {
			record[j] = formatValue(t.Columns[j].Values[i])
		}
		if err := cw.Write(record); err != nil {
			return failure.Wrap(err)
		}
	}

	cw.Flush()
	return failure.Wrap(cw.Error())
}

// SaveCSV writes the table to a CSV file at the given path
func SaveCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return failure.Wrap(err)
	}
	defer f.Close()

	if err := WriteCSV(f, t); err != nil {
		return err
	}
	return failure.Wrap(f.Close())
}

// formatValue renders a scalar for CSV output. Missing values become
// empty fields.
func formatValue(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case time.Time:
		return typed.Format(dateLayout)
	default:
		return fmt.Sprint(typed)
	}
}
