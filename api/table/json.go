package table

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/morikuni/failure/v2"
)

// wrapperKeys are the envelope keys under which row arrays have been
// observed across revisions of the publisher's JSON endpoints
var wrapperKeys = []string{
	"data", "Data", "results", "Results", "value", "values", "rows", "Rows", "items",
}

// ParseJSON parses a JSON body into a table.
// Accepted shapes: a top-level array of flat objects, or an object that
// wraps such an array under one of the known envelope keys. Column order
// follows first-seen key order across rows; rows missing a key get a
// missing value in that column.
func ParseJSON(body []byte) (*Table, error) {
	rows, err := extractRows(body)
	if err != nil {
		return nil, err
	}

	t := New()
	index := make(map[string]int)
	emitted := 0

	for _, row := range rows {
		seen, err := parseRow(row, func(key string, value any) {
			col, ok := index[key]
			if !ok {
				// backfill earlier rows that never carried this key
				padded := make([]any, emitted)
				t.Columns = append(t.Columns, Column{Name: key, Values: padded})
				col = len(t.Columns) - 1
				index[key] = col
			}
			t.Columns[col].Values = append(t.Columns[col].Values, value)
		})
		if err != nil {
			return nil, err
		}
		if !seen {
			continue
		}
		emitted++
		// pad every column to the emitted row count so that rows
		// missing keys, including all-empty objects, stay aligned
		for i := range t.Columns {
			for len(t.Columns[i].Values) < emitted {
				t.Columns[i].Values = append(t.Columns[i].Values, nil)
			}
		}
	}

	return t, nil
}

// extractRows locates the array of row objects inside an arbitrary payload
func extractRows(raw []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, failure.New(ErrUnexpectedShape, failure.Message("Empty JSON payload"))
	}

	switch trimmed[0] {
	case '[':
		var rows []json.RawMessage
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, failure.New(ErrParse,
				failure.Message("Failed to parse JSON array"),
				failure.Context{"cause": err.Error()},
			)
		}
		return rows, nil
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, failure.New(ErrParse,
				failure.Message("Failed to parse JSON object"),
				failure.Context{"cause": err.Error()},
			)
		}
		for _, key := range wrapperKeys {
			if inner, ok := envelope[key]; ok {
				return extractRows(inner)
			}
		}
		return nil, failure.New(ErrUnexpectedShape,
			failure.Message("JSON object carries no recognizable row array"),
		)
	default:
		return nil, failure.New(ErrUnexpectedShape,
			failure.Message("JSON payload is neither an array nor an object"),
		)
	}
}

// parseRow walks one row object in document order and emits each scalar.
// Returns false for items that are not objects (they are skipped, matching
// how the publisher occasionally mixes notes into row arrays).
func parseRow(row json.RawMessage, emit func(key string, value any)) (bool, error) {
	trimmed := bytes.TrimSpace(row)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil { // opening brace
		return false, failure.Wrap(err)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return false, failure.Wrap(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			continue
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return false, failure.New(ErrParse,
				failure.Message("Failed to decode JSON value"),
				failure.Context{"key": key, "cause": err.Error()},
			)
		}
		emit(key, scalarValue(value))
	}
	return true, nil
}

// scalarValue maps a decoded JSON value onto the table's scalar types
func scalarValue(v any) any {
	switch typed := v.(type) {
	case nil:
		return nil
	case string:
		return typed
	case json.Number:
		if f, err := typed.Float64(); err == nil {
			return f
		}
		return typed.String()
	case bool:
		if typed {
			return "true"
		}
		return "false"
	default:
		// nested structures are kept as their textual form
		return fmt.Sprint(typed)
	}
}
