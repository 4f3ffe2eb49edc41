package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantNames []string
		wantRows  int
		wantErr   bool
	}{
		{
			name:      "top-level array",
			body:      `[{"week":"1","cases":10},{"week":"2","cases":20}]`,
			wantNames: []string{"week", "cases"},
			wantRows:  2,
		},
		{
			name:      "rows wrapped under data",
			body:      `{"meta":"x","data":[{"year":"2024","cases":284}]}`,
			wantNames: []string{"year", "cases"},
			wantRows:  1,
		},
		{
			name:      "rows wrapped under results",
			body:      `{"results":[{"state":"Texas","cases":5}]}`,
			wantNames: []string{"state", "cases"},
			wantRows:  1,
		},
		{
			name:      "key appearing only in later rows is backfilled",
			body:      `[{"week":"1"},{"week":"2","cases":7}]`,
			wantNames: []string{"week", "cases"},
			wantRows:  2,
		},
		{
			name:      "empty object is an all-missing row",
			body:      `[{"week":"1"},{},{"week":"2"}]`,
			wantNames: []string{"week"},
			wantRows:  3,
		},
		{
			name:      "non-object items are skipped",
			body:      `[{"week":"1","cases":3},"note: provisional data"]`,
			wantNames: []string{"week", "cases"},
			wantRows:  1,
		},
		{
			name:      "empty array is a valid empty table",
			body:      `[]`,
			wantNames: []string{},
			wantRows:  0,
		},
		{
			name:    "object without a row array",
			body:    `{"message":"service unavailable"}`,
			wantErr: true,
		},
		{
			name:    "malformed payload",
			body:    `{"data": [`,
			wantErr: true,
		},
		{
			name:    "scalar payload",
			body:    `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSON([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseJSON() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseJSON() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantNames, got.Names()); diff != "" {
				t.Errorf("column names mismatch (-want +got):\n%s", diff)
			}
			if got.Len() != tt.wantRows {
				t.Errorf("rows = %d, want %d", got.Len(), tt.wantRows)
			}
		})
	}
}

func TestParseJSON_ScalarTypes(t *testing.T) {
	got, err := ParseJSON([]byte(`[{"state":"Texas","cases":12,"confirmed":true,"note":null}]`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}

	state, _ := got.Column("state")
	if state.Values[0] != "Texas" {
		t.Errorf("state = %v, want Texas", state.Values[0])
	}
	cases, _ := got.Column("cases")
	if v, ok := cases.Values[0].(float64); !ok || v != 12 {
		t.Errorf("cases = %v (%T), want 12.0", cases.Values[0], cases.Values[0])
	}
	confirmed, _ := got.Column("confirmed")
	if confirmed.Values[0] != "true" {
		t.Errorf("confirmed = %v, want \"true\"", confirmed.Values[0])
	}
	note, _ := got.Column("note")
	if note.Values[0] != nil {
		t.Errorf("note = %v, want missing", note.Values[0])
	}
}

func TestParseJSON_EmptyObjectKeepsRowsAligned(t *testing.T) {
	got, err := ParseJSON([]byte(`[{"week":"1"},{},{"week":"2","cases":"3"}]`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if got.Len() != 3 {
		t.Fatalf("rows = %d, want 3", got.Len())
	}

	week, _ := got.Column("week")
	if diff := cmp.Diff([]any{"1", nil, "2"}, week.Values); diff != "" {
		t.Errorf("week values mismatch (-want +got):\n%s", diff)
	}
	cases, _ := got.Column("cases")
	if diff := cmp.Diff([]any{nil, nil, "3"}, cases.Values); diff != "" {
		t.Errorf("cases values mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON_MissingKeysBecomeMissingValues(t *testing.T) {
	got, err := ParseJSON([]byte(`[{"week":"1","cases":3},{"week":"2"}]`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	cases, _ := got.Column("cases")
	if cases.Values[1] != nil {
		t.Errorf("cases[1] = %v, want missing", cases.Values[1])
	}
}
