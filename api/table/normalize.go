package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"measlesdata/log"
)

// Rule is one best-effort coercion applied during normalization.
// Match decides per lowercased column name; Coerce rewrites the values
// in place of the matched column. The first matching rule wins.
type Rule struct {
	Match  func(name string) bool
	Coerce func(values []any) []any
}

// DefaultRules are the coercions applied by Normalize. Callers can build
// their own rule list and use NormalizeWith to extend the behavior
// without touching call sites.
var DefaultRules = []Rule{
	{
		Match:  func(name string) bool { return name == "date" },
		Coerce: CoerceDates,
	},
	{
		Match:  matchAnySubstring("cases", "count", "number"),
		Coerce: CoerceNumbers,
	},
}

// dateLayouts are the formats accepted when coercing date columns,
// most specific first
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
}

// Normalize lowercases every column name and applies DefaultRules.
// It never fails: on any internal error the input table is returned
// unmodified with a warning. Row and column counts are always preserved,
// and the operation is idempotent.
func Normalize(t *Table) *Table {
	return NormalizeWith(t, DefaultRules)
}

// NormalizeWith is Normalize with a caller-supplied rule list
func NormalizeWith(t *Table, rules []Rule) (out *Table) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("normalization failed, returning data uncleaned", "reason", r)
			out = t
		}
	}()

	clone := t.Clone()
	for i := range clone.Columns {
		clone.Columns[i].Name = strings.ToLower(clone.Columns[i].Name)
	}

	for i := range clone.Columns {
		for _, rule := range rules {
			if rule.Match(clone.Columns[i].Name) {
				clone.Columns[i].Values = rule.Coerce(clone.Columns[i].Values)
				break
			}
		}
	}
	return clone
}

// CoerceDates parses string values as dates. Values that are already
// dates pass through; anything unparseable becomes missing.
func CoerceDates(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		switch typed := v.(type) {
		case time.Time:
			out[i] = typed
		case string:
			out[i] = parseDate(typed)
		default:
			out[i] = nil
		}
	}
	return out
}

func parseDate(s string) any {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return nil
}

// CoerceNumbers parses string values as float64. Numeric values pass
// through; anything unparseable becomes missing.
func CoerceNumbers(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		switch typed := v.(type) {
		case float64:
			out[i] = typed
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(typed), 64); err == nil {
				out[i] = f
			} else {
				out[i] = nil
			}
		default:
			out[i] = nil
		}
	}
	return out
}

func matchAnySubstring(fragments ...string) func(name string) bool {
	return func(name string) bool {
		return lo.SomeBy(fragments, func(fragment string) bool {
			return strings.Contains(name, fragment)
		})
	}
}
