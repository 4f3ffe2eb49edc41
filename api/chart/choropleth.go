package chart

import (
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/morikuni/failure/v2"

	"measlesdata/api/table"
	"measlesdata/log"
)

// Choropleth builds a US map chart from the table, joining regionColumn
// against the state boundary names after lowercasing. Rows whose region
// is unknown or whose value is non-numeric are skipped; if nothing
// survives the join the adapter fails instead of producing a blank map.
func Choropleth(t *table.Table, regionColumn, valueColumn string) (*charts.Map, error) {
	if err := validate.Struct(columnSpec{Axis: regionColumn, Value: valueColumn}); err != nil {
		return nil, failure.New(ErrColumnMissing,
			failure.Message("Both a region column and a value column must be named"),
		)
	}

	regions, ok := t.Column(regionColumn)
	if !ok {
		return nil, columnMissing(t, regionColumn)
	}
	values, ok := t.Column(valueColumn)
	if !ok {
		return nil, columnMissing(t, valueColumn)
	}

	var (
		data []opts.MapData
		max  float32
	)
	for i := 0; i < t.Len(); i++ {
		name, ok := canonicalRegion(regions.Values[i])
		if !ok {
			log.Debug("skipping unknown region", "value", regions.Values[i])
			continue
		}
		value, ok := numericValue(values.Values[i]).(float64)
		if !ok {
			continue
		}
		if float32(value) > max {
			max = float32(value)
		}
		data = append(data, opts.MapData{Name: name, Value: value})
	}

	if len(data) == 0 {
		return nil, failure.New(ErrNoRenderableRows,
			failure.Message("No row joined against the state boundary set"),
			failure.Context{"region_column": regions.Name, "value_column": values.Name},
		)
	}

	m := charts.NewMap()
	m.RegisterMapType("USA")
	m.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Measles cases by state"}),
		charts.WithVisualMapOpts(opts.VisualMap{Min: 0, Max: max}),
	)
	m.AddSeries("cases", data)
	return m, nil
}

// canonicalRegion lowercases a region identifier and resolves it to the
// state name used by the boundary dataset. Accepts full names and
// two-letter postal codes.
func canonicalRegion(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	name, ok := usStates[strings.ToLower(strings.TrimSpace(s))]
	return name, ok
}
