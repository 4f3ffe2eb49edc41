package chart

import (
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-playground/validator/v10"
	"github.com/morikuni/failure/v2"

	"measlesdata/api/table"
)

var validate = validator.New()

// columnSpec names the two columns an adapter projects the table onto
type columnSpec struct {
	Axis  string `validate:"required"`
	Value string `validate:"required"`
}

// TimeSeries builds a line chart from the table, using dateColumn for
// the x axis and valueColumn for the y axis. Column lookup is
// case-insensitive; missing values become gaps in the series.
func TimeSeries(t *table.Table, dateColumn, valueColumn string) (*charts.Line, error) {
	if err := validate.Struct(columnSpec{Axis: dateColumn, Value: valueColumn}); err != nil {
		return nil, failure.New(ErrColumnMissing,
			failure.Message("Both a date column and a value column must be named"),
		)
	}

	dates, ok := t.Column(dateColumn)
	if !ok {
		return nil, columnMissing(t, dateColumn)
	}
	values, ok := t.Column(valueColumn)
	if !ok {
		return nil, columnMissing(t, valueColumn)
	}

	xs := make([]string, t.Len())
	series := make([]opts.LineData, t.Len())
	for i := 0; i < t.Len(); i++ {
		xs[i] = axisLabel(dates.Values[i])
		series[i] = opts.LineData{Value: numericValue(values.Values[i])}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Measles cases"}),
		charts.WithXAxisOpts(opts.XAxis{Name: dates.Name}),
		charts.WithYAxisOpts(opts.YAxis{Name: values.Name}),
	)
	line.SetXAxis(xs).AddSeries(values.Name, series)
	return line, nil
}

func columnMissing(t *table.Table, name string) error {
	return failure.New(ErrColumnMissing,
		failure.Message(fmt.Sprintf("Table has no column named %q", name)),
		failure.Context{"column": name, "have": fmt.Sprint(t.Names())},
	)
}

// axisLabel renders a date-axis value; dates use the same layout the
// CSV writer does
func axisLabel(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case time.Time:
		return typed.Format("2006-01-02")
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}

// numericValue returns a float64 or nil for anything non-numeric
func numericValue(v any) any {
	if f, ok := v.(float64); ok {
		return f
	}
	return nil
}
