package api

// Dataset selects which logical dataset to retrieve
type Dataset string

const (
	// DatasetWeekly is the week-keyed case count series
	DatasetWeekly Dataset = "weekly"
	// DatasetYearly is the year-keyed case count series
	DatasetYearly Dataset = "yearly"
	// DatasetAny is the legacy unkeyed request; it scans the weekly
	// candidates first, then the yearly ones
	DatasetAny Dataset = "any"
)

// String returns the string representation of the Dataset
func (d Dataset) String() string {
	return string(d)
}

// Format declares how a candidate source's body is expected to parse
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Source is one (URL, format) pair attempted during fallback resolution
type Source struct {
	URL    string
	Format Format
}

// Candidate lists are ordered: the current JSON endpoints come first,
// the legacy CSV downloads second. The publisher's endpoints are known
// to move over time, which is why resolution falls back across the
// whole list instead of trusting any single URL.
var (
	weeklySources = []Source{
		{URL: "https://www.cdc.gov/wcms/vizdata/measles/MeaslesCasesWeek.json", Format: FormatJSON},
		{URL: "https://www.cdc.gov/measles/downloads/measles-cases-weekly.csv", Format: FormatCSV},
	}

	yearlySources = []Source{
		{URL: "https://www.cdc.gov/wcms/vizdata/measles/MeaslesCasesYear.json", Format: FormatJSON},
		{URL: "https://www.cdc.gov/measles/downloads/measles-cases-by-year.csv", Format: FormatCSV},
	}
)

// Sources returns the ordered candidate list for the given dataset.
// The result is a copy; the static lists are never mutated at runtime.
func Sources(dataset Dataset) []Source {
	var out []Source
	switch dataset {
	case DatasetWeekly:
		out = append(out, weeklySources...)
	case DatasetYearly:
		out = append(out, yearlySources...)
	default:
		out = append(out, weeklySources...)
		out = append(out, yearlySources...)
	}
	return out
}
