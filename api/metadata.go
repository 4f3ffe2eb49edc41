package api

import "time"

// sourcePageURL is the publisher's human-facing data page, surfaced as
// the manual-check hint when every candidate endpoint fails
const sourcePageURL = "https://www.cdc.gov/measles/data-research/"

// Record is the static descriptive record for the underlying data source
type Record struct {
	Source      string
	URL         string
	Description string
	Cadence     string

	// CheckedAt is computed at call time; everything else is fixed
	CheckedAt time.Time
}

// Metadata returns the descriptive record for the measles case data.
// It is a pure function of the current time and has no error path.
func Metadata() Record {
	return Record{
		Source:      "Centers for Disease Control and Prevention",
		URL:         sourcePageURL,
		Description: "Confirmed measles cases reported to CDC, published as weekly and yearly series",
		Cadence:     "weekly",
		CheckedAt:   time.Now(),
	}
}
