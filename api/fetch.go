package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"

	"measlesdata/api/table"
	"measlesdata/log"
)

var validate = validator.New()

// defaultClient is the shared HTTP client.
// It routes through the logging transport so every request and response
// is visible at debug level.
var defaultClient = &http.Client{
	Transport: log.Transport(),
	Timeout:   30 * time.Second,
}

// Options control a fetch or probe. The zero value is usable.
type Options struct {
	// Verbose promotes per-candidate diagnostics from debug to info
	// level. It never changes control flow.
	Verbose bool

	// SavePath, when set, writes the fetched table to a CSV file at
	// this path before returning it
	SavePath string

	// Sources overrides the static candidate list. Used by tests and
	// by callers that mirror the publisher's data.
	Sources []Source

	// Client overrides the default HTTP client
	Client *http.Client
}

type fetchRequest struct {
	Dataset string `validate:"required,oneof=weekly yearly any"`
}

// FetchDataset retrieves the requested dataset, trying each candidate
// source in order until one yields a non-empty table. The returned table
// is normalized (lowercased column names, date and case-count coercion).
//
// When every candidate fails the error carries the full list of attempted
// URLs and a hint to check the publisher's data page manually; an empty
// table is never returned as success.
func FetchDataset(ctx context.Context, dataset Dataset, opts Options) (*table.Table, error) {
	if err := validate.Struct(fetchRequest{Dataset: dataset.String()}); err != nil {
		return nil, failure.New(ErrInvalidOptions,
			failure.Message("Unknown dataset, expected weekly, yearly or any"),
			failure.Context{"dataset": dataset.String()},
		)
	}

	client := opts.Client
	if client == nil {
		client = defaultClient
	}
	sources := opts.Sources
	if len(sources) == 0 {
		sources = Sources(dataset)
	}

	for _, src := range sources {
		// a dead context would fail every remaining candidate the
		// same way; report the cancellation instead of exhaustion
		if err := ctx.Err(); err != nil {
			return nil, failure.Wrap(err)
		}

		t, err := fetchOne(ctx, client, src)
		if err != nil {
			diag(opts.Verbose, "candidate failed", "url", src.URL, "reason", err.Error())
			continue
		}
		diag(opts.Verbose, "candidate succeeded", "url", src.URL, "rows", t.Len())

		t = table.Normalize(t)

		if opts.SavePath != "" {
			if err := table.SaveCSV(opts.SavePath, t); err != nil {
				return nil, err
			}
			diag(opts.Verbose, "saved dataset", "path", opts.SavePath)
		}
		return t, nil
	}

	attempted := AttemptedURLs(sources)
	return nil, failure.New(ErrAllSourcesFailed,
		failure.Message(fmt.Sprintf(
			"No data source could be fetched (attempted: %s); the publisher's endpoints move over time, check %s manually",
			strings.Join(attempted, ", "), sourcePageURL,
		)),
		failure.Context{
			"dataset":   dataset.String(),
			"attempted": strings.Join(attempted, ", "),
			"hint":      sourcePageURL,
		},
	)
}

// fetchOne runs a single candidate attempt: GET, status check, empty-body
// check, parse per declared format, zero-row check
func fetchOne(ctx context.Context, client *http.Client, src Source) (*table.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	req.Header.Set("Accept", "application/json, text/csv")
	req.Header.Set("User-Agent", userAgent())

	resp, err := client.Do(req)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, failure.New(ErrBadStatus,
			failure.Message("Candidate answered with a non-success status"),
			failure.Context{"url": src.URL, "status": resp.Status},
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, failure.New(ErrEmptyBody,
			failure.Message("Candidate answered with an empty body"),
			failure.Context{"url": src.URL},
		)
	}

	var t *table.Table
	switch src.Format {
	case FormatCSV:
		t, err = table.ParseCSV(body)
	default:
		t, err = table.ParseJSON(body)
	}
	if err != nil {
		return nil, err
	}

	if t.Len() == 0 {
		return nil, failure.New(ErrEmptyTable,
			failure.Message("Candidate parsed into zero rows"),
			failure.Context{"url": src.URL},
		)
	}
	return t, nil
}

// AttemptedURLs projects a candidate list onto its URLs
func AttemptedURLs(sources []Source) []string {
	return lo.Map(sources, func(s Source, _ int) string {
		return s.URL
	})
}

// diag emits a diagnostic at info level when verbose, debug level
// otherwise
func diag(verbose bool, msg string, args ...any) {
	if verbose {
		log.Info(msg, args...)
		return
	}
	log.Debug(msg, args...)
}
