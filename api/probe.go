package api

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"measlesdata/log"
)

// Probe reports whether any known candidate endpoint currently serves
// data: the first candidate answering 200 with a non-empty body wins.
// It never fails; transport errors only mark that candidate unavailable.
func Probe(ctx context.Context, opts Options) bool {
	client := opts.Client
	if client == nil {
		client = defaultClient
	}
	sources := opts.Sources
	if len(sources) == 0 {
		sources = Sources(DatasetAny)
	}

	for _, src := range sources {
		if probeOne(ctx, client, src.URL) {
			diag(opts.Verbose, "endpoint reachable", "url", src.URL)
			return true
		}
		diag(opts.Verbose, "endpoint unreachable", "url", src.URL)
	}
	return false
}

func probeOne(ctx context.Context, client *http.Client, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug("probe read failed", "url", url, "error", err.Error())
		return false
	}
	return len(bytes.TrimSpace(body)) > 0
}
