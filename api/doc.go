// Package api fetches measles case statistics published by the CDC.
//
// The publisher's endpoints move and change shape over time, so every
// dataset is backed by an ordered list of candidate sources (current
// JSON endpoints plus legacy CSV downloads); FetchDataset walks the
// list and returns the first candidate that parses into a non-empty
// table. Results are normalized tables (see measlesdata/api/table) that
// the chart adapters in measlesdata/api/chart can consume directly.
package api
