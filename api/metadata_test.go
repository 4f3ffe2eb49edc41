package api

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMetadata_StableDescriptiveFields(t *testing.T) {
	first := Metadata()
	second := Metadata()

	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(Record{}, "CheckedAt")); diff != "" {
		t.Errorf("Metadata() descriptive fields differ between calls (-first +second):\n%s", diff)
	}
}

func TestMetadata_CheckedAtIsCallTime(t *testing.T) {
	before := time.Now()
	record := Metadata()
	after := time.Now()

	if record.CheckedAt.Before(before) || record.CheckedAt.After(after) {
		t.Errorf("CheckedAt = %v, want within [%v, %v]", record.CheckedAt, before, after)
	}
	if record.Source == "" || record.URL == "" || record.Description == "" {
		t.Errorf("Metadata() = %+v, want every descriptive field populated", record)
	}
}
