package testutil

import (
	"testing"

	"github.com/hupe1980/refdict"
	"github.com/hupe1980/refdict/record"
)

// Tag is a key/value pair for building records.
type Tag struct {
	Key   string
	Value string
}

// NewRecord builds a record with the given tags in order.
func NewRecord(name string, length int, tags ...Tag) *record.Record {
	r := record.New(name, length)
	for _, tag := range tags {
		r.SetTag(tag.Key, tag.Value)
	}
	return r
}

// NewDictionary builds a dictionary from the given records, failing the test
// on duplicate names.
func NewDictionary(t *testing.T, records ...*record.Record) *refdict.Dictionary {
	t.Helper()

	d, err := refdict.NewFromRecords(records)
	if err != nil {
		t.Fatalf("building dictionary: %v", err)
	}
	return d
}

// HumanAutosomes returns records for a small, fixed human-style reference
// subset, useful as a baseline fixture.
func HumanAutosomes() []*record.Record {
	return []*record.Record{
		record.New("chr1", 248956422),
		record.New("chr2", 242193529),
		record.New("chr3", 198295559),
	}
}
