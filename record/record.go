// Package record provides the sequence record type held by a reference
// dictionary: one named reference contig with a length, dictionary-assigned
// index, and an ordered set of metadata tags.
package record

import (
	"fmt"
	"iter"
)

const (
	// UnknownLength is the sentinel for a sequence whose length is not known.
	UnknownLength = 0

	// UnassignedIndex marks a record that is not (yet) owned by a dictionary.
	UnassignedIndex = -1
)

// Record is a single named reference sequence.
//
// The index field is dictionary-assigned metadata: the dictionary that owns
// the record sets it to the record's zero-based position and keeps it dense
// under mutation. A record holds no reference back to its container.
type Record struct {
	name   string
	length int
	index  int
	tags   *TagMap
}

// New creates a record with the given name and length.
// Use UnknownLength when the length is not known.
func New(name string, length int) *Record {
	return &Record{
		name:   name,
		length: length,
		index:  UnassignedIndex,
		tags:   NewTagMap(),
	}
}

// WithTag sets a tag and returns the record, for fluent construction:
//
//	r := record.New("chr1", 248956422).
//	    WithTag(record.TagAssembly, "GRCh38").
//	    WithTag(record.TagMD5, "2648ae1bacce4ec4b6cf337dcae37816")
func (r *Record) WithTag(key, value string) *Record {
	r.tags.Set(key, value)
	return r
}

// Name returns the primary name of the sequence.
func (r *Record) Name() string { return r.name }

// Length returns the sequence length, or UnknownLength.
func (r *Record) Length() int { return r.length }

// SetLength updates the sequence length.
func (r *Record) SetLength(length int) { r.length = length }

// Index returns the zero-based position assigned by the owning dictionary,
// or UnassignedIndex.
func (r *Record) Index() int { return r.index }

// SetIndex assigns the record's position. Called by the owning dictionary;
// callers normally never invoke this directly.
func (r *Record) SetIndex(i int) { r.index = i }

// Tag returns the value of a metadata tag and whether it is set.
func (r *Record) Tag(key string) (string, bool) {
	return r.tags.Get(key)
}

// SetTag sets a metadata tag, overwriting any previous value.
func (r *Record) SetTag(key, value string) {
	r.tags.Set(key, value)
}

// TagKeys returns the tag keys in insertion order.
func (r *Record) TagKeys() []string {
	return r.tags.Keys()
}

// Tags iterates the record's tags in insertion order.
func (r *Record) Tags() iter.Seq2[string, string] {
	return r.tags.All()
}

// NumTags returns the number of tags set on the record.
func (r *Record) NumTags() int {
	return r.tags.Len()
}

// Clone returns a deep copy of the record, including its tags and index.
func (r *Record) Clone() *Record {
	return &Record{
		name:   r.name,
		length: r.length,
		index:  r.index,
		tags:   r.tags.Clone(),
	}
}

// Equal reports full structural equality: name, length and the complete tag
// set. The assigned index is container metadata and is not compared.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		return false
	}
	return r.name == other.name &&
		r.length == other.length &&
		r.tags.Equal(other.tags)
}

// SameSequence reports whether both records plausibly describe the same
// reference sequence: same name and same length. Tags are ignored, so two
// records from differently annotated headers still compare as the same
// sequence.
func (r *Record) SameSequence(other *Record) bool {
	if other == nil {
		return false
	}
	return r.name == other.name && r.length == other.length
}

// String renders the record for diagnostics.
func (r *Record) String() string {
	return fmt.Sprintf("%s(length=%d, tags=%d)", r.name, r.length, r.tags.Len())
}
