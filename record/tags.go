package record

import (
	"iter"
	"maps"
	"slices"
)

// Reserved tag names defined by the SAM header specification for @SQ lines.
// Name and length live in dedicated Record fields and are never mirrored
// into the tag map; the constants exist so callers (header codecs, merge
// strict sets) can refer to them by their wire names.
const (
	// TagLength ("LN") is the reserved tag for the sequence length.
	TagLength = "LN"

	// TagMD5 ("M5") is the reserved tag for a precomputed MD5 checksum of
	// the sequence bases. When present it takes precedence over name+length
	// in Dictionary.Checksum.
	TagMD5 = "M5"

	// TagURI ("UR") is the reserved tag for the URI of the sequence source.
	TagURI = "UR"

	// TagAssembly ("AS") names the genome assembly identifier.
	TagAssembly = "AS"

	// TagSpecies ("SP") names the species.
	TagSpecies = "SP"

	// TagDescription ("DS") is a free-text description.
	TagDescription = "DS"

	// TagTopology ("TP") is the molecule topology (linear or circular).
	TagTopology = "TP"

	// TagAlternateLocus ("AH") marks an alternate locus region.
	TagAlternateLocus = "AH"

	// TagAlternateNames ("AN") lists alternative names for the sequence.
	TagAlternateNames = "AN"
)

// TagMap is an insertion-order-preserving string-to-string mapping used for
// per-sequence metadata tags.
//
// Keys are only ever added or overwritten; there is no per-key removal,
// matching the append/replace-wholesale discipline of the owning dictionary.
// The zero value is not usable; call NewTagMap.
type TagMap struct {
	m     map[string]string
	order []string
}

// NewTagMap creates an empty TagMap.
func NewTagMap() *TagMap {
	return &TagMap{
		m: make(map[string]string),
	}
}

// Set stores value under key. Overwriting an existing key keeps its original
// position in the insertion order.
func (t *TagMap) Set(key, value string) {
	if _, exists := t.m[key]; !exists {
		t.order = append(t.order, key)
	}
	t.m[key] = value
}

// Get returns the value for key and whether it is present.
func (t *TagMap) Get(key string) (string, bool) {
	v, ok := t.m[key]
	return v, ok
}

// Len returns the number of tags.
func (t *TagMap) Len() int {
	return len(t.m)
}

// Keys returns the tag keys in insertion order. The returned slice is a copy.
func (t *TagMap) Keys() []string {
	return slices.Clone(t.order)
}

// All iterates key/value pairs in insertion order.
func (t *TagMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range t.order {
			if !yield(k, t.m[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy preserving insertion order.
func (t *TagMap) Clone() *TagMap {
	return &TagMap{
		m:     maps.Clone(t.m),
		order: slices.Clone(t.order),
	}
}

// Equal reports whether both maps hold the same key/value pairs.
// Insertion order is not part of equality.
func (t *TagMap) Equal(other *TagMap) bool {
	if other == nil {
		return t.Len() == 0
	}
	return maps.Equal(t.m, other.m)
}
