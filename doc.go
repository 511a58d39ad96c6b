// Package refdict implements the reference-sequence dictionary: the ordered,
// uniquely named collection of reference sequence records that describes the
// set of contigs a dataset is aligned against.
//
// A Dictionary maintains three invariants under every mutation:
//
//   - insertion order of records is stable
//   - name lookup is O(1), for primary names and registered aliases alike
//   - every record's assigned index equals its zero-based position
//
// # Quick Start
//
//	dict := refdict.New()
//	_ = dict.Add(record.New("chr1", 248956422))
//	_ = dict.Add(record.New("chr2", 242193529))
//
//	r := dict.Sequence("chr1")          // O(1) name lookup
//	r = dict.SequenceAt(1)              // bounds-checked index lookup
//	sum := dict.Checksum()              // 32-char hex content fingerprint
//
// Alternate contig names can be registered as aliases. An alias resolves to
// the same record without appearing in the ordered sequence:
//
//	_, _ = dict.AddAlias("chr1", "1")
//	dict.Sequence("1") == dict.Sequence("chr1")
//
// # Merging
//
// Merge reconciles the per-sequence metadata of two dictionaries that list
// the same sequences in the same order. Disagreements on a strict tag fail
// the merge; disagreements on any other tag resolve to the first argument's
// value with a logged warning:
//
//	merged, err := refdict.Merge(a, b,
//	    refdict.WithStrictTags(refdict.DefaultStrictTags...),
//	    refdict.WithLogger(logger),
//	)
//
// # Concurrency
//
// A Dictionary is not internally synchronized. The intended discipline is a
// single writer during the mutation phase, after which the dictionary is
// treated as read-only and may be shared freely. Concurrent mutation is
// undefined behavior.
package refdict
