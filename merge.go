package refdict

import (
	"slices"
	"strconv"

	"github.com/hupe1980/refdict/record"
)

// DefaultStrictTags is the strict set most callers want when merging
// dictionaries that are supposed to describe the same reference: the source
// URI, the per-sequence MD5 and the length.
var DefaultStrictTags = []string{
	record.TagURI,
	record.TagMD5,
	record.TagLength,
}

type mergeOptions struct {
	strictTags []string
	logger     *Logger
}

// MergeOption configures Merge behavior.
type MergeOption func(*mergeOptions)

// WithStrictTags sets the tags for which a value disagreement between the
// two inputs is a hard *ErrTagConflict instead of a warning. Including
// record.TagLength makes a length disagreement a hard error as well.
//
// Without this option no tag is strict: every disagreement resolves to the
// first dictionary's value with a logged warning.
func WithStrictTags(tags ...string) MergeOption {
	return func(o *mergeOptions) {
		o.strictTags = tags
	}
}

// WithLogger sets the sink for merge warnings. Defaults to NewLogger(nil).
func WithLogger(logger *Logger) MergeOption {
	return func(o *mergeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Merge reconciles the per-sequence metadata of two dictionaries into a new
// one. It merges tags, not sequences: both inputs must list the same
// sequence names in the same order, otherwise *ErrSizeMismatch or
// *ErrNameMismatch is returned.
//
// For each sequence the result carries the union of both sides' tags. When
// both sides define a tag and the values differ, a strict tag fails the
// merge with *ErrTagConflict; any other tag resolves to a's value with a
// logged warning. Lengths reconcile the same way, keyed on record.TagLength
// membership in the strict set; a side with record.UnknownLength never
// conflicts, the known length wins.
//
// Neither input is mutated; the union is iterated in a's tag order followed
// by b's novel tags, so the result is deterministic.
func Merge(a, b *Dictionary, opts ...MergeOption) (*Dictionary, error) {
	o := mergeOptions{
		logger: NewLogger(nil),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if a.Len() != b.Len() {
		return nil, &ErrSizeMismatch{Left: a.Len(), Right: b.Len()}
	}

	merged := New()
	for i, ra := range a.sequences {
		rb := b.sequences[i]
		if ra.Name() != rb.Name() {
			return nil, &ErrNameMismatch{Index: i, Left: ra.Name(), Right: rb.Name()}
		}

		r := record.New(ra.Name(), record.UnknownLength)

		for _, tag := range unionTagKeys(ra, rb) {
			va, aOK := ra.Tag(tag)
			vb, bOK := rb.Tag(tag)

			if aOK && bOK && va != vb {
				if slices.Contains(o.strictTags, tag) {
					return nil, &ErrTagConflict{
						Sequence: ra.Name(),
						Tag:      tag,
						Left:     va,
						Right:    vb,
					}
				}
				o.logger.LogTagConflict(ra.Name(), tag, va, vb, va)
			}

			if aOK {
				r.SetTag(tag, va)
			} else {
				r.SetTag(tag, vb)
			}
		}

		la, lb := ra.Length(), rb.Length()
		if la != record.UnknownLength && lb != record.UnknownLength && la != lb {
			if slices.Contains(o.strictTags, record.TagLength) {
				return nil, &ErrTagConflict{
					Sequence: ra.Name(),
					Tag:      record.TagLength,
					Left:     strconv.Itoa(la),
					Right:    strconv.Itoa(lb),
				}
			}
			o.logger.LogLengthConflict(ra.Name(), la, lb, la)
		}
		if la != record.UnknownLength {
			r.SetLength(la)
		} else {
			r.SetLength(lb)
		}

		// Uniqueness was already validated per input, Add cannot fail here.
		if err := merged.Add(r); err != nil {
			return nil, err
		}
	}

	return merged, nil
}

// unionTagKeys returns a's tag keys in insertion order followed by b's keys
// not present on a, in b's insertion order.
func unionTagKeys(a, b *record.Record) []string {
	keys := a.TagKeys()
	for _, k := range b.TagKeys() {
		if _, ok := a.Tag(k); !ok {
			keys = append(keys, k)
		}
	}
	return keys
}
