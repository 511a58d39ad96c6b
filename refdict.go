package refdict

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/hupe1980/refdict/internal/hash"
	"github.com/hupe1980/refdict/record"
)

// Dictionary is an ordered, uniquely named collection of sequence records.
//
// The ordered slice of records is the single source of truth for order and
// membership; the name index is derived from it and additionally carries
// registered aliases. Dictionaries are not internally synchronized, see the
// package documentation for the sharing discipline.
type Dictionary struct {
	sequences []*record.Record
	byName    map[string]*record.Record
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		byName: make(map[string]*record.Record),
	}
}

// NewFromRecords creates a dictionary owning the given records, assigning
// each its zero-based index. Construction is atomic: if two records share a
// name, a *ErrDuplicateName is returned and no dictionary is created.
func NewFromRecords(records []*record.Record) (*Dictionary, error) {
	d := New()
	if err := d.SetSequences(records); err != nil {
		return nil, err
	}
	return d, nil
}

// SetSequences replaces the entire record list. The slice is used directly,
// not copied; the caller hands over ownership. Every record is assigned the
// index of its position, the name index is rebuilt from scratch, and all
// registered aliases are dropped.
//
// Duplicate names fail with *ErrDuplicateName before anything is committed,
// leaving the dictionary unchanged.
func (d *Dictionary) SetSequences(records []*record.Record) error {
	byName := make(map[string]*record.Record, len(records))
	for _, r := range records {
		if _, exists := byName[r.Name()]; exists {
			return &ErrDuplicateName{Name: r.Name()}
		}
		byName[r.Name()] = r
	}

	for i, r := range records {
		r.SetIndex(i)
	}
	d.sequences = records
	d.byName = byName

	return nil
}

// Add appends a record, assigning it the next index. The record's name must
// not collide with any primary name or alias already in the dictionary;
// otherwise *ErrDuplicateName is returned and the dictionary is unchanged.
func (d *Dictionary) Add(r *record.Record) error {
	if _, exists := d.byName[r.Name()]; exists {
		return &ErrDuplicateName{Name: r.Name()}
	}

	r.SetIndex(len(d.sequences))
	d.sequences = append(d.sequences, r)
	d.byName[r.Name()] = r

	return nil
}

// Sequence returns the record bound to name (primary or alias), or nil if
// the name is not in the dictionary.
func (d *Dictionary) Sequence(name string) *record.Record {
	return d.byName[name]
}

// SequenceAt returns the record at the given index, or nil if the index is
// out of range.
func (d *Dictionary) SequenceAt(i int) *record.Record {
	if i < 0 || i >= len(d.sequences) {
		return nil
	}
	return d.sequences[i]
}

// Index returns the index of the record bound to name (primary or alias),
// or -1 if the name is not in the dictionary.
func (d *Dictionary) Index(name string) int {
	r := d.byName[name]
	if r == nil {
		return -1
	}
	return r.Index()
}

// Len returns the number of records in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.sequences)
}

// IsEmpty reports whether the dictionary holds no records.
func (d *Dictionary) IsEmpty() bool {
	return len(d.sequences) == 0
}

// ReferenceLength returns the sum of all record lengths. A record with
// record.UnknownLength contributes 0 to the sum.
func (d *Dictionary) ReferenceLength() int64 {
	var total int64
	for _, r := range d.sequences {
		total += int64(r.Length())
	}
	return total
}

// Sequences returns the records in index order. The slice is a copy; the
// records are shared.
func (d *Dictionary) Sequences() []*record.Record {
	return slices.Clone(d.sequences)
}

// All iterates the records in index order, yielding (index, record).
func (d *Dictionary) All() iter.Seq2[int, *record.Record] {
	return func(yield func(int, *record.Record) bool) {
		for i, r := range d.sequences {
			if !yield(i, r) {
				return
			}
		}
	}
}

// AddAlias binds an additional name to an existing record. The alias
// resolves through Sequence and Index like a primary name but does not
// appear in the ordered sequence and does not affect equality or checksums.
//
// Registering a name as an alias of itself is a no-op; re-registering an
// alias to the same record is idempotent. Binding a name that already
// resolves to a different record fails with *ErrAliasConflict. An unknown
// original name fails with *ErrUnknownSequence.
//
// On success the record the alias resolves to is returned.
func (d *Dictionary) AddAlias(originalName, aliasName string) (*record.Record, error) {
	original := d.byName[originalName]
	if original == nil {
		return nil, &ErrUnknownSequence{Name: originalName}
	}

	if originalName == aliasName {
		return original, nil
	}

	if existing := d.byName[aliasName]; existing != nil {
		if existing == original {
			return original, nil
		}
		return nil, &ErrAliasConflict{
			Alias:   aliasName,
			BoundTo: existing.Name(),
			Target:  original.Name(),
		}
	}

	d.byName[aliasName] = original

	return original, nil
}

// Equal reports full structural equality: same records (name, length, full
// tag set) in the same order. Registered aliases are not part of equality.
func (d *Dictionary) Equal(other *Dictionary) bool {
	if other == nil {
		return false
	}
	return slices.EqualFunc(d.sequences, other.sequences, (*record.Record).Equal)
}

// AssertSameDictionary checks that both dictionaries describe the same
// reference, comparing only name and length position by position. Extra
// tags and aliases are ignored. It returns a *ErrSequenceMismatch
// identifying the first divergence, or an error for a count mismatch; nil
// means the dictionaries are compatible.
func (d *Dictionary) AssertSameDictionary(other *Dictionary) error {
	if d == other {
		return nil
	}

	for i, r := range d.sequences {
		o := other.SequenceAt(i)
		if o == nil {
			return &ErrSequenceMismatch{Index: i, Left: r}
		}
		if !r.SameSequence(o) {
			return &ErrSequenceMismatch{Index: i, Left: r, Right: o}
		}
	}
	if other.Len() > d.Len() {
		return &ErrSequenceMismatch{Index: d.Len(), Right: other.SequenceAt(d.Len())}
	}

	return nil
}

// Checksum computes the dictionary's content fingerprint, recomputed on
// every call. The empty dictionary yields the empty string. Otherwise the
// records are fed into a 128-bit digest in index order, separated by a
// single space byte: a record contributes its precomputed record.TagMD5
// value when present, else its name followed by its decimal length. The
// result is a fixed 32-character lowercase hex string.
//
// Two dictionaries with identical records in identical order produce
// identical checksums. This is a reproducible fingerprint, not a security
// digest.
func (d *Dictionary) Checksum() string {
	if d.IsEmpty() {
		return ""
	}

	f := hash.NewFingerprint()
	for i, r := range d.sequences {
		if i > 0 {
			f.WriteString(" ")
		}
		if md5tag, ok := r.Tag(record.TagMD5); ok {
			f.WriteString(md5tag)
		} else {
			f.WriteString(r.Name())
			f.WriteString(strconv.Itoa(r.Length()))
		}
	}

	return f.HexSum()
}

// Validate re-checks the dictionary's internal invariants: dense indices
// matching positions, unique primary names, and a name index covering every
// primary name. A failure wraps ErrInvariantViolation and means the
// exclusive-mutation discipline was broken.
func (d *Dictionary) Validate() error {
	for i, r := range d.sequences {
		if r.Index() != i {
			return fmt.Errorf("%w: record %s has index %d at position %d",
				ErrInvariantViolation, r.Name(), r.Index(), i)
		}
		bound, ok := d.byName[r.Name()]
		if !ok {
			return fmt.Errorf("%w: record %s is not in the name index",
				ErrInvariantViolation, r.Name())
		}
		if bound != r {
			return fmt.Errorf("%w: name %s is bound to a different record",
				ErrInvariantViolation, r.Name())
		}
	}
	for name, r := range d.byName {
		if d.SequenceAt(r.Index()) != r {
			return fmt.Errorf("%w: name %s resolves to a record outside the sequence list",
				ErrInvariantViolation, name)
		}
	}

	return nil
}

// String renders a diagnostic summary including the content checksum.
func (d *Dictionary) String() string {
	return fmt.Sprintf("Dictionary(sequences:%d length:%d md5:%s)",
		d.Len(), d.ReferenceLength(), d.Checksum())
}
