package refdict

import (
	"errors"
	"fmt"

	"github.com/hupe1980/refdict/record"
)

// ErrInvariantViolation is returned (wrapped) by Validate when the
// dictionary's internal state is inconsistent. It indicates the
// exclusive-mutation discipline was broken; callers should treat it as fatal.
var ErrInvariantViolation = errors.New("sequence dictionary invariant violated")

// ErrDuplicateName indicates an attempt to register a sequence name that is
// already bound, either as a primary name or as an alias.
type ErrDuplicateName struct {
	Name string
}

func (e *ErrDuplicateName) Error() string {
	return fmt.Sprintf("sequence already exists in dictionary: %s", e.Name)
}

// ErrUnknownSequence indicates a lookup of a name that is not bound in the
// dictionary.
type ErrUnknownSequence struct {
	Name string
}

func (e *ErrUnknownSequence) Error() string {
	return fmt.Sprintf("sequence %s doesn't exist in dictionary", e.Name)
}

// ErrAliasConflict indicates an attempt to bind an alias name that is
// already bound to a different record.
type ErrAliasConflict struct {
	Alias   string // the alias name being registered
	BoundTo string // primary name of the record the alias already resolves to
	Target  string // primary name of the record the caller tried to bind
}

func (e *ErrAliasConflict) Error() string {
	return fmt.Sprintf("alias %s is already bound to %s, cannot rebind to %s",
		e.Alias, e.BoundTo, e.Target)
}

// ErrSizeMismatch indicates two dictionaries with differing sequence counts
// where identical counts are required.
type ErrSizeMismatch struct {
	Left  int
	Right int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("dictionaries have different numbers of sequences: %d and %d",
		e.Left, e.Right)
}

// ErrNameMismatch indicates two dictionaries that disagree on the sequence
// name at a given index.
type ErrNameMismatch struct {
	Index int
	Left  string
	Right string
}

func (e *ErrNameMismatch) Error() string {
	return fmt.Sprintf("non-equal sequence names (%s and %s) at index %d",
		e.Left, e.Right, e.Index)
}

// ErrTagConflict indicates a merge conflict on a strict tag: both inputs
// define a value for the tag on the named sequence and the values differ.
// The length pseudo-tag (record.TagLength) uses the same conflict type.
type ErrTagConflict struct {
	Sequence string
	Tag      string
	Left     string
	Right    string
}

func (e *ErrTagConflict) Error() string {
	return fmt.Sprintf("cannot merge dictionaries: sequence %s tag %s has conflicting values %s and %s",
		e.Sequence, e.Tag, e.Left, e.Right)
}

// ErrSequenceMismatch is returned by AssertSameDictionary at the first
// position where the two dictionaries diverge. A nil Left or Right means the
// corresponding dictionary has no record at Index.
type ErrSequenceMismatch struct {
	Index int
	Left  *record.Record
	Right *record.Record
}

func (e *ErrSequenceMismatch) Error() string {
	switch {
	case e.Right == nil:
		return fmt.Sprintf("dictionaries are not the same: %s at index %d is present in only one dictionary",
			e.Left, e.Index)
	case e.Left == nil:
		return fmt.Sprintf("dictionaries are not the same: %s at index %d is present in only one dictionary",
			e.Right, e.Index)
	default:
		return fmt.Sprintf("dictionaries are not the same: found %s at index %d when %s was expected",
			e.Right, e.Index, e.Left)
	}
}
