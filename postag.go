// Package postag holds what the universal and treebank tagsets share.
//
// The tagsets themselves live in subpackages:
//
//   - universal: the coarse, cross-linguistic tagset of the Universal
//     Dependencies project (18 tags).
//   - treebank: the fine-grained English tagset of the Penn Treebank as
//     extended by OntoNotes 5, and its projection onto universal.
//
// Both are small integer enumerations: they compare with ==, work as map
// keys, sort by declaration order, and marshal to their tagset labels
// through encoding.TextMarshaler.
package postag

import (
	"errors"
	"fmt"
	"strings"
)

// Tagset names used in errors and by the codec package.
const (
	TagsetUniversal = "universal"
	TagsetTreebank  = "treebank"
)

// ErrUnknownTag is returned (wrapped in a *ParseError) when a string does
// not name a member of the requested tagset.
var ErrUnknownTag = errors.New("unknown tag")

// ParseError reports a string that could not be parsed as a tag.
type ParseError struct {
	Tagset string // TagsetUniversal or TagsetTreebank
	Input  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrUnknownTag, e.Tagset, e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrUnknownTag
}

// LabelKey normalizes user input for label lookup. Labels are matched
// case-insensitively and without surrounding whitespace.
func LabelKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
