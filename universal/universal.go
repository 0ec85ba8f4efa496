// Package universal defines the coarse part-of-speech tags of the Universal
// Dependencies scheme (https://universaldependencies.org/u/pos).
package universal

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/cours-de-latin/postag"
)

// Tag is a Universal Dependencies part-of-speech tag.
//
// The zero value is not a valid tag.
type Tag uint8

const (
	_ Tag = iota

	// Examples: big, old, green, incomprehensible, first
	Adjective
	// Examples: in, to, during
	Adposition
	// Examples: very, tomorrow, down, where, there
	Adverb
	// Examples: is, has (done), will (do), should (do)
	Auxiliary
	// Examples: and, or, but
	Conjunction
	// Examples: and, or, but
	CoordinatingConjunction
	// Examples: a, an, the
	Determiner
	// Examples: psst, ouch, bravo, hello
	Interjection
	// Examples: girl, cat, tree, air, beauty
	Noun
	// Examples: 1, 2020, one, seventy-seven, IV, MMXIV
	Numeral
	// Examples: 's, not
	Particle
	// Examples: I, you, he, she, myself, themselves, somebody
	Pronoun
	// Examples: Mary, John, London, NATO, HBO, Ferris
	ProperNoun
	// Examples: ., (, ), ?
	Punctuation
	// Examples: if, while, that
	SubordinatingConjunction
	// Examples: %, $, £, -, +, =
	Symbol
	// Examples: run, runs, running, eat, ate, eating
	Verb
	// Examples: sdijfiodufildug
	Other
	// Examples: ' '
	Space

	end
)

// Count is the number of valid tags.
const Count = int(end) - 1

type info struct {
	label    string
	name     string
	examples []string
}

var table = [...]info{
	Adjective:                {"ADJ", "Adjective", []string{"big", "old", "green", "incomprehensible", "first"}},
	Adposition:               {"ADP", "Adposition", []string{"in", "to", "during"}},
	Adverb:                   {"ADV", "Adverb", []string{"very", "tomorrow", "down", "where", "there"}},
	Auxiliary:                {"AUX", "Auxiliary", []string{"is", "has (done)", "will (do)", "should (do)"}},
	Conjunction:              {"CONJ", "Conjunction", []string{"and", "or", "but"}},
	CoordinatingConjunction:  {"CCONJ", "CoordinatingConjunction", []string{"and", "or", "but"}},
	Determiner:               {"DET", "Determiner", []string{"a", "an", "the"}},
	Interjection:             {"INTJ", "Interjection", []string{"psst", "ouch", "bravo", "hello"}},
	Noun:                     {"NOUN", "Noun", []string{"girl", "cat", "tree", "air", "beauty"}},
	Numeral:                  {"NUM", "Numeral", []string{"1", "2020", "one", "seventy-seven", "IV", "MMXIV"}},
	Particle:                 {"PART", "Particle", []string{"'s", "not"}},
	Pronoun:                  {"PRON", "Pronoun", []string{"I", "you", "he", "she", "myself", "themselves", "somebody"}},
	ProperNoun:               {"PROPN", "ProperNoun", []string{"Mary", "John", "London", "NATO", "HBO", "Ferris"}},
	Punctuation:              {"PUNCT", "Punctuation", []string{".", "(", ")", "?"}},
	SubordinatingConjunction: {"SCONJ", "SubordinatingConjunction", []string{"if", "while", "that"}},
	Symbol:                   {"SYM", "Symbol", []string{"%", "$", "£", "-", "+", "="}},
	Verb:                     {"VERB", "Verb", []string{"run", "runs", "running", "eat", "ate", "eating"}},
	Other:                    {"X", "Other", []string{"sdijfiodufildug"}},
	Space:                    {"SPACE", "Space", []string{" "}},
}

// One row per constant, or this does not compile.
var (
	_ [len(table) - int(end)]struct{}
	_ [int(end) - len(table)]struct{}
)

var (
	byLabel = make(map[string]Tag, Count)
	byName  = make(map[string]Tag, Count)
)

func init() {
	for t := Tag(1); t < end; t++ {
		row := table[t]
		if row.label == "" || row.name == "" {
			panic("universal: tag " + strconv.Itoa(int(t)) + " has no table row")
		}
		byLabel[row.label] = t
		byName[row.name] = t
	}
}

// All returns every tag in declaration order.
func All() []Tag {
	out := make([]Tag, 0, Count)
	for t := Tag(1); t < end; t++ {
		out = append(out, t)
	}
	return out
}

// Parse returns the tag whose UD label (case-insensitive, e.g. "PROPN") or
// Go name (e.g. "ProperNoun") is s.
func Parse(s string) (Tag, error) {
	if t, ok := byName[strings.TrimSpace(s)]; ok {
		return t, nil
	}
	if t, ok := byLabel[postag.LabelKey(s)]; ok {
		return t, nil
	}
	return 0, &postag.ParseError{Tagset: postag.TagsetUniversal, Input: s}
}

// Valid reports whether t is one of the declared tags.
func (t Tag) Valid() bool {
	return t > 0 && t < end
}

// Label returns the UD label, e.g. "NOUN", or "" for an invalid tag.
func (t Tag) Label() string {
	if !t.Valid() {
		return ""
	}
	return table[t].label
}

// Name returns the Go constant name, e.g. "ProperNoun", or "" for an
// invalid tag.
func (t Tag) Name() string {
	if !t.Valid() {
		return ""
	}
	return table[t].name
}

// Examples returns sample surface forms. They are documentation only.
func (t Tag) Examples() []string {
	if !t.Valid() {
		return nil
	}
	return append([]string(nil), table[t].examples...)
}

// Compare orders tags by declaration order.
func (t Tag) Compare(other Tag) int {
	return cmp.Compare(t, other)
}

func (t Tag) String() string {
	if !t.Valid() {
		return "universal.Tag(" + strconv.Itoa(int(t)) + ")"
	}
	return table[t].label
}

// MarshalText implements encoding.TextMarshaler using the UD label.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &postag.ParseError{Tagset: postag.TagsetUniversal, Input: t.String()}
	}
	return []byte(table[t].label), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts whatever
// Parse accepts.
func (t *Tag) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
