// Package treebank defines the fine-grained English part-of-speech tags of
// the Penn Treebank, as extended by OntoNotes 5, and their projection onto
// the universal tagset.
package treebank

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/cours-de-latin/postag"
)

// Tag is a Penn Treebank part-of-speech tag. The set is flat: no tag is a
// refinement of another.
//
// The zero value is not a valid tag.
type Tag uint8

const (
	_ Tag = iota

	Currency
	OpeningQuotation
	ClosingQuotation
	Comma
	LeftBracket
	RightBracket
	SentenceCloser
	ColonOrEllipsis
	AdditionalWord
	Affix
	CoordinatingConjunction
	CardinalNumber
	Determiner
	Email
	ExistentialThere
	ForeignWord
	Hyphen
	SubordinatingConjunctionOrPreposition
	Adjective
	AdjectiveComparative
	AdjectiveSuperlative
	ListItemMarker
	ModalAuxiliary
	SuperfluousPunctuation
	MissingTag
	NounSingularOrMass
	NounPlural
	NounProperSingular
	NounProperPlural
	Predeterminer
	PossessiveEnding
	PersonalPronoun
	PossessivePronoun
	Adverb
	AdverbComparative
	AdverbSuperlative
	AdverbialParticle
	Space
	Symbol
	InfinitivalTo
	Interjection
	VerbBaseForm
	VerbPastTense
	VerbGerundOrPresentParticiple
	VerbPastParticiple
	VerbNon3rdSingularPresent
	Verb3rdSingularPresent
	WhDeterminer
	WhPersonalPronoun
	WhPossessivePronoun
	WhAdverb
	Unknown

	end
)

// Count is the number of valid tags.
const Count = int(end) - 1

type info struct {
	label       string
	name        string
	description string
}

var table = [...]info{
	Currency:                              {"$", "Currency", "symbol, currency"},
	OpeningQuotation:                      {"``", "OpeningQuotation", "opening quotation mark"},
	ClosingQuotation:                      {"''", "ClosingQuotation", "closing quotation mark"},
	Comma:                                 {",", "Comma", "punctuation mark, comma"},
	LeftBracket:                           {"-LRB-", "LeftBracket", "left round bracket"},
	RightBracket:                          {"-RRB-", "RightBracket", "right round bracket"},
	SentenceCloser:                        {".", "SentenceCloser", "punctuation mark, sentence closer"},
	ColonOrEllipsis:                       {":", "ColonOrEllipsis", "punctuation mark, colon or ellipsis"},
	AdditionalWord:                        {"ADD", "AdditionalWord", "additional word, e.g. a split token fragment"},
	Affix:                                 {"AFX", "Affix", "affix"},
	CoordinatingConjunction:               {"CC", "CoordinatingConjunction", "conjunction, coordinating"},
	CardinalNumber:                        {"CD", "CardinalNumber", "cardinal number"},
	Determiner:                            {"DT", "Determiner", "determiner"},
	Email:                                 {"EMAIL", "Email", "email address"},
	ExistentialThere:                      {"EX", "ExistentialThere", "existential there"},
	ForeignWord:                           {"FW", "ForeignWord", "foreign word"},
	Hyphen:                                {"HYPH", "Hyphen", "punctuation mark, hyphen"},
	SubordinatingConjunctionOrPreposition: {"IN", "SubordinatingConjunctionOrPreposition", "conjunction, subordinating or preposition"},
	Adjective:                             {"JJ", "Adjective", "adjective"},
	AdjectiveComparative:                  {"JJR", "AdjectiveComparative", "adjective, comparative"},
	AdjectiveSuperlative:                  {"JJS", "AdjectiveSuperlative", "adjective, superlative"},
	ListItemMarker:                        {"LS", "ListItemMarker", "list item marker"},
	ModalAuxiliary:                        {"MD", "ModalAuxiliary", "verb, modal auxiliary"},
	SuperfluousPunctuation:                {"NFP", "SuperfluousPunctuation", "superfluous punctuation"},
	MissingTag:                            {"NIL", "MissingTag", "missing tag"},
	NounSingularOrMass:                    {"NN", "NounSingularOrMass", "noun, singular or mass"},
	NounPlural:                            {"NNS", "NounPlural", "noun, plural"},
	NounProperSingular:                    {"NNP", "NounProperSingular", "noun, proper singular"},
	NounProperPlural:                      {"NNPS", "NounProperPlural", "noun, proper plural"},
	Predeterminer:                         {"PDT", "Predeterminer", "predeterminer"},
	PossessiveEnding:                      {"POS", "PossessiveEnding", "possessive ending"},
	PersonalPronoun:                       {"PRP", "PersonalPronoun", "pronoun, personal"},
	PossessivePronoun:                     {"PRP$", "PossessivePronoun", "pronoun, possessive"},
	Adverb:                                {"RB", "Adverb", "adverb"},
	AdverbComparative:                     {"RBR", "AdverbComparative", "adverb, comparative"},
	AdverbSuperlative:                     {"RBS", "AdverbSuperlative", "adverb, superlative"},
	AdverbialParticle:                     {"RP", "AdverbialParticle", "adverb, particle"},
	Space:                                 {"_SP", "Space", "whitespace"},
	Symbol:                                {"SYM", "Symbol", "symbol"},
	InfinitivalTo:                         {"TO", "InfinitivalTo", `infinitival "to"`},
	Interjection:                          {"UH", "Interjection", "interjection"},
	VerbBaseForm:                          {"VB", "VerbBaseForm", "verb, base form"},
	VerbPastTense:                         {"VBD", "VerbPastTense", "verb, past tense"},
	VerbGerundOrPresentParticiple:         {"VBG", "VerbGerundOrPresentParticiple", "verb, gerund or present participle"},
	VerbPastParticiple:                    {"VBN", "VerbPastParticiple", "verb, past participle"},
	VerbNon3rdSingularPresent:             {"VBP", "VerbNon3rdSingularPresent", "verb, non-3rd person singular present"},
	Verb3rdSingularPresent:                {"VBZ", "Verb3rdSingularPresent", "verb, 3rd person singular present"},
	WhDeterminer:                          {"WDT", "WhDeterminer", "wh-determiner"},
	WhPersonalPronoun:                     {"WP", "WhPersonalPronoun", "wh-pronoun, personal"},
	WhPossessivePronoun:                   {"WP$", "WhPossessivePronoun", "wh-pronoun, possessive"},
	WhAdverb:                              {"WRB", "WhAdverb", "wh-adverb"},
	Unknown:                               {"XX", "Unknown", "unknown"},
}

// One row per constant, or this does not compile.
var (
	_ [len(table) - int(end)]struct{}
	_ [int(end) - len(table)]struct{}
)

// aliases are alternative spellings found in other Penn-derived corpora.
var aliases = map[string]Tag{
	"SP": Space,
	"(":  LeftBracket,
	")":  RightBracket,
}

var (
	byLabel = make(map[string]Tag, Count+len(aliases))
	byName  = make(map[string]Tag, Count)
)

func init() {
	for t := Tag(1); t < end; t++ {
		row := table[t]
		if row.label == "" || row.name == "" {
			panic("treebank: tag " + strconv.Itoa(int(t)) + " has no table row")
		}
		byLabel[row.label] = t
		byName[row.name] = t
	}
	for label, t := range aliases {
		byLabel[label] = t
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

// Parse returns the tag whose Penn label (case-insensitive, e.g. "NNP"),
// label alias (e.g. "SP") or Go name (e.g. "NounProperSingular") is s.
func Parse(s string) (Tag, error) {
	if t, ok := byName[strings.TrimSpace(s)]; ok {
		return t, nil
	}
	if t, ok := byLabel[postag.LabelKey(s)]; ok {
		return t, nil
	}
	return 0, &postag.ParseError{Tagset: postag.TagsetTreebank, Input: s}
}

// Valid reports whether t is one of the declared tags.
func (t Tag) Valid() bool {
	return t > 0 && t < end
}

// Label returns the Penn label, e.g. "VBD", or "" for an invalid tag.
func (t Tag) Label() string {
	if !t.Valid() {
		return ""
	}
	return table[t].label
}

// Name returns the Go constant name, or "" for an invalid tag.
func (t Tag) Name() string {
	if !t.Valid() {
		return ""
	}
	return table[t].name
}

// Description returns the tagset guideline gloss, e.g. "verb, past tense".
func (t Tag) Description() string {
	if !t.Valid() {
		return ""
	}
	return table[t].description
}

// Compare orders tags by declaration order.
func (t Tag) Compare(other Tag) int {
	return cmp.Compare(t, other)
}

func (t Tag) String() string {
	if !t.Valid() {
		return "treebank.Tag(" + strconv.Itoa(int(t)) + ")"
	}
	return table[t].label
}

// MarshalText implements encoding.TextMarshaler using the Penn label.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &postag.ParseError{Tagset: postag.TagsetTreebank, Input: t.String()}
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
