package treebank

import (
	"strconv"

	"github.com/cours-de-latin/postag/universal"
)

// projection is indexed by Tag. Adding a Tag constant without a row here
// breaks the size assertion below; a row skipped in the middle is caught by
// init.
var projection = [...]universal.Tag{
	Currency:                              universal.Symbol,
	OpeningQuotation:                      universal.Punctuation,
	ClosingQuotation:                      universal.Punctuation,
	Comma:                                 universal.Punctuation,
	LeftBracket:                           universal.Punctuation,
	RightBracket:                          universal.Punctuation,
	SentenceCloser:                        universal.Punctuation,
	ColonOrEllipsis:                       universal.Punctuation,
	AdditionalWord:                        universal.Other,
	Affix:                                 universal.Adjective,
	CoordinatingConjunction:               universal.CoordinatingConjunction,
	CardinalNumber:                        universal.Numeral,
	Determiner:                            universal.Determiner,
	Email:                                 universal.Other,
	ExistentialThere:                      universal.Pronoun,
	ForeignWord:                           universal.Other,
	Hyphen:                                universal.Punctuation,
	SubordinatingConjunctionOrPreposition: universal.Adposition,
	Adjective:                             universal.Adjective,
	AdjectiveComparative:                  universal.Adjective,
	AdjectiveSuperlative:                  universal.Adjective,
	ListItemMarker:                        universal.Other,
	ModalAuxiliary:                        universal.Verb,
	SuperfluousPunctuation:                universal.Punctuation,
	MissingTag:                            universal.Other,
	NounSingularOrMass:                    universal.Noun,
	NounPlural:                            universal.Noun,
	NounProperSingular:                    universal.ProperNoun,
	NounProperPlural:                      universal.ProperNoun,
	Predeterminer:                         universal.Determiner,
	PossessiveEnding:                      universal.Particle,
	PersonalPronoun:                       universal.Pronoun,
	PossessivePronoun:                     universal.Determiner,
	Adverb:                                universal.Adverb,
	AdverbComparative:                     universal.Adverb,
	AdverbSuperlative:                     universal.Adverb,
	AdverbialParticle:                     universal.Adposition,
	Space:                                 universal.Space,
	Symbol:                                universal.Symbol,
	InfinitivalTo:                         universal.Particle,
	Interjection:                          universal.Interjection,
	VerbBaseForm:                          universal.Verb,
	VerbPastTense:                         universal.Verb,
	VerbGerundOrPresentParticiple:         universal.Verb,
	VerbPastParticiple:                    universal.Verb,
	VerbNon3rdSingularPresent:             universal.Verb,
	Verb3rdSingularPresent:                universal.Verb,
	WhDeterminer:                          universal.Determiner,
	WhPersonalPronoun:                     universal.Pronoun,
	WhPossessivePronoun:                   universal.Determiner,
	WhAdverb:                              universal.Adverb,
	Unknown:                               universal.Other,
}

var (
	_ [len(projection) - int(end)]struct{}
	_ [int(end) - len(projection)]struct{}
)

func init() {
	for t := Tag(1); t < end; t++ {
		if !projection[t].Valid() {
			panic("treebank: tag " + strconv.Itoa(int(t)) + " (" + table[t].label + ") has no universal projection")
		}
	}
}

// Project returns the universal tag t narrows to. It is a table lookup
// with no state; for an invalid t it returns the invalid zero universal.Tag.
func Project(t Tag) universal.Tag {
	if !t.Valid() {
		return 0
	}
	return projection[t]
}

// Universal is shorthand for Project(t).
func (t Tag) Universal() universal.Tag {
	return Project(t)
}

// ProjectAll projects a tag sequence element-wise.
func ProjectAll(tags []Tag) []universal.Tag {
	out := make([]universal.Tag, len(tags))
	for i, t := range tags {
		out[i] = Project(t)
	}
	return out
}
