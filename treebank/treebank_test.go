package treebank

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/cours-de-latin/postag"
)

func TestAll(t *testing.T) {
	all := All()
	if len(all) != Count {
		t.Fatalf("len(All()) = %d, Count = %d", len(all), Count)
	}
	if Count != 52 {
		t.Errorf("Count = %d, want 52", Count)
	}
	for i, tag := range all {
		if !tag.Valid() {
			t.Errorf("All()[%d] = %d is not valid", i, tag)
		}
		if i > 0 && all[i-1].Compare(tag) >= 0 {
			t.Errorf("All() not in declaration order at %d", i)
		}
	}
}

func TestTableRows(t *testing.T) {
	labels := make(map[string]Tag)
	names := make(map[string]Tag)
	for _, tag := range All() {
		if tag.Label() == "" || tag.Name() == "" || tag.Description() == "" {
			t.Errorf("tag %d has an incomplete row: %q %q %q", tag, tag.Label(), tag.Name(), tag.Description())
		}
		if prev, ok := labels[tag.Label()]; ok {
			t.Errorf("label %q used by %s and %s", tag.Label(), prev.Name(), tag.Name())
		}
		if prev, ok := names[tag.Name()]; ok {
			t.Errorf("name %q used by %d and %d", tag.Name(), prev, tag)
		}
		labels[tag.Label()] = tag
		names[tag.Name()] = tag
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		tag   Tag
		label string
	}{
		{Currency, "$"},
		{OpeningQuotation, "``"},
		{ClosingQuotation, "''"},
		{Comma, ","},
		{LeftBracket, "-LRB-"},
		{CardinalNumber, "CD"},
		{NounProperSingular, "NNP"},
		{PossessivePronoun, "PRP$"},
		{VerbPastTense, "VBD"},
		{Space, "_SP"},
		{WhPossessivePronoun, "WP$"},
		{Unknown, "XX"},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.label {
			t.Errorf("%s.String() = %q, want %q", tt.tag.Name(), got, tt.label)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
	}{
		{"NNP", NounProperSingular},
		{"nnp", NounProperSingular},
		{"  VBD\n", VerbPastTense},
		{"prp$", PossessivePronoun},
		{"-lrb-", LeftBracket},
		{"(", LeftBracket},
		{")", RightBracket},
		{"_SP", Space},
		{"SP", Space},
		{"``", OpeningQuotation},
		{"''", ClosingQuotation},
		{"$", Currency},
		{"CardinalNumber", CardinalNumber},
		{"Unknown", Unknown},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAllLabelsAndNames(t *testing.T) {
	for _, tag := range All() {
		for _, s := range []string{tag.Label(), strings.ToLower(tag.Label()), tag.Name()} {
			got, err := Parse(s)
			if err != nil || got != tag {
				t.Errorf("Parse(%q) = %v, %v; want %v", s, got, err, tag)
			}
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, in := range []string{"", "PROPN", "NNX", "cardinalnumber", "`"} {
		_, err := Parse(in)
		var pe *postag.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q) error = %v, want *ParseError", in, err)
			continue
		}
		if pe.Tagset != postag.TagsetTreebank || !errors.Is(err, postag.ErrUnknownTag) {
			t.Errorf("Parse(%q) error = %#v", in, pe)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, tag := range All() {
		text, err := tag.MarshalText()
		if err != nil {
			t.Fatalf("%s.MarshalText(): %v", tag.Name(), err)
		}
		var got Tag
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != tag {
			t.Errorf("round trip of %s gave %s", tag.Name(), got.Name())
		}
	}
}

func TestSortable(t *testing.T) {
	tags := []Tag{Unknown, Comma, VerbPastTense, Currency}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Compare(tags[j]) < 0 })
	want := []Tag{Currency, Comma, VerbPastTense, Unknown}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", tags, want)
		}
	}
}

func TestInvalid(t *testing.T) {
	for _, tag := range []Tag{0, end, 255} {
		if tag.Valid() {
			t.Errorf("%d reported valid", tag)
		}
		if tag.Label() != "" || tag.Description() != "" {
			t.Errorf("%d has table data", tag)
		}
		if _, err := tag.MarshalText(); !errors.Is(err, postag.ErrUnknownTag) {
			t.Errorf("%d.MarshalText() error = %v", tag, err)
		}
	}
	if got := Tag(0).String(); got != "treebank.Tag(0)" {
		t.Errorf("String() = %q", got)
	}
}
