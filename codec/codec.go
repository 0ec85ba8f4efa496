// Package codec encodes universal and treebank tags to external
// representations and back.
//
// A Codec pairs a Format (the byte-level container) with an Encoding (how a
// single tag is written inside it). Decoding is directed by the Go type
// asked for: a Codec never turns a tag of one tagset into the other.
package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/postag"
	"github.com/cours-de-latin/postag/treebank"
	"github.com/cours-de-latin/postag/universal"
)

// Tag is satisfied by the tag types of both tagsets.
type Tag interface {
	universal.Tag | treebank.Tag
	Valid() bool
	Label() string
	Name() string
}

// Format is a byte-level serialization format.
type Format int

const (
	JSON Format = iota
	YAML
	MsgPack
)

var formatNames = [...]string{
	JSON:    "json",
	YAML:    "yaml",
	MsgPack: "msgpack",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat accepts the names returned by Format.String, in any case.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == s {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("codec: unknown format %q", s)
}

// Encoding selects how a tag is represented inside a Format.
type Encoding int

const (
	// Label writes the tagset label, e.g. "NNP" or "PROPN".
	Label Encoding = iota
	// Name writes the Go constant name, e.g. "NounProperSingular".
	Name
	// Ordinal writes the tag's position in declaration order, starting at 1.
	Ordinal
)

var encodingNames = [...]string{
	Label:   "label",
	Name:    "name",
	Ordinal: "ordinal",
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// ParseEncoding accepts the names returned by Encoding.String, in any case.
func ParseEncoding(s string) (Encoding, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for e, name := range encodingNames {
		if name == s {
			return Encoding(e), nil
		}
	}
	return 0, fmt.Errorf("codec: unknown encoding %q", s)
}

// Codec is immutable and safe for concurrent use.
type Codec struct {
	format   Format
	encoding Encoding
}

// New returns a Codec for the given format and encoding.
func New(format Format, encoding Encoding) (*Codec, error) {
	if format < 0 || int(format) >= len(formatNames) {
		return nil, fmt.Errorf("codec: unsupported format %v", format)
	}
	if encoding < 0 || int(encoding) >= len(encodingNames) {
		return nil, fmt.Errorf("codec: unsupported encoding %v", encoding)
	}
	return &Codec{format: format, encoding: encoding}, nil
}

// Format returns the codec's format.
func (c *Codec) Format() Format { return c.format }

// Encoding returns the codec's encoding.
func (c *Codec) Encoding() Encoding { return c.encoding }

// ContentType is the MIME type of the codec's output.
func (c *Codec) ContentType() string {
	switch c.format {
	case YAML:
		return "application/yaml"
	case MsgPack:
		return "application/msgpack"
	default:
		return "application/json"
	}
}

// Encode serializes a single tag.
func Encode[T Tag](c *Codec, v T) ([]byte, error) {
	w, err := wireValue(c.encoding, v)
	if err != nil {
		return nil, err
	}
	return c.marshal(w)
}

// EncodeAll serializes a tag sequence as a list.
func EncodeAll[T Tag](c *Codec, vs []T) ([]byte, error) {
	ws := make([]any, len(vs))
	for i, v := range vs {
		w, err := wireValue(c.encoding, v)
		if err != nil {
			return nil, fmt.Errorf("codec: element %d: %w", i, err)
		}
		ws[i] = w
	}
	return c.marshal(ws)
}

// Decode parses data produced by Encode with the same Codec.
func Decode[T Tag](c *Codec, data []byte) (T, error) {
	if c.encoding == Ordinal {
		var n int
		if err := c.unmarshal(data, &n); err != nil {
			var zero T
			return zero, err
		}
		return fromOrdinal[T](n)
	}
	var s string
	if err := c.unmarshal(data, &s); err != nil {
		var zero T
		return zero, err
	}
	return fromString[T](s)
}

// DecodeAll parses data produced by EncodeAll with the same Codec.
func DecodeAll[T Tag](c *Codec, data []byte) ([]T, error) {
	if c.encoding == Ordinal {
		var ns []int
		if err := c.unmarshal(data, &ns); err != nil {
			return nil, err
		}
		out := make([]T, len(ns))
		for i, n := range ns {
			v, err := fromOrdinal[T](n)
			if err != nil {
				return nil, fmt.Errorf("codec: element %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}
	var ss []string
	if err := c.unmarshal(data, &ss); err != nil {
		return nil, err
	}
	out := make([]T, len(ss))
	for i, s := range ss {
		v, err := fromString[T](s)
		if err != nil {
			return nil, fmt.Errorf("codec: element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (c *Codec) marshal(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch c.format {
	case YAML:
		data, err = yaml.Marshal(v)
	case MsgPack:
		data, err = msgpack.Marshal(v)
	default:
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: %s encode: %w", c.format, err)
	}
	return data, nil
}

func (c *Codec) unmarshal(data []byte, v any) error {
	var err error
	switch c.format {
	case YAML:
		err = yaml.Unmarshal(data, v)
	case MsgPack:
		err = msgpack.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("codec: %s decode: %w", c.format, err)
	}
	return nil
}

func wireValue[T Tag](e Encoding, v T) (any, error) {
	if !v.Valid() {
		return nil, &postag.ParseError{Tagset: tagsetOf[T](), Input: fmt.Sprint(uint8(v))}
	}
	switch e {
	case Name:
		return v.Name(), nil
	case Ordinal:
		return int(v), nil
	default:
		return v.Label(), nil
	}
}

func fromString[T Tag](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case universal.Tag:
		u, err := universal.Parse(s)
		return T(u), err
	default:
		t, err := treebank.Parse(s)
		return T(t), err
	}
}

func fromOrdinal[T Tag](n int) (T, error) {
	var zero T
	if n <= 0 || n > 255 {
		return zero, &postag.ParseError{Tagset: tagsetOf[T](), Input: fmt.Sprint(n)}
	}
	v := T(uint8(n))
	if !v.Valid() {
		return zero, &postag.ParseError{Tagset: tagsetOf[T](), Input: fmt.Sprint(n)}
	}
	return v, nil
}

func tagsetOf[T Tag]() string {
	var zero T
	if _, ok := any(zero).(universal.Tag); ok {
		return postag.TagsetUniversal
	}
	return postag.TagsetTreebank
}
