package parc

import (
	"errors"
	"fmt"
	"slices"
	"unicode"
)

// Base Error types for record field tags and record assembly
var (
	ErrNotStruct          = errors.New("record type must be a struct")
	ErrInvalidFieldTag    = errors.New("invalid field tag format")
	ErrUnknownTagModifier = errors.New("field tag modifier is not allowed")
	ErrUnboundField       = errors.New("field binding is never bound by the chain")
	ErrMissingBinding     = errors.New("no value bound for field")
)

// This file contains the decoder for the field tags read by Record. The
// decoder is itself written with the combinators of this package.
//
// Tag grammar:
//
//	tag:
//	    <binding_name> [',' <modifier>]^*
//	binding_name, modifier:
//	    [^,\s]+
//	modifier:
//	    omitempty | omiterr
//
// Example: Port int `parc:"port,omitempty" default:"80"`

// FieldTag corresponds to the `parc` tag on a record struct field.
type FieldTag struct {
	Binding   string
	Modifiers []string
}

// Has reports whether the tag carries modifier.
func (t FieldTag) Has(modifier string) bool {
	return slices.Contains(t.Modifiers, modifier)
}

func isFieldTagRune(c rune) bool {
	return c != ',' && !unicode.IsSpace(c)
}

// FieldTagGrammar returns the parser for field tags. It does not check
// modifiers against the allowed set; DecodeFieldTag does.
func FieldTagGrammar() Parser[FieldTag] {
	word := TakeWhile1(isFieldTagRune)
	return Do(
		func(b Bindings) FieldTag {
			return FieldTag{
				Binding:   Get[string](b, "binding"),
				Modifiers: Get[[]string](b, "modifiers"),
			}
		},
		Bind("binding", word),
		Bind("modifiers", Many0(Preceded(Tag(FieldTagListDelimiter), word))),
	)
}

var fieldTagGrammar = FieldTagGrammar()

// DecodeFieldTag parses the contents of a `parc` struct tag.
func DecodeFieldTag(tag string) (FieldTag, error) {
	ft, err := Run(fieldTagGrammar, tag)
	if err != nil {
		return FieldTag{}, fmt.Errorf("%w %q: %w", ErrInvalidFieldTag, tag, err)
	}

	for _, modifier := range ft.Modifiers {
		switch modifier {
		case OmitEmptyFieldModifier, OmitErrFieldModifier:
			continue
		default:
			return FieldTag{}, fmt.Errorf("%w: %s", ErrUnknownTagModifier, modifier)
		}
	}
	return ft, nil
}
