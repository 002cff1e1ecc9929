package parc

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Character classes
///////////////////////////////////////////////////////////////////////////////

// IsWhitespace reports whether c is a space, tab, carriage return or line feed.
func IsWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit reports whether c is an ASCII hexadecimal digit.
func IsHexDigit(c rune) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

///////////////////////////////////////////////////////////////////////////////
// Recognizers
///////////////////////////////////////////////////////////////////////////////

var (
	// Whitespace recognizes a nonempty run of spaces, tabs, carriage
	// returns and line feeds.
	Whitespace = TakeWhile1(IsWhitespace)
	// Digit recognizes a nonempty run of ASCII digits 0-9.
	Digit = TakeWhile1(IsDigit)
	// Rest consumes all remaining input. It never fails.
	Rest = Parser[string](func(input string) Result[string] {
		return Done("", input)
	})
	// Eof succeeds without consuming iff the input is empty.
	Eof = Parser[struct{}](func(input string) Result[struct{}] {
		if input != "" {
			return Fail[struct{}]()
		}
		return Done(input, struct{}{})
	})
)

// Tag recognizes the literal expected at the start of the input. The value
// is the matched slice of the input.
func Tag(expected string) Parser[string] {
	return func(input string) Result[string] {
		if len(expected) > len(input) || !strings.HasPrefix(input, expected) {
			return Fail[string]()
		}
		return Done(input[len(expected):], input[:len(expected)])
	}
}

// Satisfy recognizes a single rune satisfying pred.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return func(input string) Result[rune] {
		c, size := utf8.DecodeRuneInString(input)
		if size == 0 || !pred(c) {
			return Fail[rune]()
		}
		return Done(input[size:], c)
	}
}

// AnyRune recognizes any single rune.
var AnyRune = Satisfy(func(rune) bool { return true })

// TakeWhile1 recognizes the longest nonempty run of runes satisfying pred.
func TakeWhile1(pred func(rune) bool) Parser[string] {
	return func(input string) Result[string] {
		offset := len(input)
		for i, c := range input {
			if !pred(c) {
				offset = i
				break
			}
		}
		if offset == 0 {
			return Fail[string]()
		}
		return Done(input[offset:], input[:offset])
	}
}

// TakeUntil recognizes everything before the first occurrence of needle.
// The needle itself is left in the remainder.
//
// UTF-8 is self-synchronizing, so an occurrence found by byte search always
// starts on a rune boundary and the split never lands inside a character.
func TakeUntil(needle string) Parser[string] {
	return func(input string) Result[string] {
		if input == "" || len(needle) > len(input) {
			return Fail[string]()
		}
		idx := strings.Index(input, needle)
		if idx < 0 {
			return Fail[string]()
		}
		return Done(input[idx:], input[:idx])
	}
}

// UUID recognizes a hyphenated UUID such as
// 550e8400-e29b-41d4-a716-446655440000.
func UUID() Parser[uuid.UUID] {
	return MapResult(
		TakeWhile1(func(c rune) bool { return c == '-' || IsHexDigit(c) }),
		uuid.Parse,
	)
}
