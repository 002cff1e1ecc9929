package parc

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = errors.New("invalid json")

// JSONGrammar parses a complete JSON document, allowing whitespace around
// the value.
func JSONGrammar() Parser[gjson.Result] {
	return Delimited(jsonSpace, JSONValue(), jsonSpace)
}

// JSONValue recognizes one JSON value at the start of the input and
// returns it as a gjson.Result for querying.
func JSONValue() Parser[gjson.Result] {
	return MapResult(Recognize(jsonValue()), decodeJSON)
}

func decodeJSON(raw string) (gjson.Result, error) {
	if !gjson.Valid(raw) {
		return gjson.Result{}, ErrInvalidJSON
	}
	return gjson.Parse(raw), nil
}

var jsonSpace = Opt(Whitespace)

// jsonValue dispatches on the first rune of the value.
func jsonValue() Parser[string] {
	var value Parser[string]
	value = Lazy(func() Parser[string] {
		return Switch(Peek(AnyRune),
			On('{', jsonObject(value)),
			On('[', jsonArray(value)),
			On('"', jsonString()),
			When(isJSONNumberStart, jsonNumber()),
			Otherwise[rune](jsonLiteral()),
		)
	})
	return value
}

func isJSONNumberStart(c rune) bool {
	return c == '-' || IsDigit(c)
}

func jsonToken(tok string) Parser[string] {
	return Delimited(jsonSpace, Tag(tok), jsonSpace)
}

func jsonObject(value Parser[string]) Parser[string] {
	member := Tuple3(jsonString(), jsonToken(":"), value)
	return Recognize(Delimited(
		Terminated(Tag("{"), jsonSpace),
		SeparatedList(jsonToken(","), member),
		Preceded(jsonSpace, Tag("}")),
	))
}

func jsonArray(value Parser[string]) Parser[string] {
	return Recognize(Delimited(
		Terminated(Tag("["), jsonSpace),
		SeparatedList(jsonToken(","), value),
		Preceded(jsonSpace, Tag("]")),
	))
}

func jsonString() Parser[string] {
	plain := TakeWhile1(func(c rune) bool {
		return c != '"' && c != '\\' && c >= 0x20
	})
	hex := Satisfy(IsHexDigit)
	escape := Alt(
		Recognize(Tuple2(Tag(`\u`), Sequence(hex, hex, hex, hex))),
		Recognize(Preceded(Tag(`\`), Satisfy(func(c rune) bool {
			return strings.ContainsRune(`"\/bfnrt`, c)
		}))),
	)
	return Recognize(Delimited(Tag(`"`), Many0(Alt(plain, escape)), Tag(`"`)))
}

func jsonNumber() Parser[string] {
	integer := Alt(
		Tag("0"),
		Recognize(Tuple2(Satisfy(func(c rune) bool { return c >= '1' && c <= '9' }), Opt(Digit))),
	)
	fraction := Preceded(Tag("."), Digit)
	exponent := Tuple3(
		Alt(Tag("e"), Tag("E")),
		Opt(Alt(Tag("+"), Tag("-"))),
		Digit,
	)
	return Recognize(Tuple4(Opt(Tag("-")), integer, Opt(fraction), Opt(exponent)))
}

func jsonLiteral() Parser[string] {
	return Alt(Tag("true"), Tag("false"), Tag("null"))
}
