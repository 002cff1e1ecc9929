package parc

import (
	"errors"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	// ErrNoMatch is returned by Run when the parser fails on the input.
	ErrNoMatch = errors.New("input did not match grammar")
	// ErrTrailingInput is returned by Run when the parser succeeded but
	// left part of the input unconsumed.
	ErrTrailingInput = errors.New("trailing unparsed input")
)

///////////////////////////////////////////////////////////////////////////////
// Result
///////////////////////////////////////////////////////////////////////////////

// Result is the outcome of running a Parser.
//
// A Result is either a success (Ok is true) or a failure. On success Rest
// is the unconsumed suffix of the input handed to the parser and Value is
// the parsed value. A failure carries nothing: no position, no message, no
// partial value.
type Result[T any] struct {
	Rest  string // Unconsumed suffix of the input
	Value T      // Parsed value, zero on failure
	Ok    bool   // Whether the parse succeeded
}

// Done builds a successful Result.
func Done[T any](rest string, value T) Result[T] {
	return Result[T]{Rest: rest, Value: value, Ok: true}
}

// Fail builds a failed Result.
func Fail[T any]() Result[T] {
	return Result[T]{}
}

// Consumed returns the prefix of input that the parse consumed. input must
// be the exact string the producing parser was called with.
func (r Result[T]) Consumed(input string) string {
	if !r.Ok {
		return ""
	}
	return input[:len(input)-len(r.Rest)]
}

///////////////////////////////////////////////////////////////////////////////
// Parser
///////////////////////////////////////////////////////////////////////////////

// Parser recognizes a prefix of its input and produces a value of type T.
//
// Parsers hold no state: calling the same parser twice on the same input
// gives the same Result. Combinators in this package take parsers and
// return new ones.
type Parser[T any] func(input string) Result[T]

// Parse runs the parser on input.
func (p Parser[T]) Parse(input string) Result[T] {
	return p(input)
}

// Run feeds a whole document to p. It fails with ErrNoMatch when p fails
// and with ErrTrailingInput when p leaves input unconsumed.
func Run[T any](p Parser[T], input string) (T, error) {
	value, rest, err := RunPartial(p, input)
	if err != nil {
		return value, err
	}
	if rest != "" {
		var zero T
		return zero, fmt.Errorf(
			"%w: %d of %d bytes left", ErrTrailingInput, len(rest), len(input),
		)
	}
	return value, nil
}

// RunPartial is like Run but returns the remainder instead of rejecting it.
func RunPartial[T any](p Parser[T], input string) (T, string, error) {
	res := p(input)
	if !res.Ok {
		var zero T
		return zero, input, ErrNoMatch
	}
	return res.Value, res.Rest, nil
}
