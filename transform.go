package parc

import "sync"

// Map runs p and passes a successful value through f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string) Result[U] {
		res := p(input)
		if !res.Ok {
			return Fail[U]()
		}
		return Done(res.Rest, f(res.Value))
	}
}

// MapResult is like Map for a fallible f. An error from f turns into a
// plain failure; the error itself is dropped.
func MapResult[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(input string) Result[U] {
		res := p(input)
		if !res.Ok {
			return Fail[U]()
		}
		value, err := f(res.Value)
		if err != nil {
			return Fail[U]()
		}
		return Done(res.Rest, value)
	}
}

// Value always succeeds with v and consumes nothing.
func Value[T any](v T) Parser[T] {
	return func(input string) Result[T] {
		return Done(input, v)
	}
}

// Recognize runs p and returns the slice of input it consumed instead of
// its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(input string) Result[string] {
		res := p(input)
		if !res.Ok {
			return Fail[string]()
		}
		return Done(res.Rest, res.Consumed(input))
	}
}

// Lazy defers building a parser until its first use. It is how recursive
// grammars refer to themselves.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return func(input string) Result[T] {
		once.Do(func() { p = build() })
		return p(input)
	}
}
