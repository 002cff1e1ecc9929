package parc

///////////////////////////////////////////////////////////////////////////////
// Ordered choice
///////////////////////////////////////////////////////////////////////////////

// Alt tries each parser against the same input, in order, and returns the
// first success. It fails when every branch fails or there are none.
//
// Branches producing different types are brought to a common type by
// wrapping them in Map or MapResult.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		for _, p := range ps {
			if res := p(input); res.Ok {
				return res
			}
		}
		return Fail[T]()
	}
}

///////////////////////////////////////////////////////////////////////////////
// Dispatch
///////////////////////////////////////////////////////////////////////////////

// Case is one arm of a Switch: a pattern over the selected value and the
// parser to continue with when it matches.
type Case[S, T any] struct {
	Match func(S) bool // Pattern over the selector's value
	Then  Parser[T]    // Continuation run on the selector's remainder
}

// On matches when the selected value equals v.
func On[S comparable, T any](v S, then Parser[T]) Case[S, T] {
	return Case[S, T]{
		Match: func(s S) bool { return s == v },
		Then:  then,
	}
}

// When matches when pred holds for the selected value.
func When[S, T any](pred func(S) bool, then Parser[T]) Case[S, T] {
	return Case[S, T]{Match: pred, Then: then}
}

// Otherwise matches any selected value. Switch has no implicit default, so
// a wildcard has to be listed explicitly, normally last.
func Otherwise[S, T any](then Parser[T]) Case[S, T] {
	return Case[S, T]{
		Match: func(S) bool { return true },
		Then:  then,
	}
}

// Switch runs selector and continues with the parser of the first case
// matching its value. It fails if the selector fails or no case matches.
func Switch[S, T any](selector Parser[S], cases ...Case[S, T]) Parser[T] {
	return func(input string) Result[T] {
		sel := selector(input)
		if !sel.Ok {
			return Fail[T]()
		}
		for _, c := range cases {
			if c.Match(sel.Value) {
				return c.Then(sel.Rest)
			}
		}
		return Fail[T]()
	}
}
