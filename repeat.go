package parc

// Many0 applies p repeatedly and collects its values in parse order.
//
// The loop stops with success when the input runs out or p fails. If p
// succeeds without consuming anything, Many0 itself fails: a zero-width
// element is an error for the aggregate, not a stopping condition.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		values := make([]T, 0)
		rest := input
		for rest != "" {
			res := p(rest)
			if !res.Ok {
				break
			}
			if len(res.Rest) == len(rest) {
				return Fail[[]T]()
			}
			values = append(values, res.Value)
			rest = res.Rest
		}
		return Done(rest, values)
	}
}

// SeparatedList parses elem values separated by sep.
//
// A failing first element yields an empty list. A zero-width first element
// fails the whole parse. After that, a failing or zero-width separator or
// element ends the list at the last complete element, so trailing
// separators are left in the remainder.
func SeparatedList[S, T any](sep Parser[S], elem Parser[T]) Parser[[]T] {
	return separatedList(sep, elem, true)
}

// SeparatedNonemptyList is SeparatedList where a failing first element
// fails the whole parse.
func SeparatedNonemptyList[S, T any](sep Parser[S], elem Parser[T]) Parser[[]T] {
	return separatedList(sep, elem, false)
}

func separatedList[S, T any](sep Parser[S], elem Parser[T], allowEmpty bool) Parser[[]T] {
	return func(input string) Result[[]T] {
		first := elem(input)
		if !first.Ok {
			if allowEmpty {
				return Done(input, make([]T, 0))
			}
			return Fail[[]T]()
		}
		if len(first.Rest) == len(input) {
			return Fail[[]T]()
		}

		values := []T{first.Value}
		rest := first.Rest
		for {
			rs := sep(rest)
			if !rs.Ok || len(rs.Rest) == len(rest) {
				break
			}
			re := elem(rs.Rest)
			if !re.Ok || len(re.Rest) == len(rs.Rest) {
				break
			}
			values = append(values, re.Value)
			rest = re.Rest
		}
		return Done(rest, values)
	}
}
