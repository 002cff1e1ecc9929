package parc

///////////////////////////////////////////////////////////////////////////////
// Tuples
///////////////////////////////////////////////////////////////////////////////

// Pair holds the values of a two parser sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the values of a three parser sequence.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad holds the values of a four parser sequence.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

///////////////////////////////////////////////////////////////////////////////
// Sequencing
///////////////////////////////////////////////////////////////////////////////

// Preceded runs prefix then body and keeps body's value.
func Preceded[P, T any](prefix Parser[P], body Parser[T]) Parser[T] {
	return Map(Tuple2(prefix, body), func(v Pair[P, T]) T { return v.Second })
}

// Terminated runs body then suffix and keeps body's value.
func Terminated[T, S any](body Parser[T], suffix Parser[S]) Parser[T] {
	return Map(Tuple2(body, suffix), func(v Pair[T, S]) T { return v.First })
}

// Delimited runs open, body and close in order and keeps body's value.
func Delimited[O, T, C any](open Parser[O], body Parser[T], close Parser[C]) Parser[T] {
	return Map(Tuple3(open, body, close), func(v Triple[O, T, C]) T { return v.Second })
}

// Tuple2 runs a then b over the remainder of a.
func Tuple2[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(input string) Result[Pair[A, B]] {
		ra := a(input)
		if !ra.Ok {
			return Fail[Pair[A, B]]()
		}
		rb := b(ra.Rest)
		if !rb.Ok {
			return Fail[Pair[A, B]]()
		}
		return Done(rb.Rest, Pair[A, B]{ra.Value, rb.Value})
	}
}

// Tuple3 runs a, b and c left to right.
func Tuple3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Triple[A, B, C]] {
	return func(input string) Result[Triple[A, B, C]] {
		rab := Tuple2(a, b)(input)
		if !rab.Ok {
			return Fail[Triple[A, B, C]]()
		}
		rc := c(rab.Rest)
		if !rc.Ok {
			return Fail[Triple[A, B, C]]()
		}
		return Done(rc.Rest, Triple[A, B, C]{rab.Value.First, rab.Value.Second, rc.Value})
	}
}

// Tuple4 runs a, b, c and d left to right.
func Tuple4[A, B, C, D any](a Parser[A], b Parser[B], c Parser[C], d Parser[D]) Parser[Quad[A, B, C, D]] {
	return func(input string) Result[Quad[A, B, C, D]] {
		rabc := Tuple3(a, b, c)(input)
		if !rabc.Ok {
			return Fail[Quad[A, B, C, D]]()
		}
		rd := d(rabc.Rest)
		if !rd.Ok {
			return Fail[Quad[A, B, C, D]]()
		}
		v := rabc.Value
		return Done(rd.Rest, Quad[A, B, C, D]{v.First, v.Second, v.Third, rd.Value})
	}
}

// Sequence runs ps left to right and collects their values in order.
// With no parsers it succeeds with an empty slice.
func Sequence[T any](ps ...Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		values := make([]T, 0, len(ps))
		rest := input
		for _, p := range ps {
			res := p(rest)
			if !res.Ok {
				return Fail[[]T]()
			}
			values = append(values, res.Value)
			rest = res.Rest
		}
		return Done(rest, values)
	}
}
