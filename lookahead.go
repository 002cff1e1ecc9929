package parc

// Option is a value that may be absent, produced by Cond and Opt.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

// OrElse returns the value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if !o.Valid {
		return def
	}
	return o.Value
}

// optional lets record assembly see through Option without knowing T.
type optional interface {
	unwrap() (any, bool)
}

func (o Option[T]) unwrap() (any, bool) {
	return o.Value, o.Valid
}

// Peek runs p but leaves the input unconsumed.
func Peek[T any](p Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		res := p(input)
		if !res.Ok {
			return Fail[T]()
		}
		return Done(input, res.Value)
	}
}

// Not succeeds without consuming iff p fails on the input.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(input string) Result[struct{}] {
		if p(input).Ok {
			return Fail[struct{}]()
		}
		return Done(input, struct{}{})
	}
}

// Cond runs p only when cond is true. It never fails: a false condition or
// a failing p both yield an absent value and consume nothing.
func Cond[T any](cond bool, p Parser[T]) Parser[Option[T]] {
	return func(input string) Result[Option[T]] {
		if !cond {
			return Done(input, None[T]())
		}
		res := p(input)
		if !res.Ok {
			return Done(input, None[T]())
		}
		return Done(res.Rest, Some(res.Value))
	}
}

// Opt makes p optional.
func Opt[T any](p Parser[T]) Parser[Option[T]] {
	return Cond(true, p)
}
