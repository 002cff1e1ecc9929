package parc

// Bindings holds the values bound by name during one execution of a
// ParseChain. A fresh Bindings is created for every call, so chains can be
// shared and reentered.
type Bindings map[string]any

// Lookup returns the value bound to name if it exists and has type T.
func Lookup[T any](b Bindings, name string) (T, bool) {
	v, ok := b[name]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Get returns the value bound to name, or the zero T when it is missing or
// of another type.
func Get[T any](b Bindings, name string) T {
	v, _ := Lookup[T](b, name)
	return v
}

// Has reports whether name is bound.
func (b Bindings) Has(name string) bool {
	_, ok := b[name]
	return ok
}
