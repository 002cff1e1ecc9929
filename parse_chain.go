package parc

import (
	"fmt"
	"reflect"
)

// ParseChain is a linked list of parse steps threaded over one input.
//
// Each step either discards its value (Skip) or binds it to a name (Bind).
// Executing the chain runs the steps in order over successively shorter
// remainders and collects the bindings. A failing step aborts the chain.
type ParseChain struct {
	Head *ParseStep // Head is the first step in the chain
}

// ParseStep represents a single step in a ParseChain.
type ParseStep struct {
	Next *ParseStep                            // Next is the next step in the chain
	Name string                                // Binding name. Empty for skipped steps
	run  func(input string) (string, any, bool) // Type-erased parser
}

// Skip makes a step that runs p and discards its value.
func Skip[T any](p Parser[T]) *ParseStep {
	return Bind("", p)
}

// Bind makes a step that runs p and binds its value to name. Binding a
// name twice keeps the later value.
func Bind[T any](name string, p Parser[T]) *ParseStep {
	return &ParseStep{
		Name: name,
		run: func(input string) (string, any, bool) {
			res := p(input)
			return res.Rest, res.Value, res.Ok
		},
	}
}

// NewChain links steps, in order, into a ParseChain.
func NewChain(steps ...*ParseStep) *ParseChain {
	var head, current *ParseStep
	for _, step := range steps {
		// Copy so the same step can appear in several chains.
		s := &ParseStep{Name: step.Name, run: step.run}
		if head == nil {
			head = s
		} else {
			current.Next = s
		}
		current = s
	}
	return &ParseChain{Head: head}
}

// Execute runs every step of the chain in order starting at input.
func (chain *ParseChain) Execute(input string) (string, Bindings, bool) {
	bindings := make(Bindings)
	rest := input
	for current := chain.Head; current != nil; current = current.Next {
		next, value, ok := current.run(rest)
		if !ok {
			return input, nil, false
		}
		if current.Name != "" {
			bindings[current.Name] = value
		}
		rest = next
	}
	return rest, bindings, true
}

// Names returns the binding names of the chain in step order.
func (chain *ParseChain) Names() []string {
	var names []string
	for current := chain.Head; current != nil; current = current.Next {
		if current.Name != "" {
			names = append(names, current.Name)
		}
	}
	return names
}

// Return turns chain into a parser whose value is assembled by build from
// the bindings of each run.
func Return[T any](chain *ParseChain, build func(Bindings) T) Parser[T] {
	return func(input string) Result[T] {
		rest, bindings, ok := chain.Execute(input)
		if !ok {
			return Fail[T]()
		}
		return Done(rest, build(bindings))
	}
}

// Do is shorthand for Return(NewChain(steps...), build).
func Do[T any](build func(Bindings) T, steps ...*ParseStep) Parser[T] {
	return Return(NewChain(steps...), build)
}

// Validatable is implemented by record types that check their own fields
// once they are filled.
type Validatable interface {
	// Validate returns an error if any of the fields are invalid.
	Validate() error
}

// Record turns chain into a parser producing a T built from the bindings.
//
// T must be a struct. Each field tagged `parc:"name"` receives the value
// bound to name, converted as needed. A missing binding falls back to the
// field's `default:"..."` tag and otherwise fails the parse, unless the
// field is marked omitempty. A conversion error fails the parse unless the
// field is marked omiterr. If *T implements Validatable, a record that
// fails validation fails the parse too.
func Record[T any](chain *ParseChain) (Parser[T], error) {
	typ := reflect.TypeFor[T]()
	plan, err := recordPlans.GetOrCreate(typ)
	if err != nil {
		return nil, err
	}

	bound := make(map[string]bool)
	for _, name := range chain.Names() {
		bound[name] = true
	}
	for _, f := range plan.fields {
		if !bound[f.binding] && !f.omitEmpty && !f.hasDefault {
			return nil, fmt.Errorf(
				"%w: field %s wants %q", ErrUnboundField, f.name, f.binding,
			)
		}
	}

	return func(input string) Result[T] {
		rest, bindings, ok := chain.Execute(input)
		if !ok {
			return Fail[T]()
		}
		var out T
		if err := plan.fill(reflect.ValueOf(&out).Elem(), bindings); err != nil {
			return Fail[T]()
		}
		if v, ok := any(&out).(Validatable); ok {
			if err := v.Validate(); err != nil {
				return Fail[T]()
			}
		}
		return Done(rest, out)
	}, nil
}

// MustRecord is like Record but panics on error. It is meant for
// package-level grammar declarations.
func MustRecord[T any](chain *ParseChain) Parser[T] {
	p, err := Record[T](chain)
	if err != nil {
		panic(fmt.Sprintf("parc: Record[%s]: %v", reflect.TypeFor[T](), err))
	}
	return p
}
