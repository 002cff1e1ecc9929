package parc

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrGrammarAlreadyRegistered = errors.New("a grammar with this name is already registered")
	ErrGrammarNotFound          = errors.New("no grammar registered with this name")
	ErrEmptyGrammarName         = errors.New("grammar name cannot be empty")
)

// Grammar is a top-level parser with its value type erased, so grammars of
// different types can sit in one Registry.
type Grammar = Parser[any]

// Erase adapts a typed parser into a Grammar.
func Erase[T any](p Parser[T]) Grammar {
	return Map(p, func(v T) any { return v })
}

// Registry maps names to top-level grammars.
//
// It is safe for concurrent use. Grammars themselves are stateless, so a
// grammar fetched from the registry can be run from any goroutine.
type Registry struct {
	mu sync.RWMutex
	m  map[string]Grammar
}

type RegistryOpts struct {
	Grammars        map[string]Grammar
	ExcludeDefaults bool
}

// NewRegistry creates a registry holding the bundled grammars, unless
// opts.ExcludeDefaults is set, plus opts.Grammars.
func NewRegistry(opts RegistryOpts) (*Registry, error) {
	reg := &Registry{m: make(map[string]Grammar)}

	if !opts.ExcludeDefaults {
		for name, g := range builtinGrammars() {
			if err := reg.Register(name, g); err != nil {
				return nil, err
			}
		}
	}

	for name, g := range opts.Grammars {
		if err := reg.Register(name, g); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Register adds g under name.
func (reg *Registry) Register(name string, g Grammar) error {
	if name == "" {
		return ErrEmptyGrammarName
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrGrammarAlreadyRegistered, name)
	}
	reg.m[name] = g
	return nil
}

// Lookup returns the grammar registered under name.
func (reg *Registry) Lookup(name string) (Grammar, error) {
	reg.mu.RLock()
	g, ok := reg.m[name]
	reg.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGrammarNotFound, name)
	}
	return g, nil
}

// Names returns the registered names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.m))
	for name := range reg.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse runs the grammar registered under name over the whole input.
func (reg *Registry) Parse(name, input string) (any, error) {
	g, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	v, err := Run(g, input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse with %s: %w", name, err)
	}
	return v, nil
}

// ParsePartial is like Parse but returns the unconsumed remainder instead
// of rejecting it.
func (reg *Registry) ParsePartial(name, input string) (any, string, error) {
	g, err := reg.Lookup(name)
	if err != nil {
		return nil, input, err
	}
	v, rest, err := RunPartial(g, input)
	if err != nil {
		return nil, rest, fmt.Errorf("failed to parse with %s: %w", name, err)
	}
	return v, rest, nil
}

func builtinGrammars() map[string]Grammar {
	return map[string]Grammar{
		HTTPRequestGrammarName: Erase(HTTPRequestGrammar()),
		JSONGrammarName:        Erase(JSONGrammar()),
		DigitListGrammarName:   Erase(DigitListGrammar()),
		FieldTagGrammarName:    Erase(FieldTagGrammar()),
	}
}

// DigitListGrammar parses comma separated runs of digits such as "1,2,3".
func DigitListGrammar() Parser[[]string] {
	return SeparatedNonemptyList(Tag(","), Digit)
}

///////////////////////////////////////////////////////////////////////////////
// Package level registry
///////////////////////////////////////////////////////////////////////////////

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry holding the bundled grammars.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		reg, err := NewRegistry(RegistryOpts{})
		if err != nil {
			panic(fmt.Sprintf("parc: building default registry: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Register adds g to the default registry.
func Register(name string, g Grammar) error {
	return DefaultRegistry().Register(name, g)
}
