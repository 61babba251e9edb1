package args

import (
	"fmt"
	"log/slog"
	"reflect"
)

// valueParser is the type-erased form of an OptionParser stored in a Registry.
type valueParser func(arguments []string, opt Option) (any, error)

// Registry maps Go field types to the parsers that populate them. Lookups use
// the exact field type, so a named type such as `type Port int` needs its own
// registration.
type Registry struct {
	parsers map[reflect.Type]valueParser
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[reflect.Type]valueParser),
	}
}

// DefaultRegistry creates a Registry holding parsers for bool, int, float64,
// string, []string and []int fields.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	Register(r, Bool())
	Register(r, Unary(0, ParseInt))
	Register(r, Unary(0.0, ParseFloat))
	Register(r, Unary("", ParseString))
	Register(r, List([]string{}, ParseString))
	Register(r, List([]int{}, ParseInt))
	return r
}

// Register associates p with the Go type T. Registering the same type twice
// is a programmer error and panics.
func Register[T any](r *Registry, p OptionParser[T]) {
	t := reflect.TypeFor[T]()
	if _, exists := r.parsers[t]; exists {
		panic(fmt.Sprintf("option parser for type '%s' already registered", t))
	}
	slog.Debug("Registering option parser.", "type", t.String())
	r.parsers[t] = func(arguments []string, opt Option) (any, error) {
		return p.Parse(arguments, opt)
	}
}

// Lookup reports whether a parser is registered for t.
func (r *Registry) Lookup(t reflect.Type) bool {
	_, ok := r.parsers[t]
	return ok
}

func (r *Registry) parserFor(t reflect.Type) (valueParser, bool) {
	p, ok := r.parsers[t]
	return p, ok
}
