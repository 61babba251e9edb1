package args

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/byd-android-2017/args/internal/ctxlog"
)

// Args binds a parser Registry to one command line.
type Args struct {
	registry  *Registry
	arguments []string
	defaults  Defaults
	logger    *slog.Logger
}

// Opt configures an Args instance.
type Opt func(*Args)

// WithLogger sets the logger used when the parse context carries none.
func WithLogger(logger *slog.Logger) Opt {
	return func(a *Args) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithDefaults supplies fallback values for options absent from the command line.
func WithDefaults(defaults Defaults) Opt {
	return func(a *Args) {
		a.defaults = defaults
	}
}

// New creates an Args for the given tokens. A nil registry means DefaultRegistry.
func New(registry *Registry, arguments []string, opts ...Opt) *Args {
	if registry == nil {
		registry = DefaultRegistry()
	}
	a := &Args{
		registry:  registry,
		arguments: arguments,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Parse is a shorthand for ParseContext with a background context.
func (a *Args) Parse(target any) error {
	return a.ParseContext(context.Background(), target)
}

// ParseContext populates the struct target points to. Fields are processed in
// declaration order and the first failure is returned unchanged.
func (a *Args) ParseContext(ctx context.Context, target any) error {
	logger, ok := ctxlog.Lookup(ctx)
	if !ok {
		logger = a.logger
	}

	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return &ArgumentParseError{Err: fmt.Errorf("target must be a non-nil pointer to a struct, got %T", target)}
	}

	structVal := ptr.Elem()
	structType := structVal.Type()
	logger = logger.With("options_type", structType.String())
	logger.Debug("Parsing command line.", "argument_count", len(a.arguments))

	for i := 0; i < structType.NumField(); i++ {
		fieldDef := structType.Field(i)
		if !fieldDef.IsExported() {
			continue
		}
		if err := a.parseField(logger, fieldDef, structVal.Field(i)); err != nil {
			logger.Debug("Parsing command line failed.", "field", fieldDef.Name, "error", err)
			return err
		}
	}

	logger.Debug("Command line parsed.")
	return nil
}

func (a *Args) parseField(logger *slog.Logger, fieldDef reflect.StructField, fieldVal reflect.Value) error {
	if fieldDef.Tag.Get(tagName) == skipTag {
		return nil
	}

	opt, ok := OptionOf(fieldDef)
	if !ok {
		return &LackOptionError{Option: fieldDef.Name}
	}
	if err := opt.validate(); err != nil {
		return &ArgumentParseError{Field: fieldDef.Name, Err: err}
	}

	parse, ok := a.registry.parserFor(fieldDef.Type)
	if !ok {
		return &LackParserError{Option: fieldDef.Name, Type: fieldDef.Type}
	}

	if val, ok := a.defaults.lookup(opt); ok && !hasFlag(a.arguments, opt) {
		logger.Debug("Applying configured default.", "option", opt.Name)
		return decodeDefault(val, opt, fieldVal)
	}

	v, err := parse(a.arguments, opt)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		fieldVal.SetZero()
		return nil
	}
	if !rv.Type().AssignableTo(fieldDef.Type) {
		return &ArgumentParseError{
			Field: fieldDef.Name,
			Err:   fmt.Errorf("parser produced %s, not assignable to %s", rv.Type(), fieldDef.Type),
		}
	}
	fieldVal.Set(rv)
	logger.Debug("Option parsed.", "option", opt.Name, "field", fieldDef.Name)
	return nil
}

// Parse creates a T and populates it from arguments using DefaultRegistry.
func Parse[T any](arguments ...string) (T, error) {
	var options T
	err := New(DefaultRegistry(), arguments).Parse(&options)
	return options, err
}
