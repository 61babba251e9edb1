package args

import (
	"slices"
	"strconv"
)

// OptionParser extracts the values of one option from the command-line tokens
// and converts them into T.
type OptionParser[T any] interface {
	Parse(arguments []string, opt Option) (T, error)
}

// ParserFunc adapts a plain function to the OptionParser interface.
type ParserFunc[T any] func(arguments []string, opt Option) (T, error)

// Parse calls f(arguments, opt).
func (f ParserFunc[T]) Parse(arguments []string, opt Option) (T, error) {
	return f(arguments, opt)
}

// Bool returns a parser for flag options. A present flag yields true, an
// absent one false. Any value following the flag is an error.
func Bool() OptionParser[bool] {
	return ParserFunc[bool](func(arguments []string, opt Option) (bool, error) {
		values, present := optionValues(arguments, opt)
		if !present {
			return false, nil
		}
		if len(values) > 0 {
			return false, &TooManyArgumentsError{Option: opt.Name}
		}
		return true, nil
	})
}

// Unary returns a parser for options that take exactly one value. When the
// option is absent, defaultValue is returned without calling parse. A
// reference-typed default is returned as is and shared between parses.
func Unary[T any](defaultValue T, parse func(string) (T, error)) OptionParser[T] {
	return ParserFunc[T](func(arguments []string, opt Option) (T, error) {
		var zero T
		values, present := optionValues(arguments, opt)
		if !present {
			return defaultValue, nil
		}

		switch {
		case len(values) == 0:
			return zero, &InsufficientArgumentsError{Option: opt.Name}
		case len(values) > 1:
			return zero, &TooManyArgumentsError{Option: opt.Name}
		}

		v, err := parse(values[0])
		if err != nil {
			return zero, &IllegalValueError{Option: opt.Name, Values: slices.Clone(values), Err: err}
		}
		return v, nil
	})
}

// List returns a parser for options that take one or more values. parse is
// applied to every value in command-line order. An absent option yields a
// copy of defaultValue.
func List[T any](defaultValue []T, parse func(string) (T, error)) OptionParser[[]T] {
	return ParserFunc[[]T](func(arguments []string, opt Option) ([]T, error) {
		values, present := optionValues(arguments, opt)
		if !present {
			return slices.Clone(defaultValue), nil
		}
		if len(values) == 0 {
			return nil, &InsufficientArgumentsError{Option: opt.Name}
		}

		result := make([]T, 0, len(values))
		for _, raw := range values {
			v, err := parse(raw)
			if err != nil {
				return nil, &IllegalValueError{Option: opt.Name, Values: slices.Clone(values), Err: err}
			}
			result = append(result, v)
		}
		return result, nil
	})
}

// ParseString returns the raw value unchanged.
func ParseString(s string) (string, error) {
	return s, nil
}

// ParseInt converts a base-10 integer value.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseFloat converts a 64-bit floating point value.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// optionValues returns the tokens following the first occurrence of the
// option's flag, up to the next flag. present is false when the flag does not
// occur at all.
func optionValues(arguments []string, opt Option) (values []string, present bool) {
	index := slices.Index(arguments, opt.Flag())
	if index == -1 {
		return nil, false
	}

	end := len(arguments)
	for i := index + 1; i < len(arguments); i++ {
		if isFlag(arguments[i]) {
			end = i
			break
		}
	}
	return arguments[index+1 : end], true
}

// hasFlag reports whether the option's flag occurs among the tokens.
func hasFlag(arguments []string, opt Option) bool {
	return slices.Contains(arguments, opt.Flag())
}
