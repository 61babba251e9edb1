package args

import (
	"fmt"
	"reflect"
)

// TooManyArgumentsError is returned when an option is followed by more values
// than its parser accepts.
type TooManyArgumentsError struct {
	Option string
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("%s: too many arguments", e.Option)
}

// InsufficientArgumentsError is returned when an option is present but is not
// followed by the values its parser requires.
type InsufficientArgumentsError struct {
	Option string
}

func (e *InsufficientArgumentsError) Error() string {
	return fmt.Sprintf("%s: insufficient arguments", e.Option)
}

// IllegalValueError wraps a value conversion failure. Its message always
// starts with the option name.
type IllegalValueError struct {
	Option string
	Values []string
	Err    error
}

func (e *IllegalValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %v: %v", e.Option, e.Values, e.Err)
}

func (e *IllegalValueError) Unwrap() error {
	return e.Err
}

// LackOptionError is returned when an exported field of the target struct
// carries no option tag. Option holds the Go field name.
type LackOptionError struct {
	Option string
}

func (e *LackOptionError) Error() string {
	return fmt.Sprintf("%s: field has no %q tag", e.Option, tagName)
}

// LackParserError is returned when no parser is registered for the type of a
// field. Option holds the Go field name.
type LackParserError struct {
	Option string
	Type   reflect.Type
}

func (e *LackParserError) Error() string {
	return fmt.Sprintf("%s: no option parser registered for type %s", e.Option, e.Type)
}

// ArgumentParseError reports a target that cannot be populated at all, such
// as a non-pointer target or an invalid option name.
type ArgumentParseError struct {
	Field string
	Err   error
}

func (e *ArgumentParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("argument parsing failed: %v", e.Err)
	}
	return fmt.Sprintf("argument parsing failed for field %s: %v", e.Field, e.Err)
}

func (e *ArgumentParseError) Unwrap() error {
	return e.Err
}
