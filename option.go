package args

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// tagName is the struct tag key read from option fields.
const tagName = "option"

// skipTag marks a field the parser must leave untouched.
const skipTag = "-"

// Option identifies a single command-line option.
type Option struct {
	// Name is the identifier without the leading dash, e.g. `p` for `-p`.
	Name string
}

// Flag returns the token that introduces the option on the command line.
func (o Option) Flag() string {
	return "-" + o.Name
}

// OptionOf reads the option declared by a struct field's tag. It reports
// false when the field has no tag, an empty tag, or the skip tag `-`.
func OptionOf(field reflect.StructField) (Option, bool) {
	name, ok := field.Tag.Lookup(tagName)
	if !ok || name == "" || name == skipTag {
		return Option{}, false
	}
	return Option{Name: name}, true
}

// validate rejects names that could never appear as a flag token.
func (o Option) validate() error {
	switch {
	case o.Name == "":
		return errors.New("option name cannot be empty")
	case strings.HasPrefix(o.Name, "-"):
		return fmt.Errorf("option name %q must not start with a dash", o.Name)
	case isNumber(o.Name):
		return fmt.Errorf("option name %q is numeric and would be read as a negative value", o.Name)
	}
	return nil
}

// isFlag reports whether a token introduces an option. Negative numbers such
// as `-3` are values, not flags.
func isFlag(token string) bool {
	if len(token) < 2 || token[0] != '-' {
		return false
	}
	return !isNumber(token[1:])
}

// isNumber accepts numeric literals only. ParseFloat alone would also
// accept words such as "inf" and "nan".
func isNumber(s string) bool {
	if s == "" {
		return false
	}
	if c := s[0]; (c < '0' || c > '9') && c != '.' {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
