package args

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Defaults supplies values, keyed by option name, for options whose flag does
// not occur on the command line. An explicit flag always wins over a default,
// and a default wins over the parser's own default value.
type Defaults map[string]cty.Value

// lookup returns the default for opt, ignoring null and unknown values.
func (d Defaults) lookup(opt Option) (cty.Value, bool) {
	val, ok := d[opt.Name]
	if !ok || val.IsNull() || !val.IsKnown() {
		return cty.NilVal, false
	}
	return val, true
}

// decodeDefault converts val to the cty type implied by the field's Go type
// and stores the result in field.
func decodeDefault(val cty.Value, opt Option, field reflect.Value) error {
	illegal := func(err error) error {
		return &IllegalValueError{Option: opt.Name, Values: []string{friendlyValue(val)}, Err: err}
	}

	impliedType, err := gocty.ImpliedType(reflect.Zero(field.Type()).Interface())
	if err != nil {
		return illegal(err)
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return illegal(err)
	}

	if err := gocty.FromCtyValue(converted, field.Addr().Interface()); err != nil {
		return illegal(err)
	}
	return nil
}

// friendlyValue renders val for error messages: its string form when it has
// one, its type name otherwise.
func friendlyValue(val cty.Value) string {
	if val.Type() == cty.String {
		return val.AsString()
	}
	if s, err := convert.Convert(val, cty.String); err == nil && s.IsKnown() && !s.IsNull() {
		return s.AsString()
	}
	return val.Type().FriendlyName()
}
