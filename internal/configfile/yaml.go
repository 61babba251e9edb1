package configfile

import (
	"github.com/byd-android-2017/args"
	"github.com/rotisserie/eris"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// decodeYAML reads a flat mapping of option names to scalars or sequences of
// scalars.
func decodeYAML(src []byte, path string) (args.Defaults, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, eris.Wrapf(err, "failed to parse YAML file %s", path)
	}

	defaults := make(args.Defaults, len(raw))
	for name, v := range raw {
		val, err := yamlToCty(v)
		if err != nil {
			return nil, eris.Wrapf(err, "invalid value for %q in %s", name, path)
		}
		defaults[name] = val
	}
	return defaults, nil
}

func yamlToCty(v any) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case uint64:
		return cty.NumberUIntVal(t), nil
	case float64:
		return cty.NumberFloatVal(t), nil
	case []any:
		if len(t) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(t))
		for i, elem := range t {
			if _, nested := elem.([]any); nested {
				return cty.NilVal, eris.Errorf("element %d: nested sequences are not supported", i)
			}
			val, err := yamlToCty(elem)
			if err != nil {
				return cty.NilVal, eris.Wrapf(err, "element %d", i)
			}
			elems = append(elems, val)
		}
		return cty.TupleVal(elems), nil
	default:
		return cty.NilVal, eris.Errorf("unsupported YAML value of type %T", v)
	}
}
