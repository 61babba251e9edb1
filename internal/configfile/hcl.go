package configfile

import (
	"github.com/byd-android-2017/args"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rotisserie/eris"
)

// decodeHCL evaluates every top-level attribute without variables or
// functions. Blocks are not allowed.
func decodeHCL(src []byte, path string) (args.Defaults, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, eris.Wrapf(diags, "failed to parse HCL file %s", path)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, eris.Wrapf(diags, "failed to decode HCL file %s", path)
	}

	defaults := make(args.Defaults, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, eris.Wrapf(diags, "invalid value for %q in %s", name, path)
		}
		defaults[name] = val
	}
	return defaults, nil
}
