// Package configfile loads option defaults from HCL or YAML files, or from a
// directory of them. Each top-level attribute (HCL) or mapping key (YAML)
// names an option and its value becomes that option's default.
package configfile
