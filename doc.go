/*
Package args fills a user-defined options struct from command-line tokens.

Every exported field of the target struct names its option in an `option`
struct tag:

	type Options struct {
		Logging   bool   `option:"l"`
		Port      int    `option:"p"`
		Directory string `option:"d"`
	}

	opts, err := args.Parse[Options]("-l", "-p", "8080", "-d", "/usr/logs")

A Registry maps each supported field type to an OptionParser. The parser
extracts the tokens that follow the option's flag, validates how many there
are, and converts them. Bool, Unary and List build parsers for flags,
single-value options and multi-value options respectively.

Failures are reported as typed errors carrying the option name
(TooManyArgumentsError, InsufficientArgumentsError, IllegalValueError,
LackOptionError, LackParserError), so callers can use errors.As to react to
a specific kind.
*/
package args
