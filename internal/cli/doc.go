// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. Its own
// flags are parsed by the args library, optionally layered over a config file.
package cli
