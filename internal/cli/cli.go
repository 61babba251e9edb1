package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	"github.com/byd-android-2017/args"
	"github.com/byd-android-2017/args/internal/app"
	"github.com/byd-android-2017/args/internal/configfile"
	"github.com/zclconf/go-cty/cty"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the demo command line.
type Options struct {
	Logging   bool     `option:"l"`
	Port      int      `option:"p"`
	Directory string   `option:"d"`
	Group     []string `option:"g"`
	Numbers   []int    `option:"n"`

	Config    string `option:"c"`
	LogLevel  string `option:"log-level"`
	LogFormat string `option:"log-format"`
	Output    string `option:"o"`
	Help      bool   `option:"h"`
}

// builtinDefaults are the lowest-precedence values; a config file overrides
// them and explicit flags override both.
func builtinDefaults() args.Defaults {
	return args.Defaults{
		"log-level":  cty.StringVal("info"),
		"log-format": cty.StringVal("text"),
		"o":          cty.StringVal("text"),
	}
}

const usage = `
args - A demo of struct-tag driven command-line parsing.

Usage:
  args [options]

Options:
  -l               Enable logging.
  -p PORT          Port number.
  -d DIRECTORY     Directory path.
  -g VALUE...      One or more group names.
  -n NUMBER...     One or more integers, negative values allowed.
  -c PATH          Load option defaults from an .hcl, .yaml or .yml file, or a directory of them.
  -log-level LEVEL Logging level: 'debug', 'info', 'warn' or 'error' (default "info").
  -log-format FMT  Log output format: 'text' or 'json' (default "text").
  -o FORMAT        Output format: 'text' or 'json' (default "text").
  -h               Show this help.
`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(arguments []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	ctx := context.Background()

	defaults := builtinDefaults()
	opts, err := parseOptions(ctx, arguments, defaults)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if opts.Help {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	if opts.Config != "" {
		slog.Debug("Loading option defaults from config file.", "path", opts.Config)
		fileDefaults, err := configfile.Load(ctx, opts.Config)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		maps.Copy(defaults, fileDefaults)

		opts, err = parseOptions(ctx, arguments, defaults)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(opts.LogFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(opts.LogLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	outputFormat := strings.ToLower(opts.Output)
	if outputFormat != "text" && outputFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid output format: must be 'text' or 'json'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Logging:    opts.Logging,
		Port:       opts.Port,
		Directory:  opts.Directory,
		Group:      opts.Group,
		Numbers:    opts.Numbers,
		ConfigPath: opts.Config,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		Output:     outputFormat,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func parseOptions(ctx context.Context, arguments []string, defaults args.Defaults) (Options, error) {
	var opts Options
	err := args.New(args.DefaultRegistry(), arguments, args.WithDefaults(defaults)).ParseContext(ctx, &opts)
	return opts, err
}
