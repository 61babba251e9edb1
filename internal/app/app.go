package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/byd-android-2017/args/internal/ctxlog"
)

// App renders a parsed command line.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the demo application. Rendered output goes to
// outW and log records to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run writes the parsed options to the output writer in the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "output", a.config.Output)

	var err error
	switch a.config.Output {
	case "json":
		err = a.renderJSON()
	default:
		err = a.renderText()
	}
	if err != nil {
		return fmt.Errorf("failed to render options: %w", err)
	}

	logger.Info("Options rendered.", "config_path", a.config.ConfigPath)
	return nil
}

// optionsView is the JSON shape of the parsed options.
type optionsView struct {
	Logging   bool     `json:"logging"`
	Port      int      `json:"port"`
	Directory string   `json:"directory"`
	Group     []string `json:"group"`
	Numbers   []int    `json:"numbers"`
}

func (a *App) view() optionsView {
	return optionsView{
		Logging:   a.config.Logging,
		Port:      a.config.Port,
		Directory: a.config.Directory,
		Group:     nonNil(a.config.Group),
		Numbers:   nonNil(a.config.Numbers),
	}
}

func (a *App) renderJSON() error {
	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(a.view())
}

func (a *App) renderText() error {
	v := a.view()
	numbers := make([]string, 0, len(v.Numbers))
	for _, n := range v.Numbers {
		numbers = append(numbers, fmt.Sprint(n))
	}

	_, err := fmt.Fprintf(a.outW,
		"logging:   %t\nport:      %d\ndirectory: %s\ngroup:     %s\nnumbers:   %s\n",
		v.Logging, v.Port, v.Directory, strings.Join(v.Group, " "), strings.Join(numbers, " "),
	)
	return err
}

// nonNil keeps empty lists rendering as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
