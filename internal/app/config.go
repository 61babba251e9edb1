package app

import (
	"errors"
	"fmt"
)

// Config holds the options parsed from the command line together with the
// settings that control how the App reports them.
type Config struct {
	Logging   bool
	Port      int
	Directory string
	Group     []string
	Numbers   []int

	ConfigPath string
	LogFormat  string
	LogLevel   string
	Output     string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port %d is out of range 0-65535", cfg.Port)
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, errors.New("output must be 'text' or 'json'")
	}
	return &cfg, nil
}
