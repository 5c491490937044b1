// Package config loads flowmatch settings from a TOML file.
//
// Example file:
//
//	log_level      = "debug"
//	parallel_edges = "reject"
//	verify         = true
//
//	[render]
//	format  = "svg"
//	rankdir = "TB"
//
// Missing keys keep their Default values; command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/flowmatch/core"
	"github.com/katalvlaran/flowmatch/render"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every setting the CLI reads from a file.
type Config struct {
	LogLevel      string `toml:"log_level"`
	ParallelEdges string `toml:"parallel_edges"`
	Verify        bool   `toml:"verify"`
	Render        Render `toml:"render"`
}

// Render configures the dot command.
type Render struct {
	Format  string `toml:"format"`
	RankDir string `toml:"rankdir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      "info",
		ParallelEdges: core.ParallelAggregate.String(),
		Render: Render{
			Format:  render.FormatDOT,
			RankDir: "LR",
		},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(string(data), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses TOML text into cfg, keeping fields absent from the text, and
// validates the result. Unknown keys are rejected.
func Decode(text string, cfg *Config) error {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks every enumerated value.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Parallel(); err != nil {
		return err
	}
	switch c.Render.Format {
	case render.FormatDOT, render.FormatSVG:
	default:
		return fmt.Errorf("%w: render.format %q (want dot or svg)", ErrInvalidConfig, c.Render.Format)
	}
	switch c.Render.RankDir {
	case "LR", "RL", "TB", "BT":
	default:
		return fmt.Errorf("%w: render.rankdir %q (want LR, RL, TB or BT)", ErrInvalidConfig, c.Render.RankDir)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}

// Parallel parses ParallelEdges.
func (c Config) Parallel() (core.ParallelPolicy, error) {
	p, err := core.ParseParallelPolicy(c.ParallelEdges)
	if err != nil {
		return 0, fmt.Errorf("%w: parallel_edges: %v", ErrInvalidConfig, err)
	}
	return p, nil
}
