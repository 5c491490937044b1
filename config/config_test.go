package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmatch/config"
	"github.com/katalvlaran/flowmatch/core"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, lvl)

	p, err := cfg.Parallel()
	require.NoError(t, err)
	assert.Equal(t, core.ParallelAggregate, p)
	assert.False(t, cfg.Verify)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowmatch.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"
parallel_edges = "reject"
verify = true

[render]
format = "svg"
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		LogLevel:      "debug",
		ParallelEdges: "reject",
		Verify:        true,
		Render:        config.Render{Format: "svg", RankDir: "LR"},
	}, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"log level", `log_level = "loud"`},
		{"parallel policy", `parallel_edges = "merge"`},
		{"render format", "[render]\nformat = \"png\""},
		{"rankdir", "[render]\nrankdir = \"XY\""},
		{"unknown key", `colour = "red"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			err := config.Decode(tt.text, &cfg)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	cfg := config.Default()
	err := config.Decode(`log_level = `, &cfg)
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalidConfig)
}
