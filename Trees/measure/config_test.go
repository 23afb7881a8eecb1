package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, defaultN, cfg.N)
	assert.Equal(t, int64(defaultSeed), cfg.Seed)
	assert.Equal(t, defaultBatch, cfg.Batch)
	assert.Equal(t, defaultContainers, cfg.Containers)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MetricsFile)
	assert.False(t, cfg.Reserve)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	configContent := `
n: 500
seed: 7
containers: [ptree, gods]
format: yaml
auto_grow_limit: 64
reserve: true
`
	path := filepath.Join(t.TempDir(), "measure.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configContent), 0o600))

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.N)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, []string{"ptree", "gods"}, cfg.Containers)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, uint32(64), cfg.AutoGrowLimit)
	assert.True(t, cfg.Reserve)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PTREE_N", "42")
	t.Setenv("PTREE_METRICS_FILE", "/tmp/ptree.prom")
	t.Setenv("PTREE_LOG_LEVEL", "debug")

	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.N)
	assert.Equal(t, "/tmp/ptree.prom", cfg.MetricsFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "measure.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: [1\n"), 0o600))

	_, err := loadConfig(viper.New(), path)
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{N: 10, Batch: 1, Containers: []string{"ptree"}, Format: "json", LogLevel: "warn"}
	}
	require.NoError(t, validateConfig(valid()))

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero n", func(c *Config) { c.N = 0 }, ErrInvalidN},
		{"n past uint32 slots", func(c *Config) { c.N = math.MaxInt32 + 1 }, ErrTooManyElements},
		{"zero batch", func(c *Config) { c.Batch = 0 }, ErrInvalidBatch},
		{"no containers", func(c *Config) { c.Containers = nil }, ErrNoContainers},
		{"unknown container", func(c *Config) { c.Containers = []string{"ptree", "skiplist"} }, ErrUnknownContainer},
		{"unknown format", func(c *Config) { c.Format = "xml" }, ErrUnknownFormat},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, ErrUnknownLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.modify(cfg)
			assert.ErrorIs(t, validateConfig(cfg), tt.want)
		})
	}
}

func TestRunCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := newRunCommand()
	out := filepath.Join(t.TempDir(), "report.json")
	cmd.SetArgs([]string{"--n", "200", "--containers", "ptree,btree", "--format", "json", "-o", out, "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"container": "ptree"`)
	assert.Contains(t, string(data), `"phase": "drain_key"`)
}
