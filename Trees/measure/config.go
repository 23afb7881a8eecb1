package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidN         = errors.New("element count must be positive")
	ErrTooManyElements  = errors.New("element count exceeds what a ptree can index")
	ErrInvalidBatch     = errors.New("batch size must be positive")
	ErrUnknownContainer = errors.New("unknown container")
	ErrNoContainers     = errors.New("no container selected")
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrUnknownLevel     = errors.New("unknown log level")
)

// Default configuration values.
const (
	defaultN      = 1000000
	defaultSeed   = 0
	defaultBatch  = 1024
	defaultFormat = "table"
	defaultLevel  = "info"
)

var (
	defaultContainers = []string{"ptree", "btree", "gods", "llrb", "haxmap", "hashmap"}
	formats           = []string{"table", "yaml", "json", "plot"}
)

// Config of one measure run.
type Config struct {
	Containers    []string `mapstructure:"containers" yaml:"containers" json:"containers"`
	Format        string   `mapstructure:"format" yaml:"format" json:"format"`
	Output        string   `mapstructure:"output" yaml:"output,omitempty" json:"output,omitempty"`
	MetricsFile   string   `mapstructure:"metrics_file" yaml:"metrics_file,omitempty" json:"metrics_file,omitempty"`
	LogLevel      string   `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	N             int      `mapstructure:"n" yaml:"n" json:"n"`
	Seed          int64    `mapstructure:"seed" yaml:"seed" json:"seed"`
	Batch         int      `mapstructure:"batch" yaml:"batch" json:"batch"`
	AutoGrowLimit uint32   `mapstructure:"auto_grow_limit" yaml:"auto_grow_limit" json:"auto_grow_limit"`
	Reserve       bool     `mapstructure:"reserve" yaml:"reserve" json:"reserve"`
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("n", defaultN)
	v.SetDefault("seed", defaultSeed)
	v.SetDefault("batch", defaultBatch)
	v.SetDefault("containers", defaultContainers)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("log_level", defaultLevel)
	v.SetDefault("auto_grow_limit", 0)
	v.SetDefault("reserve", false)
}

// loadConfig reads the configuration from v, which may already have flags
// bound, the config file at path if any, and PTREE_ prefixed environment
// variables.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("measure")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PTREE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := v.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&cfg)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &cfg, nil
}

// validateConfig validates the configuration.
func validateConfig(cfg *Config) error {
	if cfg.N <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidN, cfg.N)
	}
	if cfg.N > math.MaxInt32 {
		return fmt.Errorf("%w: %d > %d", ErrTooManyElements, cfg.N, math.MaxInt32)
	}

	if cfg.Batch <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBatch, cfg.Batch)
	}

	if len(cfg.Containers) == 0 {
		return ErrNoContainers
	}

	for _, name := range cfg.Containers {
		if _, ok := containerMakers[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownContainer, name)
		}
	}

	if !slices.Contains(formats, cfg.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}

	return nil
}

// parseLevel maps debug, info, warn and error to their slog levels.
func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}

	return l, nil
}
