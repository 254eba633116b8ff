package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/brendan.keane/cfnresponse/internal/errors"
	"github.com/spf13/pflag"
)

// LogLevel controls how much diagnostic output a send produces.
// Values are compared numerically, so anything above LogDebug still logs everything.
type LogLevel int

const (
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// Log formats understood by the logger package
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config holds all application configuration
type Config struct {
	LogLevel  LogLevel
	LogFormat string
}

// contextKey is a custom type for context keys
type contextKey string

// configKey is the context key for storing config
const configKey contextKey = "config"

// WithConfig adds config to context. A config carried this way overrides the
// sender's store for every send made with the returned context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) (*Config, bool) {
	if ctx == nil {
		return nil, false
	}
	cfg, ok := ctx.Value(configKey).(*Config)
	return cfg, ok && cfg != nil
}

// NewConfig creates a Config with default values
func NewConfig() *Config {
	return &Config{
		LogLevel:  LogNormal,
		LogFormat: FormatPretty,
	}
}

// Merge returns c with every non-zero field of opts written over it.
func (c Config) Merge(opts Config) Config {
	if opts.LogLevel != 0 {
		c.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		c.LogFormat = opts.LogFormat
	}
	return c
}

// Store is the process-wide configuration holder. Reads observe whatever value
// is current at the moment they happen.
type Store struct {
	mu  sync.RWMutex
	cfg Config
}

// NewStore creates a store seeded with initial, or with NewConfig() when nil
func NewStore(initial *Config) *Store {
	if initial == nil {
		initial = NewConfig()
	}
	return &Store{cfg: *initial}
}

// Configure merges opts into the stored configuration
func (s *Store) Configure(opts Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = s.cfg.Merge(opts)
}

// Snapshot returns a copy of the current configuration
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// LogLevel returns the current log level
func (s *Store) LogLevel() LogLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.LogLevel
}

// ParseLogLevel accepts a level name (normal, verbose, debug) or its number.
// Numbers are not range checked.
func ParseLogLevel(value string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "normal", "info":
		return LogNormal, nil
	case "verbose":
		return LogVerbose, nil
	case "debug", "trace":
		return LogDebug, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.New(errors.ErrorTypeConfig, "unknown log level").
			WithContext("config_type", "log-level").
			WithContext("value", value)
	}
	return LogLevel(n), nil
}

// LoadFromFlags creates a Config from command line flags
func LoadFromFlags(flags *pflag.FlagSet) (*Config, error) {
	config := NewConfig()

	levelValue, err := flags.GetString("log-level")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get log-level flag")
	}
	// If not set via flag, try environment variables
	if levelValue == "" {
		levelValue = os.Getenv("CFN_RESPONSE_LOG_LEVEL")
	}
	if levelValue != "" {
		if config.LogLevel, err = ParseLogLevel(levelValue); err != nil {
			return nil, err
		}
	}

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get verbose flag")
	}
	debug, err := flags.GetBool("debug")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get debug flag")
	}

	// Shorthand flags only ever raise the level
	if verbose && config.LogLevel < LogVerbose {
		config.LogLevel = LogVerbose
	}
	if debug && config.LogLevel < LogDebug {
		config.LogLevel = LogDebug
	}

	if config.LogFormat, err = flags.GetString("log-format"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get log-format flag")
	}
	if config.LogFormat == "" {
		config.LogFormat = os.Getenv("CFN_RESPONSE_LOG_FORMAT")
	}
	if config.LogFormat == "" {
		config.LogFormat = FormatPretty
	}

	return config, nil
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	switch c.LogFormat {
	case FormatPretty, FormatJSON:
		return nil
	default:
		return errors.New(errors.ErrorTypeValidation, "invalid log format").
			WithContext("field", "log-format").
			WithContext("format", c.LogFormat).
			WithContext("valid_formats", []string{FormatPretty, FormatJSON})
	}
}
