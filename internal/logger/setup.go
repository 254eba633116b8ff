package logger

import (
	"io"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/brendan.keane/cfnresponse/internal/config"
	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Format     string // "pretty" or "json"
	WithCaller bool
	Output     io.Writer
	TimeFormat string
}

// DefaultConfig returns sensible defaults for logging.
// Lambda ships stdout to CloudWatch, so that is where output goes.
func DefaultConfig() *Config {
	return &Config{
		Format:     config.FormatPretty,
		WithCaller: false,
		Output:     os.Stdout,
		TimeFormat: time.RFC3339,
	}
}

// InitLogger creates and configures a new zerolog logger. Volume is decided by
// Tiered, so the logger itself lets every level through.
func InitLogger(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	// Configure output
	var output io.Writer = cfg.Output
	if cfg.Format == config.FormatPretty {
		output = &zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}

	// Create logger with timestamp
	logger := zerolog.New(output).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("app", "cfnresponse").
		Logger()

	// Add caller info if requested
	if cfg.WithCaller {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// SetupFromConfig builds a logger for the application configuration
func SetupFromConfig(cfg *config.Config) zerolog.Logger {
	lc := DefaultConfig()
	if cfg != nil {
		if cfg.LogFormat != "" {
			lc.Format = cfg.LogFormat
		}
		lc.WithCaller = cfg.LogLevel >= config.LogDebug
	}
	return InitLogger(lc)
}

// ForComponent creates a logger with component context
func ForComponent(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// ForEvent creates a logger with the identifiers of a custom resource request
func ForEvent(logger zerolog.Logger, event *cfn.Event) zerolog.Logger {
	if event == nil {
		return logger
	}
	return logger.With().
		Str("request_id", event.RequestID).
		Str("logical_resource_id", event.LogicalResourceID).
		Logger()
}
