package logger

import (
	"github.com/brendan.keane/cfnresponse/internal/config"
	"github.com/rs/zerolog"
)

// LevelFunc reports the log level in force at the moment it is called
type LevelFunc func() config.LogLevel

// Tiered gates zerolog events by the numeric log level. A disabled tier hands
// back a nil *zerolog.Event, on which every zerolog method is a no-op.
type Tiered struct {
	logger zerolog.Logger
	level  LevelFunc
}

// NewTiered wraps logger. The level is read on every call, never cached.
func NewTiered(logger zerolog.Logger, level LevelFunc) *Tiered {
	if level == nil {
		level = func() config.LogLevel { return config.LogNormal }
	}
	return &Tiered{logger: logger, level: level}
}

// Logger returns the wrapped zerolog logger
func (t *Tiered) Logger() zerolog.Logger {
	return t.logger
}

// With returns a Tiered sharing the level source but logging through logger
func (t *Tiered) With(logger zerolog.Logger) *Tiered {
	return &Tiered{logger: logger, level: t.level}
}

// Enabled reports whether the given tier currently produces output
func (t *Tiered) Enabled(tier config.LogLevel) bool {
	return t.level() >= tier
}

// Normal starts an event written at LogNormal and above
func (t *Tiered) Normal() *zerolog.Event {
	if !t.Enabled(config.LogNormal) {
		return nil
	}
	return t.logger.Info()
}

// Failure starts an error event written at LogNormal and above
func (t *Tiered) Failure() *zerolog.Event {
	if !t.Enabled(config.LogNormal) {
		return nil
	}
	return t.logger.Error()
}

// Verbose starts an event written at LogVerbose and above
func (t *Tiered) Verbose() *zerolog.Event {
	if !t.Enabled(config.LogVerbose) {
		return nil
	}
	return t.logger.Debug()
}

// Debug starts an event written only at LogDebug
func (t *Tiered) Debug() *zerolog.Event {
	if !t.Enabled(config.LogDebug) {
		return nil
	}
	return t.logger.Debug().Bool("debug", true)
}
