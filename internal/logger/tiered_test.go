package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/brendan.keane/cfnresponse/internal/config"
)

func newBufferedLogger(buf *bytes.Buffer, format string) *Config {
	return &Config{Format: format, Output: buf}
}

func TestTiered_Gates(t *testing.T) {
	tests := []struct {
		name     string
		level    config.LogLevel
		expected int
	}{
		{name: "normal", level: config.LogNormal, expected: 2},
		{name: "verbose", level: config.LogVerbose, expected: 3},
		{name: "debug", level: config.LogDebug, expected: 4},
		{name: "above debug", level: 9, expected: 4},
		{name: "below normal", level: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tiered := NewTiered(InitLogger(newBufferedLogger(&buf, config.FormatJSON)), func() config.LogLevel {
				return tt.level
			})

			tiered.Normal().Msg("normal")
			tiered.Failure().Msg("failure")
			tiered.Verbose().Msg("verbose")
			tiered.Debug().Msg("debug")

			lines := strings.Count(buf.String(), "\n")
			if lines != tt.expected {
				t.Errorf("got %d lines, expected %d:\n%s", lines, tt.expected, buf.String())
			}
		})
	}
}

func TestTiered_ReadsLevelOnEveryCall(t *testing.T) {
	var buf bytes.Buffer
	level := config.LogNormal
	tiered := NewTiered(InitLogger(newBufferedLogger(&buf, config.FormatJSON)), func() config.LogLevel {
		return level
	})

	tiered.Verbose().Msg("hidden")
	level = config.LogVerbose
	tiered.Verbose().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("verbose line written at normal level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("verbose line missing after raising level: %s", out)
	}
}

func TestTiered_NilLevelDefaultsToNormal(t *testing.T) {
	var buf bytes.Buffer
	tiered := NewTiered(InitLogger(newBufferedLogger(&buf, config.FormatJSON)), nil)

	if !tiered.Enabled(config.LogNormal) || tiered.Enabled(config.LogVerbose) {
		t.Error("expected a nil level func to behave as LogNormal")
	}
}

func TestInitLogger_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(newBufferedLogger(&buf, config.FormatPretty))
	logger.Info().Msg("Response sent.")

	out := buf.String()
	if !strings.Contains(out, "Response sent.") {
		t.Errorf("expected message in output, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no color codes in output, got %q", out)
	}
}

func TestForEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := ForEvent(InitLogger(newBufferedLogger(&buf, config.FormatJSON)), &cfn.Event{
		RequestID:         "c4dd7439",
		LogicalResourceID: "testResource",
	})
	logger.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"c4dd7439"`) || !strings.Contains(out, `"logical_resource_id":"testResource"`) {
		t.Errorf("expected event identifiers in output, got %s", out)
	}

	// nil events leave the logger untouched
	_ = ForEvent(InitLogger(newBufferedLogger(&buf, config.FormatJSON)), nil)
}
