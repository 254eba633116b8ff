package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestResponseError(t *testing.T) {
	// Test basic error creation
	err := New(ErrorTypeInputMissing, "test error")
	if err.Type != ErrorTypeInputMissing {
		t.Errorf("Expected type %s, got %s", ErrorTypeInputMissing, err.Type)
	}
	if err.Message != "test error" {
		t.Errorf("Expected message 'test error', got '%s'", err.Message)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrorTypeURLInvalid, "bad url")
	if wrapped.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
	if wrapped.Type != ErrorTypeURLInvalid {
		t.Errorf("Expected type %s, got %s", ErrorTypeURLInvalid, wrapped.Type)
	}

	// Test context
	err.WithContext("field", "test_field")
	if err.Context["field"] != "test_field" {
		t.Errorf("Expected context to be set")
	}

	// Test error string
	errStr := wrapped.Error()
	expected := "bad url: underlying error"
	if errStr != expected {
		t.Errorf("Expected '%s', got '%s'", expected, errStr)
	}
}

func TestResponseError_EmptyMessageKeepsCauseText(t *testing.T) {
	cause := fmt.Errorf("dial tcp 127.0.0.1:1: connect: connection refused")
	wrapped := Wrap(cause, ErrorTypeTransport, "")

	if wrapped.Error() != cause.Error() {
		t.Errorf("Expected %q, got %q", cause.Error(), wrapped.Error())
	}
	if !stderrors.Is(wrapped, cause) {
		t.Errorf("Expected wrapped error to unwrap to its cause")
	}
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeBusinessFailure, "it broke")

	if !IsType(err, ErrorTypeBusinessFailure) {
		t.Errorf("Expected IsType to return true for correct type")
	}

	if IsType(err, ErrorTypeTransport) {
		t.Errorf("Expected IsType to return false for incorrect type")
	}

	// Wrapped by fmt
	outer := fmt.Errorf("handler: %w", err)
	if !IsType(outer, ErrorTypeBusinessFailure) {
		t.Errorf("Expected IsType to see through fmt wrapping")
	}

	// Test with non-ResponseError
	stdErr := fmt.Errorf("standard error")
	if IsType(stdErr, ErrorTypeBusinessFailure) {
		t.Errorf("Expected IsType to return false for standard error")
	}
}

func TestGetType(t *testing.T) {
	err := New(ErrorTypeConfig, "config error")
	if GetType(err) != ErrorTypeConfig {
		t.Errorf("Expected type %s, got %s", ErrorTypeConfig, GetType(err))
	}

	// Test with standard error
	stdErr := fmt.Errorf("standard error")
	if GetType(stdErr) != ErrorTypeInternal {
		t.Errorf("Expected type %s for standard error, got %s", ErrorTypeInternal, GetType(stdErr))
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation with field",
			err:      New(ErrorTypeValidation, "must be SUCCESS or FAILED").WithContext("field", "status"),
			expected: "Invalid status: must be SUCCESS or FAILED",
		},
		{
			name:     "config with type",
			err:      New(ErrorTypeConfig, "unknown log level").WithContext("config_type", "log-level"),
			expected: "Configuration error (log-level): unknown log level",
		},
		{
			name:     "transport with host",
			err:      Wrap(fmt.Errorf("connection refused"), ErrorTypeTransport, "").WithContext("host", "example.com"),
			expected: "Network error delivering to example.com: connection refused",
		},
		{
			name:     "business failure keeps message",
			err:      New(ErrorTypeBusinessFailure, "Something bad happened"),
			expected: "Something bad happened",
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("plain"),
			expected: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDebugInfo(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), ErrorTypeTransport, "").WithContext("host", "example.com")
	info := DebugInfo(err)

	if info["type"] != "transport" {
		t.Errorf("Expected type transport, got %v", info["type"])
	}
	if info["cause"] != "boom" {
		t.Errorf("Expected cause boom, got %v", info["cause"])
	}

	plain := DebugInfo(fmt.Errorf("plain"))
	if plain["type"] != "unknown" {
		t.Errorf("Expected unknown type for plain errors, got %v", plain["type"])
	}
}
