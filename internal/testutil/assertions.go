package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brendan.keane/cfnresponse/internal/errors"
)

// Custom assertion helpers to reduce boilerplate in tests

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: got error %v, expected none", msg, err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error, got none", msg)
	}
}

// AssertErrorMessage fails the test if err is nil or its text is not expected
func AssertErrorMessage(t *testing.T, err error, expected string, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error %q, got none", msg, expected)
	}
	if err.Error() != expected {
		t.Fatalf("%s: got error %q, expected %q", msg, err.Error(), expected)
	}
}

// AssertErrorType fails the test if err is not of the given kind
func AssertErrorType(t *testing.T, err error, expected errors.ErrorType, msg string) {
	t.Helper()
	if !errors.IsType(err, expected) {
		t.Fatalf("%s: got error kind %s (%v), expected %s", msg, errors.GetType(err), err, expected)
	}
}

// AssertStringEqual fails the test if got != expected (string-specific for cleaner output)
func AssertStringEqual(t *testing.T, got, expected string, msg string) {
	t.Helper()
	if got != expected {
		t.Fatalf("%s: got %q, expected %q", msg, got, expected)
	}
}

// AssertStringContains fails the test if str doesn't contain substring
func AssertStringContains(t *testing.T, str, substring string, msg string) {
	t.Helper()
	if !strings.Contains(str, substring) {
		t.Fatalf("%s: expected %q to contain %q", msg, str, substring)
	}
}

// AssertStringNotContains fails the test if str contains substring
func AssertStringNotContains(t *testing.T, str, substring string, msg string) {
	t.Helper()
	if strings.Contains(str, substring) {
		t.Fatalf("%s: expected %q to not contain %q", msg, str, substring)
	}
}

// AssertMockCalled fails the test if the mock wasn't called the expected number of times
func AssertMockCalled(t *testing.T, actualCalls, expectedCalls int, mockName string) {
	t.Helper()
	if actualCalls != expectedCalls {
		t.Fatalf("Mock %s: expected %d calls, got %d", mockName, expectedCalls, actualCalls)
	}
}

// AssertLogLines fails the test if buf does not hold exactly expected log lines
func AssertLogLines(t *testing.T, buf *bytes.Buffer, expected int, msg string) {
	t.Helper()
	if got := strings.Count(buf.String(), "\n"); got != expected {
		t.Fatalf("%s: got %d log lines, expected %d:\n%s", msg, got, expected, buf.String())
	}
}
