package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brendan.keane/cfnresponse/internal/errors"
	"github.com/brendan.keane/cfnresponse/internal/testutil"
)

func writeEvent(t *testing.T, responseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, testutil.EventJSON(testutil.NewEvent(responseURL)), 0o600); err != nil {
		t.Fatalf("writing event: %v", err)
	}
	return path
}

func runSend(t *testing.T, handler *SendHandler, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewSendCommand(handler)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSendCommand_Success(t *testing.T) {
	server := testutil.NewS3LikeServer()
	defer server.Close()
	eventPath := writeEvent(t, server.ResponseURL())

	out, _, err := runSend(t, NewSendHandler(nil, nil),
		"--event", eventPath,
		"--physical-resource-id", "bucket-1",
		"--data", `{"Arn":"arn:aws:s3:::bucket-1"}`,
		"--log-format", "json",
	)
	testutil.AssertNoError(t, err, "send")

	testutil.AssertMockCalled(t, server.Count(), 1, "response endpoint")
	testutil.AssertStringEqual(t, string(server.Last().Body),
		`{"Status":"SUCCESS","PhysicalResourceId":"bucket-1","StackId":"f3a936","RequestId":"c4dd7439","LogicalResourceId":"testResource","Data":{"Arn":"arn:aws:s3:::bucket-1"}}`,
		"wire body")
	testutil.AssertStringContains(t, out, "SUCCESS", "rendered outcome")
	testutil.AssertStringContains(t, out, "testResource", "rendered outcome")
}

func TestSendCommand_ScalarDataIsWrapped(t *testing.T) {
	server := testutil.NewS3LikeServer()
	defer server.Close()

	_, _, err := runSend(t, NewSendHandler(nil, nil), "--event", writeEvent(t, server.ResponseURL()), "--data", `"plain"`)
	testutil.AssertNoError(t, err, "send")
	testutil.AssertStringContains(t, string(server.Last().Body), `"Data":{"data":"plain"}`, "wire body")
}

func TestSendCommand_Failed(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantReason string
	}{
		{
			name:       "explicit reason",
			args:       []string{"--reason", "handler crashed"},
			wantReason: "handler crashed",
		},
		{
			name:       "log stream reason",
			args:       []string{"--log-stream", testutil.FakeLogStreamName},
			wantReason: "Details in CloudWatch Log Stream: fake-logs-1df372",
		},
		{
			name:       "default reason",
			wantReason: "WARNING: Reason not properly provided for failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewS3LikeServer()
			defer server.Close()

			args := append([]string{"--event", writeEvent(t, server.ResponseURL()), "--status", "failed"}, tt.args...)
			out, _, err := runSend(t, NewSendHandler(nil, nil), args...)
			testutil.AssertNoError(t, err, "a delivered failure is not a command error")

			body := string(server.Last().Body)
			testutil.AssertStringContains(t, body, `"Status":"FAILED","Reason":"`+tt.wantReason+`"`, "wire body")
			testutil.AssertStringContains(t, body, `"PhysicalResourceId":"NOIDPROVIDED"`, "wire body")
			testutil.AssertStringContains(t, out, tt.wantReason, "rendered outcome")
		})
	}
}

func TestSendCommand_DryRun(t *testing.T) {
	client := testutil.NewAcceptingHTTPClient()
	eventPath := writeEvent(t, "https://cloudformation-custom-resource-response-useast1.s3.amazonaws.com/arn?X-Amz-Signature=abc")

	out, _, err := runSend(t, NewSendHandler(client, nil), "--event", eventPath, "--dry-run", "--no-echo")
	testutil.AssertNoError(t, err, "dry run")

	testutil.AssertMockCalled(t, len(client.Requests), 0, "HTTPClient")
	testutil.AssertStringContains(t, out, "cloudformation-custom-resource-response-useast1.s3.amazonaws.com", "host")
	testutil.AssertStringContains(t, out, "/arn?X-Amz-Signature=abc", "path")
	testutil.AssertStringContains(t, out, `"Status": "SUCCESS"`, "body")
	testutil.AssertStringContains(t, out, `"NoEcho": true`, "body")
}

func TestSendCommand_EventFromStdin(t *testing.T) {
	server := testutil.NewS3LikeServer()
	defer server.Close()

	stdin := bytes.NewReader(testutil.EventJSON(testutil.NewEventWithPhysicalID(server.ResponseURL())))
	_, _, err := runSend(t, NewSendHandler(nil, stdin), "--event", "-")
	testutil.AssertNoError(t, err, "send")

	testutil.AssertStringContains(t, string(server.Last().Body), `"PhysicalResourceId":"12345a"`, "wire body")
}

func TestSendCommand_InvalidArguments(t *testing.T) {
	validEvent := writeEvent(t, "https://example.com/resp")
	garbage := filepath.Join(t.TempDir(), "garbage.json")
	os.WriteFile(garbage, []byte("not json"), 0o600)

	tests := []struct {
		name     string
		args     []string
		wantType errors.ErrorType
		want     string
	}{
		{
			name:     "unknown status",
			args:     []string{"--event", validEvent, "--status", "MAYBE"},
			wantType: errors.ErrorTypeValidation,
			want:     "must be SUCCESS or FAILED",
		},
		{
			name:     "missing event file",
			args:     []string{"--event", filepath.Join(t.TempDir(), "absent.json")},
			wantType: errors.ErrorTypeValidation,
			want:     "cannot read event",
		},
		{
			name:     "event is not JSON",
			args:     []string{"--event", garbage},
			wantType: errors.ErrorTypeValidation,
			want:     "not a CloudFormation event",
		},
		{
			name:     "data is not JSON",
			args:     []string{"--event", validEvent, "--data", "{nope"},
			wantType: errors.ErrorTypeValidation,
			want:     "not valid JSON",
		},
		{
			name:     "unknown log level",
			args:     []string{"--event", validEvent, "--log-level", "loud"},
			wantType: errors.ErrorTypeConfig,
			want:     "unknown log level",
		},
		{
			name:     "unknown log format",
			args:     []string{"--event", validEvent, "--log-format", "xml"},
			wantType: errors.ErrorTypeValidation,
			want:     "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testutil.NewAcceptingHTTPClient()
			_, _, err := runSend(t, NewSendHandler(client, nil), tt.args...)

			testutil.AssertErrorType(t, err, tt.wantType, "command error")
			testutil.AssertStringContains(t, err.Error(), tt.want, "command error")
			testutil.AssertMockCalled(t, len(client.Requests), 0, "HTTPClient")
		})
	}
}

func TestSendCommand_EventFlagRequired(t *testing.T) {
	_, _, err := runSend(t, NewSendHandler(nil, nil))
	testutil.AssertError(t, err, "send without --event")
	testutil.AssertStringContains(t, err.Error(), "event", "cobra error")
}

func TestSendCommand_DeliveryFailure(t *testing.T) {
	_, _, err := runSend(t, NewSendHandler(nil, nil), "--event", writeEvent(t, testutil.UnreachableURL()))
	testutil.AssertErrorType(t, err, errors.ErrorTypeTransport, "command error")
}

func TestSendCommand_VerboseLogsToStderr(t *testing.T) {
	server := testutil.NewS3LikeServer()
	defer server.Close()

	out, logs, err := runSend(t, NewSendHandler(nil, nil), "--event", writeEvent(t, server.ResponseURL()), "-v", "--log-format", "json")
	testutil.AssertNoError(t, err, "send")

	testutil.AssertStringContains(t, logs, "RESPONSE BODY:", "verbose logs")
	testutil.AssertStringNotContains(t, out, "RESPONSE BODY:", "rendered outcome")
	if n := strings.Count(logs, "\n"); n != 8 {
		t.Errorf("expected 8 verbose log lines, got %d:\n%s", n, logs)
	}
}

func TestNewSendCommand_Flags(t *testing.T) {
	cmd := NewSendCommand(NewSendHandler(nil, nil))

	for _, name := range []string{"event", "status", "reason", "physical-resource-id", "data", "log-stream", "no-echo", "dry-run", "log-level", "verbose", "debug", "log-format"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
	if cmd.Flags().ShorthandLookup("v") == nil {
		t.Error("missing -v shorthand")
	}
}
