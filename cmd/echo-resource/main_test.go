package main

import (
	"context"
	"reflect"
	"testing"

	"github.com/brendan.keane/cfnresponse/internal/testutil"
	"github.com/brendan.keane/cfnresponse/pkg/cfnresponse"
)

func TestEcho(t *testing.T) {
	event := testutil.NewEvent("https://example.com/resp")
	event.ResourceProperties["BucketName"] = "logs"

	id, data, err := echo(context.Background(), *event)
	if err != nil {
		t.Fatalf("echo() error = %v", err)
	}
	if id != "echo-testResource" {
		t.Errorf("id = %q, want echo-testResource", id)
	}
	if want := map[string]interface{}{"BucketName": "logs"}; !reflect.DeepEqual(data, want) {
		t.Errorf("data = %v, want %v", data, want)
	}
}

func TestEcho_Fail(t *testing.T) {
	event := testutil.NewEvent("https://example.com/resp")
	event.ResourceProperties["Fail"] = "on purpose"

	_, _, err := echo(context.Background(), *event)
	if err == nil || err.Error() != "failing on request: on purpose" {
		t.Errorf("echo() error = %v", err)
	}
}

func TestEcho_ReportedThroughWrap(t *testing.T) {
	server := testutil.NewS3LikeServer()
	defer server.Close()

	event := testutil.NewEvent(server.ResponseURL())
	event.ResourceProperties["Fail"] = "on purpose"

	// A reported failure is not a handler error
	testutil.AssertNoError(t, cfnresponse.Wrap(echo)(context.Background(), *event), "handler")
	testutil.AssertStringContains(t, string(server.Last().Body), `"Reason":"failing on request: on purpose"`, "wire body")
}
