// Package testutil provides shared testing utilities and fixtures
package testutil

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/cfn"
)

// Identifiers shared by the custom resource fixtures
const (
	FakeStackID            = "f3a936"
	FakeRequestID          = "c4dd7439"
	FakeLogicalResourceID  = "testResource"
	FakePhysicalResourceID = "12345a"
	FakeReason             = "Something bad happened"
	FakeLogStreamName      = "fake-logs-1df372"

	// BadResponseURL does not parse as an absolute URL
	BadResponseURL = "notAURL"
)

// NewEvent returns a Create event whose ResponseURL is responseURL
func NewEvent(responseURL string) *cfn.Event {
	return &cfn.Event{
		RequestType:       cfn.RequestCreate,
		RequestID:         FakeRequestID,
		ResponseURL:       responseURL,
		ResourceType:      "Custom::Test",
		LogicalResourceID: FakeLogicalResourceID,
		StackID:           FakeStackID,
		ResourceProperties: map[string]interface{}{
			"ServiceToken": "arn:aws:lambda:us-east-1:123456789012:function:test",
		},
	}
}

// NewEventWithPhysicalID returns an Update event that already carries a physical id
func NewEventWithPhysicalID(responseURL string) *cfn.Event {
	event := NewEvent(responseURL)
	event.RequestType = cfn.RequestUpdate
	event.PhysicalResourceID = FakePhysicalResourceID
	return event
}

// EventJSON renders event the way CloudFormation delivers it
func EventJSON(event *cfn.Event) []byte {
	data, err := json.Marshal(event)
	if err != nil {
		panic(err)
	}
	return data
}
