package http

import (
	"context"
	"net/http"

	"github.com/brendan.keane/cfnresponse/internal/response"
)

// Deliverer sends one wire message to its target.
// Any error means the message may not have reached CloudFormation.
type Deliverer interface {
	Deliver(ctx context.Context, msg *response.Message, target *response.Target) error
}

// ResponseHandler defines interface for handling HTTP responses
// Allows testing acknowledgement logging separately from request execution
type ResponseHandler interface {
	HandleResponse(resp *http.Response) error
}

// HTTPClientProvider defines interface for the underlying HTTP client
// Enables testing with mock HTTP clients
type HTTPClientProvider interface {
	Do(req *http.Request) (*http.Response, error)
}
