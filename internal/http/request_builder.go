package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/brendan.keane/cfnresponse/internal/errors"
	"github.com/brendan.keane/cfnresponse/internal/response"
)

// RequestOptions describes an outgoing PUT the way it is written to verbose logs
type RequestOptions struct {
	Hostname string            `json:"hostname"`
	Protocol string            `json:"protocol"`
	Path     string            `json:"path"`
	Method   string            `json:"method"`
	Headers  map[string]string `json:"headers"`
}

// RequestBuilder builds the PUT request carrying a wire message
type RequestBuilder struct{}

// NewRequestBuilder creates a new request builder
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{}
}

// Build serializes msg and creates the request for target. The presigned URL
// is signed with an empty content type, so Content-Type is sent empty.
func (b *RequestBuilder) Build(ctx context.Context, msg *response.Message, target *response.Target) (*http.Request, []byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrorTypeInternal, "failed to serialize response").
			WithContext("logical_resource_id", msg.LogicalResourceID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target.URL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrorTypeURLInvalid, "failed to create HTTP request").
			WithContext("host", target.Host)
	}

	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "")
	req.Header.Set("Content-Length", strconv.Itoa(len(body)))

	return req, body, nil
}

// Options returns the loggable description of a request built for target
func (b *RequestBuilder) Options(target *response.Target, body []byte) RequestOptions {
	return RequestOptions{
		Hostname: target.Host,
		Protocol: target.Scheme + ":",
		Path:     target.Path,
		Method:   http.MethodPut,
		Headers: map[string]string{
			"content-type":   "",
			"content-length": strconv.Itoa(len(body)),
		},
	}
}
