package testutil

import (
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient records requests and answers with a canned response or error
type MockHTTPClient struct {
	Response *http.Response
	Error    error
	Requests []*http.Request // Track all requests made
}

// Do implements the HTTPClientProvider interface
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)
	return m.Response, m.Error
}

// NewMockHTTPClient creates a mock HTTP client with the given response and error
func NewMockHTTPClient(body string, statusCode int, headers map[string]string, err error) *MockHTTPClient {
	var resp *http.Response
	if err == nil {
		resp = &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}

		for key, value := range headers {
			resp.Header.Set(key, value)
		}
	}

	return &MockHTTPClient{
		Response: resp,
		Error:    err,
		Requests: make([]*http.Request, 0),
	}
}

// NewAcceptingHTTPClient answers every request with an empty 200
func NewAcceptingHTTPClient() *MockHTTPClient {
	return NewMockHTTPClient("", http.StatusOK, nil, nil)
}

// NewFailingHTTPClient fails every request with message
func NewFailingHTTPClient(message string) *MockHTTPClient {
	return NewMockHTTPClient("", 0, nil, NewMockError(message))
}

// MockError provides a simple mock error implementation
type MockError struct {
	Message string
}

func (e *MockError) Error() string {
	return e.Message
}

// NewMockError creates a mock error
func NewMockError(message string) *MockError {
	return &MockError{Message: message}
}
