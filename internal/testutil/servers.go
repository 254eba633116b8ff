package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// CapturedRequest is what a CaptureServer saw of one request
type CapturedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Header        http.Header
	ContentLength int64
	Body          []byte
}

// CaptureServer stands in for the presigned response URL. It records every
// request and answers with a fixed status and body.
type CaptureServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []CapturedRequest
}

// NewCaptureServer starts a server answering every request with status and body
func NewCaptureServer(status int, body string) *CaptureServer {
	cs := &CaptureServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		cs.mu.Lock()
		cs.requests = append(cs.requests, CapturedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Header:        r.Header.Clone(),
			ContentLength: r.ContentLength,
			Body:          data,
		})
		cs.mu.Unlock()

		w.Header().Set("x-amz-request-id", "test-request")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	return cs
}

// NewS3LikeServer answers the way S3 answers a valid presigned PUT
func NewS3LikeServer() *CaptureServer {
	return NewCaptureServer(http.StatusOK, "")
}

// ResponseURL returns a presigned-looking response URL on the server
func (cs *CaptureServer) ResponseURL() string {
	return cs.URL + "/resp/testing?testId=436"
}

// Requests returns a copy of every request received so far
func (cs *CaptureServer) Requests() []CapturedRequest {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]CapturedRequest(nil), cs.requests...)
}

// Count returns how many requests were received
func (cs *CaptureServer) Count() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.requests)
}

// Last returns the most recent request, or nil if there was none
func (cs *CaptureServer) Last() *CapturedRequest {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.requests) == 0 {
		return nil
	}
	r := cs.requests[len(cs.requests)-1]
	return &r
}

// UnreachableURL returns a URL whose server has already been shut down, so
// any connection attempt to it is refused
func UnreachableURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/nope?foo=bar"
	server.Close()
	return url
}
