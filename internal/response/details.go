package response

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/aws/aws-lambda-go/cfn"
)

// Details is what the caller wants to report for one custom resource request
type Details struct {
	Status             cfn.StatusType
	Reason             Reason
	PhysicalResourceID string
	NoEcho             bool
	Data               any
}

// Reason is a failure reason given either as text or as an error value.
// The zero Reason means no reason was given.
type Reason struct {
	text string
	err  error
}

// Text returns a Reason holding s
func Text(s string) Reason {
	return Reason{text: s}
}

// FromError returns a Reason holding err. A nil err gives the zero Reason.
func FromError(err error) Reason {
	return Reason{err: err}
}

// IsZero reports whether no reason was given
func (r Reason) IsZero() bool {
	return r.text == "" && r.err == nil
}

// Err returns the error the reason was built from, if any
func (r Reason) Err() error {
	return r.err
}

// String renders the reason the way it goes on the wire. Errors that format
// themselves (stack-carrying errors) are rendered with %+v.
func (r Reason) String() string {
	if r.err == nil {
		return r.text
	}
	if _, ok := r.err.(fmt.Formatter); ok {
		return fmt.Sprintf("%+v", r.err)
	}
	return r.err.Error()
}

// MarshalJSON renders the reason as its wire string
func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Message is the exact JSON document PUT to the response URL. Field order is
// part of the contract.
type Message struct {
	Status             cfn.StatusType `json:"Status"`
	Reason             string         `json:"Reason,omitempty"`
	PhysicalResourceID string         `json:"PhysicalResourceId"`
	StackID            string         `json:"StackId"`
	RequestID          string         `json:"RequestId"`
	LogicalResourceID  string         `json:"LogicalResourceId"`
	NoEcho             bool           `json:"NoEcho,omitempty"`
	Data               any            `json:"Data,omitempty"`
}

// Target is the parsed response URL split into connection components
type Target struct {
	URL    *url.URL
	Host   string
	Scheme string
	Path   string // path plus query
}
