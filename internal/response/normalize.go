package response

import (
	"bytes"
	"encoding/json"
	"net/url"
	"reflect"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/brendan.keane/cfnresponse/internal/errors"
)

const (
	MsgNoEvent   = "CRITICAL: no event, cannot send response"
	MsgNoDetails = "CRITICAL: no response details, cannot send response"
)

// Normalize validates the caller's input and shapes it into the wire message
// and its delivery target. It never touches the network and never mutates
// details or event.
func Normalize(details *Details, event *cfn.Event) (*Message, *Target, error) {
	if event == nil {
		return nil, nil, errors.New(errors.ErrorTypeInputMissing, MsgNoEvent)
	}
	if details == nil {
		return nil, nil, errors.New(errors.ErrorTypeInputMissing, MsgNoDetails)
	}

	target, err := ParseTarget(event.ResponseURL)
	if err != nil {
		return nil, nil, err
	}

	msg := &Message{
		Status:             details.Status,
		Reason:             details.Reason.String(),
		PhysicalResourceID: details.PhysicalResourceID,
		StackID:            event.StackID,
		RequestID:          event.RequestID,
		LogicalResourceID:  event.LogicalResourceID,
		NoEcho:             details.NoEcho,
		Data:               ShapeData(details.Data),
	}

	return msg, target, nil
}

// ParseTarget parses rawURL, which must be absolute
func ParseTarget(rawURL string) (*Target, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeURLInvalid, "invalid ResponseURL").
			WithContext("url", rawURL)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Newf(errors.ErrorTypeURLInvalid, "invalid ResponseURL: %q is not an absolute URL", rawURL).
			WithContext("url", rawURL)
	}

	return &Target{
		URL:    parsed,
		Host:   parsed.Hostname(),
		Scheme: parsed.Scheme,
		Path:   parsed.RequestURI(),
	}, nil
}

// ShapeData makes sure data is either absent or a structured mapping.
// Maps and structs (or pointers to them) pass through, nil maps and pointers
// become absent, everything else is wrapped as {"data": value}.
func ShapeData(data any) any {
	if data == nil {
		return nil
	}

	if raw, ok := data.(json.RawMessage); ok {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			return nil
		}
		if trimmed[0] == '{' {
			return raw
		}
		return map[string]any{"data": raw}
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		return data
	case reflect.Struct:
		return data
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		switch v.Elem().Kind() {
		case reflect.Map, reflect.Struct:
			return data
		}
	}

	return map[string]any{"data": data}
}
