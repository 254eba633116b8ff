package errors

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// UserMessage returns a user-friendly error message
func UserMessage(err error) string {
	if rErr, ok := err.(*ResponseError); ok {
		return formatUserError(rErr)
	}
	return err.Error()
}

// formatUserError creates user-friendly error messages based on error type
func formatUserError(rErr *ResponseError) string {
	switch rErr.Type {
	case ErrorTypeValidation:
		return formatValidationError(rErr)
	case ErrorTypeTransport:
		return formatTransportError(rErr)
	case ErrorTypeConfig:
		return formatConfigError(rErr)
	case ErrorTypeURLInvalid:
		return formatURLError(rErr)
	default:
		return rErr.Error()
	}
}

func formatValidationError(rErr *ResponseError) string {
	msg := rErr.Message
	if field, ok := rErr.Context["field"]; ok {
		msg = fmt.Sprintf("Invalid %s: %s", field, msg)
	}
	return msg
}

func formatTransportError(rErr *ResponseError) string {
	msg := rErr.Error()
	if host, ok := rErr.Context["host"]; ok {
		msg = fmt.Sprintf("Network error delivering to %s: %s", host, msg)
	}
	return msg
}

func formatConfigError(rErr *ResponseError) string {
	msg := rErr.Message

	if configType, ok := rErr.Context["config_type"]; ok {
		msg = fmt.Sprintf("Configuration error (%s): %s", configType, msg)
	}

	return msg
}

func formatURLError(rErr *ResponseError) string {
	return fmt.Sprintf("Invalid ResponseURL: %s", rErr.Error())
}

// PresentError displays an error to the user through centralized zerolog system
func PresentError(err error) {
	if err == nil {
		return
	}

	if rErr, ok := err.(*ResponseError); ok {
		event := log.Error().Str("type", string(rErr.Type))

		// Add context fields as structured data
		for key, value := range rErr.Context {
			event = event.Interface(key, value)
		}

		event.Msg(UserMessage(rErr))
	} else {
		log.Error().Err(err).Msg("")
	}
}

// DebugInfo returns detailed error information for debugging
func DebugInfo(err error) map[string]interface{} {
	info := map[string]interface{}{
		"error":   err.Error(),
		"type":    "unknown",
		"context": map[string]interface{}{},
	}

	if rErr, ok := err.(*ResponseError); ok {
		info["type"] = string(rErr.Type)
		info["message"] = rErr.Message
		info["context"] = rErr.Context

		if rErr.Cause != nil {
			info["cause"] = rErr.Cause.Error()
			info["cause_type"] = fmt.Sprintf("%T", rErr.Cause)
		}
	}

	return info
}
