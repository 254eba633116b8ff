package cfnresponse

import (
	"github.com/aws/aws-lambda-go/cfn"
	"github.com/brendan.keane/cfnresponse/internal/config"
	"github.com/brendan.keane/cfnresponse/internal/errors"
)

// Request types CloudFormation sends
const (
	Create = cfn.RequestCreate
	Update = cfn.RequestUpdate
	Delete = cfn.RequestDelete
)

// Statuses a response can report
const (
	Success = cfn.StatusSuccess
	Failed  = cfn.StatusFailed
)

// Log levels accepted by Configure
const (
	LogNormal  = config.LogNormal
	LogVerbose = config.LogVerbose
	LogDebug   = config.LogDebug
)

const (
	// DefaultPhysicalResourceID is reported when no physical id is known
	DefaultPhysicalResourceID = "NOIDPROVIDED"

	// DefaultReasonWithContext is followed by the Lambda log stream name
	DefaultReasonWithContext = "Details in CloudWatch Log Stream: "

	// DefaultReason is used for a failure with neither a reason nor a LogContext
	DefaultReason = "WARNING: Reason not properly provided for failure"
)

// ErrorType classifies errors returned by a send
type ErrorType = errors.ErrorType

// Error kinds
const (
	ErrInputMissing    = errors.ErrorTypeInputMissing
	ErrURLInvalid      = errors.ErrorTypeURLInvalid
	ErrTransport       = errors.ErrorTypeTransport
	ErrBusinessFailure = errors.ErrorTypeBusinessFailure
)

// IsType reports whether err, or any error it wraps, is of kind t
func IsType(err error, t ErrorType) bool {
	return errors.IsType(err, t)
}
