package cfnresponse

import (
	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/brendan.keane/cfnresponse/internal/completion"
	"github.com/brendan.keane/cfnresponse/internal/config"
	"github.com/brendan.keane/cfnresponse/internal/response"
)

// Event is the custom resource request CloudFormation sends
type Event = cfn.Event

// ResponseDetails is what a handler reports back for one Event
type ResponseDetails = response.Details

// Reason is a failure reason, built with Text or FromError
type Reason = response.Reason

// Callback receives the outcome of a send; its return value becomes the
// send's result and the error is never returned to the caller
type Callback = completion.Callback

// Config holds the options Configure accepts. Zero fields are left unchanged.
type Config = config.Config

// LogLevel is compared numerically against LogNormal, LogVerbose and LogDebug
type LogLevel = config.LogLevel

// Text returns a Reason holding s
func Text(s string) Reason {
	return response.Text(s)
}

// FromError returns a Reason holding err
func FromError(err error) Reason {
	return response.FromError(err)
}

// LogContext identifies where the handler's logs went
type LogContext struct {
	LogStreamName string
}

// LambdaLogContext returns the log context of the running Lambda function,
// or nil outside Lambda
func LambdaLogContext() *LogContext {
	if lambdacontext.LogStreamName == "" {
		return nil
	}
	return &LogContext{LogStreamName: lambdacontext.LogStreamName}
}
