package cfnresponse

import "context"

var defaultSender = NewSender()

// Default returns the Sender behind the package-level functions
func Default() *Sender {
	return defaultSender
}

// Configure merges opts into the default sender's configuration
func Configure(opts Config) {
	defaultSender.Configure(opts)
}

// SendResponse sends details for event using the default sender
func SendResponse(ctx context.Context, details *ResponseDetails, event *Event, cb Callback) (any, error) {
	return defaultSender.SendResponse(ctx, details, event, cb)
}

// SendSuccess reports SUCCESS using the default sender
func SendSuccess(ctx context.Context, physicalResourceID string, data any, event *Event, cb Callback) (any, error) {
	return defaultSender.SendSuccess(ctx, physicalResourceID, data, event, cb)
}

// SendFailure reports FAILED using the default sender
func SendFailure(ctx context.Context, reason Reason, event *Event, cb Callback, logCtx *LogContext, physicalResourceID string) (any, error) {
	return defaultSender.SendFailure(ctx, reason, event, cb, logCtx, physicalResourceID)
}

// Wrap adapts fn into a Lambda handler that reports through the default sender
func Wrap(fn CustomResourceFunction) func(context.Context, Event) error {
	return defaultSender.Wrap(fn)
}
