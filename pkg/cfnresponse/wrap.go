package cfnresponse

import (
	"context"

	"github.com/aws/aws-lambda-go/cfn"
)

// CustomResourceFunction does the work of a custom resource and returns the
// physical id and data to report, or an error to report as the failure reason
type CustomResourceFunction = cfn.CustomResourceFunction

// MsgPanicked is the reason reported when the wrapped function panics
const MsgPanicked = "Function panicked, see log stream for details"

// Wrap adapts fn into a handler for lambda.Start. The outcome of fn is always
// reported to CloudFormation; the handler only returns an error when the
// report itself could not be delivered.
//
// On success an empty physical id falls back to the event's, then to the
// Lambda log stream name, then to DefaultPhysicalResourceID.
func (s *Sender) Wrap(fn CustomResourceFunction) func(context.Context, Event) error {
	return func(ctx context.Context, event Event) (err error) {
		logCtx := LambdaLogContext()

		completed := false
		defer func() {
			if completed {
				return
			}
			r := recover()
			s.SendFailure(ctx, Text(MsgPanicked), &event, nil, logCtx, "")
			if r != nil {
				panic(r)
			}
		}()

		id, data, fnErr := fn(ctx, event)
		completed = true

		if fnErr != nil {
			_, err = s.SendFailure(ctx, FromError(fnErr), &event, nil, logCtx, id)
		} else {
			_, err = s.SendSuccess(ctx, fallbackPhysicalID(id, &event, logCtx), data, &event, nil)
		}

		if IsType(err, ErrBusinessFailure) {
			return nil
		}
		return err
	}
}

func fallbackPhysicalID(id string, event *Event, logCtx *LogContext) string {
	if id != "" {
		return id
	}
	if event.PhysicalResourceID != "" {
		return event.PhysicalResourceID
	}
	if logCtx != nil && logCtx.LogStreamName != "" {
		return logCtx.LogStreamName
	}
	return DefaultPhysicalResourceID
}
