package completion

import (
	"github.com/aws/aws-lambda-go/cfn"
	"github.com/brendan.keane/cfnresponse/internal/errors"
	"github.com/brendan.keane/cfnresponse/internal/response"
)

// MsgNoReason is used when a FAILED response carries no reason
const MsgNoReason = "Failed status with no reason provided."

// Callback receives the outcome of a send: either err or result is set.
// Whatever it returns becomes the send's result.
type Callback func(err error, result any) any

// Resolve turns a delivery outcome into the send's result. A delivery error
// wins over everything; otherwise the Status that was sent decides.
func Resolve(msg *response.Message, deliveryErr error) (any, error) {
	if deliveryErr != nil {
		return nil, deliveryErr
	}

	if msg.Status == cfn.StatusFailed {
		if msg.Reason != "" {
			return nil, errors.New(errors.ErrorTypeBusinessFailure, msg.Reason)
		}
		return nil, errors.New(errors.ErrorTypeBusinessFailure, MsgNoReason)
	}

	if msg.Data != nil {
		return msg.Data, nil
	}
	return nil, nil
}

// Settle hands the outcome to cb. With a callback the error is the callback's
// to deal with and never comes back to the caller; without one the error is
// returned and a success resolves through DefaultCallback.
func Settle(result any, err error, cb Callback) (any, error) {
	if cb != nil {
		return cb(err, result), nil
	}
	if err != nil {
		return nil, err
	}
	return DefaultCallback(nil, result), nil
}

// DefaultCallback is the continuation used when the caller supplies none
func DefaultCallback(err error, result any) any {
	if err != nil {
		return err
	}
	if result != nil {
		return result
	}
	return nil
}
