// Package cfnresponse reports the outcome of a CloudFormation custom resource
// request by PUTting a JSON document to the presigned ResponseURL of the event.
//
// Every send resolves the same way: with a Callback the callback receives the
// error or result and its return value is the send's result; without one the
// result or error is returned directly. A FAILED status that was delivered
// still resolves as an error carrying the reason.
package cfnresponse

import (
	"context"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/brendan.keane/cfnresponse/internal/completion"
	"github.com/brendan.keane/cfnresponse/internal/config"
	"github.com/brendan.keane/cfnresponse/internal/errors"
	httpinternal "github.com/brendan.keane/cfnresponse/internal/http"
	"github.com/brendan.keane/cfnresponse/internal/logger"
	"github.com/brendan.keane/cfnresponse/internal/response"
	"github.com/rs/zerolog"
)

// HTTPClient performs the single PUT of each send
type HTTPClient = httpinternal.HTTPClientProvider

// Sender sends custom resource responses. It is safe for concurrent use.
type Sender struct {
	store   *config.Store
	logger  *zerolog.Logger
	factory *httpinternal.ClientFactory
}

// Option configures a Sender
type Option func(*senderOptions)

type senderOptions struct {
	httpClient HTTPClient
	logger     *zerolog.Logger
	config     Config
}

// WithHTTPClient delivers through client instead of the default client
func WithHTTPClient(client HTTPClient) Option {
	return func(o *senderOptions) {
		o.httpClient = client
	}
}

// WithLogger writes diagnostics through l. Without it a logger is built from
// the configured log format, writing to stdout.
func WithLogger(l zerolog.Logger) Option {
	return func(o *senderOptions) {
		o.logger = &l
	}
}

// WithConfig seeds the sender's configuration
func WithConfig(cfg Config) Option {
	return func(o *senderOptions) {
		o.config = o.config.Merge(cfg)
	}
}

// NewSender creates a Sender at LogNormal unless configured otherwise
func NewSender(opts ...Option) *Sender {
	var o senderOptions
	for _, opt := range opts {
		opt(&o)
	}

	initial := config.NewConfig().Merge(o.config)
	return &Sender{
		store:   config.NewStore(&initial),
		logger:  o.logger,
		factory: httpinternal.NewClientFactory(o.httpClient),
	}
}

// Configure merges opts into the sender's configuration. Zero fields leave
// the current value untouched and no validation is applied.
func (s *Sender) Configure(opts Config) {
	s.store.Configure(opts)
}

// Config returns the sender's current configuration
func (s *Sender) Config() Config {
	return s.store.Snapshot()
}

// tiered builds the logger for one send. A configuration carried by ctx takes
// precedence over the store; the level is otherwise read from the store each
// time a line is about to be written.
func (s *Sender) tiered(ctx context.Context, event *cfn.Event) *logger.Tiered {
	cfg := s.store.Snapshot()
	override, scoped := config.FromContext(ctx)
	if scoped {
		cfg = cfg.Merge(*override)
	}

	var base zerolog.Logger
	if s.logger != nil {
		base = *s.logger
	} else {
		base = logger.SetupFromConfig(&cfg)
	}
	base = logger.ForEvent(base, event)

	return logger.NewTiered(base, func() config.LogLevel {
		if scoped && override.LogLevel != 0 {
			return override.LogLevel
		}
		return s.store.LogLevel()
	})
}

// SendResponse validates details and event, PUTs the response to
// event.ResponseURL and settles the outcome through cb.
func (s *Sender) SendResponse(ctx context.Context, details *ResponseDetails, event *Event, cb Callback) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := s.tiered(ctx, event)

	log.Verbose().Interface("responseDetails", details).Msg("response details")
	log.Verbose().Interface("event", event).Msg("event")

	result, err := s.send(ctx, log, details, event)
	if err != nil {
		if log.Enabled(config.LogDebug) {
			log.Debug().Interface("error_info", errors.DebugInfo(err)).Msg(err.Error())
		} else {
			log.Failure().Msg(err.Error())
		}
	}

	return completion.Settle(result, err, cb)
}

func (s *Sender) send(ctx context.Context, log *logger.Tiered, details *ResponseDetails, event *Event) (any, error) {
	msg, target, err := response.Normalize(details, event)
	if err != nil {
		return nil, err
	}

	deliveryErr := s.factory.CreateDeliverer(log).Deliver(ctx, msg, target)
	result, err := completion.Resolve(msg, deliveryErr)
	if err != nil {
		if log.Enabled(config.LogDebug) {
			log.Debug().Err(err).Str("type", string(errors.GetType(err))).Msg("error sending response")
		} else {
			log.Failure().Msgf("CRITICAL: Error sending response due to: [%s]", err)
		}
		return nil, err
	}
	return result, nil
}

// SendSuccess reports SUCCESS with physicalResourceID and data
func (s *Sender) SendSuccess(ctx context.Context, physicalResourceID string, data any, event *Event, cb Callback) (any, error) {
	return s.SendResponse(ctx, &ResponseDetails{
		Status:             Success,
		PhysicalResourceID: physicalResourceID,
		Data:               data,
	}, event, cb)
}

// SendFailure reports FAILED. A zero reason is replaced by a pointer to the
// log stream when logCtx is given, or by DefaultReason. The physical id is
// physicalResourceID if set, else the event's, else DefaultPhysicalResourceID.
func (s *Sender) SendFailure(ctx context.Context, reason Reason, event *Event, cb Callback, logCtx *LogContext, physicalResourceID string) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if reason.IsZero() {
		if logCtx != nil {
			reason = Text(DefaultReasonWithContext + logCtx.LogStreamName)
		} else {
			reason = Text(DefaultReason)
		}
	}

	id := physicalResourceID
	if id == "" && event != nil {
		id = event.PhysicalResourceID
	}
	if id == "" {
		id = DefaultPhysicalResourceID
	}

	s.tiered(ctx, event).Debug().Str("physical_resource_id", id).Msg(id)

	return s.SendResponse(ctx, &ResponseDetails{
		Status:             Failed,
		Reason:             reason,
		PhysicalResourceID: id,
	}, event, cb)
}
