package http

import (
	"context"
	"encoding/json"
	"time"

	"github.com/brendan.keane/cfnresponse/internal/errors"
	"github.com/brendan.keane/cfnresponse/internal/logger"
	"github.com/brendan.keane/cfnresponse/internal/response"
)

// executor implements Deliverer
// Dependencies are injected so every step can be tested in isolation
type executor struct {
	log             *logger.Tiered
	httpClient      HTTPClientProvider
	responseHandler ResponseHandler
	requestBuilder  *RequestBuilder
}

// NewDelivererWithDependencies creates a Deliverer with injected dependencies
func NewDelivererWithDependencies(
	log *logger.Tiered,
	httpClient HTTPClientProvider,
	responseHandler ResponseHandler,
) Deliverer {
	return &executor{
		log:             log,
		httpClient:      httpClient,
		responseHandler: responseHandler,
		requestBuilder:  NewRequestBuilder(),
	}
}

// Deliver performs exactly one PUT of msg to target
func (e *executor) Deliver(ctx context.Context, msg *response.Message, target *response.Target) error {
	req, body, err := e.requestBuilder.Build(ctx, msg, target)
	if err != nil {
		return err
	}

	if options, err := json.Marshal(e.requestBuilder.Options(target, body)); err == nil {
		e.log.Verbose().Msg(string(options))
	}
	e.log.Verbose().Msg(string(body))

	startTime := time.Now()
	resp, err := e.httpClient.Do(req)
	duration := time.Since(startTime)

	if err != nil {
		e.log.Debug().
			Err(err).
			Dur("duration", duration).
			Msg("HTTP request failed")
		return errors.Wrap(err, errors.ErrorTypeTransport, "").
			WithContext("host", target.Host).
			WithContext("duration", duration)
	}
	defer resp.Body.Close()

	e.log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("HTTP request completed")

	return e.responseHandler.HandleResponse(resp)
}
