package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/brendan.keane/cfnresponse/internal/config"
	"github.com/brendan.keane/cfnresponse/internal/logger"
)

// MsgResponseSent is logged once the remote endpoint answers, whatever it says
const MsgResponseSent = "Response sent."

// responseHandler implements ResponseHandler interface
// Separates acknowledgement logging from request execution
type responseHandler struct {
	log *logger.Tiered
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(log *logger.Tiered) ResponseHandler {
	return &responseHandler{log: log}
}

// HandleResponse records the acknowledgement. The status code is logged but
// never inspected: success is decided by the Status that was sent.
// Below verbose the body is left undrained.
func (h *responseHandler) HandleResponse(resp *http.Response) error {
	h.log.Normal().Msg(MsgResponseSent)

	if !h.log.Enabled(config.LogVerbose) {
		return nil
	}

	h.log.Verbose().
		Int("status", resp.StatusCode).
		Msgf("STATUS: %d", resp.StatusCode)

	headers, err := json.Marshal(resp.Header)
	if err != nil {
		headers = []byte("{}")
	}
	h.log.Verbose().Msgf("HEADERS: %s", headers)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The endpoint already answered, so a short read does not undo delivery
		h.log.Verbose().Err(err).Msg("failed to read response body")
	}
	h.log.Verbose().
		Int("body_length", len(body)).
		Msgf("RESPONSE BODY: %s", body)

	return nil
}
