package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/brendan.keane/cfnresponse/internal/config"
	"github.com/brendan.keane/cfnresponse/internal/errors"
	"github.com/brendan.keane/cfnresponse/internal/logger"
	"github.com/brendan.keane/cfnresponse/internal/response"
	"github.com/brendan.keane/cfnresponse/pkg/cfnresponse"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SendHandler handles the send command
type SendHandler struct {
	httpClient cfnresponse.HTTPClient
	stdin      io.Reader
}

// NewSendHandler creates a send handler. A nil httpClient selects the
// default client; stdin is read when --event is "-".
func NewSendHandler(httpClient cfnresponse.HTTPClient, stdin io.Reader) *SendHandler {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &SendHandler{httpClient: httpClient, stdin: stdin}
}

// NewSendCommand creates the send command backed by handler
func NewSendCommand(handler *SendHandler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send --event <file|-> --status SUCCESS|FAILED",
		Short: "Send a custom resource response to CloudFormation",
		Long: `Send reads a CloudFormation custom resource event and PUTs a response to its
ResponseURL. Use it to release a stack that is waiting on a custom resource
whose handler crashed before responding.`,
		Args:         cobra.NoArgs,
		RunE:         handler.Execute,
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.String("event", "", "Path to the event JSON, or - for stdin")
	flags.String("status", string(cfn.StatusSuccess), "Response status (SUCCESS or FAILED)")
	flags.String("reason", "", "Failure reason")
	flags.String("physical-resource-id", "", "Physical resource id (defaults to the event's)")
	flags.String("data", "", "Response data as JSON")
	flags.String("log-stream", "", "Log stream named in the default failure reason")
	flags.Bool("no-echo", false, "Mask the response data in console output")
	flags.Bool("dry-run", false, "Print the response without sending it")
	AddLogFlags(flags)

	cmd.MarkFlagRequired("event")
	cmd.RegisterFlagCompletionFunc("status", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(cfn.StatusSuccess), string(cfn.StatusFailed)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// sendRequest is what the flags ask for
type sendRequest struct {
	event      *cfn.Event
	status     cfn.StatusType
	reason     string
	physicalID string
	data       any
	logStream  string
	noEcho     bool
	dryRun     bool
}

// Execute handles the send command
func (h *SendHandler) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.InitLogger(&logger.Config{
		Format:     cfg.LogFormat,
		Output:     cmd.ErrOrStderr(),
		WithCaller: cfg.LogLevel >= config.LogDebug,
	}).With().Str("handler", "send").Logger()

	req, err := h.parse(cmd)
	if err != nil {
		log.Debug().Err(err).Msg("invalid send arguments")
		return err
	}

	if req.dryRun {
		return h.dryRun(cmd.OutOrStdout(), req)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []cfnresponse.Option{
		cfnresponse.WithConfig(*cfg),
		cfnresponse.WithLogger(log),
	}
	if h.httpClient != nil {
		opts = append(opts, cfnresponse.WithHTTPClient(h.httpClient))
	}
	sender := cfnresponse.NewSender(opts...)

	if req.status == cfn.StatusFailed {
		var logCtx *cfnresponse.LogContext
		if req.logStream != "" {
			logCtx = &cfnresponse.LogContext{LogStreamName: req.logStream}
		}
		_, err = sender.SendFailure(ctx, reasonFrom(req.reason), req.event, nil, logCtx, req.physicalID)
	} else {
		_, err = sender.SendResponse(ctx, &cfnresponse.ResponseDetails{
			Status:             req.status,
			PhysicalResourceID: physicalID(req),
			NoEcho:             req.noEcho,
			Data:               req.data,
		}, req.event, nil)
	}

	// A failure that reached CloudFormation is what was asked for
	if err != nil && !cfnresponse.IsType(err, cfnresponse.ErrBusinessFailure) {
		return err
	}

	renderOutcome(cmd.OutOrStdout(), req, err)
	return nil
}

func (h *SendHandler) parse(cmd *cobra.Command) (*sendRequest, error) {
	flags := cmd.Flags()
	req := &sendRequest{}

	eventPath, _ := flags.GetString("event")
	event, err := h.readEvent(eventPath)
	if err != nil {
		return nil, err
	}
	req.event = event

	status, _ := flags.GetString("status")
	req.status = cfn.StatusType(strings.ToUpper(strings.TrimSpace(status)))
	if req.status != cfn.StatusSuccess && req.status != cfn.StatusFailed {
		return nil, errors.Newf(errors.ErrorTypeValidation, "%q must be SUCCESS or FAILED", status).
			WithContext("field", "status")
	}

	req.reason, _ = flags.GetString("reason")
	req.physicalID, _ = flags.GetString("physical-resource-id")
	req.logStream, _ = flags.GetString("log-stream")
	req.noEcho, _ = flags.GetBool("no-echo")
	req.dryRun, _ = flags.GetBool("dry-run")

	data, _ := flags.GetString("data")
	if data != "" {
		if !json.Valid([]byte(data)) {
			return nil, errors.New(errors.ErrorTypeValidation, "not valid JSON").
				WithContext("field", "data")
		}
		req.data = json.RawMessage(data)
	}

	return req, nil
}

func (h *SendHandler) readEvent(path string) (*cfn.Event, error) {
	if path == "" {
		return nil, errors.New(errors.ErrorTypeValidation, "an event file is required").
			WithContext("field", "event")
	}

	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(h.stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "cannot read event").
			WithContext("field", "event")
	}

	var event cfn.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "event is not a CloudFormation event").
			WithContext("field", "event")
	}
	return &event, nil
}

func (h *SendHandler) dryRun(w io.Writer, req *sendRequest) error {
	details := &response.Details{
		Status:             req.status,
		PhysicalResourceID: physicalID(req),
		NoEcho:             req.noEcho,
		Data:               req.data,
	}
	if req.status == cfn.StatusFailed {
		details.Reason = reasonFrom(req.reason)
		if details.Reason.IsZero() {
			details.Reason = response.Text(defaultReason(req.logStream))
		}
		details.Data = nil
	}

	msg, target, err := response.Normalize(details, req.event)
	if err != nil {
		return err
	}
	body, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "cannot render response")
	}

	renderDryRun(w, target, body)
	return nil
}

func reasonFrom(reason string) response.Reason {
	if reason == "" {
		return response.Reason{}
	}
	return response.Text(reason)
}

func defaultReason(logStream string) string {
	if logStream != "" {
		return cfnresponse.DefaultReasonWithContext + logStream
	}
	return cfnresponse.DefaultReason
}

// physicalID picks the flag, then the event's id, then the sentinel
func physicalID(req *sendRequest) string {
	switch {
	case req.physicalID != "":
		return req.physicalID
	case req.event.PhysicalResourceID != "":
		return req.event.PhysicalResourceID
	default:
		return cfnresponse.DefaultPhysicalResourceID
	}
}

// AddLogFlags registers the flags config.LoadFromFlags reads
func AddLogFlags(flags *pflag.FlagSet) {
	flags.String("log-level", "", "Log level: normal, verbose, debug or 1-3 (env CFN_RESPONSE_LOG_LEVEL)")
	flags.BoolP("verbose", "v", false, "Shorthand for --log-level verbose")
	flags.Bool("debug", false, "Shorthand for --log-level debug")
	flags.String("log-format", "", "Log format: pretty or json (env CFN_RESPONSE_LOG_FORMAT)")
}
