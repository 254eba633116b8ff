// Package http provides the client response deliveries go through. Plain
// http and https URLs use a standard http.Client; lambda://<function>/<path>
// URLs are delivered by invoking the function synchronously with an API
// Gateway v2 proxy event, which makes it possible to point a stack at a local
// or test receiver implemented as a Lambda.
package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// LambdaInvoker is the part of the Lambda API the client needs
type LambdaInvoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Client wraps the standard http.Client and adds Lambda invocation support
type Client struct {
	*http.Client

	once         sync.Once
	lambdaClient LambdaInvoker
	lambdaErr    error
}

// NewClient creates a client backed by http.DefaultClient. The AWS
// configuration is only loaded when the first lambda:// request is made.
func NewClient() *Client {
	return NewClientWithHTTPClient(http.DefaultClient)
}

// NewClientWithHTTPClient creates a new client with a custom HTTP client
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Client: httpClient}
}

// NewClientWithLambda creates a client that invokes functions through invoker
func NewClientWithLambda(httpClient *http.Client, invoker LambdaInvoker) *Client {
	c := NewClientWithHTTPClient(httpClient)
	c.once.Do(func() { c.lambdaClient = invoker })
	return c
}

// DefaultClient is the client used when no other is configured
var DefaultClient = NewClient()

// Do performs the request, routing to Lambda or HTTP based on the URL scheme
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme == "lambda" {
		return c.doLambda(req)
	}
	return c.Client.Do(req)
}

func (c *Client) invoker(ctx context.Context) (LambdaInvoker, error) {
	c.once.Do(func() {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			c.lambdaErr = fmt.Errorf("loading AWS config: %w", err)
			return
		}
		c.lambdaClient = lambda.NewFromConfig(cfg)
	})
	return c.lambdaClient, c.lambdaErr
}

// doLambda handles Lambda invocations
func (c *Client) doLambda(req *http.Request) (*http.Response, error) {
	// Extract Lambda function name from hostname
	functionName := req.URL.Host
	if functionName == "" {
		return nil, fmt.Errorf("lambda URL missing function name")
	}

	ctx := req.Context()
	invoker, err := c.invoker(ctx)
	if err != nil {
		return nil, err
	}

	// Convert HTTP request to Lambda proxy event
	event, err := httpRequestToLambdaEvent(req)
	if err != nil {
		return nil, fmt.Errorf("converting request to Lambda event: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshaling Lambda event: %w", err)
	}

	output, err := invoker.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(functionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return nil, fmt.Errorf("invoking Lambda function: %w", err)
	}

	// Check for Lambda errors
	if output.FunctionError != nil {
		return nil, fmt.Errorf("Lambda function error: %s", *output.FunctionError)
	}

	resp, err := lambdaResponseToHTTP(output.Payload)
	if err != nil {
		return nil, err
	}
	resp.Request = req
	return resp, nil
}

// httpRequestToLambdaEvent converts an http.Request to an API Gateway v2 HTTP proxy event
func httpRequestToLambdaEvent(req *http.Request) (*events.APIGatewayV2HTTPRequest, error) {
	var bodyString string

	if req.Body != nil {
		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		bodyString = string(bodyBytes)
	}

	// Build headers map
	headers := make(map[string]string)
	for key, values := range req.Header {
		headers[key] = strings.Join(values, ",")
	}
	if req.Host != "" {
		headers["Host"] = req.Host
	}
	if req.ContentLength > 0 {
		headers["Content-Length"] = fmt.Sprintf("%d", req.ContentLength)
	}

	// Build query string parameters
	queryParams := make(map[string]string)
	for key, values := range req.URL.Query() {
		queryParams[key] = strings.Join(values, ",")
	}

	now := time.Now()
	event := &events.APIGatewayV2HTTPRequest{
		Version:               "2.0",
		RouteKey:              fmt.Sprintf("%s %s", req.Method, req.URL.Path),
		RawPath:               req.URL.Path,
		RawQueryString:        req.URL.RawQuery,
		Headers:               headers,
		QueryStringParameters: queryParams,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			APIID:        "lambda-adapter",
			DomainName:   "lambda.local",
			DomainPrefix: "lambda",
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    req.Method,
				Path:      req.URL.Path,
				Protocol:  "HTTP/1.1",
				SourceIP:  "127.0.0.1",
				UserAgent: "cfnresponse",
			},
			RequestID: fmt.Sprintf("cfnresponse-%d", now.UnixNano()),
			RouteKey:  fmt.Sprintf("%s %s", req.Method, req.URL.Path),
			Stage:     "$default",
			Time:      now.Format("02/Jan/2006:15:04:05 -0700"),
			TimeEpoch: now.UnixMilli(),
		},
		Body:            bodyString,
		IsBase64Encoded: false,
	}

	return event, nil
}

// lambdaResponseToHTTP converts a Lambda response to an http.Response
func lambdaResponseToHTTP(payload []byte) (*http.Response, error) {
	var lambdaResp events.APIGatewayV2HTTPResponse

	if err := json.Unmarshal(payload, &lambdaResp); err != nil {
		return nil, fmt.Errorf("parsing Lambda response: %w", err)
	}

	// A receiver that returns nothing but a body still acknowledged the PUT
	if lambdaResp.StatusCode == 0 {
		lambdaResp.StatusCode = http.StatusOK
	}

	resp := &http.Response{
		StatusCode: lambdaResp.StatusCode,
		Status:     fmt.Sprintf("%d %s", lambdaResp.StatusCode, http.StatusText(lambdaResp.StatusCode)),
		Header:     make(http.Header),
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
	}

	for key, value := range lambdaResp.Headers {
		resp.Header.Set(key, value)
	}

	bodyBytes := []byte(lambdaResp.Body)
	if lambdaResp.IsBase64Encoded && lambdaResp.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(lambdaResp.Body)
		if err != nil {
			return nil, fmt.Errorf("decoding Lambda response body: %w", err)
		}
		bodyBytes = decoded
	}
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	resp.ContentLength = int64(len(bodyBytes))

	return resp, nil
}
