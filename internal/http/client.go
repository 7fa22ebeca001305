package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/net/http/httpguts"

	"github.com/fivetwenty-io/lightspeed/internal/auth"
	"github.com/fivetwenty-io/lightspeed/internal/constants"
	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
)

// Logger interface for HTTP logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is a connection-pooled HTTP client for the Lightspeed API. It sends
// the default headers on every request and never retries. Safe for
// concurrent use.
type Client struct {
	httpClient *retryablehttp.Client
	headers    http.Header
	userAgent  string
	timeout    time.Duration
	logger     Logger
	debug      bool
	registerer prometheus.Registerer
	metrics    *metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds the duration of a single request. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithMetrics registers request metrics on registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = registerer
	}
}

// DefaultUserAgent identifies the SDK and the Go runtime.
func DefaultUserAgent() string {
	return fmt.Sprintf("%s/%s (go/%s)", constants.SDKName, constants.SDKVersion, runtime.Version())
}

// NewClient creates a new HTTP client. It fails with a
// *lightspeed.TransportInitError when a default header is invalid or the
// metrics cannot be registered.
func NewClient(opts ...Option) (*Client, error) {
	client := &Client{
		userAgent: DefaultUserAgent(),
		timeout:   constants.NoHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	headers, err := defaultHeaders(client.userAgent)
	if err != nil {
		return nil, &lightspeed.TransportInitError{Err: err}
	}

	client.headers = headers

	if client.registerer != nil {
		client.metrics, err = newMetrics(client.registerer)
		if err != nil {
			return nil, &lightspeed.TransportInitError{Err: err}
		}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = client.timeout

	if client.debug && client.logger != nil {
		retryClient.RequestLogHook = client.logRequest
		retryClient.ResponseLogHook = client.logResponse
	}

	client.httpClient = retryClient

	return client, nil
}

func defaultHeaders(userAgent string) (http.Header, error) {
	headers := http.Header{}

	for name, value := range map[string]string{
		constants.HeaderAccept:    constants.MediaTypeJSON,
		constants.HeaderUserAgent: userAgent,
	} {
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, fmt.Errorf("%w: %s %q", lightspeed.ErrInvalidHeader, name, value)
		}

		headers.Set(name, value)
	}

	return headers, nil
}

// neverRetry hands every outcome straight back to the caller.
func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	URL     string
	Auth    auth.CredentialsProvider
	Headers map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do sends req and reads the whole response body. A transport failure or a
// non-2xx status returns a *lightspeed.RequestError; for a non-2xx status
// the Response is returned as well.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, nil)
	if err != nil {
		return nil, &lightspeed.RequestError{
			Method: req.Method,
			URL:    req.URL,
			Err:    fmt.Errorf("creating request: %w", err),
		}
	}

	for name, values := range c.headers {
		httpReq.Header[name] = append([]string(nil), values...)
	}

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	if req.Auth != nil {
		req.Auth.Credentials().Apply(httpReq.Request)
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(req.Method, "error", time.Since(start))

		return nil, &lightspeed.RequestError{Method: req.Method, URL: req.URL, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)

	c.metrics.observe(req.Method, strconv.Itoa(httpResp.StatusCode), time.Since(start))

	if err != nil {
		return nil, &lightspeed.RequestError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: httpResp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, &lightspeed.RequestError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: httpResp.StatusCode,
			Body:       truncate(body, constants.MaxErrorBodySize),
			Err:        fmt.Errorf("%w: %s", lightspeed.ErrUnexpectedStatus, httpResp.Status),
		}
	}

	return resp, nil
}

// Get performs a GET request authenticated by creds.
func (c *Client) Get(ctx context.Context, url string, creds auth.CredentialsProvider) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		URL:    url,
		Auth:   creds,
	})
}

// UserAgent returns the User-Agent header sent with every request.
func (c *Client) UserAgent() string {
	return c.headers.Get(constants.HeaderUserAgent)
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, _ int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"headers": redactHeaders(req.Header),
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":      resp.Request.Method,
		"url":         resp.Request.URL.String(),
		"status_code": resp.StatusCode,
	})
}

func redactHeaders(headers http.Header) map[string]string {
	redacted := make(map[string]string, len(headers))

	for name := range headers {
		if http.CanonicalHeaderKey(name) == constants.HeaderAuthorization {
			redacted[name] = constants.RedactedValue

			continue
		}

		redacted[name] = headers.Get(name)
	}

	return redacted
}

func truncate(body []byte, limit int) []byte {
	if len(body) <= limit {
		return body
	}

	return body[:limit]
}
