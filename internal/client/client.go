package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/lightspeed/internal/auth"
	"github.com/fivetwenty-io/lightspeed/internal/constants"
	"github.com/fivetwenty-io/lightspeed/internal/http"
	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
)

// Client implements the lightspeed.Client interface. It owns one transport
// and one RequestConfig, both fixed for its lifetime.
type Client struct {
	httpClient  *http.Client
	config      lightspeed.RequestConfig
	credentials auth.CredentialsProvider
}

// createHTTPClientOptions builds HTTP client options from options.
func createHTTPClientOptions(options *lightspeed.Options) []http.Option {
	var httpOpts []http.Option

	if options == nil {
		return httpOpts
	}

	if options.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(options.Logger))
	}

	if options.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if options.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(options.UserAgent))
	}

	if options.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(options.HTTPTimeout))
	}

	if options.MetricsRegisterer != nil {
		httpOpts = append(httpOpts, http.WithMetrics(options.MetricsRegisterer))
	}

	return httpOpts
}

// New creates a new Lightspeed API client for config. options may be nil.
func New(config lightspeed.RequestConfig, options *lightspeed.Options) (*Client, error) {
	if config == nil {
		return nil, lightspeed.ErrConfigRequired
	}

	httpClient, err := http.NewClient(createHTTPClientOptions(options)...)
	if err != nil {
		return nil, err
	}

	return newWithHTTPClient(config, httpClient), nil
}

func newWithHTTPClient(config lightspeed.RequestConfig, httpClient *http.Client) *Client {
	return &Client{
		httpClient:  httpClient,
		config:      config,
		credentials: auth.NewConfigCredentials(config),
	}
}

// Config returns the request configuration the client was built with.
func (c *Client) Config() lightspeed.RequestConfig {
	return c.config
}

// Account implements lightspeed.Client.Account.
func (c *Client) Account(ctx context.Context) (*lightspeed.Account, error) {
	envelope, err := getResource[lightspeed.AccountResponse](ctx, c, constants.AccountPath)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &envelope.Account, nil
}

// getResource resolves path, sends an authenticated GET and decodes the body
// as T. New endpoints only need a response type and a call site.
func getResource[T any](ctx context.Context, c *Client, path string) (*T, error) {
	url := c.config.ResolveURL(path)

	resp, err := c.httpClient.Get(ctx, url, c.credentials)
	if err != nil {
		return nil, err
	}

	var resource T

	err = json.Unmarshal(resp.Body, &resource)
	if err != nil {
		return nil, newDecodeError(fmt.Sprintf("%T", resource), err)
	}

	return &resource, nil
}

func newDecodeError(resource string, err error) *lightspeed.DecodeError {
	kind := lightspeed.DecodeKindSchema

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		kind = lightspeed.DecodeKindSyntax
	}

	return &lightspeed.DecodeError{Kind: kind, Resource: resource, Err: err}
}
