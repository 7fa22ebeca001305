package lsclient

import (
	"fmt"

	"github.com/fivetwenty-io/lightspeed/internal/client"
	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
)

// New creates a new Lightspeed API client with default options.
func New(config lightspeed.RequestConfig) (lightspeed.Client, error) {
	return NewWithOptions(config, nil)
}

// NewWithOptions creates a new Lightspeed API client. options may be nil.
func NewWithOptions(config lightspeed.RequestConfig, options *lightspeed.Options) (lightspeed.Client, error) {
	if config == nil {
		return nil, lightspeed.ErrConfigRequired
	}

	cli, err := client.New(config, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithCredentials creates a client for the hosted API from an API key,
// secret, cluster and language.
func NewWithCredentials(key, secret string, cluster lightspeed.Cluster, language lightspeed.Language) (lightspeed.Client, error) {
	return New(lightspeed.NewAPIConfig(key, secret, cluster, language))
}
