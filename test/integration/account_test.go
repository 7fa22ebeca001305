//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
	"github.com/fivetwenty-io/lightspeed/pkg/lsclient"
)

func TestAccount_Live(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	options := &lightspeed.Options{}
	if config.Verbose {
		options.Logger = testLogger{t: t}
		options.Debug = true
	}

	client, err := lsclient.NewWithOptions(config.RequestConfig(t), options)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	account, err := client.Account(ctx)
	require.NoError(t, err)
	assert.Positive(t, account.ID)
	assert.Equal(t, config.APIKey, account.APIKey)
	assert.NotEmpty(t, account.Signout.Resource.Link)
}

func TestAccount_LiveInvalidSecret(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.APISecret = "invalid"

	client, err := lsclient.NewWithOptions(config.RequestConfig(t), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = client.Account(ctx)
	require.Error(t, err)
	assert.True(t, lightspeed.IsUnauthorized(err), "got %v", err)
}
