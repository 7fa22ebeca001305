package auth_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/lightspeed/internal/auth"
	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type secretlessConfig struct {
	lightspeed.RequestConfig
}

func (secretlessConfig) APIKey() string { return "anonymous" }

func (secretlessConfig) APISecret() (string, bool) { return "", false }

func TestConfigCredentials(t *testing.T) {
	t.Parallel()

	t.Run("api config", func(t *testing.T) {
		t.Parallel()

		config := lightspeed.NewAPIConfig("foo", "bar", lightspeed.ClusterEU1, lightspeed.LanguageNL)
		creds := auth.NewConfigCredentials(config).Credentials()

		assert.Equal(t, "foo", creds.Username)
		assert.Equal(t, "bar", creds.Password)
		assert.True(t, creds.HasPassword)
	})

	t.Run("absent secret", func(t *testing.T) {
		t.Parallel()

		creds := auth.NewConfigCredentials(secretlessConfig{}).Credentials()

		assert.Equal(t, "anonymous", creds.Username)
		assert.Empty(t, creds.Password)
		assert.False(t, creds.HasPassword)
	})
}

func TestCredentials_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		creds    auth.Credentials
		expected string
	}{
		{
			name:     "key and secret",
			creds:    auth.Credentials{Username: "foo", Password: "bar", HasPassword: true},
			expected: "foo:bar",
		},
		{
			name:     "empty secret",
			creds:    auth.Credentials{Username: "foo", HasPassword: true},
			expected: "foo:",
		},
		{
			name:     "absent secret",
			creds:    auth.Credentials{Username: "foo"},
			expected: "foo:",
		},
		{
			name:     "empty credentials",
			creds:    auth.Credentials{},
			expected: ":",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequest(http.MethodGet, "https://api.webshopapp.com/nl/account.json", nil)
			require.NoError(t, err)

			tt.creds.Apply(req)

			expected := "Basic " + base64.StdEncoding.EncodeToString([]byte(tt.expected))
			assert.Equal(t, expected, req.Header.Get("Authorization"))
		})
	}
}
