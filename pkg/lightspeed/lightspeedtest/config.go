// Package lightspeedtest provides a RequestConfig and a stub server for
// exercising Lightspeed clients without a live shop.
package lightspeedtest

import (
	"strings"

	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
)

var _ lightspeed.RequestConfig = (*Config)(nil)

// Config is a RequestConfig that sends every request to BaseURL, typically
// the URL of an httptest server. Cluster and language are empty. The
// credentials are empty unless set; the secret is present unless OmitSecret
// is true.
type Config struct {
	BaseURL    string
	Key        string
	Secret     string
	OmitSecret bool
}

// NewConfig creates a Config for baseURL with empty credentials.
func NewConfig(baseURL string) *Config {
	return &Config{BaseURL: baseURL}
}

// ResolveURL joins BaseURL and path with exactly one slash.
func (c *Config) ResolveURL(path string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// ClusterURL implements lightspeed.RequestConfig.ClusterURL.
func (c *Config) ClusterURL() string {
	return ""
}

// LanguageSegment implements lightspeed.RequestConfig.LanguageSegment.
func (c *Config) LanguageSegment() string {
	return ""
}

// APIKey implements lightspeed.RequestConfig.APIKey.
func (c *Config) APIKey() string {
	return c.Key
}

// APISecret implements lightspeed.RequestConfig.APISecret.
func (c *Config) APISecret() (string, bool) {
	if c.OmitSecret {
		return "", false
	}

	return c.Secret, true
}
