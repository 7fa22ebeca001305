package auth

import (
	"net/http"

	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
)

// CredentialsProvider supplies basic authentication credentials.
type CredentialsProvider interface {
	Credentials() Credentials
}

// Credentials is a basic authentication username and password.
type Credentials struct {
	Username string
	Password string
	// HasPassword is false when no secret is configured. The header is sent
	// with an empty password in that case.
	HasPassword bool
}

// Apply sets the Authorization header on req (RFC 7617 encoding).
func (c Credentials) Apply(req *http.Request) {
	req.SetBasicAuth(c.Username, c.Password)
}

// ConfigCredentials reads credentials from a RequestConfig on every call.
type ConfigCredentials struct {
	config lightspeed.RequestConfig
}

// NewConfigCredentials creates a provider backed by config.
func NewConfigCredentials(config lightspeed.RequestConfig) *ConfigCredentials {
	return &ConfigCredentials{config: config}
}

// Credentials implements CredentialsProvider.
func (p *ConfigCredentials) Credentials() Credentials {
	secret, ok := p.config.APISecret()

	return Credentials{
		Username:    p.config.APIKey(),
		Password:    secret,
		HasPassword: ok,
	}
}
