package constants

import "time"

// SDK identification.
const (
	// SDKName is the product token sent in the User-Agent header.
	SDKName = "Lightspeed-API"

	// SDKVersion is the version of this client.
	SDKVersion = "0.1.0"
)

// Resource paths relative to the language segment.
const (
	// AccountPath is the account resource.
	AccountPath = "/account.json"
)

// HTTP header names and values.
const (
	// HeaderAccept is the Accept header name.
	HeaderAccept = "Accept"

	// HeaderUserAgent is the User-Agent header name.
	HeaderUserAgent = "User-Agent"

	// HeaderAuthorization is the Authorization header name.
	HeaderAuthorization = "Authorization"

	// MediaTypeJSON is the only representation the API serves.
	MediaTypeJSON = "application/json"
)

// HTTP and network timeouts.
const (
	// NoHTTPTimeout leaves request duration to the caller's context.
	NoHTTPTimeout time.Duration = 0

	// ShortHTTPTimeout is used by examples for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Response handling.
const (
	// MaxErrorBodySize caps the response body kept on a RequestError.
	MaxErrorBodySize = 64 << 10

	// RedactedValue replaces secrets in debug logs.
	RedactedValue = "[REDACTED]"
)

// Metrics.
const (
	// MetricsNamespace prefixes every collector name.
	MetricsNamespace = "lightspeed_client"
)
