package lightspeed

import (
	"fmt"
	"strings"
)

// Cluster selects the API region a shop is hosted in.
type Cluster int

const (
	// ClusterEU1 is the European cluster (api.webshopapp.com).
	ClusterEU1 Cluster = iota
	// ClusterUS1 is the North American cluster (api.shoplightspeed.com).
	ClusterUS1
)

// BaseURL returns the scheme, host and trailing slash for the cluster.
// Unknown clusters yield an empty string.
func (c Cluster) BaseURL() string {
	switch c {
	case ClusterEU1:
		return "https://api.webshopapp.com/"
	case ClusterUS1:
		return "https://api.shoplightspeed.com/"
	default:
		return ""
	}
}

// String returns the cluster name.
func (c Cluster) String() string {
	switch c {
	case ClusterEU1:
		return "eu1"
	case ClusterUS1:
		return "us1"
	default:
		return fmt.Sprintf("Cluster(%d)", int(c))
	}
}

// ParseCluster parses a cluster name such as "eu1" or "US1".
func ParseCluster(name string) (Cluster, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "eu1":
		return ClusterEU1, nil
	case "us1":
		return ClusterUS1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCluster, name)
	}
}

// Language selects the shop language used in request paths.
type Language int

const (
	// LanguageNL is Dutch.
	LanguageNL Language = iota
	// LanguageEN is English.
	LanguageEN
)

// Code returns the two-letter path segment for the language.
func (l Language) Code() string {
	switch l {
	case LanguageNL:
		return "nl"
	case LanguageEN:
		return "en"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (l Language) String() string {
	if code := l.Code(); code != "" {
		return code
	}

	return fmt.Sprintf("Language(%d)", int(l))
}

// ParseLanguage parses a two-letter language code such as "nl" or "EN".
func ParseLanguage(code string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "nl":
		return LanguageNL, nil
	case "en":
		return LanguageEN, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
}

// RequestConfig turns resource paths into absolute URLs and supplies the
// credentials for a request.
//
// Implementations must be safe for concurrent use and must not perform I/O.
// APIConfig targets the hosted API; lightspeedtest.Config targets a stub
// server.
type RequestConfig interface {
	// ResolveURL returns the absolute URL for a resource path. A leading
	// slash on path is optional and never produces a doubled separator.
	ResolveURL(path string) string
	// ClusterURL returns the scheme, host and trailing slash of the region.
	ClusterURL() string
	// LanguageSegment returns the two-letter language code.
	LanguageSegment() string
	// APIKey returns the basic auth username.
	APIKey() string
	// APISecret returns the basic auth password. The boolean is false when
	// no secret is configured, which is distinct from an empty secret.
	APISecret() (string, bool)
}

// APIConfig is the RequestConfig for the hosted Lightspeed eCom API.
// The zero value is not useful; build one with NewAPIConfig.
type APIConfig struct {
	key      string
	secret   string
	cluster  Cluster
	language Language
}

// NewAPIConfig creates a configuration for the given credentials, cluster
// and language. The result is immutable.
func NewAPIConfig(key, secret string, cluster Cluster, language Language) *APIConfig {
	return &APIConfig{
		key:      key,
		secret:   secret,
		cluster:  cluster,
		language: language,
	}
}

// ResolveURL implements RequestConfig.ResolveURL.
func (c *APIConfig) ResolveURL(path string) string {
	return c.String() + strings.TrimPrefix(path, "/")
}

// ClusterURL implements RequestConfig.ClusterURL.
func (c *APIConfig) ClusterURL() string {
	return c.cluster.BaseURL()
}

// LanguageSegment implements RequestConfig.LanguageSegment.
func (c *APIConfig) LanguageSegment() string {
	return c.language.Code()
}

// APIKey implements RequestConfig.APIKey.
func (c *APIConfig) APIKey() string {
	return c.key
}

// APISecret implements RequestConfig.APISecret. The secret is always present.
func (c *APIConfig) APISecret() (string, bool) {
	return c.secret, true
}

// Cluster returns the configured cluster.
func (c *APIConfig) Cluster() Cluster {
	return c.cluster
}

// Language returns the configured language.
func (c *APIConfig) Language() Language {
	return c.language
}

// String returns the base URL all resource paths are joined to,
// "<cluster base URL><language code>/". Credentials are not included.
func (c *APIConfig) String() string {
	return c.ClusterURL() + c.LanguageSegment() + "/"
}
