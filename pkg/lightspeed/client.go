package lightspeed

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AccountClient provides access to the account endpoint.
type AccountClient interface {
	// Account fetches the account the configured credentials belong to.
	Account(ctx context.Context) (*Account, error)
}

// Client is a Lightspeed eCom API client. Implementations are safe for
// concurrent use.
type Client interface {
	AccountClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Options tunes a client built by lsclient.NewWithOptions. The zero value
// gives the defaults: no logging, no metrics, no timeout and the SDK user
// agent.
//
// # Timeouts
//
// Requests carry the context passed to client methods; prefer deadlines on
// that context. HTTPTimeout is a coarse bound on a whole request (dial, TLS,
// headers and body) for callers that cannot plumb a context.
type Options struct {
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Debug: logs every request and response at debug level when a Logger
	// is set. Credentials are never logged.
	Debug bool
	// UserAgent: overrides the default User-Agent header. An invalid header
	// value makes the constructor fail with a TransportInitError.
	UserAgent string
	// HTTPTimeout: optional timeout for a single request. Zero means none.
	HTTPTimeout time.Duration
	// MetricsRegisterer: when set, request counters and latency histograms
	// are registered on it.
	MetricsRegisterer prometheus.Registerer
}
