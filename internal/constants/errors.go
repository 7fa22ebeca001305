package constants

import "errors"

// Example application errors.
var (
	ErrAPIKeyRequired    = errors.New("API key is required (--key or LIGHTSPEED_KEY)")
	ErrAPISecretRequired = errors.New("API secret is required (--secret, LIGHTSPEED_SECRET or an interactive prompt)")
	ErrUnknownOutput     = errors.New("unknown output format, use table, json or yaml")
)
