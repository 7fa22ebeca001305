//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey    string
	APISecret string
	Cluster   string
	Language  string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:    os.Getenv("LIGHTSPEED_KEY"),
		APISecret: os.Getenv("LIGHTSPEED_SECRET"),
		Cluster:   getenv("LIGHTSPEED_CLUSTER", "eu1"),
		Language:  getenv("LIGHTSPEED_LANGUAGE", "nl"),
		Verbose:   os.Getenv("LIGHTSPEED_VERBOSE") == "true",
	}
}

func getenv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" || config.APISecret == "" {
		t.Skip("LIGHTSPEED_KEY or LIGHTSPEED_SECRET not set, skipping integration test")
	}
}

// RequestConfig builds the hosted API configuration, failing the test on an
// unknown cluster or language.
func (config *TestConfig) RequestConfig(t *testing.T) *lightspeed.APIConfig {
	t.Helper()

	cluster, err := lightspeed.ParseCluster(config.Cluster)
	if err != nil {
		t.Fatalf("LIGHTSPEED_CLUSTER: %v", err)
	}

	language, err := lightspeed.ParseLanguage(config.Language)
	if err != nil {
		t.Fatalf("LIGHTSPEED_LANGUAGE: %v", err)
	}

	return lightspeed.NewAPIConfig(config.APIKey, config.APISecret, cluster, language)
}

// testLogger writes client logs through t.Log.
type testLogger struct {
	t *testing.T
}

func (l testLogger) Debug(msg string, fields map[string]interface{}) { l.t.Log("DEBUG", msg, fields) }
func (l testLogger) Info(msg string, fields map[string]interface{})  { l.t.Log("INFO", msg, fields) }
func (l testLogger) Warn(msg string, fields map[string]interface{})  { l.t.Log("WARN", msg, fields) }
func (l testLogger) Error(msg string, fields map[string]interface{}) { l.t.Log("ERROR", msg, fields) }
