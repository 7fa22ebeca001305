package lightspeed_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/lightspeed/pkg/lightspeed"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	var logger lightspeed.Logger = lightspeed.NewZerologLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	logger.Debug("dropped", nil)
	logger.Info("HTTP Response", map[string]interface{}{"status_code": 200})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}

	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "HTTP Response", entry["message"])
	assert.InDelta(t, 200, entry["status_code"], 0)

	buf.Reset()
	logger.Warn("slow", nil)
	logger.Error("failed", map[string]interface{}{"url": "https://api.webshopapp.com/nl/account.json"})
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"url":"https://api.webshopapp.com/nl/account.json"`)
}
