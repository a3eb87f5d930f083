package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/truestock/truestock/internal/adapters/outbound/logging"
	"github.com/truestock/truestock/internal/domain"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(domain.LogConfig{Level: "info", Format: domain.LogFormatJSON}, &buf, false)
	require.NoError(t, err)

	log.Info("inventory updated")
	log.Debug("hidden")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "inventory updated", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(domain.LogConfig{}, &buf, false)
	require.NoError(t, err)

	log.Info("quiet")
	log.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(domain.LogConfig{Level: "error"}, &buf, true)
	require.NoError(t, err)

	log.Debug("details")
	assert.Contains(t, buf.String(), "details")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New(domain.LogConfig{Level: "chatty"}, &bytes.Buffer{}, false)
	assert.Error(t, err)
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := logging.New(domain.LogConfig{Format: "xml"}, &bytes.Buffer{}, false)
	assert.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "truestock.log")
	log, err := logging.New(domain.LogConfig{Level: "info", File: file}, &buf, false)
	require.NoError(t, err)

	log.Info("inventory updated", zap.String("id", "L001"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "inventory updated", entry["msg"])
	assert.Equal(t, "L001", entry["id"])
	assert.Contains(t, buf.String(), "inventory updated")
}
