package observability

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/iftekharanwar/RareCare/internal/config"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordAction("session_started")
	m.RecordAction("session_started")
	m.RecordRequest("/portal", "GET", 200, 0)
	m.RecordError("/portal/tab", "PUT", "UNKNOWN_TAB_SELECTOR")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Actions["session_started"])
	assert.Equal(t, int64(1), snap.Requests["/portal|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/portal/tab|PUT|UNKNOWN_TAB_SELECTOR"])

	snap.Actions["session_started"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Actions["session_started"])
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordAction("x")
	m.RecordRequest("/", "GET", 200, 0)
	assert.Equal(t, Snapshot{}, m.Snapshot())
}

func TestNewLoggerWithFile(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{
		Level:     "debug",
		File:      filepath.Join(t.TempDir(), "rarecare.log"),
		MaxSizeMB: 1,
	})
	require.NoError(t, err)
	logger.Debug("hello")
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "verbose"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}
