package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("PORTAL_SUBMIT_DELAY_MS", "")
	t.Setenv("LOG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 2*time.Second, cfg.Portal.SubmitDelay())
	assert.Equal(t, "", cfg.Logger.File)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PORTAL_SUBMIT_DELAY_MS", "250")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")
	t.Setenv("LOG_FILE_MAX_SIZE_MB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.Portal.SubmitDelay())
	assert.Equal(t, time.Duration(0), cfg.App.RequestTimeout())
	assert.Equal(t, 10, cfg.Logger.MaxSizeMB)
}

func TestLoadRejectsNonPositiveDelay(t *testing.T) {
	for _, val := range []string{"0", "-1"} {
		t.Run(val, func(t *testing.T) {
			t.Setenv("PORTAL_SUBMIT_DELAY_MS", val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "PORTAL_SUBMIT_DELAY_MS")
		})
	}
}
