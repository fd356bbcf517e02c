package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	// Given: no config file on disk
	path := filepath.Join(t.TempDir(), "missing.yml")

	// When: loading
	conf, err := Load(path)

	// Then: every field has its default
	require.NoError(t, err)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, ":8080", conf.HTTPAddr)
	assert.Equal(t, 2*time.Hour, conf.SessionTTL)
	assert.Equal(t, 5*time.Minute, conf.SweepInterval)
	assert.Equal(t, 10*time.Second, conf.ShutdownTimeout)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, "log-level: debug\nhttp-addr: 127.0.0.1:9000\nsession-ttl: 30m\n")

	conf, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", conf.HTTPAddr)
	assert.Equal(t, 30*time.Minute, conf.SessionTTL)
	assert.Equal(t, 5*time.Minute, conf.SweepInterval)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "http-addr: 127.0.0.1:9000\n")
	t.Setenv("HTTP_ADDR", ":7000")

	conf, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":7000", conf.HTTPAddr)
}

func TestLoadRejectsBadInterval(t *testing.T) {
	path := writeConfig(t, "sweep-interval: -1s\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Panics(t, func() { MustLoad(path) })
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "session-ttl: [not a duration\n")

	_, err := Load(path)

	require.Error(t, err)
}
