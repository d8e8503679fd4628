package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// normalize treats nil and empty command lists alike.
func normalize(c Config) Config {
	if len(c.SelfTest.Commands) == 0 {
		c.SelfTest.Commands = nil
	}
	return c
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, normalize(Default()), normalize(cfg))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: console
server:
  addr: 127.0.0.1:9000
  request_timeout: 5s
selftest:
  commands:
    - [go, vet, ./...]
  timeout: 1m
integrations:
  gonum_plot: false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout, "unset keys keep defaults")
	assert.Equal(t, [][]string{{"go", "vet", "./..."}}, cfg.SelfTest.Commands)
	assert.Equal(t, time.Minute, cfg.SelfTest.Timeout)
	assert.True(t, cfg.Integrations.GonumStats)
	assert.False(t, cfg.Integrations.GonumPlot)
}

func TestEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BIOSPEAK_SERVER_ADDR", ":9999")
	t.Setenv("BIOSPEAK_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  format: xml\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "log.format")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.MaxSessions = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SelfTest.Commands = [][]string{{}}
	assert.Error(t, cfg.Validate())
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, WriteDefault(path))
	assert.Error(t, WriteDefault(path), "existing files are not overwritten")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "read_timeout: 10s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, normalize(Default()), normalize(cfg))
}
