package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "botdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(os.TempDir(), "botdash.log"), cfg.Log.File)
	assert.Equal(t, "botdash", cfg.Telemetry.ServiceName)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, `
backend_url: https://bot.example.com/
log:
  level: warn
metrics:
  addr: 127.0.0.1:9100
`)
	t.Setenv(EnvConfigFile, path)
	t.Setenv("BOTDASH_LOG__LEVEL", "debug")
	t.Setenv("BOTDASH_TELEMETRY__SERVICE_NAME", "dash-env")

	cfg, err := Load(Options{Overrides: map[string]interface{}{"telemetry.service_name": "dash-flag"}})
	require.NoError(t, err)

	assert.Equal(t, "https://bot.example.com", cfg.BackendURL, "file value, trailing slash trimmed")
	assert.Equal(t, "debug", cfg.Log.Level, "env beats file")
	assert.Equal(t, "dash-flag", cfg.Telemetry.ServiceName, "overrides beat env")
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Addr)
}

func TestLoad_ExplicitFileWinsOverEnvPath(t *testing.T) {
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))
	path := writeFile(t, "backend_url: http://10.0.0.5:8001\n")

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8001", cfg.BackendURL)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name:    "missing file",
			opts:    Options{File: filepath.Join(os.TempDir(), "does-not-exist-botdash.yaml")},
			wantErr: "load config file",
		},
		{
			name:    "not an http url",
			opts:    Options{Overrides: map[string]interface{}{"backend_url": "localhost:8001"}},
			wantErr: "BackendURL",
		},
		{
			name:    "unknown level",
			opts:    Options{Overrides: map[string]interface{}{"log.level": "verbose"}},
			wantErr: "Level",
		},
		{
			name:    "bad metrics address",
			opts:    Options{Overrides: map[string]interface{}{"metrics.addr": "nine thousand"}},
			wantErr: "Addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigFile, "")
			_, err := Load(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "log.level", envKey("BOTDASH_LOG__LEVEL"))
	assert.Equal(t, "backend_url", envKey("BOTDASH_BACKEND_URL"))
	assert.Equal(t, "telemetry.service_name", envKey("BOTDASH_TELEMETRY__SERVICE_NAME"))
}
