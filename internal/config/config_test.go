package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlog.yaml")
	content := `
base_url: https://api.playlog.example
api_key: file-key
db_path: /tmp/playlog-test.db
timeout_seconds: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.playlog.example", cfg.BaseURL)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "/tmp/playlog-test.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlog.yaml")
	content := `
base_url: https://file.playlog.example
api_key: file-key
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PLAYLOG_API_KEY", "env-key")
	t.Setenv("PLAYLOG_TIMEOUT_SECONDS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://file.playlog.example", cfg.BaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}
