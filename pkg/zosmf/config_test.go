package zosmf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://zosmf.mainframe.example.com
username: ibmuser
password: sys1
retry_max: 3
retry_wait_min: 1s
retry_wait_max: 30s
debug: true
`), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://zosmf.mainframe.example.com", config.BaseURL)
	assert.Equal(t, "ibmuser", config.Username)
	assert.Equal(t, "sys1", config.Password)
	assert.Equal(t, 3, config.RetryMax)
	assert.Equal(t, time.Second, config.RetryWaitMin)
	assert.Equal(t, 30*time.Second, config.RetryWaitMax)
	assert.True(t, config.Debug)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://zosmf.mainframe.example.com
username: ibmuser
`), 0o600))

	// Env wins over a key present in the file, and env-only keys absent
	// from the file are honored too.
	t.Setenv("ZOSMF_USERNAME", "envuser")
	t.Setenv("ZOSMF_PASSWORD", "envsecret")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://zosmf.mainframe.example.com", config.BaseURL)
	assert.Equal(t, "envuser", config.Username)
	assert.Equal(t, "envsecret", config.Password)
}

func TestLoadConfig_MissingBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("username: ibmuser\n"), 0o600))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrBaseURLRequired)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestConfig_WriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	original := &Config{
		BaseURL:  "https://zosmf.mainframe.example.com",
		Username: "ibmuser",
		RetryMax: 2,
	}
	require.NoError(t, original.WriteFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, original.BaseURL, loaded.BaseURL)
	assert.Equal(t, original.Username, loaded.Username)
	assert.Equal(t, original.RetryMax, loaded.RetryMax)
}
