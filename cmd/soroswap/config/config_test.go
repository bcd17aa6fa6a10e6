package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/defistate/soroswap-client-go/networks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// clearEnv isolates a test from the caller's environment and from any .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{EnvAPIKey, EnvBaseURL, EnvNetwork} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("should read the yaml file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "apiKey: sk_file\nbaseUrl: https://api.example.com\nnetwork: testnet\ntimeout: 5s\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "sk_file", cfg.APIKey)
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, networks.Testnet, cfg.Network)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("should let the environment override the file", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "apiKey: sk_file\nnetwork: testnet\n")
		t.Setenv(EnvAPIKey, "sk_env")
		t.Setenv(EnvNetwork, "mainnet")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "sk_env", cfg.APIKey)
		assert.Equal(t, networks.Mainnet, cfg.Network)
	})

	t.Run("should load a .env file", func(t *testing.T) {
		clearEnv(t)
		require.NoError(t, os.Unsetenv(EnvAPIKey))
		t.Cleanup(func() { _ = os.Unsetenv(EnvAPIKey) })
		require.NoError(t, os.WriteFile(".env", []byte(EnvAPIKey+"=sk_dotenv\n"), 0o600))

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "sk_dotenv", cfg.APIKey)
	})

	t.Run("should require an api key", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadConfig(writeConfig(t, "network: mainnet\n"))
		assert.Error(t, err)
	})

	t.Run("should reject an unknown network", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadConfig(writeConfig(t, "apiKey: k\nnetwork: futurenet\n"))
		assert.Error(t, err)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
