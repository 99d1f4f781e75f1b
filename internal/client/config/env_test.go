package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("variables override earlier values", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("JOBMATCH_BASE_URL", "https://env.example.com/api")
		t.Setenv("JOBMATCH_REFRESH_TIMEOUT", "5s")
		t.Setenv("JOBMATCH_STORE_PASSPHRASE", "correct horse")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "https://env.example.com/api", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.RefreshTimeout)
		assert.Equal(t, "correct horse", cfg.StorePassphrase)
		assert.Equal(t, "sqlite", cfg.StoreBackend, "unset variables keep the old value")
	})

	t.Run("dotenv file from flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("JOBMATCH_LOG_BACKEND=logrus\nJOBMATCH_LOG_LEVEL=warn\n"), 0o600))
		t.Cleanup(func() {
			_ = os.Unsetenv("JOBMATCH_LOG_BACKEND")
			_ = os.Unsetenv("JOBMATCH_LOG_LEVEL")
		})
		// process environment wins over the file
		t.Setenv("JOBMATCH_LOG_LEVEL", "error")

		os.Args = []string{"testbin", "-env-file", path}
		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "logrus", cfg.LogBackend)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("missing dotenv file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-e", filepath.Join(t.TempDir(), "nope.env")}
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("malformed duration → panics", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("JOBMATCH_EXPIRY_MARGIN", "a while")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
