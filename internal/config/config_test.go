package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{"PORT", "DB_DRIVER", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "METRICS_ENABLED"}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "./data/ledger.db", cfg.DBDSN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://ledger@localhost/ledger?sslmode=disable")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "postgres://ledger@localhost/ledger?sslmode=disable", cfg.DBDSN)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "PORT=6000\nDB_DSN=/tmp/from-file.db\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := Load(path)

	// Values already in the environment win over the file.
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "/tmp/from-file.db", cfg.DBDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidBoolFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("METRICS_ENABLED", "sometimes")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.True(t, cfg.MetricsEnabled)
}
