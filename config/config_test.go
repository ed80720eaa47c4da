package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_URL", filepath.Join(t.TempDir(), "brain.db"))
}

func TestLoadDefaults(t *testing.T) {
	requiredEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Host.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 45*time.Second, cfg.Database.IdleTimeout)
	assert.Zero(t, cfg.JWT.TTL)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.False(t, cfg.App.Production())
	assert.Equal(t, defaultOrigins, cfg.CORSOrigins)
	assert.Empty(t, cfg.Host.TrustedProxies)
}

func TestLoadFromEnv(t *testing.T) {
	requiredEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_CONNECT_TIMEOUT", "2s")
	t.Setenv("JWT_TTL", "24h")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example/")
	t.Setenv("FRONTEND_URL", "https://brain.example")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.7")

	cfg, err := load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Host.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 2*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.True(t, cfg.App.Production())
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://brain.example"}, cfg.CORSOrigins)
	assert.Equal(t, 0.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.7"}, cfg.Host.TrustedProxies)
}

func TestLoadConfigFile(t *testing.T) {
	requiredEnv(t)
	t.Setenv("PORT", "9000")

	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[host]
port = 4000

[app]
log_level = "warn"
`), 0o600))

	cfg, err := load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Host.Port, "env wins over the file")
	assert.Equal(t, "warn", cfg.App.LogLevel)

	_, err = load(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET": ""}},
		{"missing database url", map[string]string{"DB_URL": ""}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"bad driver", map[string]string{"DB_DRIVER": "mongo"}},
		{"bad port", map[string]string{"PORT": "70000"}},
		{"negative ttl", map[string]string{"JWT_TTL": "-1h"}},
		{"zero burst", map[string]string{"RATE_LIMIT_BURST": "0"}},
		{"bad trusted proxy", map[string]string{"TRUSTED_PROXIES": "proxy.internal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requiredEnv(t)
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load(viper.New(), "")
			assert.Error(t, err)
		})
	}
}
