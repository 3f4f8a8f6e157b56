package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvAddr, EnvDB, EnvJWTSecret, EnvAccessTTL, EnvRefreshTTL, EnvLogLevel,
		EnvGeneratorInterval, EnvCORSOrigins, EnvRateLimit, EnvRateBurst,
		EnvAdminUsername, EnvAdminPassword, EnvSeed,
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvJWTSecret, testSecret)

	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "movieshelf.db", cfg.DBPath)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 5*time.Second, cfg.GeneratorInterval)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.InDelta(t, 10, cfg.RateLimit, 0.001)
	assert.Equal(t, 20, cfg.RateBurst)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Empty(t, cfg.AdminPassword)
	assert.False(t, cfg.Seed)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAddr, "127.0.0.1:9000")
	t.Setenv(EnvDB, "/tmp/shelf.db")
	t.Setenv(EnvJWTSecret, testSecret)
	t.Setenv(EnvAccessTTL, "5m")
	t.Setenv(EnvRefreshTTL, "24h")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvGeneratorInterval, "1s")
	t.Setenv(EnvCORSOrigins, "http://localhost:3000, https://shelf.example.com,")
	t.Setenv(EnvRateLimit, "2.5")
	t.Setenv(EnvRateBurst, "5")
	t.Setenv(EnvAdminUsername, "root")
	t.Setenv(EnvAdminPassword, "s3cret-pass")
	t.Setenv(EnvSeed, "true")

	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/tmp/shelf.db", cfg.DBPath)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.GeneratorInterval)
	assert.Equal(t, []string{"http://localhost:3000", "https://shelf.example.com"}, cfg.CORSOrigins)
	assert.InDelta(t, 2.5, cfg.RateLimit, 0.001)
	assert.Equal(t, 5, cfg.RateBurst)
	assert.Equal(t, "root", cfg.AdminUsername)
	assert.Equal(t, "s3cret-pass", cfg.AdminPassword)
	assert.True(t, cfg.Seed)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAddr, ":9000")
	t.Setenv(EnvDB, "env.db")
	t.Setenv(EnvJWTSecret, testSecret)

	cfg, err := Load([]string{"-addr", ":7000", "-db", "flag.db", "-seed"}, "")
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "flag.db", cfg.DBPath)
	assert.True(t, cfg.Seed)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv не перезаписывает уже установленные переменные
	require.NoError(t, os.Unsetenv(EnvJWTSecret))
	require.NoError(t, os.Unsetenv(EnvDB))
	t.Cleanup(func() {
		_ = os.Unsetenv(EnvJWTSecret)
		_ = os.Unsetenv(EnvDB)
	})

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvJWTSecret + "=" + testSecret + "\n" + EnvDB + "=dotenv.db\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(nil, envFile)
	require.NoError(t, err)
	assert.Equal(t, testSecret, cfg.JWTSecret)
	assert.Equal(t, "dotenv.db", cfg.DBPath)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvJWTSecret, testSecret)

	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		env  map[string]string
		name string
		args []string
	}{
		{
			name: "missing secret",
			env:  map[string]string{},
		},
		{
			name: "short secret",
			env:  map[string]string{EnvJWTSecret: "short"},
		},
		{
			name: "bad duration",
			env:  map[string]string{EnvJWTSecret: testSecret, EnvAccessTTL: "soon"},
		},
		{
			name: "refresh shorter than access",
			env:  map[string]string{EnvJWTSecret: testSecret, EnvAccessTTL: "2h", EnvRefreshTTL: "1h"},
		},
		{
			name: "bad log level",
			env:  map[string]string{EnvJWTSecret: testSecret, EnvLogLevel: "loud"},
		},
		{
			name: "bad rate limit",
			env:  map[string]string{EnvJWTSecret: testSecret, EnvRateLimit: "fast"},
		},
		{
			name: "zero burst",
			env:  map[string]string{EnvJWTSecret: testSecret, EnvRateBurst: "0"},
		},
		{
			name: "short admin password",
			env:  map[string]string{EnvJWTSecret: testSecret, EnvAdminPassword: "admin"},
		},
		{
			name: "bad seed flag",
			env:  map[string]string{EnvJWTSecret: testSecret, EnvSeed: "maybe"},
		},
		{
			name: "unknown flag",
			env:  map[string]string{EnvJWTSecret: testSecret},
			args: []string{"-port", "80"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(tt.args, "")
			assert.Error(t, err)
		})
	}
}

func TestLoad_VersionSkipsValidation(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"-version"}, "")
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}
