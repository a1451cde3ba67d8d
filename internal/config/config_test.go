package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes yaml content to a temp file and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "collegems", cfg.Database.DBName)
	assert.Equal(t, "168h", cfg.JWT.TokenExpiration)
	assert.Equal(t, "harizzcollege@gmail.com", cfg.Admin.Email)
	assert.Equal(t, "harizz", cfg.Admin.Password)
	assert.Equal(t, 168*time.Hour, cfg.TokenExpiration())
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: "production"
jwt:
  token_expiration: "24h"
admin:
  email: "admin@example.com"
  password: "s3cret"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiration())
	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
	assert.Equal(t, "s3cret", cfg.Admin.Password)

	// Values absent from the file keep their defaults
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_PASSWORD", "override")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	path := writeConfigFile(t, `
server:
  port: "9090"
admin:
  email: "admin@example.com"
  password: "s3cret"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "ops@example.com", cfg.Admin.Email)
	assert.Equal(t, "override", cfg.Admin.Password)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigRejectsBadExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TOKEN_EXPIRATION", "seven days")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expiration")
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "college"

	assert.Equal(t,
		"postgres://app:pw@db.internal:5433/college?sslmode=disable",
		cfg.GetPostgresConnectionString())
}

func TestTokenExpirationFallsBackOnBadValue(t *testing.T) {
	cfg := &Config{}
	cfg.JWT.TokenExpiration = "garbage"
	assert.Equal(t, 168*time.Hour, cfg.TokenExpiration())
}
