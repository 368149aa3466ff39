package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
http:
  address: ":8080"
database:
  host: "db.internal"
  port: 5432
  user: "app"
  password: "secret"
  name: "air_travel_system"
  ssl_mode: "disable"
nlsearch:
  timeout_seconds: 12
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "host=db.internal port=5432 user=app password=secret dbname=air_travel_system sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 12, cfg.NLSearch.TimeoutSeconds)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig(writeConfig(t))

	require.NoError(t, err)
	assert.Equal(t, "override.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "sk-test", cfg.NLSearch.OpenAIKey)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
