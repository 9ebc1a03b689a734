package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"database_url": "postgres://localhost/jobscout",
		"port": 9090,
		"score_limit": 25,
		"concurrency": 2,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/jobscout", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 25, cfg.ScoreLimit)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv_FillsDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/jobscout")

	cfg := &Config{}
	cfg.FromEnv()

	assert.Equal(t, "postgres://env/jobscout", cfg.DatabaseURL)
}

func TestFromEnv_DoesNotOverrideFileValue(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/jobscout")

	cfg := &Config{DatabaseURL: "postgres://file/jobscout"}
	cfg.FromEnv()

	assert.Equal(t, "postgres://file/jobscout", cfg.DatabaseURL)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.NoError(t, (&Config{}).Validate())

	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{ScoreLimit: -1}).Validate())
	assert.Error(t, (&Config{Concurrency: -1}).Validate())
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	result := cfg.ApplyDefaults()

	assert.Equal(t, DefaultPort, result.Port)
	assert.Equal(t, DefaultScoreLimit, result.ScoreLimit)
	assert.Equal(t, DefaultConcurrency, result.Concurrency)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{Port: 9999, ScoreLimit: 5, Concurrency: 1}
	result := cfg.ApplyDefaults()

	assert.Equal(t, 9999, result.Port)
	assert.Equal(t, 5, result.ScoreLimit)
	assert.Equal(t, 1, result.Concurrency)
}
