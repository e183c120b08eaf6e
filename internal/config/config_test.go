package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PARSER_LANGUAGE", "PARSER_GAME_LANGUAGE", "ASSETS_DIR", "TABLE_SOURCE", "WORKER_COUNT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "en", cfg.Language)
	assert.Empty(t, cfg.GameLanguage)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, SourceJSON, cfg.TableSource)
	assert.Equal(t, 8, cfg.WorkerCount)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PARSER_LANGUAGE", "de")
	t.Setenv("TABLE_SOURCE", SourcePostgres)
	t.Setenv("WORKER_COUNT", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, SourcePostgres, cfg.TableSource)
	assert.Equal(t, 2, cfg.WorkerCount)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("WORKER_COUNT", "many")

	assert.Equal(t, 8, getEnvInt("WORKER_COUNT", 8))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Language:    "en",
			AssetsDir:   "assets",
			TableSource: SourceJSON,
			WorkerCount: 8,
			LogLevel:    "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "language name", mutate: func(c *Config) { c.Language = "German"; c.GameLanguage = "ko" }},
		{name: "unknown language", mutate: func(c *Config) { c.Language = "Klingon" }, wantErr: "PARSER_LANGUAGE"},
		{name: "unknown game language", mutate: func(c *Config) { c.GameLanguage = "xx-invalid-" }, wantErr: "PARSER_GAME_LANGUAGE"},
		{name: "unknown source", mutate: func(c *Config) { c.TableSource = "redis" }, wantErr: "TABLE_SOURCE"},
		{name: "postgres needs url", mutate: func(c *Config) { c.TableSource = SourcePostgres }, wantErr: "DATABASE_URL"},
		{name: "no workers", mutate: func(c *Config) { c.WorkerCount = 0 }, wantErr: "WORKER_COUNT"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_DefaultsAreValid(t *testing.T) {
	t.Setenv("TABLE_SOURCE", "")
	t.Setenv("PARSER_LANGUAGE", "")
	t.Setenv("LOG_LEVEL", "")

	assert.NoError(t, Load().Validate())
}

func TestNewValidator_RegistersLanguage(t *testing.T) {
	v, err := newValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Var("de", "language"))
	assert.NoError(t, v.Var("German", "language"))
	assert.Error(t, v.Var("no such language", "language"))
}
