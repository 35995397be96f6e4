package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Session: SessionConfig{
			Color:  false,
			Prompt: "",
		},
		Scripting: ScriptingConfig{},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
session:
  color: true
  prompt: "> "
scripting:
  script_file: hooks.lua
  instruction_limit: 500
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Session.Color)
	assert.Equal(t, "> ", cfg.Session.Prompt)
	assert.Equal(t, "hooks.lua", cfg.Scripting.ScriptFile)
	assert.Equal(t, 500, cfg.Scripting.InstructionLimit)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  color: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Session.Color)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoadDefault(t *testing.T) {
	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

func TestLoadDefault_EnvOverride(t *testing.T) {
	t.Setenv("ROOMS_LOGGING_LEVEL", "debug")
	t.Setenv("ROOMS_SESSION_PROMPT", "? ")

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "? ", cfg.Session.Prompt)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("logging.level", "error")
	v.Set("logging.format", "json")

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestValidateLogging(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Scripting.InstructionLimit = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "scripting.instruction_limit")
}

func TestPropertyNegativeInstructionLimitRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(-1_000_000, -1).Draw(t, "limit")
		cfg := validConfig()
		cfg.Scripting.InstructionLimit = limit
		if cfg.Validate() == nil {
			t.Fatalf("expected error for instruction_limit=%d", limit)
		}
	})
}
