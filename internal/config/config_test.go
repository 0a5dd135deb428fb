package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		UI: UIConfig{
			AltScreen: true,
			MaxWidth:  100,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateNegativeWidth(t *testing.T) {
	cfg := validConfig()
	cfg.UI.MaxWidth = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateAggregatesViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.UI.MaxWidth = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "ui.max_width")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, 100, cfg.UI.MaxWidth)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
  file: /tmp/fable.log
ui:
  alt_screen: false
  max_width: 80
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/tmp/fable.log", cfg.Logging.File)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, 80, cfg.UI.MaxWidth)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte("logging:\n  level: trace\n"), 0644)
	require.NoError(t, err)

	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

// Property-based tests

func TestPropertyValidateNeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := Config{
			Logging: LoggingConfig{
				Level:  rapid.StringMatching(`[a-z]{0,8}`).Draw(t, "level"),
				Format: rapid.StringMatching(`[a-z]{0,8}`).Draw(t, "format"),
				File:   rapid.StringMatching(`[a-z/.]{0,16}`).Draw(t, "file"),
			},
			UI: UIConfig{
				AltScreen: rapid.Bool().Draw(t, "alt_screen"),
				MaxWidth:  rapid.IntRange(-10, 500).Draw(t, "max_width"),
			},
		}
		err := cfg.Validate()
		if cfg.Logging.Level == "info" && cfg.Logging.Format == "json" && cfg.UI.MaxWidth >= 0 {
			assert.NoError(t, err)
		}
	})
}
