package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "javagrader.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.False(t, cfg.Output.Findings)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
output:
  format: json
  findings: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.Findings)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("JAVAGRADER_LOG_LEVEL", "warn")
	t.Setenv("JAVAGRADER_FORMAT", "yaml")

	cfg, err := Load(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
}

func TestInvalidSettings(t *testing.T) {
	_, err := Load(writeConfig(t, "output:\n  format: xml\n"))
	assert.ErrorContains(t, err, "unknown output format")

	_, err = Load(writeConfig(t, "log:\n  level: loud\n"))
	assert.ErrorContains(t, err, "invalid log level")

	_, err = Load(writeConfig(t, "log: [\n"))
	assert.ErrorContains(t, err, "parsing config")
}
