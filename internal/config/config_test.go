package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		// Given: no config file
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Empty(t, conf.LogFile)
		assert.False(t, conf.Console.KeepScrollback)
	})

	t.Run("Values from the file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nlog-file: uttt.log\nconsole:\n  keep-scrollback: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "uttt.log", conf.LogFile)
		assert.True(t, conf.Console.KeepScrollback)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))
		t.Setenv("UTTT_LOG_LEVEL", "error")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("console: [\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})

	t.Run("Unknown log level is rejected", func(t *testing.T) {
		// Given: a misspelled log level
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: warning\n"), 0o600))

		// When: loading
		_, err := Load(path)

		// Then: the mistake surfaces instead of falling back to another level
		require.ErrorIs(t, err, errUnknownLogLevel)
		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}

func TestConfig_Level(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "debug"}).Level())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).Level())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "warning"}).Level())
}
