package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var errUnknownLogLevel = errors.New("unknown log level")

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type Config struct {
	LogLevel string  `yaml:"log-level" env:"UTTT_LOG_LEVEL" env-default:"warn"`
	LogFile  string  `yaml:"log-file" env:"UTTT_LOG_FILE" env-default:""`
	Console  Console `yaml:"console"`
}

// Console - by default the screen is cleared before every redraw.
type Console struct {
	KeepScrollback bool `yaml:"keep-scrollback" env:"UTTT_KEEP_SCROLLBACK"`
}

// MustLoad - load configuration from the yml file at path and the environment.
// A missing file is not an error, the environment and defaults are used instead.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat %s: %w", path, err)
	}

	if _, ok := logLevels[config.LogLevel]; !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownLogLevel, config.LogLevel)
	}

	return config, nil
}

// Level - slog level for LogLevel. Load rejects names it does not know.
func (that *Config) Level() slog.Level {
	if level, ok := logLevels[that.LogLevel]; ok {
		return level
	}

	return slog.LevelWarn
}
