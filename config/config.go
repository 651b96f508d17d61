package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats the results can be printed in
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Output struct {
		Format   string `yaml:"format"`
		Findings bool   `yaml:"findings"`
	} `yaml:"output"`
}

// Default is the configuration used when no file is present
func Default() *Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Output.Format = FormatText
	return &cfg
}

// Load reads the configuration at path. A missing file is not an error, the
// defaults are used instead. Environment variables, optionally from a .env
// file, override the file
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			log.WithField("path", path).Debug("No config file, using defaults")
		case err != nil:
			return nil, errors.Wrap(err, "reading config")
		default:
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, errors.Wrapf(err, "parsing config %s", path)
			}
		}
	}

	// 3. Override with Environment Variables if present
	if level := os.Getenv("JAVAGRADER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("JAVAGRADER_FORMAT"); format != "" {
		cfg.Output.Format = format
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting that can't be used
func (cfg *Config) Validate() error {
	if _, err := cfg.LogLevel(); err != nil {
		return err
	}
	return ValidateFormat(cfg.Output.Format)
}

// LogLevel parses the configured log level
func (cfg *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(err, "invalid log level")
	}
	return level, nil
}

// ValidateFormat checks that the given output format is supported
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return errors.Errorf("unknown output format %q, expected one of %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
}
