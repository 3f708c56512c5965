// Package config provides centralized configuration management for the converter.
// It loads configuration from environment variables with defaults that
// reproduce the tool's fixed behavior, and validates all settings on startup
// to fail fast on misconfiguration.
package config

import "fmt"

// Config holds all application configuration.
// Every setting is optional; an empty environment gives the default run.
type Config struct {
	Data    DataConfig
	Convert ConvertConfig
	Logging LoggingConfig
}

// DataConfig holds input and output file locations.
type DataConfig struct {
	// Dir holds the CSV inputs and JSON outputs (default: the executable's directory)
	Dir string `env:"DATA_DIR"`

	RegistriesInput  string `env:"REGISTRIES_INPUT" default:"registries.csv"`
	RegistriesOutput string `env:"REGISTRIES_OUTPUT" default:"registries.json"`
	RegistrarsInput  string `env:"REGISTRARS_INPUT" default:"registrars.csv"`
	RegistrarsOutput string `env:"REGISTRARS_OUTPUT" default:"registrars.json"`
}

// ConvertConfig holds row processing settings.
type ConvertConfig struct {
	// MaxFileSize is the maximum allowed input size in bytes (default: 100MB)
	MaxFileSize int64 `env:"MAX_FILE_SIZE" default:"104857600"`

	// StrictKeys fails the whole dataset on an unparsable integer key
	// instead of skipping the row (default: false)
	StrictKeys bool `env:"STRICT_KEYS" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn (or warning), error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Files returns the configured input and output file names for a dataset.
// ok is false for datasets the config has no entry for.
func (c *DataConfig) Files(dataset string) (input, output string, ok bool) {
	switch dataset {
	case "registries":
		return c.RegistriesInput, c.RegistriesOutput, true
	case "registrars":
		return c.RegistrarsInput, c.RegistrarsOutput, true
	default:
		return "", "", false
	}
}

// String returns a one-line summary of the config for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Data: {Dir: %q}, Convert: {MaxFileSize: %d, StrictKeys: %v}, Logging: {Level: %q, Format: %q}}",
		c.Data.Dir, c.Convert.MaxFileSize, c.Convert.StrictKeys, c.Logging.Level, c.Logging.Format)
}
