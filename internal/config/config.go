// Package config provides runner configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix: AOC_INPUT_DIR and so on.
const Prefix = "AOC"

// Default values; the struct tags below must match.
const (
	DefaultInputDir  = "inputs"
	DefaultLogLevel  = "WARN"
	DefaultLogFormat = "text"
	DefaultWorkers   = 4
)

// Config holds all environment-based configuration.
type Config struct {
	// InputDir holds dayN.txt files.
	// Env: AOC_INPUT_DIR (default: inputs)
	InputDir string `envconfig:"INPUT_DIR" default:"inputs"`

	// LogLevel is DEBUG, INFO, WARN or ERROR.
	// Env: AOC_LOG_LEVEL (default: WARN)
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`

	// LogFormat is text or json.
	// Env: AOC_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// Workers bounds concurrent resolutions and walks.
	// Env: AOC_WORKERS (default: 4)
	Workers int `envconfig:"WORKERS" default:"4"`

	// MaxSteps bounds a single graph walk; 0 derives the bound.
	// Env: AOC_MAX_STEPS (default: 0)
	MaxSteps int64 `envconfig:"MAX_STEPS" default:"0"`

	// Metrics dumps run metrics to stderr after the run.
	// Env: AOC_METRICS (default: false)
	Metrics bool `envconfig:"METRICS" default:"false"`
}

// Validate rejects negative limits.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config: workers cannot be negative (%d)", c.Workers)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("config: max steps cannot be negative (%d)", c.MaxSteps)
	}

	return nil
}

// LoadDotEnv loads variables from a .env file. An empty path means ".env".
// A missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// FromEnv reads the AOC_ variables, applying defaults.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the optional .env file at envPath, then the environment.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, err
	}
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
