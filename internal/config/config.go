// Package config loads vpet settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Pet     PetConfig     `yaml:"pet"`
	Logging LoggingConfig `yaml:"logging"`
}

type PetConfig struct {
	Name string `yaml:"name"`
	// Seed fixes the mystery box random source; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
	// StepInterval is how often time passes on its own; 0 means only on demand.
	StepInterval time.Duration `yaml:"step_interval"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `yaml:"level"`
	// Format is "json" or "console".
	Format string `yaml:"format"`
	// Path is where log lines go. The terminal UI owns stdout.
	Path string `yaml:"path"`
}

// Load reads path over the defaults, then applies env overrides. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if env := os.Getenv("VPET_NAME"); env != "" {
		cfg.Pet.Name = env
	}
	if env := os.Getenv("VPET_SEED"); env != "" {
		seed, err := strconv.ParseInt(env, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing VPET_SEED: %w", err)
		}
		cfg.Pet.Seed = seed
	}
	if env := os.Getenv("VPET_LOG_LEVEL"); env != "" {
		cfg.Logging.Level = env
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Pet: PetConfig{
			StepInterval: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Path:   "vpet.log",
		},
	}
}

// Validate checks every setting and reports all violations at once.
func (c Config) Validate() error {
	var errs []string

	if c.Pet.StepInterval < 0 {
		errs = append(errs, fmt.Sprintf("pet.step_interval must not be negative, got %s", c.Pet.StepInterval))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}
	if c.Logging.Path == "" {
		errs = append(errs, "logging.path must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
