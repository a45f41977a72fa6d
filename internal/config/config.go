// Package config handles runner configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the check runner. Precedence, lowest
// to highest: built-in defaults, the optional YAML file named by
// CHECKS_CONFIG_FILE, environment variables, command-line flags.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Run    RunConfig    `yaml:"run"`
	Output OutputConfig `yaml:"output"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
}

// IsDevelopment returns true if the runner is in development mode.
func (a AppConfig) IsDevelopment() bool {
	return a.Env == "development" || a.Env == "dev"
}

// RunConfig holds check-selection and execution configuration.
type RunConfig struct {
	// Filter is a regular expression matched against check names; empty
	// selects every check.
	Filter   string `yaml:"filter"`
	FailFast bool   `yaml:"fail_fast"`
}

// OutputConfig holds reporting configuration.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
	NoColor bool `yaml:"no_color"`
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Env:      "development",
			LogLevel: "info",
		},
	}
}

// Load reads configuration from the optional YAML file and environment
// variables.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CHECKS_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("CHECKS_ENV"); v != "" {
		cfg.App.Env = v
	}
	if v := os.Getenv("CHECKS_LOG_LEVEL"); v != "" {
		cfg.App.LogLevel = v
	}
	if v := os.Getenv("CHECKS_FILTER"); v != "" {
		cfg.Run.Filter = v
	}

	failFast, err := getEnvAsBool("CHECKS_FAIL_FAST", cfg.Run.FailFast)
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKS_FAIL_FAST: %w", err)
	}
	cfg.Run.FailFast = failFast

	verbose, err := getEnvAsBool("CHECKS_VERBOSE", cfg.Output.Verbose)
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKS_VERBOSE: %w", err)
	}
	cfg.Output.Verbose = verbose

	noColor, err := getEnvAsBool("CHECKS_NO_COLOR", cfg.Output.NoColor)
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKS_NO_COLOR: %w", err)
	}
	cfg.Output.NoColor = noColor

	return cfg, nil
}

// applyFile overlays values from a YAML config file.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// getEnvAsBool returns the environment variable as a bool.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, err
	}
	return value, nil
}
