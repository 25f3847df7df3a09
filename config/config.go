// Package config loads the registry configuration from environment variables.
//
// Variables use the REGISTRY_ prefix and map onto nested sections, e.g.
// REGISTRY_APP_TIMEZONE -> app.timezone -> Config.App.Timezone.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/logger"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/timeutil"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "REGISTRY_"

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig `koanf:"app"`

	// Logging
	Log LogConfig `koanf:"log"`

	// Seed data
	Seed SeedConfig `koanf:"seed"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `koanf:"name" validate:"required"`
	Environment Environment `koanf:"env" validate:"oneof=development staging production"`
	Version     string      `koanf:"version" validate:"required"`

	// Timezone that defines "today" for course start dates (default: Local)
	Timezone string         `koanf:"timezone"`
	Location *time.Location `koanf:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// SeedConfig points at an optional YAML seed file.
type SeedConfig struct {
	File string `koanf:"file"`
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "school-registry",
			Environment: EnvDevelopment,
			Version:     "0.1.0",
			Timezone:    "Local",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from environment variables on top of Default.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	loc, err := timeutil.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("app timezone: %w", err)
	}
	cfg.App.Location = loc

	return cfg, nil
}

// envKey maps REGISTRY_APP_TIMEZONE to app.timezone. Only the first
// underscore after the prefix separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

var validate = validator.New()

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Apply installs process-wide settings derived from the config.
func (c *Config) Apply() {
	if c.App.Location != nil {
		timeutil.Location = c.App.Location
	}
}

// LoggerOptions converts the logging section into logger options.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.DefaultOptions()
	opts.Level = logger.ParseLevel(c.Log.Level)
	opts.Format = logger.Format(c.Log.Format)
	opts.AddCaller = c.IsDevelopment()
	return opts
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}
