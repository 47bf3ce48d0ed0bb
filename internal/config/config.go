package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory = "memory"
	StorageBadger = "badger"
	StorageSqlite = "sqlite"
)

var (
	ErrUnknownStorage  = errors.New("unknown storage backend")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

type Config struct {
	// Storage selects the state backend: memory, badger or sqlite
	Storage string `yaml:"storage"`
	// DataDir is where badger and sqlite keep their files. Empty keeps them in memory
	DataDir     string `yaml:"dataDir"     split_words:"true"`
	LogLevel    string `yaml:"logLevel"    split_words:"true"`
	MetricsAddr string `yaml:"metricsAddr" split_words:"true"`
	// Script is the path of the call script to replay
	Script string `yaml:"script"`
}

func defaultConfig() *Config {
	return &Config{
		Storage:  StorageMemory,
		LogLevel: "info",
	}
}

// Load builds the config from defaults, then the optional YAML file, then
// OKINOKO_* environment variables.
func Load(configFile string) (*Config, error) {
	cfg := defaultConfig()
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	// Process environment variables
	if err := envconfig.Process("okinoko", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads the first readable env file among paths into the process
// environment and returns its path. Variables already set are kept. An empty
// result means none was found, which is not an error.
func LoadDotEnv(paths ...string) string {
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageBadger, StorageSqlite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, c.Storage)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}
}
