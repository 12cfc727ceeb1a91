package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig

	// LogLevel is one of debug, info, warn, error, off
	LogLevel string
}

type ServerConfig struct {
	Port            string
	StaticDir       string
	BodyLimit       string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Path string

	// SeedOnStart resets and reseeds an empty database at startup.
	SeedOnStart bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "7070"),
			StaticDir:       getEnv("STATIC_DIR", "./static"),
			BodyLimit:       getEnv("BODY_LIMIT", "1M"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Path:        getEnv("DB_PATH", "./blog.db"),
			SeedOnStart: getBoolEnv("SEED_ON_START", false),
		},
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}

	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

var logLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// Level maps LogLevel onto the gommon logger levels.
func (c *Config) Level() log.Lvl {
	if lvl, ok := logLevels[c.LogLevel]; ok {
		return lvl
	}
	return log.INFO
}

// Address is the listen address of the HTTP server.
func (c *ServerConfig) Address() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
