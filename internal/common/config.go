package common

import (
	"os"
	"runtime"
	"strconv"
)

// Config holds process-level configuration. Engine rule-sets (aliases,
// classifier rules, tariffs) live in the rules config, not here.
type Config struct {
	Log      LogConfig
	Pipeline PipelineConfig
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// PipelineConfig holds batch-processing configuration
type PipelineConfig struct {
	Workers   int    // per-document fan-out width
	RulesPath string // optional JSON rules file overriding embedded defaults
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Pipeline: PipelineConfig{
			Workers:   getEnvAsInt("PIPELINE_WORKERS", runtime.NumCPU()),
			RulesPath: getEnv("RULES_PATH", ""),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Pipeline.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
