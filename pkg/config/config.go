package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"entrycheck/pkg/logger"
	"entrycheck/pkg/sanitizer"
)

type Config struct {
	Port string

	LogLevel  string
	LogFormat string

	SeparatorVariant string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	MaxRequestSize int
	MaxBatchSize   int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	DotEnvPath string

	Log *logger.Logger
}

// Load reads the configuration from the environment (after applying any .env
// file) and exits the process when it is invalid.
func Load(serviceName string) *Config {
	dotEnv := LoadDotEnvUp(DefaultDotEnvDepth)

	cfg := FromEnv()
	cfg.DotEnvPath = dotEnv
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv reads every setting from the environment without validating or
// creating a logger.
func FromEnv() *Config {
	return &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),

		SeparatorVariant: getEnvStr(EnvSeparatorVariant, DefaultSeparatorVariant),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),
		MaxBatchSize:   getEnvNum(EnvMaxBatchSize, DefaultMaxBatchSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}
}

func (cfg *Config) Variant() sanitizer.Variant {
	v, err := sanitizer.ParseVariant(cfg.SeparatorVariant)
	if err != nil {
		return sanitizer.DefaultVariant
	}
	return v
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if !logger.ValidLevel(cfg.LogLevel) {
		errors = append(errors, fmt.Sprintf("LogLevel must be one of debug, info, warn, error, got: %s", cfg.LogLevel))
	}
	if cfg.LogFormat != logger.JSON && cfg.LogFormat != logger.TEXT {
		errors = append(errors, fmt.Sprintf("LogFormat must be json or text, got: %s", cfg.LogFormat))
	}

	if _, err := sanitizer.ParseVariant(cfg.SeparatorVariant); err != nil {
		errors = append(errors, fmt.Sprintf("SeparatorVariant is invalid: %v", err))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.MaxBatchSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxBatchSize must be positive, got: %d", cfg.MaxBatchSize))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"dotenv", cfg.DotEnvPath,
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"separator_variant", cfg.SeparatorVariant,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"max_batch_size", cfg.MaxBatchSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
