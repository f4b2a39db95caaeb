package config

import (
	"time"

	"entrycheck/pkg/logger"
	"entrycheck/pkg/sanitizer"
)

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = logger.INFO
	DefaultLogFormat = logger.JSON

	DefaultSeparatorVariant = string(sanitizer.DefaultVariant)

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 5 * time.Second
	DefaultMaxRequestSize = 64 * 1024 // 64KB
	DefaultMaxBatchSize   = 50

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultDotEnvDepth = 6
)
