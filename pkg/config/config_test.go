package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entrycheck/pkg/sanitizer"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{EnvPort, EnvLogLevel, EnvSeparatorVariant, EnvMaxBatchSize, EnvRequestTimeout} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultSeparatorVariant, cfg.SeparatorVariant)
	assert.Equal(t, DefaultMaxBatchSize, cfg.MaxBatchSize)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, sanitizer.VariantExtended, cfg.Variant())
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvSeparatorVariant, "minimal")
	t.Setenv(EnvRequestTimeout, "2s")
	t.Setenv(EnvMaxBatchSize, "10")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, sanitizer.VariantMinimal, cfg.Variant())
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10, cfg.MaxBatchSize)
}

func TestFromEnv_UnparsableNumbersFallBack(t *testing.T) {
	t.Setenv(EnvMaxBatchSize, "lots")
	t.Setenv(EnvRateLimitWindow, "soon")

	cfg := FromEnv()

	assert.Equal(t, DefaultMaxBatchSize, cfg.MaxBatchSize)
	assert.Equal(t, DefaultRateLimitWindow, cfg.RateLimitWindow)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := FromEnv()
	cfg.Port = "70000"
	cfg.LogLevel = "loud"
	cfg.SeparatorVariant = "strict"
	cfg.MaxBatchSize = 0

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "1. Port must be between 1 and 65535")
	assert.Contains(t, msg, "LogLevel must be one of")
	assert.Contains(t, msg, "SeparatorVariant is invalid")
	assert.Contains(t, msg, "MaxBatchSize must be positive")
	assert.Equal(t, 4, strings.Count(msg, ". "), msg)
}

func TestLoadDotEnvUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("ENTRYCHECK_TEST_DOTENV=from-file\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("ENTRYCHECK_TEST_DOTENV", "")
	os.Unsetenv("ENTRYCHECK_TEST_DOTENV")

	got := LoadDotEnvUp(3)

	assert.Equal(t, "from-file", os.Getenv("ENTRYCHECK_TEST_DOTENV"))
	assert.Equal(t, ".env", filepath.Base(got))
}
