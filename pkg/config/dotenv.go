package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnvUp loads the first ".env" found in the working directory or one of
// its parents. Variables already set in the environment win. Missing files are
// not an error.
func LoadDotEnvUp(maxDepth int) string {
	if maxDepth <= 0 {
		maxDepth = DefaultDotEnvDepth
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for i := 0; i <= maxDepth; i++ {
		p := filepath.Join(dir, ".env")
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err == nil {
				return p
			}
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
