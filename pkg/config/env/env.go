package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads a .env file into the process environment. ENV_PATH overrides
// defaultPath. A missing file is only an error when running locally (env "" or "local");
// deployed environments are expected to set their variables directly.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err == nil {
		return nil
	}

	if isLocal(env) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	slog.Debug("Skipping .env ...", "path", envPath)
	return nil
}

// ParseEnv fills target from environment variables using its `env` struct tags.
// Fields whose variables are unset keep their current values.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func isLocal(env string) bool {
	return env == "" || env == "local"
}
