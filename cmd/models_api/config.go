package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/model-hub-proxy/internal/hub"
	"github.com/DjordjeVuckovic/model-hub-proxy/internal/session"
	"github.com/DjordjeVuckovic/model-hub-proxy/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ModelsAPIConfig struct {
	Hub     *hub.Config
	Session *session.Config
}

func (as *AppConfig) Load() (*ModelsAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/models_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	hubCfg, err := hub.LoadConfig()
	if err != nil {
		slog.Error("Failed to load hub configuration", "error", err)
		return nil, err
	}

	sessionCfg, err := session.LoadConfig()
	if err != nil {
		slog.Error("Failed to load session configuration", "error", err)
		return nil, err
	}

	return &ModelsAPIConfig{
		Hub:     hubCfg,
		Session: sessionCfg,
	}, nil
}
