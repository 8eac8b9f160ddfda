// Package main Model Hub Proxy API
// @title Model Hub Proxy API
// @version 1.0
// @description Pages through the signed-in user's character models on the model hub
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/model-hub-proxy/docs"
	"github.com/DjordjeVuckovic/model-hub-proxy/internal/hub"
	"github.com/DjordjeVuckovic/model-hub-proxy/internal/router"
	"github.com/DjordjeVuckovic/model-hub-proxy/internal/server"
	"github.com/DjordjeVuckovic/model-hub-proxy/internal/session"
	pkgserver "github.com/DjordjeVuckovic/model-hub-proxy/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	heathChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, heathChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Model Hub Proxy is running")
	})

	hubClient, err := hub.NewClient(cfg.Hub)
	if err != nil {
		slog.Error("Failed to create hub client", "error", err)
		os.Exit(1)
	}

	sessions := session.NewCookieStore(cfg.Session)

	router.NewModelRouter(s.Echo, hubClient, sessions).Bind()
	router.NewAuthRouter(s.Echo, cfg.Hub, sessions).Bind()

	go func() {
		<-s.Context().Done()
		slog.Info("Shutdown started, draining in-flight requests...")
	}()

	err = s.Start()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
