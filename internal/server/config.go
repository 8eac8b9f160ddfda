package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/model-hub-proxy/pkg/utils"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// CorsAllowCredentials lets browsers send the session cookie cross-origin.
	// Only honoured together with explicit origins.
	CorsAllowCredentials bool
}

func LoadConfig() (*Config, error) {
	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitTrim(os.Getenv("CORS_ORIGINS"), ",")

	allowCredentials := len(origins) > 0
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:                 port,
		UseHttp2:             useHttp2,
		CorsOrigins:          origins,
		CorsAllowCredentials: allowCredentials,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
