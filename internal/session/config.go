package session

import (
	"errors"

	"github.com/DjordjeVuckovic/model-hub-proxy/pkg/config/env"
)

type Config struct {
	// AuthKey signs the session cookie. At least 32 bytes.
	AuthKey string `env:"SESSION_AUTH_KEY"`
	// EncryptionKey encrypts the cookie with AES; 16, 24 or 32 bytes, or empty to disable.
	EncryptionKey string `env:"SESSION_ENCRYPTION_KEY"`
	Secure        bool   `env:"SESSION_SECURE" envDefault:"true"`
	// SameSiteNone lets the cookie follow cross-site requests. Only meant for development setups.
	SameSiteNone bool `env:"SESSION_SAME_SITE_NONE"`
	MaxAge       int  `env:"SESSION_MAX_AGE" envDefault:"432000"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.AuthKey) < 32 {
		return errors.New("SESSION_AUTH_KEY must be at least 32 bytes")
	}
	switch len(c.EncryptionKey) {
	case 0, 16, 24, 32:
	default:
		return errors.New("SESSION_ENCRYPTION_KEY must be 16, 24 or 32 bytes")
	}
	return nil
}
