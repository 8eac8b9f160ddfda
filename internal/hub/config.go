package hub

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/model-hub-proxy/pkg/config/env"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL    = "https://hub.vroid.com"
	defaultAPIVersion = "11"
)

// Config describes where the hub lives and how to sign in against it.
type Config struct {
	BaseURL    string `yaml:"baseUrl" env:"HUB_BASE_URL"`
	APIVersion string `yaml:"apiVersion" env:"HUB_API_VERSION"`

	OAuth OAuthConfig `yaml:"oauth"`
}

type OAuthConfig struct {
	ClientID     string   `yaml:"clientId" env:"HUB_OAUTH_CLIENT_ID"`
	ClientSecret string   `yaml:"clientSecret" env:"HUB_OAUTH_CLIENT_SECRET"`
	RedirectURL  string   `yaml:"redirectUrl" env:"HUB_OAUTH_REDIRECT_URL"`
	Scopes       []string `yaml:"scopes" env:"HUB_OAUTH_SCOPES" envSeparator:","`
	// SuccessURL is where the browser lands after a completed sign-in.
	SuccessURL string `yaml:"successUrl" env:"HUB_OAUTH_SUCCESS_URL"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:    defaultBaseURL,
		APIVersion: defaultAPIVersion,
		OAuth: OAuthConfig{
			Scopes:     []string{"default"},
			SuccessURL: "/",
		},
	}
}

// LoadConfig builds the hub configuration from defaults, then the YAML file named by
// HUB_CONFIG_PATH (if any), then environment variables.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("HUB_CONFIG_PATH"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open hub config: %w", err)
		}
		defer f.Close()

		if err := cfg.decodeYAML(f); err != nil {
			return nil, err
		}
		slog.Info("Loaded hub config file", "path", path)
	}

	if err := env.ParseEnv(cfg); err != nil {
		return nil, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decodeYAML(r io.Reader) error {
	if err := yaml.NewDecoder(r).Decode(c); err != nil && err != io.EOF {
		return fmt.Errorf("decode hub config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid hub base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("hub base url must be absolute, got %q", c.BaseURL)
	}
	return nil
}

func (c *Config) AuthURL() string {
	return c.BaseURL + "/oauth/authorize"
}

func (c *Config) TokenURL() string {
	return c.BaseURL + "/oauth/token"
}
