package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultBindAddress = "0.0.0.0"
	defaultPort        = "8088"
	defaultAPIBase     = "https://api.mailgun.net"
)

type Config struct {
	BindAddress string
	Port        string
	// Mailgun credentials and routing
	APIKey    string
	Domain    string
	ToAddress string
	// APIBase is the Mailgun API root. Override for the EU region
	// (https://api.eu.mailgun.net) or to point tests at a fake upstream.
	APIBase string
	// RedirectURL, when set, switches the relay to browser-redirect
	// responses. Left nil, the relay answers with JSON bodies.
	RedirectURL *url.URL
	// CORSAllowAnyOrigin enables the permissive GET/POST CORS policy
	// for fetch-based frontends on other origins.
	CORSAllowAnyOrigin bool
}

func Load() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		BindAddress:        getEnv("BIND_ADDRESS", defaultBindAddress),
		Port:               getEnv("PORT", defaultPort),
		APIBase:            strings.TrimRight(getEnv("MAILGUN_API_BASE", defaultAPIBase), "/"),
		CORSAllowAnyOrigin: getEnvBool("CORS_ALLOW_ANY_ORIGIN", false),
	}

	var err error
	if cfg.APIKey, err = requireEnv("MAILGUN_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Domain, err = requireEnv("MAILGUN_DOMAIN"); err != nil {
		return nil, err
	}
	if cfg.ToAddress, err = requireEnv("MAILGUN_TO_ADDRESS"); err != nil {
		return nil, err
	}

	// Optional: present only in redirect-style deployments.
	if raw := os.Getenv("MAILGUN_REDIRECT_URL"); raw != "" {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("environment variable %q is not a valid URL: %w", "MAILGUN_REDIRECT_URL", err)
		}
		cfg.RedirectURL = u
	}

	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

// APIKeyPrefix returns the first six characters of the API key for the
// startup summary. Keys shorter than that are returned whole.
func (c *Config) APIKeyPrefix() string {
	if len(c.APIKey) <= 6 {
		return c.APIKey
	}
	return c.APIKey[:6]
}

func requireEnv(key string) (string, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value, nil
	}
	return "", fmt.Errorf("environment variable %q must be present", key)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
