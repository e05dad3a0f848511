package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultBaseURL is used when neither GRIDFLUX_API_URL nor the legacy
// GRIDFLUX_BASE_URL variable is set.
const DefaultBaseURL = "https://api.gridflux.io"

// proxyEnvVars are consulted in order; the first non-empty value wins.
var proxyEnvVars = []string{"HTTPS_PROXY", "https_proxy", "HTTP_PROXY", "http_proxy"}

// CredentialMode identifies which credential the adapter presents to the
// platform.
type CredentialMode string

const (
	// CredentialBearer sends Authorization: Bearer <token>.
	CredentialBearer CredentialMode = "bearer-token"
	// CredentialAPIKey sends X-API-Key: <key>.
	CredentialAPIKey CredentialMode = "api-key"
	// CredentialDemo sends no credential; read-only tools with a
	// demonstration endpoint are routed there instead.
	CredentialDemo CredentialMode = "demo"
)

// Config stores environment-driven settings for the server.
type Config struct {
	// APIURL is the platform base URL.
	APIURL string `env:"GRIDFLUX_API_URL"`
	// LegacyAPIURL is the deprecated base URL variable, read when APIURL is unset.
	LegacyAPIURL string `env:"GRIDFLUX_BASE_URL"`
	// APIToken is the bearer token. It takes precedence over APIKey.
	APIToken string `env:"GRIDFLUX_API_TOKEN"`
	// APIKey is the platform API key.
	APIKey string `env:"GRIDFLUX_API_KEY"`
	// LogLevel sets the logger level.
	LogLevel string `env:"GRIDFLUX_LOG_LEVEL" envDefault:"info"`
	// Transport selects how the server talks to its client: stdio or http.
	Transport string `env:"GRIDFLUX_TRANSPORT" envDefault:"stdio"`
	// HTTPTimeout bounds every outbound platform call.
	HTTPTimeout time.Duration `env:"GRIDFLUX_HTTP_TIMEOUT" envDefault:"30s"`
	// RatePerMinute caps outbound platform calls. Zero disables the limiter.
	RatePerMinute int `env:"GRIDFLUX_RATE_PER_MINUTE" envDefault:"0"`
	// HTTPListen is the bind address for the http transport.
	HTTPListen string `env:"GRIDFLUX_HTTP_LISTEN" envDefault:"127.0.0.1:8080"`
	// HTTPPath is the MCP endpoint path for the http transport.
	HTTPPath string `env:"GRIDFLUX_HTTP_PATH" envDefault:"/mcp"`
	// HTTPStateless disables MCP session tracking on the http transport.
	HTTPStateless bool `env:"GRIDFLUX_HTTP_STATELESS" envDefault:"false"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"GRIDFLUX_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// BaseURL is the resolved platform URL without a trailing slash.
	BaseURL string
	// ProxyURL routes outbound calls through a forward proxy when set.
	ProxyURL *url.URL
}

// Load parses environment variables into Config and resolves the derived
// fields.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.finalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) finalize() error {
	base := strings.TrimSpace(c.APIURL)
	if base == "" {
		base = strings.TrimSpace(c.LegacyAPIURL)
	}
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimRight(base, "/")
	parsed, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("base url %q is invalid: %w", base, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("base url must be absolute http(s), got %q", base)
	}
	c.BaseURL = base

	transport := strings.ToLower(strings.TrimSpace(c.Transport))
	switch transport {
	case "stdio", "http":
		c.Transport = transport
	default:
		return fmt.Errorf("transport must be stdio or http, got %q", c.Transport)
	}

	if c.RatePerMinute < 0 {
		return fmt.Errorf("rate per minute must be >= 0, got %d", c.RatePerMinute)
	}

	proxy, err := lookupProxy()
	if err != nil {
		return err
	}
	c.ProxyURL = proxy

	return nil
}

// CredentialMode reports which credential the adapter presents. Bearer
// tokens take precedence over API keys; with neither the adapter runs in
// demo mode.
func (c Config) CredentialMode() CredentialMode {
	switch {
	case strings.TrimSpace(c.APIToken) != "":
		return CredentialBearer
	case strings.TrimSpace(c.APIKey) != "":
		return CredentialAPIKey
	default:
		return CredentialDemo
	}
}

// lookupProxy resolves the first configured proxy variable. A set but
// unusable value is an error rather than a silent fallback to direct
// dialing.
func lookupProxy() (*url.URL, error) {
	for _, name := range proxyEnvVars {
		value := strings.TrimSpace(os.Getenv(name))
		if value == "" {
			continue
		}
		parsed, err := url.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%s %q is invalid: %w", name, value, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return nil, fmt.Errorf("%s must be an absolute url, got %q", name, value)
		}
		return parsed, nil
	}
	return nil, nil
}
