package config

import (
	"os"
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads so tests only see what they set
// themselves. t.Setenv registers the restore; os.Unsetenv makes the variable
// truly absent instead of empty.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GRIDFLUX_API_URL", "GRIDFLUX_BASE_URL", "GRIDFLUX_API_TOKEN", "GRIDFLUX_API_KEY",
		"GRIDFLUX_LOG_LEVEL", "GRIDFLUX_TRANSPORT", "GRIDFLUX_HTTP_TIMEOUT", "GRIDFLUX_RATE_PER_MINUTE",
		"GRIDFLUX_HTTP_LISTEN", "GRIDFLUX_HTTP_PATH", "GRIDFLUX_HTTP_STATELESS", "GRIDFLUX_SHUTDOWN_TIMEOUT",
		"HTTPS_PROXY", "https_proxy", "HTTP_PROXY", "http_proxy",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Transport != "stdio" {
		t.Errorf("Transport = %q, want stdio", cfg.Transport)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if cfg.RatePerMinute != 0 {
		t.Errorf("RatePerMinute = %d, want 0", cfg.RatePerMinute)
	}
	if cfg.HTTPListen != "127.0.0.1:8080" {
		t.Errorf("HTTPListen = %q, want 127.0.0.1:8080", cfg.HTTPListen)
	}
	if cfg.HTTPPath != "/mcp" {
		t.Errorf("HTTPPath = %q, want /mcp", cfg.HTTPPath)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.ProxyURL != nil {
		t.Errorf("ProxyURL = %v, want nil", cfg.ProxyURL)
	}
	if got := cfg.CredentialMode(); got != CredentialDemo {
		t.Errorf("CredentialMode() = %q, want %q", got, CredentialDemo)
	}
}

func TestBaseURLResolution(t *testing.T) {
	tests := []struct {
		name   string
		apiURL string
		legacy string
		want   string
	}{
		{name: "primary wins over legacy", apiURL: "https://primary.example", legacy: "https://legacy.example", want: "https://primary.example"},
		{name: "legacy fallback", legacy: "https://legacy.example", want: "https://legacy.example"},
		{name: "built-in default", want: DefaultBaseURL},
		{name: "trailing slash trimmed", apiURL: "https://primary.example/", want: "https://primary.example"},
		{name: "path prefix kept", apiURL: "https://primary.example/v2/", want: "https://primary.example/v2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			if tc.apiURL != "" {
				t.Setenv("GRIDFLUX_API_URL", tc.apiURL)
			}
			if tc.legacy != "" {
				t.Setenv("GRIDFLUX_BASE_URL", tc.legacy)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.BaseURL != tc.want {
				t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, tc.want)
			}
		})
	}
}

func TestBaseURLRejectsRelative(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRIDFLUX_API_URL", "api.gridflux.io")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted a base url without a scheme")
	}
}

func TestCredentialModePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		token string
		key   string
		want  CredentialMode
	}{
		{name: "bearer wins over key", token: "tok", key: "key", want: CredentialBearer},
		{name: "api key alone", key: "key", want: CredentialAPIKey},
		{name: "no credentials", want: CredentialDemo},
		{name: "blank token ignored", token: "   ", key: "key", want: CredentialAPIKey},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{APIToken: tc.token, APIKey: tc.key}
			if got := cfg.CredentialMode(); got != tc.want {
				t.Errorf("CredentialMode() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProxyPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("http_proxy", "http://low.example:3128")
	t.Setenv("HTTPS_PROXY", "http://high.example:3128")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ProxyURL == nil {
		t.Fatal("ProxyURL is nil, want HTTPS_PROXY value")
	}
	if cfg.ProxyURL.Host != "high.example:3128" {
		t.Errorf("ProxyURL.Host = %q, want high.example:3128", cfg.ProxyURL.Host)
	}
}

func TestProxyLowercaseVariant(t *testing.T) {
	clearEnv(t)
	t.Setenv("https_proxy", "http://proxy.internal:8888")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ProxyURL == nil || cfg.ProxyURL.Host != "proxy.internal:8888" {
		t.Errorf("ProxyURL = %v, want host proxy.internal:8888", cfg.ProxyURL)
	}
}

func TestProxyInvalidFailsLoudly(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "malformed", value: "://bad"},
		{name: "missing scheme", value: "proxy.example:3128"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("HTTPS_PROXY", tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("Load() accepted proxy %q", tc.value)
			}
		})
	}
}

func TestTransportValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRIDFLUX_TRANSPORT", "websocket")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted an unknown transport")
	}
}

func TestTransportNormalized(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRIDFLUX_TRANSPORT", "HTTP")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Transport != "http" {
		t.Errorf("Transport = %q, want http", cfg.Transport)
	}
}

func TestNegativeRateRejected(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRIDFLUX_RATE_PER_MINUTE", "-5")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted a negative rate")
	}
}

func TestDurationParsing(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRIDFLUX_HTTP_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
}
