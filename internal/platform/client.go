// Package platform executes authenticated GridFlux REST calls on behalf of
// tool handlers and normalizes the platform's response envelope.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gridflux/gridflux-mcp-server/internal/catalog"
)

// maxResponseBytes caps how much of a platform response is read.
const maxResponseBytes = 1 << 20

var defaultHTTPClient = NewHTTPClient(nil, 0)

// Client issues requests against the GridFlux platform.
type Client struct {
	// BaseURL is the platform root without a trailing slash.
	BaseURL string
	// Token is the bearer token. It wins over APIKey when both are set.
	Token string
	// APIKey is sent as X-API-Key when no bearer token is configured.
	APIKey string
	// HTTP is the outbound client, preconfigured with proxy and timeout.
	HTTP *http.Client
	// Limiter optionally paces outbound calls.
	Limiter *rate.Limiter
}

// NewHTTPClient builds the outbound client shared by all tool calls.
func NewHTTPClient(proxy *url.URL, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &http.Client{Timeout: timeout}
	if proxy != nil {
		client.Transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}
	return client
}

// NewLimiter builds a limiter allowing perMinute calls with matching burst.
// A zero or negative rate disables limiting.
func NewLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

// Demo reports whether the client holds no credential and should route
// operations with a demonstration endpoint there.
func (c *Client) Demo() bool {
	return strings.TrimSpace(c.Token) == "" && strings.TrimSpace(c.APIKey) == ""
}

// Invoke performs one platform call for op with the given arguments and
// returns the normalized payload text. Every failure surfaces as an error;
// callers turn it into an error result for the agent.
func (c *Client) Invoke(ctx context.Context, op catalog.Operation, args map[string]any) (string, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	target, body, err := c.buildRequest(op, args)
	if err != nil {
		return "", err
	}

	var request *http.Request
	if body != nil {
		request, err = http.NewRequestWithContext(ctx, op.Method, target, bytes.NewReader(body))
	} else {
		request, err = http.NewRequestWithContext(ctx, op.Method, target, nil)
	}
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	c.authorize(request)

	resp, err := c.httpClient().Do(request)
	if err != nil {
		return "", fmt.Errorf("platform request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read platform response: %w", err)
	}

	return normalize(resp.StatusCode, data)
}

// buildRequest resolves the endpoint path, query string and JSON body from
// the declared parameters. Arguments not declared for op are ignored; the
// schema validation layer has already rejected them.
func (c *Client) buildRequest(op catalog.Operation, args map[string]any) (string, []byte, error) {
	path := op.Path
	if op.DemoPath != "" && c.Demo() {
		path = op.DemoPath
	}

	query := url.Values{}
	var bodyFields map[string]any

	for _, p := range op.Params {
		value, ok := args[p.Name]
		if !ok || value == nil {
			if p.In == catalog.InPath {
				return "", nil, fmt.Errorf("missing path parameter %s", p.Name)
			}
			continue
		}
		switch p.In {
		case catalog.InPath:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(formatValue(value)))
		case catalog.InQuery:
			query.Set(p.Name, formatValue(value))
		case catalog.InBody:
			if bodyFields == nil {
				bodyFields = make(map[string]any)
			}
			bodyFields[p.Name] = value
		}
	}

	target := c.BaseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	if bodyFields == nil {
		return target, nil, nil
	}
	body, err := json.Marshal(bodyFields)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return target, body, nil
}

// authorize attaches at most one credential header.
func (c *Client) authorize(req *http.Request) {
	if token := strings.TrimSpace(c.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		return
	}
	if key := strings.TrimSpace(c.APIKey); key != "" {
		req.Header.Set("X-API-Key", key)
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return defaultHTTPClient
}

// formatValue renders a JSON-typed argument for use in a path or query.
// Arguments arrive as JSON values, so numbers are float64; integers must
// not pick up a decimal point on the wire.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
