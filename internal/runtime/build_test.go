package runtime

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gridflux/gridflux-mcp-server/internal/catalog"
	"github.com/gridflux/gridflux-mcp-server/internal/platform"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const testSummary = "GridFlux adapter test summary"

// newSession builds the full server against a fake platform transport and
// connects a real MCP client over in-memory pipes.
func newSession(t *testing.T, apiKey string, rt roundTripFunc) *mcp.ClientSession {
	t.Helper()

	builder := Builder{
		Name:    "gridflux-mcp-server",
		Version: "test",
		Client: &platform.Client{
			BaseURL: "https://api.test",
			APIKey:  apiKey,
			HTTP:    &http.Client{Transport: rt},
		},
		Catalog: catalog.Operations(),
		Summary: testSummary,
	}
	server, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func contentText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("content blocks = %d, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] has type %T, want *mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func TestCallToolRoundTrip(t *testing.T) {
	var captured *http.Request
	session := newSession(t, "key", func(r *http.Request) (*http.Response, error) {
		captured = r
		return jsonResponse(http.StatusOK, `{"success":true,"data":{"id":42,"name":"Harbor BESS"}}`), nil
	})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_site",
		Arguments: map[string]any{"site_id": 42},
	})
	if err != nil {
		t.Fatalf("CallTool() error: %v", err)
	}
	if result.IsError {
		t.Fatalf("IsError = true: %s", contentText(t, result))
	}
	want := "{\n  \"id\": 42,\n  \"name\": \"Harbor BESS\"\n}"
	if got := contentText(t, result); got != want {
		t.Errorf("result text = %q, want %q", got, want)
	}

	if captured == nil {
		t.Fatal("platform was never called")
	}
	if captured.Method != http.MethodGet {
		t.Errorf("method = %s, want GET", captured.Method)
	}
	if captured.URL.String() != "https://api.test/api/sites/42" {
		t.Errorf("url = %s, want https://api.test/api/sites/42", captured.URL)
	}
	if got := captured.Header.Get("X-API-Key"); got != "key" {
		t.Errorf("X-API-Key = %q, want key", got)
	}
}

func TestCallToolPlatformFailureKeepsSession(t *testing.T) {
	failNext := true
	session := newSession(t, "key", func(*http.Request) (*http.Response, error) {
		if failNext {
			return jsonResponse(http.StatusOK, `{"success":false,"error":"dispatch window closed"}`), nil
		}
		return jsonResponse(http.StatusOK, `{"success":true,"data":{"id":1}}`), nil
	})

	params := &mcp.CallToolParams{Name: "get_dispatch", Arguments: map[string]any{"dispatch_id": 9}}

	result, err := session.CallTool(context.Background(), params)
	if err != nil {
		t.Fatalf("CallTool() error: %v", err)
	}
	if !result.IsError {
		t.Fatal("IsError = false, want an error result")
	}
	if got := contentText(t, result); got != "dispatch window closed" {
		t.Errorf("result text = %q, want the platform error message", got)
	}

	failNext = false
	result, err = session.CallTool(context.Background(), params)
	if err != nil {
		t.Fatalf("CallTool() after failure: %v", err)
	}
	if result.IsError {
		t.Fatal("session did not recover after an error result")
	}
}

func TestCallToolRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "missing required", args: map[string]any{}},
		{name: "undeclared argument", args: map[string]any{"site_id": 42, "bogus": true}},
		{name: "wrong type", args: map[string]any{"site_id": "forty-two"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			session := newSession(t, "key", func(*http.Request) (*http.Response, error) {
				calls++
				return jsonResponse(http.StatusOK, `{"success":true}`), nil
			})

			result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      "get_site",
				Arguments: tc.args,
			})
			if err == nil && (result == nil || !result.IsError) {
				t.Error("invalid arguments were accepted")
			}
			if calls != 0 {
				t.Errorf("platform was called %d times, want 0", calls)
			}
		})
	}
}

func TestCallToolDemoRouting(t *testing.T) {
	var captured *http.Request
	session := newSession(t, "", func(r *http.Request) (*http.Response, error) {
		captured = r
		return jsonResponse(http.StatusOK, `{"success":true,"data":[]}`), nil
	})

	if _, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "list_sites"}); err != nil {
		t.Fatalf("CallTool() error: %v", err)
	}
	if captured.URL.Path != "/api/demo/sites" {
		t.Errorf("path = %s, want /api/demo/sites", captured.URL.Path)
	}
	if got := captured.Header.Get("Authorization"); got != "" {
		t.Errorf("Authorization = %q, want empty in demo mode", got)
	}
}

func TestListToolsExposesCatalog(t *testing.T) {
	session := newSession(t, "key", func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"success":true}`), nil
	})

	listed, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() error: %v", err)
	}
	if got, want := len(listed.Tools), len(catalog.Operations()); got != want {
		t.Fatalf("ListTools() returned %d tools, want %d", got, want)
	}

	byName := map[string]*mcp.Tool{}
	for _, tool := range listed.Tools {
		byName[tool.Name] = tool
	}
	getSite, ok := byName["get_site"]
	if !ok {
		t.Fatal("get_site missing from tool list")
	}
	if getSite.InputSchema == nil {
		t.Error("get_site has no input schema")
	}
	if getSite.Annotations == nil || !getSite.Annotations.ReadOnlyHint {
		t.Error("get_site is not marked read-only")
	}
	createSite, ok := byName["create_site"]
	if !ok {
		t.Fatal("create_site missing from tool list")
	}
	if createSite.Annotations != nil && createSite.Annotations.ReadOnlyHint {
		t.Error("create_site is marked read-only")
	}
}

func TestReadPlatformResource(t *testing.T) {
	session := newSession(t, "key", func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"success":true}`), nil
	})

	result, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: ResourceURI})
	if err != nil {
		t.Fatalf("ReadResource() error: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(result.Contents))
	}
	if result.Contents[0].Text != testSummary {
		t.Errorf("resource text = %q, want %q", result.Contents[0].Text, testSummary)
	}
}

func TestBuildRequiresClient(t *testing.T) {
	if _, err := (Builder{Catalog: catalog.Operations()}).Build(); err == nil {
		t.Fatal("Build() accepted a nil platform client")
	}
}

func TestBuildRejectsInvalidCatalog(t *testing.T) {
	builder := Builder{
		Client:  &platform.Client{BaseURL: "https://api.test"},
		Catalog: []catalog.Operation{{Name: ""}},
	}
	if _, err := builder.Build(); err == nil {
		t.Fatal("Build() accepted an invalid catalog")
	}
}
