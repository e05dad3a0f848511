// Package runtime assembles the MCP server from the compiled tool catalog.
package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gridflux/gridflux-mcp-server/internal/audit"
	"github.com/gridflux/gridflux-mcp-server/internal/catalog"
	"github.com/gridflux/gridflux-mcp-server/internal/platform"
	"github.com/gridflux/gridflux-mcp-server/internal/security"
)

// ResourceURI identifies the static platform overview resource.
const ResourceURI = "gridflux://platform"

// Builder constructs an MCP server from the tool catalog.
type Builder struct {
	// Name and Version identify the server during the MCP handshake.
	Name    string
	Version string
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records tool invocation events.
	Audit audit.Logger
	// Client executes platform calls.
	Client *platform.Client
	// Catalog lists the operations to expose as tools.
	Catalog []catalog.Operation
	// Summary is the rendered overview resource text.
	Summary string
}

// Build validates the catalog and creates an MCP server with every tool and
// the platform overview resource registered.
func (b Builder) Build() (*mcp.Server, error) {
	if b.Client == nil {
		return nil, fmt.Errorf("platform client is required")
	}
	if err := catalog.Validate(b.Catalog); err != nil {
		return nil, err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    b.Name,
		Version: b.Version,
	}, nil)

	server.AddResource(&mcp.Resource{
		Name:        "platform-overview",
		URI:         ResourceURI,
		Description: "Capability overview of the GridFlux platform adapter with the resolved base URL and credential mode.",
		MIMEType:    "text/plain",
	}, func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: ResourceURI, MIMEType: "text/plain", Text: b.Summary},
			},
		}, nil
	})

	for _, op := range b.Catalog {
		b.addTool(server, op)
	}

	return server, nil
}

func (b Builder) addTool(server *mcp.Server, op catalog.Operation) {
	tool := &mcp.Tool{
		Name:        op.Name,
		Title:       op.Title,
		Description: op.Description,
		InputSchema: catalog.InputSchema(op),
		Annotations: &mcp.ToolAnnotations{
			Title:        op.Title,
			ReadOnlyHint: op.ReadOnly(),
		},
	}

	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		requestID := uuid.NewString()

		if b.Logger != nil {
			b.Logger.Info("tool call", "tool", op.Name, "request_id", requestID, "args", security.RedactArguments(args))
		}
		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: "tool_call", Tool: op.Name, RequestID: requestID})
		}

		output, err := b.Client.Invoke(ctx, op, args)
		if err != nil {
			if b.Logger != nil {
				b.Logger.Warn("tool failed", "tool", op.Name, "request_id", requestID, "error", err)
			}
			if b.Audit != nil {
				b.Audit.Record(ctx, audit.Event{Type: "tool_error", Tool: op.Name, RequestID: requestID, Detail: err.Error()})
			}
			return errorResult(err), nil, nil
		}

		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: "tool_ok", Tool: op.Name, RequestID: requestID})
		}
		return textResult(output), nil, nil
	})
}

// textResult wraps payload text in a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult converts a failure into an error-flagged tool result. Handlers
// never return a Go error: a failed platform call must not tear down the
// session.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}
