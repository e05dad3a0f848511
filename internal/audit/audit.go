package audit

import (
	"context"
	"log/slog"
)

// Event represents an audit entry for one step of a tool invocation.
type Event struct {
	// Type describes the event kind (tool_call, tool_ok, tool_error).
	Type string
	// Tool is the tool name.
	Tool string
	// RequestID links the events of one invocation.
	RequestID string
	// Detail carries the error message or other short context.
	Detail string
}

// Logger records audit events.
type Logger interface {
	// Record stores an audit event.
	Record(ctx context.Context, event Event)
}

// StdLogger writes audit events to slog.
type StdLogger struct {
	logger *slog.Logger
}

// New returns a StdLogger.
func New(logger *slog.Logger) *StdLogger {
	return &StdLogger{logger: logger}
}

// Record logs an audit event.
func (l *StdLogger) Record(_ context.Context, event Event) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info("audit",
		"type", event.Type,
		"tool", event.Tool,
		"request_id", event.RequestID,
		"detail", event.Detail,
	)
}
