package platform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// envelope is the platform's standard response wrapper. Success is a pointer
// so an absent field can be told apart from an explicit false; Data stays
// raw so the platform's key order survives re-indentation.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// normalize converts an HTTP status and raw body into the adapter's uniform
// result. The envelope's success field, when present, outranks the HTTP
// status; bodies that do not follow the envelope contract are passed through
// whole.
func normalize(status int, body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	ok := status >= 200 && status < 300

	if len(trimmed) == 0 {
		if !ok {
			return "", fmt.Errorf("platform returned status %d", status)
		}
		return "ok", nil
	}

	var env envelope
	envErr := json.Unmarshal(trimmed, &env)

	if envErr == nil && env.Success != nil {
		if !*env.Success {
			return "", envelopeError(env, status)
		}
		return payload(env, trimmed)
	}

	if !ok {
		if envErr == nil {
			if msg := strings.TrimSpace(env.Error); msg != "" {
				return "", errors.New(msg)
			}
		}
		return "", fmt.Errorf("platform returned status %d: %s", status, trimmed)
	}

	if envErr == nil {
		return payload(env, trimmed)
	}
	if json.Valid(trimmed) {
		return indent(trimmed)
	}
	return "", fmt.Errorf("failed to decode platform response: %w", envErr)
}

func envelopeError(env envelope, status int) error {
	if msg := strings.TrimSpace(env.Error); msg != "" {
		return errors.New(msg)
	}
	return fmt.Errorf("request failed with status %d", status)
}

// payload picks the data field when the envelope carries one, otherwise the
// whole body.
func payload(env envelope, body []byte) (string, error) {
	raw := []byte(env.Data)
	if env.Data == nil {
		raw = body
	}
	return indent(raw)
}

// indent reformats raw JSON without reordering keys.
func indent(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format platform response: %w", err)
	}
	return buf.String(), nil
}
