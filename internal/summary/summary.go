// Package summary renders the static capability resource advertised over
// MCP.
package summary

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed summary.tmpl
var rawTemplate string

// Info feeds the capability summary template.
type Info struct {
	// BaseURL is the resolved platform URL.
	BaseURL string
	// CredentialMode names the configured credential mode.
	CredentialMode string
	// ToolCount is the number of registered tools.
	ToolCount int
	// Areas lists the tool areas in catalog order.
	Areas []string
}

// Render produces the text served as the platform overview resource.
func Render(info Info) (string, error) {
	tmpl, err := template.New("summary").Funcs(template.FuncMap{
		"join": func(sep string, items []string) string {
			return strings.Join(items, sep)
		},
	}).Parse(rawTemplate)
	if err != nil {
		return "", fmt.Errorf("parse summary template: %w", err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, info); err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return out.String(), nil
}
