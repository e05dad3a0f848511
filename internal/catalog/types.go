// Package catalog declares the fixed set of GridFlux platform operations
// exposed as MCP tools. The catalog is compiled in: every tool maps to
// exactly one REST endpoint and the set never changes at runtime.
package catalog

import "net/http"

// Parameter locations within the outgoing request.
const (
	// InPath substitutes the value into a {name} segment of the path.
	InPath = "path"
	// InQuery appends the value to the query string.
	InQuery = "query"
	// InBody places the value into the JSON request body.
	InBody = "body"
)

// Parameter types, mirroring JSON Schema primitive types.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Param describes one tool parameter and where it travels in the request.
type Param struct {
	// Name is the argument key as the agent supplies it.
	Name string `yaml:"name"`
	// Type is the JSON Schema type of the value.
	Type string `yaml:"type"`
	// In selects the request location (path, query, body).
	In string `yaml:"in"`
	// Required marks the parameter as mandatory.
	Required bool `yaml:"required,omitempty"`
	// Description explains the parameter for the agent.
	Description string `yaml:"description"`
	// Enum restricts string values to a fixed set.
	Enum []string `yaml:"enum,omitempty"`
}

// Operation declares one remote platform operation exposed as an MCP tool.
type Operation struct {
	// Name is the tool name.
	Name string `yaml:"name"`
	// Title is the human-friendly tool title.
	Title string `yaml:"title"`
	// Description explains the tool for the agent.
	Description string `yaml:"description"`
	// Area groups related tools in the capability summary.
	Area string `yaml:"area"`
	// Method is the HTTP method of the platform endpoint.
	Method string `yaml:"method"`
	// Path is the endpoint path template relative to the base URL.
	Path string `yaml:"path"`
	// DemoPath, when set, replaces Path for credential-less calls.
	DemoPath string `yaml:"demo_path,omitempty"`
	// Params lists the tool parameters.
	Params []Param `yaml:"params,omitempty"`
}

// ReadOnly reports whether the operation cannot change platform state.
func (o Operation) ReadOnly() bool {
	return o.Method == http.MethodGet
}

// Areas returns the distinct operation areas in catalog order.
func Areas(ops []Operation) []string {
	seen := make(map[string]struct{}, len(ops))
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		if _, ok := seen[op.Area]; ok {
			continue
		}
		seen[op.Area] = struct{}{}
		out = append(out, op.Area)
	}
	return out
}
