package catalog

// InputSchema builds the JSON Schema advertised for an operation's tool.
// The MCP SDK validates incoming arguments against it before the handler
// runs, so malformed calls never reach the platform.
func InputSchema(op Operation) map[string]any {
	properties := make(map[string]any, len(op.Params))
	required := make([]string, 0, len(op.Params))
	for _, p := range op.Params {
		prop := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			values := make([]any, len(p.Enum))
			for i, v := range p.Enum {
				values[i] = v
			}
			prop["enum"] = values
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
