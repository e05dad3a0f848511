package catalog

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Validate verifies the catalog is internally consistent: unique names,
// methods within the request vocabulary, path placeholders matching declared
// path parameters, and demo endpoints restricted to read-only operations.
func Validate(ops []Operation) error {
	if len(ops) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	names := map[string]struct{}{}
	for i, op := range ops {
		if strings.TrimSpace(op.Name) == "" {
			return fmt.Errorf("operations[%d].name is required", i)
		}
		if _, exists := names[op.Name]; exists {
			return fmt.Errorf("duplicate operation name: %s", op.Name)
		}
		names[op.Name] = struct{}{}

		if strings.TrimSpace(op.Description) == "" {
			return fmt.Errorf("operation %s: description is required", op.Name)
		}
		if strings.TrimSpace(op.Area) == "" {
			return fmt.Errorf("operation %s: area is required", op.Name)
		}
		switch op.Method {
		case http.MethodGet, http.MethodPost, http.MethodPatch:
		default:
			return fmt.Errorf("operation %s: method must be GET, POST or PATCH, got %q", op.Name, op.Method)
		}
		if !strings.HasPrefix(op.Path, "/") {
			return fmt.Errorf("operation %s: path must start with /", op.Name)
		}
		if op.DemoPath != "" {
			if op.Method != http.MethodGet {
				return fmt.Errorf("operation %s: demo endpoints are read-only, method must be GET", op.Name)
			}
			if !strings.HasPrefix(op.DemoPath, "/") {
				return fmt.Errorf("operation %s: demo path must start with /", op.Name)
			}
		}
		if err := validateParams(op); err != nil {
			return fmt.Errorf("operation %s: %w", op.Name, err)
		}
	}

	return nil
}

func validateParams(op Operation) error {
	seen := map[string]struct{}{}
	pathParams := map[string]struct{}{}
	for _, p := range op.Params {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("param name is required")
		}
		if _, exists := seen[p.Name]; exists {
			return fmt.Errorf("duplicate param: %s", p.Name)
		}
		seen[p.Name] = struct{}{}

		if strings.TrimSpace(p.Description) == "" {
			return fmt.Errorf("param %s: description is required", p.Name)
		}
		switch p.Type {
		case TypeString, TypeInteger, TypeNumber, TypeBoolean:
		default:
			return fmt.Errorf("param %s: type must be string, integer, number or boolean, got %q", p.Name, p.Type)
		}
		if len(p.Enum) > 0 && p.Type != TypeString {
			return fmt.Errorf("param %s: enum is only supported for string params", p.Name)
		}

		switch p.In {
		case InPath:
			if !p.Required {
				return fmt.Errorf("param %s: path params must be required", p.Name)
			}
			pathParams[p.Name] = struct{}{}
		case InQuery:
		case InBody:
			if op.Method == http.MethodGet {
				return fmt.Errorf("param %s: GET operations cannot carry body params", p.Name)
			}
		default:
			return fmt.Errorf("param %s: in must be path, query or body, got %q", p.Name, p.In)
		}
	}

	if err := matchPlaceholders(op.Path, pathParams); err != nil {
		return err
	}
	if op.DemoPath != "" {
		demoPlaceholders := placeholders(op.DemoPath)
		pathPlaceholders := placeholders(op.Path)
		if len(demoPlaceholders) != len(pathPlaceholders) {
			return fmt.Errorf("demo path placeholders differ from path placeholders")
		}
		for i := range demoPlaceholders {
			if demoPlaceholders[i] != pathPlaceholders[i] {
				return fmt.Errorf("demo path placeholders differ from path placeholders")
			}
		}
	}
	return nil
}

// matchPlaceholders checks that {name} segments and declared path params
// cover each other exactly.
func matchPlaceholders(path string, pathParams map[string]struct{}) error {
	unmatched := make(map[string]struct{}, len(pathParams))
	for name := range pathParams {
		unmatched[name] = struct{}{}
	}
	for _, name := range placeholders(path) {
		if _, ok := pathParams[name]; !ok {
			return fmt.Errorf("path placeholder {%s} has no declared path param", name)
		}
		delete(unmatched, name)
	}
	for name := range unmatched {
		return fmt.Errorf("path param %s does not appear in %s", name, path)
	}
	return nil
}

// placeholders lists the {name} segments of a path template in order.
func placeholders(path string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(path, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
