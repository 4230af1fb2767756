package flows

import (
	"fmt"
	"math"
	"slices"

	"fieldservice/internal/usecase/interfaces"
)

// conform checks a decoded JSON value against s: types, required
// properties, enums, and no properties beyond those declared.
func conform(s *interfaces.Schema, v any, path string) error {
	if s == nil {
		return nil
	}
	if v == nil {
		return fmt.Errorf("%s: must not be null", label(path))
	}

	switch s.Type {
	case "object":
		m, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object", label(path))
		}
		for _, name := range s.Required {
			if _, ok := m[name]; !ok {
				return fmt.Errorf("%s: is required", join(path, name))
			}
		}
		for name, val := range m {
			ps, ok := s.Properties[name]
			if !ok {
				return fmt.Errorf("%s: unexpected property", join(path, name))
			}
			if err := conform(ps, val, join(path, name)); err != nil {
				return err
			}
		}
	case "array":
		items, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array", label(path))
		}
		for i, item := range items {
			if err := conform(s.Items, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case "string":
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s: expected string", label(path))
		}
		if len(s.Enum) > 0 && !slices.Contains(s.Enum, str) {
			return fmt.Errorf("%s: %q is not one of %v", label(path), str, s.Enum)
		}
	case "number":
		if _, ok := v.(float64); !ok {
			return fmt.Errorf("%s: expected number", label(path))
		}
	case "integer":
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("%s: expected integer", label(path))
		}
	case "boolean":
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%s: expected boolean", label(path))
		}
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func label(path string) string {
	if path == "" {
		return "response"
	}
	return path
}
