package dispatch

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// FieldType enumerates the JSON value types a contract field accepts.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
	TypeObject  FieldType = "object"
	TypeArray   FieldType = "array"
)

// Field declares one named argument of an operation.
type Field struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Enum        []string  `json:"enum,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Contract is an operation's declared input shape. It is the single source
// of truth: List exposes it and Invoke validates against it, so the two can
// never diverge.
type Contract struct {
	Fields []Field `json:"fields"`
}

// Validate checks args against the contract and returns one human-readable
// issue per violated field, "path: reason" form, sorted by field name.
// Empty result means the args are acceptable.
func (c Contract) Validate(args map[string]any) []string {
	var issues []string

	declared := make(map[string]Field, len(c.Fields))
	for _, f := range c.Fields {
		declared[f.Name] = f

		value, present := args[f.Name]
		if !present {
			if f.Required {
				issues = append(issues, fmt.Sprintf("%s: required but missing", f.Name))
			}
			continue
		}
		if issue := checkValue(f, value); issue != "" {
			issues = append(issues, issue)
		}
	}

	for name := range args {
		if _, ok := declared[name]; !ok {
			issues = append(issues, fmt.Sprintf("%s: unknown argument", name))
		}
	}

	sort.Strings(issues)
	return issues
}

func checkValue(f Field, value any) string {
	switch f.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%s: expected string, got %s", f.Name, typeName(value))
		}
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
			return fmt.Sprintf("%s: %q is not one of %v", f.Name, s, f.Enum)
		}
	case TypeNumber:
		if _, ok := asFloat(value); !ok {
			return fmt.Sprintf("%s: expected number, got %s", f.Name, typeName(value))
		}
	case TypeInteger:
		n, ok := asFloat(value)
		if !ok {
			return fmt.Sprintf("%s: expected integer, got %s", f.Name, typeName(value))
		}
		if n != math.Trunc(n) {
			return fmt.Sprintf("%s: expected integer, got %v", f.Name, n)
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("%s: expected boolean, got %s", f.Name, typeName(value))
		}
	case TypeObject:
		if _, ok := value.(map[string]any); !ok {
			return fmt.Sprintf("%s: expected object, got %s", f.Name, typeName(value))
		}
	case TypeArray:
		if _, ok := value.([]any); !ok {
			return fmt.Sprintf("%s: expected array, got %s", f.Name, typeName(value))
		}
	}
	return ""
}

// asFloat accepts the numeric shapes JSON decoding and Go callers produce.
func asFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}
