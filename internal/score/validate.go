package score

import (
	"fmt"
	"math"
)

// FieldError reports the first request field that violates its declared
// constraint. The boundary layer surfaces it verbatim so callers see the
// offending field, its value, and the constraint it broke.
type FieldError struct {
	Field      string `json:"field"`
	Value      any    `json:"value,omitempty"`
	Constraint string `json:"constraint"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Field, e.Constraint)
}

// Validate checks params against the calculator's declared field set. Every
// field is validated independently; the first violation fails the whole
// request. Unknown fields are rejected so typos do not silently default.
func Validate(m Metadata, p Params) error {
	for _, ps := range m.Params {
		v, ok := p[ps.Name]
		if !ok {
			if ps.Required {
				return &FieldError{Field: ps.Name, Constraint: "required parameter is missing"}
			}
			continue
		}
		if err := validateValue(ps, v); err != nil {
			return err
		}
	}
	for name := range p {
		if _, ok := m.Param(name); !ok {
			return &FieldError{Field: name, Value: p[name], Constraint: "unknown parameter"}
		}
	}
	return nil
}

func validateValue(ps ParamSpec, v any) error {
	switch ps.Type {
	case TypeInteger:
		f, ok := asFloat(v)
		if !ok || f != math.Trunc(f) {
			return &FieldError{Field: ps.Name, Value: v, Constraint: "must be an integer"}
		}
		return checkBounds(ps, f, v)
	case TypeNumber:
		f, ok := asFloat(v)
		if !ok {
			return &FieldError{Field: ps.Name, Value: v, Constraint: "must be a number"}
		}
		return checkBounds(ps, f, v)
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return &FieldError{Field: ps.Name, Value: v, Constraint: "must be a string"}
		}
		if len(ps.Enum) > 0 && !contains(ps.Enum, s) {
			return &FieldError{Field: ps.Name, Value: v, Constraint: fmt.Sprintf("must be one of %v", ps.Enum)}
		}
		return nil
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return &FieldError{Field: ps.Name, Value: v, Constraint: "must be a boolean"}
		}
		return nil
	default:
		return &FieldError{Field: ps.Name, Value: v, Constraint: fmt.Sprintf("unsupported parameter type %q", ps.Type)}
	}
}

func checkBounds(ps ParamSpec, f float64, raw any) error {
	if ps.Min != nil && f < *ps.Min {
		return &FieldError{Field: ps.Name, Value: raw, Constraint: fmt.Sprintf("must be >= %v", *ps.Min)}
	}
	if ps.Max != nil && f > *ps.Max {
		return &FieldError{Field: ps.Name, Value: raw, Constraint: fmt.Sprintf("must be <= %v", *ps.Max)}
	}
	return nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func contains(tokens []string, s string) bool {
	for _, t := range tokens {
		if t == s {
			return true
		}
	}
	return false
}
