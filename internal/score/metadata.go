package score

// Parameter primitive types. These mirror JSON schema primitives; integers
// are validated as whole numbers even though JSON decodes them as float64.
const (
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeBoolean = "boolean"
)

// ParamSpec declares one input field of a calculator: its primitive type,
// whether it is required, and its validity constraint (inclusive numeric
// bounds or a closed enum of string tokens).
type ParamSpec struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Unit        string   `json:"unit,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Metadata is the public data contract of a calculator: its stable string
// identifier (also the HTTP route segment), catalog information, and the
// exact field set the boundary layer validates against before dispatch.
type Metadata struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	ResultUnit  string      `json:"result_unit,omitempty"`
	Params      []ParamSpec `json:"parameters"`
}

// Param returns the spec for the named parameter.
func (m Metadata) Param(name string) (ParamSpec, bool) {
	for _, ps := range m.Params {
		if ps.Name == name {
			return ps, true
		}
	}
	return ParamSpec{}, false
}

// helpers for building specs without *float64 noise at the call sites

// IntParam declares a required integer field with inclusive bounds.
func IntParam(name string, min, max float64, unit, desc string) ParamSpec {
	return ParamSpec{Name: name, Type: TypeInteger, Required: true, Min: &min, Max: &max, Unit: unit, Description: desc}
}

// NumParam declares a required numeric field with inclusive bounds.
func NumParam(name string, min, max float64, unit, desc string) ParamSpec {
	return ParamSpec{Name: name, Type: TypeNumber, Required: true, Min: &min, Max: &max, Unit: unit, Description: desc}
}

// EnumParam declares a required categorical field with a closed token set.
func EnumParam(name string, tokens []string, desc string) ParamSpec {
	return ParamSpec{Name: name, Type: TypeString, Required: true, Enum: tokens, Description: desc}
}

// YesNoParam declares a required yes/no categorical field.
func YesNoParam(name, desc string) ParamSpec {
	return EnumParam(name, []string{"yes", "no"}, desc)
}

// Optional marks a spec as optional.
func Optional(ps ParamSpec) ParamSpec {
	ps.Required = false
	return ps
}
