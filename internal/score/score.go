// Package score holds the shared building blocks for the clinical
// calculators: the result shape every calculator returns, the parameter
// contract it declares, boundary validation, and the small scoring engines
// (point tables, stage bands, decision trees) the calculators configure.
package score

// Result is the uniform payload returned by every calculator. Result may be
// a number, a categorical string, or a nested mapping for algorithm-style
// calculators. Breakdown is opaque auxiliary detail for transparency; its
// shape varies per calculator and is not a contract.
type Result struct {
	Result           any            `json:"result"`
	Unit             string         `json:"unit"`
	Interpretation   string         `json:"interpretation"`
	Stage            string         `json:"stage"`
	StageDescription string         `json:"stage_description"`
	Breakdown        map[string]any `json:"breakdown,omitempty"`
}

// Params carries the raw request parameters as decoded from JSON. The typed
// accessors assume the values already passed Validate; they are not a second
// validation layer.
type Params map[string]any

// Has reports whether the parameter was supplied at all. Used by calculators
// with optional fields.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Float returns the named parameter as a float64. JSON numbers always decode
// to float64; integers stored natively (e.g. from CLI construction) are
// coerced.
func (p Params) Float(name string) float64 {
	switch v := p[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Int returns the named parameter as an int.
func (p Params) Int(name string) int {
	switch v := p[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Str returns the named parameter as a string.
func (p Params) Str(name string) string {
	s, _ := p[name].(string)
	return s
}

// YesNo reports whether a yes/no categorical parameter is "yes".
func (p Params) YesNo(name string) bool {
	return p.Str(name) == "yes"
}

// Func is the uniform calculator signature. Inputs are assumed to have
// passed boundary validation against the calculator's ParamSpecs; a non-nil
// error therefore indicates a domain fault (e.g. a formula outside its valid
// region), not bad user input.
type Func func(p Params) (*Result, error)
