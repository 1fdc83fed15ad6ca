// Package registry maps stable calculator identifiers to their
// implementations. The map is populated once at process start via package
// init registration and is read-only afterward, so lookups need no locking.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var (
	// ErrDuplicateID means two calculators registered the same identifier.
	// Identifiers are version-free public names; a collision is a build
	// defect, never a runtime condition.
	ErrDuplicateID = errors.New("duplicate calculator identifier")

	// ErrUnknownScore means the identifier is not registered. The HTTP
	// layer maps it to a not-found response rather than a server fault.
	ErrUnknownScore = errors.New("unknown calculator identifier")
)

// Entry pairs a calculator's metadata with its implementation.
type Entry struct {
	Metadata score.Metadata
	Calc     score.Func
}

// Registry is a string-keyed dispatch table of calculators.
type Registry struct {
	entries map[string]Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a calculator under its metadata ID.
func (r *Registry) Register(e Entry) error {
	id := e.Metadata.ID
	if id == "" {
		return fmt.Errorf("register: empty calculator identifier")
	}
	if e.Calc == nil {
		return fmt.Errorf("register %q: nil calculator", id)
	}
	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("register %q: %w", id, ErrDuplicateID)
	}
	r.entries[id] = e
	return nil
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Calculate dispatches params to the calculator registered under id. An
// unregistered id yields ErrUnknownScore; any error from the calculator
// itself propagates untranslated.
func (r *Registry) Calculate(id string, params score.Params) (*score.Result, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScore, id)
	}
	return e.Calc(params)
}

// List returns the metadata of every registered calculator, sorted by ID.
func (r *Registry) List() []score.Metadata {
	out := make([]score.Metadata, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Metadata)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Categories returns the distinct medical categories in the catalog, sorted.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	for _, e := range r.entries {
		seen[e.Metadata.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Default is the process-wide registry the calculator packages register into
// at init time.
var Default = New()

// MustRegister registers into Default and panics on failure. Registration
// runs at init; a failure there is unrecoverable by definition.
func MustRegister(e Entry) {
	if err := Default.Register(e); err != nil {
		panic(err)
	}
}
