// Package scores contains the calculator catalog. Each file implements one
// clinical score as a pure function over validated parameters and registers
// it with the default registry at init, keyed by its stable identifier.
package scores
