package score

import "math"

// The calculators in the catalog follow three recurring shapes: additive
// point tables, direct formulas staged by fixed cut-points, and sequential
// decision trees. The helpers below keep each shape explicit at the call
// site instead of hiding all three behind one abstraction.

// PointBand maps a continuous measurement to a point contribution: the first
// band whose UpTo is >= the value wins. Bands must be ordered ascending and
// end with an unbounded band (UpTo = +Inf).
type PointBand struct {
	UpTo   float64
	Points int
}

// BandPoints returns the point contribution for v.
func BandPoints(v float64, bands []PointBand) int {
	for _, b := range bands {
		if v <= b.UpTo {
			return b.Points
		}
	}
	return 0
}

// Unbounded is the open upper limit of the last band in a table.
var Unbounded = math.Inf(1)

// StageBand maps a result interval to its clinical stage. A result belongs
// to the first band where result < Upper, or result == Upper when the bound
// is inclusive. Bands are contiguous and exhaustive; the last band's Upper
// is Unbounded.
type StageBand struct {
	Upper       float64
	Inclusive   bool
	Stage       string
	Description string
}

// StageFor resolves the stage band for a result. The bool is false only when
// the band table itself is malformed (non-exhaustive), which is a programming
// error in the calculator's table.
func StageFor(result float64, bands []StageBand) (StageBand, bool) {
	for _, b := range bands {
		if result < b.Upper || (b.Inclusive && result == b.Upper) {
			return b, true
		}
	}
	return StageBand{}, false
}

// TreeStep is one step of a sequential decision-tree calculator. Steps are
// evaluated in declaration order; the first satisfied step fixes the outcome
// and later steps are never consulted.
type TreeStep struct {
	Satisfied   bool
	Step        string
	Stage       string
	Description string
	Rationale   string
}

// FirstMatch returns the first satisfied step. The bool is false when no
// step matched; decision-tree calculators whose final step is a catch-all
// never see that case.
func FirstMatch(steps ...TreeStep) (TreeStep, bool) {
	for _, s := range steps {
		if s.Satisfied {
			return s, true
		}
	}
	return TreeStep{}, false
}

// Round2 rounds to two decimal places, the documented precision for the
// formula calculators.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
