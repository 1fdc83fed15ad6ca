package scores

import (
	"fmt"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "winters_formula",
			Title:       "Winters' Formula for Metabolic Acidosis Compensation",
			Category:    "pulmonology",
			Description: "Expected pCO₂ compensation in pure metabolic acidosis: 1.5 × HCO₃ + 8 ± 2 mmHg, compared against the measured pCO₂.",
			ResultUnit:  "mmHg",
			Params: []score.ParamSpec{
				score.NumParam("bicarbonate", 1, 60, "mEq/L", "Serum bicarbonate"),
				score.NumParam("measured_pco2", 10, 120, "mmHg", "Measured arterial pCO₂"),
			},
		},
		Calc: calculateWintersFormula,
	})
}

func calculateWintersFormula(p score.Params) (*score.Result, error) {
	hco3 := p.Float("bicarbonate")
	measured := p.Float("measured_pco2")

	expected := score.Round1(1.5*hco3 + 8)
	lower := score.Round1(expected - 2)
	upper := score.Round1(expected + 2)

	var stage, description string
	switch {
	case measured < lower:
		stage = "Concomitant Respiratory Alkalosis"
		description = "Measured pCO₂ below the expected compensation range"
	case measured > upper:
		stage = "Concomitant Respiratory Acidosis"
		description = "Measured pCO₂ above the expected compensation range"
	default:
		stage = "Appropriate Compensation"
		description = "Measured pCO₂ within the expected compensation range"
	}

	return &score.Result{
		Result:           expected,
		Unit:             "mmHg",
		Interpretation:   fmt.Sprintf("Expected pCO₂ is %.1f mmHg (range %.1f-%.1f). Measured pCO₂ of %.1f mmHg indicates %s.", expected, lower, upper, measured, lowerFirst(description)),
		Stage:            stage,
		StageDescription: description,
		Breakdown: map[string]any{
			"expected_pco2_low":  lower,
			"expected_pco2_high": upper,
			"measured_pco2":      measured,
			"formula":            "1.5 × HCO₃ + 8 ± 2",
		},
	}, nil
}
