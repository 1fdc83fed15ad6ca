package scores

import (
	"fmt"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var ldlStages = []score.StageBand{
	{Upper: 100, Stage: "Optimal", Description: "Optimal LDL cholesterol"},
	{Upper: 130, Stage: "Near Optimal", Description: "Near optimal / above optimal LDL cholesterol"},
	{Upper: 160, Stage: "Borderline High", Description: "Borderline high LDL cholesterol"},
	{Upper: 190, Stage: "High", Description: "High LDL cholesterol"},
	{Upper: score.Unbounded, Stage: "Very High", Description: "Very high LDL cholesterol"},
}

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "ldl_calculated",
			Title:       "LDL Cholesterol (Friedewald Formula)",
			Category:    "cardiology",
			Description: "Estimated LDL cholesterol: total cholesterol − HDL − triglycerides/5, staged per ATP III cut-points.",
			ResultUnit:  "mg/dL",
			Params: []score.ParamSpec{
				score.NumParam("total_cholesterol", 50, 1000, "mg/dL", "Total cholesterol"),
				score.NumParam("hdl_cholesterol", 10, 200, "mg/dL", "HDL cholesterol"),
				score.NumParam("triglycerides", 30, 5000, "mg/dL", "Fasting triglycerides"),
			},
		},
		Calc: calculateLDL,
	})
}

func calculateLDL(p score.Params) (*score.Result, error) {
	tc := p.Float("total_cholesterol")
	hdl := p.Float("hdl_cholesterol")
	tg := p.Float("triglycerides")

	// Cross-field constraint the flat schema cannot express.
	if hdl >= tc {
		return nil, fmt.Errorf("ldl_calculated: HDL cholesterol (%.0f) cannot equal or exceed total cholesterol (%.0f)", hdl, tc)
	}

	ldl := score.Round1(tc - hdl - tg/5)

	var accuracyNotes []string
	if tg > 400 {
		accuracyNotes = append(accuracyNotes, "Triglycerides >400 mg/dL: Friedewald formula is inaccurate; direct LDL measurement recommended.")
	}
	if tg > 200 && ldl < 70 {
		accuracyNotes = append(accuracyNotes, "May underestimate LDL when triglycerides >200 mg/dL and LDL <70 mg/dL.")
	}
	if tg < 100 {
		accuracyNotes = append(accuracyNotes, "May underestimate LDL when triglycerides <100 mg/dL.")
	}

	band, _ := score.StageFor(ldl, ldlStages)

	return &score.Result{
		Result:           ldl,
		Unit:             "mg/dL",
		Interpretation:   fmt.Sprintf("Calculated LDL cholesterol of %.1f mg/dL is %s. Treatment targets vary by cardiovascular risk category.", ldl, lowerFirst(band.Stage)),
		Stage:            band.Stage,
		StageDescription: band.Description,
		Breakdown: map[string]any{
			"total_cholesterol": tc,
			"hdl_cholesterol":   hdl,
			"triglycerides":     tg,
			"formula":           "LDL = TC − HDL − TG/5",
			"accuracy_notes":    accuracyNotes,
		},
	}, nil
}
