package scores

import (
	"fmt"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var homaIRStages = []score.StageBand{
	{Upper: 1.0, Stage: "Insulin Sensitive", Description: "Optimal insulin sensitivity"},
	{Upper: 1.9, Stage: "Normal", Description: "Normal insulin resistance"},
	{Upper: 2.9, Stage: "Borderline", Description: "Early insulin resistance"},
	{Upper: score.Unbounded, Stage: "Insulin Resistance", Description: "Significant insulin resistance"},
}

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "homa_ir",
			Title:       "HOMA-IR (Homeostatic Model Assessment for Insulin Resistance)",
			Category:    "endocrinology",
			Description: "Estimates insulin resistance from fasting insulin and fasting glucose: (insulin × glucose) / 405.",
			ResultUnit:  "index",
			Params: []score.ParamSpec{
				score.NumParam("fasting_insulin", 0.1, 300, "µIU/mL", "Fasting serum insulin"),
				score.NumParam("fasting_glucose", 40, 600, "mg/dL", "Fasting plasma glucose"),
			},
		},
		Calc: calculateHomaIR,
	})
}

func calculateHomaIR(p score.Params) (*score.Result, error) {
	insulin := p.Float("fasting_insulin")
	glucose := p.Float("fasting_glucose")

	index := score.Round2(insulin * glucose / 405)
	band, _ := score.StageFor(index, homaIRStages)

	var advice string
	switch band.Stage {
	case "Insulin Sensitive":
		advice = "No intervention indicated."
	case "Normal":
		advice = "Maintain current lifestyle; routine screening per risk profile."
	case "Borderline":
		advice = "Lifestyle modification recommended; reassess with repeat fasting labs."
	default:
		advice = "Evaluate for metabolic syndrome and type 2 diabetes; lifestyle intervention and specialist follow-up indicated."
	}

	return &score.Result{
		Result:           index,
		Unit:             "index",
		Interpretation:   fmt.Sprintf("HOMA-IR of %.2f indicates %s. %s", index, lowerFirst(band.Description), advice),
		Stage:            band.Stage,
		StageDescription: band.Description,
		Breakdown: map[string]any{
			"fasting_insulin": insulin,
			"fasting_glucose": glucose,
			"formula":         "(fasting_insulin × fasting_glucose) / 405",
		},
	}, nil
}
