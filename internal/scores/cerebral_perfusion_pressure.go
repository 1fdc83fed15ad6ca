package scores

import (
	"fmt"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var cppStages = []score.StageBand{
	{Upper: 50, Stage: "Critically Low", Description: "Cerebral hypoperfusion with risk of ischemia"},
	{Upper: 60, Stage: "Low", Description: "Below the usual management target in brain injury"},
	{Upper: 100, Inclusive: true, Stage: "Normal", Description: "Adequate cerebral perfusion"},
	{Upper: score.Unbounded, Stage: "Elevated", Description: "Elevated perfusion pressure with risk of hyperemia and edema"},
}

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "cerebral_perfusion_pressure",
			Title:       "Cerebral Perfusion Pressure",
			Category:    "neurology",
			Description: "Net pressure gradient driving cerebral blood flow: CPP = MAP − ICP.",
			ResultUnit:  "mmHg",
			Params: []score.ParamSpec{
				score.NumParam("mean_arterial_pressure", 0, 250, "mmHg", "Mean arterial pressure"),
				score.NumParam("intracranial_pressure", 0, 100, "mmHg", "Intracranial pressure"),
			},
		},
		Calc: calculateCPP,
	})
}

func calculateCPP(p score.Params) (*score.Result, error) {
	mapP := p.Float("mean_arterial_pressure")
	icp := p.Float("intracranial_pressure")

	cpp := score.Round1(mapP - icp)
	band, _ := score.StageFor(cpp, cppStages)

	return &score.Result{
		Result:           cpp,
		Unit:             "mmHg",
		Interpretation:   fmt.Sprintf("Cerebral perfusion pressure of %.1f mmHg: %s. Management guidelines target 60-70 mmHg in traumatic brain injury.", cpp, lowerFirst(band.Description)),
		Stage:            band.Stage,
		StageDescription: band.Description,
		Breakdown: map[string]any{
			"mean_arterial_pressure": mapP,
			"intracranial_pressure":  icp,
			"formula":                "CPP = MAP − ICP",
		},
	}, nil
}
