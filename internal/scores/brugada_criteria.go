package scores

import (
	"fmt"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "brugada_criteria",
			Title:       "Brugada Criteria for Ventricular Tachycardia",
			Category:    "cardiology",
			Description: "Four-step sequential algorithm distinguishing ventricular tachycardia from supraventricular tachycardia with aberrancy in wide-complex tachycardia.",
			ResultUnit:  "algorithm",
			Params: []score.ParamSpec{
				score.YesNoParam("absence_rs_precordial", "Absence of an RS complex in all precordial leads"),
				score.YesNoParam("r_to_s_interval_over_100ms", "R to S interval >100 ms in any precordial lead"),
				score.YesNoParam("av_dissociation", "Atrioventricular dissociation present"),
				score.YesNoParam("morphology_criteria_vt", "Morphology criteria for VT present in leads V1-V2 and V6"),
			},
		},
		Calc: calculateBrugadaCriteria,
	})
}

func calculateBrugadaCriteria(p score.Params) (*score.Result, error) {
	step, matched := score.FirstMatch(
		score.TreeStep{
			Satisfied:   p.YesNo("absence_rs_precordial"),
			Step:        "Step 1: RS complex",
			Stage:       "Ventricular Tachycardia",
			Description: "VT diagnosed at step 1",
			Rationale:   "No RS complex in any precordial lead is diagnostic of VT (sensitivity 21%, specificity 100%).",
		},
		score.TreeStep{
			Satisfied:   p.YesNo("r_to_s_interval_over_100ms"),
			Step:        "Step 2: R to S interval",
			Stage:       "Ventricular Tachycardia",
			Description: "VT diagnosed at step 2",
			Rationale:   "R to S interval >100 ms in a precordial lead is diagnostic of VT (Brugada sign).",
		},
		score.TreeStep{
			Satisfied:   p.YesNo("av_dissociation"),
			Step:        "Step 3: AV dissociation",
			Stage:       "Ventricular Tachycardia",
			Description: "VT diagnosed at step 3",
			Rationale:   "Atrioventricular dissociation is diagnostic of VT.",
		},
		score.TreeStep{
			Satisfied:   p.YesNo("morphology_criteria_vt"),
			Step:        "Step 4: Morphology criteria",
			Stage:       "Ventricular Tachycardia",
			Description: "VT diagnosed at step 4",
			Rationale:   "Morphology criteria for VT in V1-V2 and V6 are diagnostic of VT.",
		},
	)

	if !matched {
		return &score.Result{
			Result:           "Supraventricular Tachycardia",
			Unit:             "algorithm",
			Interpretation:   "All four Brugada criteria are negative: supraventricular tachycardia with aberrant conduction is the likely diagnosis (sensitivity 96.5%, specificity 98.7% for the full algorithm).",
			Stage:            "SVT with Aberrancy",
			StageDescription: "No criterion for VT satisfied",
			Breakdown:        map[string]any{"decision_step": "All steps negative"},
		}, nil
	}

	return &score.Result{
		Result:           step.Stage,
		Unit:             "algorithm",
		Interpretation:   fmt.Sprintf("Brugada algorithm, %s: %s Evaluation stops at the first satisfied criterion.", step.Step, step.Rationale),
		Stage:            step.Stage,
		StageDescription: step.Description,
		Breakdown:        map[string]any{"decision_step": step.Step},
	}, nil
}
