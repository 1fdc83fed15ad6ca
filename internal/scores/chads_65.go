package scores

import (
	"fmt"
	"strings"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "chads_65",
			Title:       "CHADS-65 (Canadian Cardiovascular Society Algorithm)",
			Category:    "cardiology",
			Description: "Sequential decision algorithm guiding antithrombotic therapy selection in nonvalvular atrial fibrillation.",
			ResultUnit:  "algorithm",
			Params: []score.ParamSpec{
				score.YesNoParam("age_65_or_older", "Patient is 65 years of age or older"),
				score.YesNoParam("congestive_heart_failure", "History of CHF or LV dysfunction"),
				score.YesNoParam("hypertension", "History of hypertension or current treatment"),
				score.YesNoParam("diabetes_mellitus", "Diabetes mellitus or current treatment"),
				score.YesNoParam("stroke_tia_history", "Prior stroke, TIA, or thromboembolism"),
				score.YesNoParam("coronary_artery_disease", "CAD including MI or revascularization"),
				score.YesNoParam("peripheral_artery_disease", "PAD including amputation, bypass, or angioplasty"),
			},
		},
		Calc: calculateChads65,
	})
}

func calculateChads65(p score.Params) (*score.Result, error) {
	chads2Factors := presentFactors(p, map[string]string{
		"congestive_heart_failure": "Congestive Heart Failure",
		"hypertension":             "Hypertension",
		"diabetes_mellitus":        "Diabetes Mellitus",
		"stroke_tia_history":       "Stroke/TIA History",
	})
	vascularFactors := presentFactors(p, map[string]string{
		"coronary_artery_disease":   "Coronary Artery Disease",
		"peripheral_artery_disease": "Peripheral Artery Disease",
	})

	// First satisfied step fixes the outcome; later inputs are not consulted.
	step, _ := score.FirstMatch(
		score.TreeStep{
			Satisfied:   p.YesNo("age_65_or_older"),
			Step:        "Step 1: Age assessment",
			Stage:       "Oral Anticoagulation",
			Description: "Age ≥65 years",
			Rationale:   "Age ≥65 years qualifies for oral anticoagulation. DOACs preferred over warfarin.",
		},
		score.TreeStep{
			Satisfied:   len(chads2Factors) > 0,
			Step:        "Step 2: CHADS₂ risk factors",
			Stage:       "Oral Anticoagulation",
			Description: "CHADS₂ risk factors present",
			Rationale:   fmt.Sprintf("CHADS₂ risk factors present (%s). Oral anticoagulation recommended; DOACs preferred over warfarin.", strings.Join(chads2Factors, ", ")),
		},
		score.TreeStep{
			Satisfied:   len(vascularFactors) > 0,
			Step:        "Step 3: Vascular disease",
			Stage:       "Antiplatelet Therapy",
			Description: "Arterial vascular disease without CHADS₂ risk factors",
			Rationale:   fmt.Sprintf("Vascular disease present (%s) with low CHADS₂ risk. ASA 81mg daily recommended.", strings.Join(vascularFactors, ", ")),
		},
		score.TreeStep{
			Satisfied:   true,
			Step:        "Step 4: No risk factors",
			Stage:       "No Antithrombotic Therapy",
			Description: "Very low stroke risk",
			Rationale:   "Age <65 with no CHADS₂ risk factors and no vascular disease. No antithrombotic therapy recommended; reassess annually.",
		},
	)

	return &score.Result{
		Result:           step.Stage,
		Unit:             "algorithm",
		Interpretation:   fmt.Sprintf("CHADS-65 algorithm, %s: %s", step.Step, step.Rationale),
		Stage:            step.Stage,
		StageDescription: step.Description,
		Breakdown: map[string]any{
			"decision_step":    step.Step,
			"chads2_factors":   chads2Factors,
			"vascular_factors": vascularFactors,
		},
	}, nil
}

func presentFactors(p score.Params, fields map[string]string) []string {
	// deterministic ordering across invocations
	order := []string{
		"congestive_heart_failure", "hypertension", "diabetes_mellitus",
		"stroke_tia_history", "coronary_artery_disease", "peripheral_artery_disease",
	}
	var out []string
	for _, name := range order {
		label, cares := fields[name]
		if cares && p.YesNo(name) {
			out = append(out, label)
		}
	}
	return out
}
