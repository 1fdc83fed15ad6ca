package scores

import (
	"fmt"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

// Annual stroke rate per 100 patient-years by total score.
var cha2ds2StrokeRates = map[int]float64{
	0: 0.5, 1: 1.5, 2: 2.9, 3: 4.6, 4: 6.7, 5: 9.2, 6: 11.9, 7: 15.2, 8: 19.5,
}

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "cha2ds2_vasc",
			Title:       "CHA₂DS₂-VASc Score for Atrial Fibrillation Stroke Risk",
			Category:    "cardiology",
			Description: "Stroke risk stratification in nonvalvular atrial fibrillation. Scored per the 2024 ESC revision, in which the sex category no longer contributes points.",
			ResultUnit:  "points",
			Params: []score.ParamSpec{
				score.IntParam("age", 18, 120, "years", "Patient age in years"),
				score.EnumParam("sex", []string{"male", "female"}, "Biological sex; recorded for the breakdown, not scored"),
				score.YesNoParam("congestive_heart_failure", "History of CHF or LV dysfunction"),
				score.YesNoParam("hypertension", "History of hypertension or current antihypertensive treatment"),
				score.YesNoParam("stroke_tia_thromboembolism", "Prior stroke, TIA, or systemic thromboembolism"),
				score.YesNoParam("vascular_disease", "Prior MI, peripheral artery disease, or aortic plaque"),
				score.YesNoParam("diabetes", "Diabetes mellitus"),
			},
		},
		Calc: calculateCha2ds2Vasc,
	})
}

func calculateCha2ds2Vasc(p score.Params) (*score.Result, error) {
	agePts := 0
	switch age := p.Int("age"); {
	case age >= 75:
		agePts = 2
	case age >= 65:
		agePts = 1
	}

	chfPts := boolPoints(p.YesNo("congestive_heart_failure"), 1)
	htnPts := boolPoints(p.YesNo("hypertension"), 1)
	strokePts := boolPoints(p.YesNo("stroke_tia_thromboembolism"), 2)
	vascPts := boolPoints(p.YesNo("vascular_disease"), 1)
	dmPts := boolPoints(p.YesNo("diabetes"), 1)

	total := agePts + chfPts + htnPts + strokePts + vascPts + dmPts

	rate, ok := cha2ds2StrokeRates[total]
	if !ok {
		rate = cha2ds2StrokeRates[8]
	}

	var stage, description, advice string
	switch {
	case total == 0:
		stage = "Low Risk"
		description = "Very low stroke risk"
		advice = "Anticoagulation is not recommended. Consider bleeding risk assessment."
	case total == 1:
		stage = "Moderate Risk"
		description = "Low-moderate stroke risk"
		advice = "Use clinical judgment to weigh risks and benefits of anticoagulation."
	default:
		stage = "High Risk"
		description = "High stroke risk"
		advice = "Oral anticoagulation is recommended to reduce stroke risk unless contraindicated."
	}

	return &score.Result{
		Result:           total,
		Unit:             "points",
		Interpretation:   fmt.Sprintf("CHA₂DS₂-VASc score %d: %s (%.1f strokes per 100 patient-years). %s", total, description, rate, advice),
		Stage:            stage,
		StageDescription: description,
		Breakdown: map[string]any{
			"age":                        agePts,
			"congestive_heart_failure":   chfPts,
			"hypertension":               htnPts,
			"stroke_tia_thromboembolism": strokePts,
			"vascular_disease":           vascPts,
			"diabetes":                   dmPts,
			"sex":                        p.Str("sex"),
			"annual_stroke_risk_percent": rate,
			"note":                       "Sex category is not scored per the 2024 ESC guideline revision.",
		},
	}, nil
}

func boolPoints(present bool, pts int) int {
	if present {
		return pts
	}
	return 0
}
