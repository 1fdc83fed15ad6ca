package scores

import (
	"fmt"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var curb65Stages = []score.StageBand{
	{Upper: 1, Inclusive: true, Stage: "Low Risk", Description: "Low mortality risk; outpatient treatment usually appropriate"},
	{Upper: 2, Inclusive: true, Stage: "Intermediate Risk", Description: "Intermediate mortality risk; consider short inpatient stay or supervised outpatient treatment"},
	{Upper: score.Unbounded, Stage: "High Risk", Description: "High mortality risk; hospitalize, assess for ICU admission"},
}

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "curb_65",
			Title:       "CURB-65 Score for Pneumonia Severity",
			Category:    "pulmonology",
			Description: "Community-acquired pneumonia severity and 30-day mortality risk from confusion, urea, respiratory rate, blood pressure, and age.",
			ResultUnit:  "points",
			Params: []score.ParamSpec{
				score.YesNoParam("confusion", "New-onset confusion (abbreviated mental test ≤8)"),
				score.NumParam("urea", 0, 100, "mmol/L", "Blood urea nitrogen"),
				score.IntParam("respiratory_rate", 4, 80, "breaths/min", "Respiratory rate"),
				score.IntParam("systolic_blood_pressure", 40, 300, "mmHg", "Systolic blood pressure"),
				score.IntParam("diastolic_blood_pressure", 20, 200, "mmHg", "Diastolic blood pressure"),
				score.IntParam("age", 0, 120, "years", "Patient age in years"),
			},
		},
		Calc: calculateCurb65,
	})
}

func calculateCurb65(p score.Params) (*score.Result, error) {
	components := map[string]any{
		"confusion":        boolPoints(p.YesNo("confusion"), 1),
		"urea":             boolPoints(p.Float("urea") > 7, 1),
		"respiratory_rate": boolPoints(p.Int("respiratory_rate") >= 30, 1),
		"blood_pressure":   boolPoints(p.Int("systolic_blood_pressure") < 90 || p.Int("diastolic_blood_pressure") <= 60, 1),
		"age":              boolPoints(p.Int("age") >= 65, 1),
	}

	total := 0
	for _, v := range components {
		total += v.(int)
	}

	band, _ := score.StageFor(float64(total), curb65Stages)

	return &score.Result{
		Result:           total,
		Unit:             "points",
		Interpretation:   fmt.Sprintf("CURB-65 score of %d: %s.", total, lowerFirst(band.Description)),
		Stage:            band.Stage,
		StageDescription: band.Description,
		Breakdown:        components,
	}, nil
}
