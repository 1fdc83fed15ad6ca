package scores

import (
	"fmt"
	"strings"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

// CRUSADE point tables. A value scores the first band it does not exceed.
var (
	crusadeHematocrit = []score.PointBand{
		{UpTo: 31, Points: 9},
		{UpTo: 34, Points: 7},
		{UpTo: 37, Points: 3},
		{UpTo: 40, Points: 2},
		{UpTo: score.Unbounded, Points: 0},
	}
	crusadeCrCl = []score.PointBand{
		{UpTo: 15, Points: 39},
		{UpTo: 30, Points: 35},
		{UpTo: 60, Points: 28},
		{UpTo: 90, Points: 17},
		{UpTo: 120, Points: 7},
		{UpTo: score.Unbounded, Points: 0},
	}
	crusadeHeartRate = []score.PointBand{
		{UpTo: 70, Points: 0},
		{UpTo: 80, Points: 1},
		{UpTo: 90, Points: 3},
		{UpTo: 100, Points: 6},
		{UpTo: 110, Points: 8},
		{UpTo: 120, Points: 10},
		{UpTo: score.Unbounded, Points: 11},
	}
	crusadeSystolicBP = []score.PointBand{
		{UpTo: 90, Points: 10},
		{UpTo: 100, Points: 8},
		{UpTo: 120, Points: 5},
		{UpTo: 180, Points: 1},
		{UpTo: 200, Points: 3},
		{UpTo: score.Unbounded, Points: 5},
	}
)

var crusadeStages = []score.StageBand{
	{Upper: 20, Inclusive: true, Stage: "Very Low Risk", Description: "Very low bleeding risk"},
	{Upper: 30, Inclusive: true, Stage: "Low Risk", Description: "Low bleeding risk"},
	{Upper: 40, Inclusive: true, Stage: "Moderate Risk", Description: "Moderate bleeding risk"},
	{Upper: 50, Inclusive: true, Stage: "High Risk", Description: "High bleeding risk"},
	{Upper: score.Unbounded, Stage: "Very High Risk", Description: "Very high bleeding risk"},
}

var crusadeBleedingRates = map[string]float64{
	"Very Low Risk":  3.1,
	"Low Risk":       5.5,
	"Moderate Risk":  8.6,
	"High Risk":      11.9,
	"Very High Risk": 19.5,
}

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "crusade_bleeding_risk",
			Title:       "CRUSADE Score for Major Bleeding Risk",
			Category:    "cardiology",
			Description: "In-hospital major bleeding risk in NSTEMI patients, from baseline clinical and laboratory variables.",
			ResultUnit:  "points",
			Params: []score.ParamSpec{
				score.NumParam("baseline_hematocrit", 15, 55, "%", "Baseline hematocrit"),
				score.NumParam("creatinine_clearance", 0, 300, "mL/min", "Creatinine clearance (Cockcroft-Gault)"),
				score.IntParam("heart_rate", 30, 300, "bpm", "Heart rate on admission"),
				score.EnumParam("patient_sex", []string{"male", "female"}, "Patient sex"),
				score.YesNoParam("signs_chf", "Signs of congestive heart failure at presentation"),
				score.YesNoParam("diabetes_mellitus", "History of diabetes mellitus"),
				score.YesNoParam("prior_vascular_disease", "Prior vascular disease"),
				score.IntParam("systolic_blood_pressure", 40, 300, "mmHg", "Systolic blood pressure on admission"),
			},
		},
		Calc: calculateCrusade,
	})
}

func calculateCrusade(p score.Params) (*score.Result, error) {
	components := map[string]any{
		"hematocrit":           score.BandPoints(p.Float("baseline_hematocrit"), crusadeHematocrit),
		"creatinine_clearance": score.BandPoints(p.Float("creatinine_clearance"), crusadeCrCl),
		"heart_rate":           score.BandPoints(p.Float("heart_rate"), crusadeHeartRate),
		"systolic_bp":          score.BandPoints(p.Float("systolic_blood_pressure"), crusadeSystolicBP),
		"sex":                  boolPoints(p.Str("patient_sex") == "female", 8),
		"chf":                  boolPoints(p.YesNo("signs_chf"), 7),
		"diabetes":             boolPoints(p.YesNo("diabetes_mellitus"), 6),
		"vascular_disease":     boolPoints(p.YesNo("prior_vascular_disease"), 6),
	}

	total := 0
	for _, v := range components {
		total += v.(int)
	}

	band, _ := score.StageFor(float64(total), crusadeStages)
	rate := crusadeBleedingRates[band.Stage]

	return &score.Result{
		Result:           total,
		Unit:             "points",
		Interpretation:   fmt.Sprintf("CRUSADE score of %d indicates %s (%.1f%% major bleeding rate). Tailor antithrombotic therapy intensity and bleeding monitoring to this risk.", total, lowerFirst(band.Description), rate),
		Stage:            band.Stage,
		StageDescription: band.Description,
		Breakdown:        components,
	}, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
