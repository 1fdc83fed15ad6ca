package scores

import (
	"fmt"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var cpoStages = []score.StageBand{
	{Upper: 0.6, Stage: "Severely Reduced", Description: "Cardiac power consistent with cardiogenic shock"},
	{Upper: 1.0, Stage: "Reduced", Description: "Reduced cardiac pumping capability"},
	{Upper: score.Unbounded, Stage: "Normal", Description: "Normal resting cardiac power"},
}

func init() {
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "cardiac_power_output",
			Title:       "Cardiac Power Output",
			Category:    "cardiology",
			Description: "Cardiac pumping capability in watts: (MAP × CO) / 451, or ((MAP − RAP) × CO) / 451 when right atrial pressure is available.",
			ResultUnit:  "W",
			Params: []score.ParamSpec{
				score.NumParam("mean_arterial_pressure", 20, 200, "mmHg", "Mean arterial pressure"),
				score.NumParam("cardiac_output", 0.5, 20, "L/min", "Cardiac output"),
				score.Optional(score.NumParam("right_atrial_pressure", 0, 40, "mmHg", "Right atrial pressure; enables the pressure-gradient formula")),
			},
		},
		Calc: calculateCardiacPowerOutput,
	})
}

func calculateCardiacPowerOutput(p score.Params) (*score.Result, error) {
	mapP := p.Float("mean_arterial_pressure")
	co := p.Float("cardiac_output")

	standard := score.Round2(mapP * co / 451)

	breakdown := map[string]any{
		"standard_cpo": standard,
		"primary":      "standard",
	}
	primary := standard

	// When RAP is supplied the gradient formula is the more accurate one and
	// becomes the primary result; both are reported.
	if p.Has("right_atrial_pressure") {
		rap := p.Float("right_atrial_pressure")
		if rap >= mapP {
			return nil, fmt.Errorf("cardiac_power_output: right atrial pressure (%.1f) must be below mean arterial pressure (%.1f)", rap, mapP)
		}
		gradient := score.Round2((mapP - rap) * co / 451)
		breakdown["gradient_cpo"] = gradient
		breakdown["primary"] = "gradient"
		primary = gradient
	}

	band, _ := score.StageFor(primary, cpoStages)

	return &score.Result{
		Result:           primary,
		Unit:             "W",
		Interpretation:   fmt.Sprintf("Cardiac power output of %.2f W: %s. Values below 0.6 W predict poor outcomes in cardiogenic shock; normal resting output is about 1 W.", primary, lowerFirst(band.Description)),
		Stage:            band.Stage,
		StageDescription: band.Description,
		Breakdown:        breakdown,
	}, nil
}
