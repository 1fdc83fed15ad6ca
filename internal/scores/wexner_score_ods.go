package scores

import (
	"fmt"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var wexnerFields = []string{
	"incontinence_solid_stool",
	"incontinence_liquid_stool",
	"incontinence_gas",
	"wears_pad",
	"lifestyle_alteration",
}

var wexnerStages = []score.StageBand{
	{Upper: 0, Inclusive: true, Stage: "Perfect Continence", Description: "Perfect continence with no symptoms"},
	{Upper: 10, Stage: "Mild Incontinence", Description: "Mild fecal incontinence"},
	{Upper: score.Unbounded, Stage: "Clinical Incontinence", Description: "Clinically significant fecal incontinence"},
}

func init() {
	params := make([]score.ParamSpec, 0, len(wexnerFields))
	for _, f := range wexnerFields {
		params = append(params, score.IntParam(f, 0, 4, "points", "Frequency scale: 0 never to 4 at least once a day"))
	}
	registry.MustRegister(registry.Entry{
		Metadata: score.Metadata{
			ID:          "wexner_score_ods",
			Title:       "Wexner Score for Obstructed Defecation Syndrome",
			Category:    "gastroenterology",
			Description: "Cleveland Clinic Fecal Incontinence Score: five frequency-scaled items summed to stratify incontinence severity.",
			ResultUnit:  "points",
			Params:      params,
		},
		Calc: calculateWexner,
	})
}

func calculateWexner(p score.Params) (*score.Result, error) {
	components := make(map[string]any, len(wexnerFields))
	total := 0
	for _, f := range wexnerFields {
		pts := p.Int(f)
		components[f] = pts
		total += pts
	}

	band, _ := score.StageFor(float64(total), wexnerStages)

	var advice string
	switch band.Stage {
	case "Perfect Continence":
		advice = "No treatment is typically required for incontinence; continue routine care."
	case "Mild Incontinence":
		advice = "Consider conservative management: dietary modification, pelvic floor exercises, and bowel training."
	default:
		advice = "Active management indicated: anorectal physiology testing and colorectal specialist referral should be considered."
	}

	return &score.Result{
		Result:           total,
		Unit:             "points",
		Interpretation:   fmt.Sprintf("Wexner score of %d indicates %s. %s", total, lowerFirst(band.Description), advice),
		Stage:            band.Stage,
		StageDescription: band.Description,
		Breakdown:        components,
	}, nil
}
