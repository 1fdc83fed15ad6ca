package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

func chads65Params(overrides map[string]any) score.Params {
	p := score.Params{
		"age_65_or_older":           "no",
		"congestive_heart_failure":  "no",
		"hypertension":              "no",
		"diabetes_mellitus":         "no",
		"stroke_tia_history":        "no",
		"coronary_artery_disease":   "no",
		"peripheral_artery_disease": "no",
	}
	for k, v := range overrides {
		p[k] = v
	}
	return p
}

func TestChads65_StepOutcomes(t *testing.T) {
	cases := []struct {
		name      string
		overrides map[string]any
		wantStage string
	}{
		{"age alone", map[string]any{"age_65_or_older": "yes"}, "Oral Anticoagulation"},
		{"chads2 factor", map[string]any{"hypertension": "yes"}, "Oral Anticoagulation"},
		{"vascular only", map[string]any{"coronary_artery_disease": "yes"}, "Antiplatelet Therapy"},
		{"nothing", nil, "No Antithrombotic Therapy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := registry.Default.Calculate("chads_65", chads65Params(tc.overrides))
			require.NoError(t, err)
			assert.Equal(t, tc.wantStage, result.Stage)
			assert.Equal(t, tc.wantStage, result.Result)
		})
	}
}

func TestChads65_ShortCircuit(t *testing.T) {
	// Once age >=65 satisfies step 1, later inputs must not change the outcome.
	base, err := registry.Default.Calculate("chads_65", chads65Params(map[string]any{"age_65_or_older": "yes"}))
	require.NoError(t, err)

	varied, err := registry.Default.Calculate("chads_65", chads65Params(map[string]any{
		"age_65_or_older":           "yes",
		"coronary_artery_disease":   "yes",
		"peripheral_artery_disease": "yes",
	}))
	require.NoError(t, err)

	assert.Equal(t, base.Stage, varied.Stage)
	assert.Equal(t, base.Breakdown["decision_step"], varied.Breakdown["decision_step"])
}

func brugadaParams(overrides map[string]any) score.Params {
	p := score.Params{
		"absence_rs_precordial":      "no",
		"r_to_s_interval_over_100ms": "no",
		"av_dissociation":            "no",
		"morphology_criteria_vt":     "no",
	}
	for k, v := range overrides {
		p[k] = v
	}
	return p
}

func TestBrugada_AllNegativeIsSVT(t *testing.T) {
	result, err := registry.Default.Calculate("brugada_criteria", brugadaParams(nil))
	require.NoError(t, err)
	assert.Equal(t, "SVT with Aberrancy", result.Stage)
	assert.Equal(t, "Supraventricular Tachycardia", result.Result)
}

func TestBrugada_EachStepDiagnosesVT(t *testing.T) {
	for _, field := range []string{
		"absence_rs_precordial",
		"r_to_s_interval_over_100ms",
		"av_dissociation",
		"morphology_criteria_vt",
	} {
		result, err := registry.Default.Calculate("brugada_criteria", brugadaParams(map[string]any{field: "yes"}))
		require.NoError(t, err)
		assert.Equal(t, "Ventricular Tachycardia", result.Stage, "criterion %s", field)
	}
}

func TestBrugada_ShortCircuit(t *testing.T) {
	first, err := registry.Default.Calculate("brugada_criteria", brugadaParams(map[string]any{
		"absence_rs_precordial": "yes",
	}))
	require.NoError(t, err)

	// Varying every later step's input must not change the outcome.
	varied, err := registry.Default.Calculate("brugada_criteria", brugadaParams(map[string]any{
		"absence_rs_precordial":      "yes",
		"r_to_s_interval_over_100ms": "yes",
		"av_dissociation":            "yes",
		"morphology_criteria_vt":     "yes",
	}))
	require.NoError(t, err)

	assert.Equal(t, first.Stage, varied.Stage)
	assert.Equal(t, first.Breakdown["decision_step"], varied.Breakdown["decision_step"])
}
