package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandPoints(t *testing.T) {
	bands := []PointBand{
		{UpTo: 70, Points: 0},
		{UpTo: 80, Points: 1},
		{UpTo: Unbounded, Points: 3},
	}

	assert.Equal(t, 0, BandPoints(50, bands))
	assert.Equal(t, 0, BandPoints(70, bands)) // boundary belongs to the lower band
	assert.Equal(t, 1, BandPoints(71, bands))
	assert.Equal(t, 1, BandPoints(80, bands))
	assert.Equal(t, 3, BandPoints(81, bands))
	assert.Equal(t, 3, BandPoints(10000, bands))
}

func TestStageFor_Boundaries(t *testing.T) {
	bands := []StageBand{
		{Upper: 20, Inclusive: true, Stage: "low"},
		{Upper: 40, Stage: "mid"}, // exclusive upper bound
		{Upper: Unbounded, Stage: "high"},
	}

	cases := []struct {
		v    float64
		want string
	}{
		{0, "low"},
		{20, "low"}, // inclusive boundary
		{20.01, "mid"},
		{39.99, "mid"},
		{40, "high"}, // exclusive boundary
		{1e9, "high"},
	}
	for _, tc := range cases {
		band, ok := StageFor(tc.v, bands)
		assert.True(t, ok)
		assert.Equal(t, tc.want, band.Stage, "value %v", tc.v)
	}
}

func TestStageFor_MalformedTable(t *testing.T) {
	_, ok := StageFor(50, []StageBand{{Upper: 10, Stage: "only"}})
	assert.False(t, ok)
}

func TestFirstMatch(t *testing.T) {
	first, ok := FirstMatch(
		TreeStep{Satisfied: false, Stage: "a"},
		TreeStep{Satisfied: true, Stage: "b"},
		TreeStep{Satisfied: true, Stage: "c"},
	)
	assert.True(t, ok)
	assert.Equal(t, "b", first.Stage)

	_, ok = FirstMatch(TreeStep{Satisfied: false})
	assert.False(t, ok)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 2.46, Round2(2.46296))
	assert.Equal(t, 2.47, Round2(2.465))
	assert.Equal(t, 23.0, Round1(23.04))
	assert.Equal(t, -1.5, Round1(-1.46))
}
