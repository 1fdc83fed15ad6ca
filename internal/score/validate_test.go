package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetadata() Metadata {
	return Metadata{
		ID: "test_score",
		Params: []ParamSpec{
			IntParam("age", 18, 120, "years", "Patient age"),
			NumParam("weight", 1, 500, "kg", "Body weight"),
			YesNoParam("smoker", "Current smoker"),
			Optional(NumParam("height", 30, 250, "cm", "Height")),
		},
	}
}

func validParams() Params {
	return Params{
		"age":    float64(40),
		"weight": 72.5,
		"smoker": "no",
	}
}

func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, Validate(testMetadata(), validParams()))

	withOptional := validParams()
	withOptional["height"] = float64(180)
	assert.NoError(t, Validate(testMetadata(), withOptional))
}

func TestValidate_MissingRequired(t *testing.T) {
	p := validParams()
	delete(p, "smoker")

	err := Validate(testMetadata(), p)
	require.Error(t, err)

	fe := err.(*FieldError)
	assert.Equal(t, "smoker", fe.Field)
	assert.Contains(t, fe.Constraint, "missing")
}

func TestValidate_UnknownField(t *testing.T) {
	p := validParams()
	p["bmi"] = float64(22)

	err := Validate(testMetadata(), p)
	require.Error(t, err)
	assert.Equal(t, "bmi", err.(*FieldError).Field)
}

func TestValidate_IntegerRejectsFraction(t *testing.T) {
	p := validParams()
	p["age"] = 40.5

	err := Validate(testMetadata(), p)
	require.Error(t, err)
	fe := err.(*FieldError)
	assert.Equal(t, "age", fe.Field)
	assert.Contains(t, fe.Constraint, "integer")
}

func TestValidate_Bounds(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value any
	}{
		{"age below min", "age", float64(17)},
		{"age above max", "age", float64(121)},
		{"weight below min", "weight", 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			p[tc.field] = tc.value
			err := Validate(testMetadata(), p)
			require.Error(t, err)
			assert.Equal(t, tc.field, err.(*FieldError).Field)
		})
	}

	// inclusive bounds accept the boundary values themselves
	p := validParams()
	p["age"] = float64(18)
	assert.NoError(t, Validate(testMetadata(), p))
	p["age"] = float64(120)
	assert.NoError(t, Validate(testMetadata(), p))
}

func TestValidate_EnumMembership(t *testing.T) {
	p := validParams()
	p["smoker"] = "maybe"

	err := Validate(testMetadata(), p)
	require.Error(t, err)
	fe := err.(*FieldError)
	assert.Equal(t, "smoker", fe.Field)
	assert.Equal(t, "maybe", fe.Value)
	assert.Contains(t, fe.Constraint, "yes")
}

func TestValidate_TypeMismatch(t *testing.T) {
	p := validParams()
	p["weight"] = "heavy"

	err := Validate(testMetadata(), p)
	require.Error(t, err)
	assert.Contains(t, err.(*FieldError).Constraint, "number")
}

func TestParams_Accessors(t *testing.T) {
	p := Params{
		"count": float64(3),
		"ratio": 1.5,
		"name":  "abc",
		"flag":  "yes",
	}

	assert.Equal(t, 3, p.Int("count"))
	assert.Equal(t, 1.5, p.Float("ratio"))
	assert.Equal(t, "abc", p.Str("name"))
	assert.True(t, p.YesNo("flag"))
	assert.True(t, p.Has("ratio"))
	assert.False(t, p.Has("absent"))
}
