package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

func stubEntry(id, category string) Entry {
	return Entry{
		Metadata: score.Metadata{ID: id, Title: id, Category: category},
		Calc: func(p score.Params) (*score.Result, error) {
			return &score.Result{Result: 1, Unit: "points", Stage: "ok"}, nil
		},
	}
}

func TestRegister_Duplicate(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(stubEntry("a", "cardiology")))

	err := r.Register(stubEntry("a", "cardiology"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestRegister_RejectsIncompleteEntries(t *testing.T) {
	r := New()
	assert.Error(t, r.Register(Entry{Calc: stubEntry("x", "y").Calc}))
	assert.Error(t, r.Register(Entry{Metadata: score.Metadata{ID: "x"}}))
}

func TestCalculate_UnknownIdentifier(t *testing.T) {
	r := New()
	result, err := r.Calculate("nonexistent_id", score.Params{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnknownScore)
}

func TestCalculate_PropagatesCalculatorError(t *testing.T) {
	r := New()
	boom := errors.New("division by zero")
	require.NoError(t, r.Register(Entry{
		Metadata: score.Metadata{ID: "broken"},
		Calc: func(p score.Params) (*score.Result, error) {
			return nil, boom
		},
	}))

	_, err := r.Calculate("broken", score.Params{})
	assert.ErrorIs(t, err, boom)
}

func TestList_SortedByID(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(stubEntry("zeta", "neurology")))
	require.NoError(t, r.Register(stubEntry("alpha", "cardiology")))
	require.NoError(t, r.Register(stubEntry("mid", "cardiology")))

	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, "alpha", list[0].ID)
	assert.Equal(t, "mid", list[1].ID)
	assert.Equal(t, "zeta", list[2].ID)
}

func TestCategories_DistinctSorted(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(stubEntry("a", "neurology")))
	require.NoError(t, r.Register(stubEntry("b", "cardiology")))
	require.NoError(t, r.Register(stubEntry("c", "cardiology")))

	assert.Equal(t, []string{"cardiology", "neurology"}, r.Categories())
}

func TestLookup(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(stubEntry("a", "cardiology")))

	entry, ok := r.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "a", entry.Metadata.ID)

	_, ok = r.Lookup("b")
	assert.False(t, ok)
}
