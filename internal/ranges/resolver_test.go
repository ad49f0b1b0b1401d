package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydromon/internal/model"
)

func profile(name string, phMin, phMax, ecMin, ecMax float64) model.PlantProfile {
	return model.PlantProfile{Name: name, PHMin: phMin, PHMax: phMax, ECMin: ecMin, ECMax: ecMax}
}

func TestResolveOverlappingPair(t *testing.T) {
	result, err := Resolve([]model.PlantProfile{
		profile("A", 5.5, 6.5, 1.0, 2.0),
		profile("B", 6.0, 7.0, 1.5, 2.5),
	})
	require.NoError(t, err)

	assert.True(t, result.Compatible)
	assert.InDelta(t, 6.0, result.PHMin, 1e-9)
	assert.InDelta(t, 6.5, result.PHMax, 1e-9)
	assert.InDelta(t, 1.5, result.ECMin, 1e-9)
	assert.InDelta(t, 2.0, result.ECMax, 1e-9)
}

func TestResolveTakesTightestBounds(t *testing.T) {
	selection := []model.PlantProfile{
		profile("lettuce", 5.5, 6.5, 0.8, 1.2),
		profile("basil", 5.5, 6.5, 1.0, 1.6),
		profile("tomato", 5.8, 6.8, 1.1, 2.0),
	}

	result, err := Resolve(selection)
	require.NoError(t, err)
	require.True(t, result.Compatible)

	assert.InDelta(t, 5.8, result.PHMin, 1e-9)
	assert.InDelta(t, 6.5, result.PHMax, 1e-9)
	assert.InDelta(t, 1.1, result.ECMin, 1e-9)
	assert.InDelta(t, 1.2, result.ECMax, 1e-9)

	// No selected interval lies wholly outside the resolved EC pair.
	for _, p := range selection {
		assert.False(t, p.ECMin > result.ECMax || p.ECMax < result.ECMin, p.Name)
	}
}

func TestResolveDisjointPH(t *testing.T) {
	result, err := Resolve([]model.PlantProfile{
		profile("A", 5.0, 5.5, 1.0, 2.0),
		profile("B", 6.0, 6.5, 1.0, 2.0),
	})
	require.NoError(t, err)
	assert.False(t, result.Compatible)
}

func TestResolveDisjointEC(t *testing.T) {
	result, err := Resolve([]model.PlantProfile{
		profile("A", 5.5, 6.5, 0.5, 1.0),
		profile("B", 5.5, 6.5, 1.5, 2.0),
	})
	require.NoError(t, err)
	assert.False(t, result.Compatible)
}

func TestResolveTouchingBoundsAreFeasible(t *testing.T) {
	result, err := Resolve([]model.PlantProfile{
		profile("A", 5.5, 6.0, 1.0, 1.5),
		profile("B", 6.0, 6.5, 1.5, 2.0),
	})
	require.NoError(t, err)

	assert.True(t, result.Compatible)
	assert.InDelta(t, result.PHMin, result.PHMax, 1e-9)
	assert.InDelta(t, result.ECMin, result.ECMax, 1e-9)
}

func TestResolveRequiresTwoProfiles(t *testing.T) {
	_, err := Resolve([]model.PlantProfile{profile("A", 5.5, 6.5, 1.0, 2.0)})
	assert.ErrorIs(t, err, ErrTooFewProfiles)

	_, err = Resolve(nil)
	assert.ErrorIs(t, err, ErrTooFewProfiles)
}
