package petro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignIntersection(t *testing.T) {
	curves := map[string]Curve{
		"GR":   {Depths: []float64{1000.0, 1000.5, 1001.0}, Values: []float64{50, 60, 70}},
		"DENS": {Depths: []float64{1000.0, 1001.0, 1001.5}, Values: []float64{2.4, 2.5, 2.6}},
	}

	a := Align(curves, []string{"GR", "DENS"}, AlignIntersection)

	require.Equal(t, []float64{1000.0, 1001.0}, a.Depths)
	assert.Equal(t, []float64{50, 70}, a.Values["GR"])
	assert.Equal(t, []float64{2.4, 2.5}, a.Values["DENS"])
}

func TestAlignIntersectionToleratesFloatNoise(t *testing.T) {
	curves := map[string]Curve{
		"A": {Depths: []float64{1000.0001, 1000.5}, Values: []float64{1, 2}},
		"B": {Depths: []float64{999.9999, 1001.0}, Values: []float64{10, 20}},
	}

	a := Align(curves, []string{"A", "B"}, AlignIntersection)

	require.Len(t, a.Depths, 1)
	assert.InDelta(t, 1000.0, a.Depths[0], 0.001)
	assert.Equal(t, 1.0, a.Values["A"][0])
	assert.Equal(t, 10.0, a.Values["B"][0])
}

func TestAlignEmptyIntersectionIsNotAnError(t *testing.T) {
	curves := map[string]Curve{
		"A": {Depths: []float64{1000.0}, Values: []float64{1}},
		"B": {Depths: []float64{2000.0}, Values: []float64{2}},
	}

	a := Align(curves, []string{"A", "B"}, AlignIntersection)
	assert.Empty(t, a.Depths)

	// A required curve that does not exist also empties the result.
	a = Align(curves, []string{"A", "MISSING"}, AlignIntersection)
	assert.Empty(t, a.Depths)
}

func TestAlignSingle(t *testing.T) {
	curves := map[string]Curve{
		"DENS": {Depths: []float64{1000.0, 1000.5, 1001.0}, Values: []float64{2.4, 2.5, 2.6}},
		"NEUT": {Depths: []float64{1000.0, 1001.0}, Values: []float64{0.15, 0.20}},
	}

	a := Align(curves, []string{"DENS", "NEUT"}, AlignSingle)

	require.Equal(t, []float64{1000.0, 1000.5, 1001.0}, a.Depths)
	assert.Equal(t, []float64{2.4, 2.5, 2.6}, a.Values["DENS"])
	assert.Equal(t, 0.15, a.Values["NEUT"][0])
	assert.True(t, math.IsNaN(a.Values["NEUT"][1]), "gap should surface as NaN")
	assert.Equal(t, 0.20, a.Values["NEUT"][2])
}

func TestAlignOutputOrderedByDepth(t *testing.T) {
	curves := map[string]Curve{
		"A": {Depths: []float64{1000, 1001, 1002, 1003}, Values: []float64{1, 2, 3, 4}},
		"B": {Depths: []float64{1001, 1003}, Values: []float64{20, 40}},
	}

	a := Align(curves, []string{"A", "B"}, AlignIntersection)

	require.Equal(t, []float64{1001, 1003}, a.Depths)
	assert.Equal(t, []float64{2, 4}, a.Values["A"])
	assert.Equal(t, []float64{20, 40}, a.Values["B"])
}
