package petro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grCurve(depths, values []float64) Curve {
	return Curve{Depths: depths, Values: values, Unit: "API"}
}

func TestCalculateVshaleEndpoints(t *testing.T) {
	p := DefaultParams() // gr_clean=20, gr_shale=120
	curves := map[string]Curve{
		"GR": grCurve([]float64{1000}, []float64{20}),
	}

	res, err := Calculate(curves, 999, 1001, p)
	require.NoError(t, err)
	require.NotNil(t, res.Vshale)
	assert.Equal(t, 0.0, *res.Vshale, "vshale(gr_clean) = 0")

	curves["GR"] = grCurve([]float64{1002}, []float64{120})
	res, err = Calculate(curves, 1001, 1003, p)
	require.NoError(t, err)
	require.NotNil(t, res.Vshale)
	assert.Equal(t, 1.0, *res.Vshale, "vshale(gr_shale) = 1")
}

func TestCalculateVshaleMonotonicInGR(t *testing.T) {
	p := DefaultParams()
	prev := -1.0
	for _, gr := range []float64{10, 20, 45, 70, 95, 120, 150} {
		curves := map[string]Curve{"GR": grCurve([]float64{1000}, []float64{gr})}
		res, err := Calculate(curves, 999, 1001, p)
		require.NoError(t, err)
		require.NotNil(t, res.Vshale)
		assert.GreaterOrEqual(t, *res.Vshale, prev, "vshale must not decrease with GR")
		assert.GreaterOrEqual(t, *res.Vshale, 0.0)
		assert.LessOrEqual(t, *res.Vshale, 1.0)
		prev = *res.Vshale
	}
}

func TestCalculateEffectivePorosityBounds(t *testing.T) {
	p := DefaultParams()
	curves := map[string]Curve{
		"GR":   grCurve([]float64{1000, 1001}, []float64{40, 60}),
		"DENS": {Depths: []float64{1000, 1001}, Values: []float64{2.35, 2.40}, Unit: "g/cm3"},
	}

	res, err := Calculate(curves, 999, 1002, p)
	require.NoError(t, err)
	require.NotNil(t, res.Porosity)
	require.NotNil(t, res.PorosityEffective)
	assert.LessOrEqual(t, *res.PorosityEffective, *res.Porosity)
	assert.Greater(t, *res.PorosityEffective, 0.0)

	// With a perfectly clean interval, phi_eff equals phi.
	curves["GR"] = grCurve([]float64{1000, 1001}, []float64{20, 20})
	res, err = Calculate(curves, 999, 1002, p)
	require.NoError(t, err)
	assert.Equal(t, *res.Porosity, *res.PorosityEffective)
}

func TestCalculatePartialResultWithoutDensity(t *testing.T) {
	p := DefaultParams()
	curves := map[string]Curve{
		"GR": grCurve([]float64{1000, 1001, 1002}, []float64{30, 50, 80}),
	}

	res, err := Calculate(curves, 999, 1003, p)
	require.NoError(t, err)
	assert.NotNil(t, res.Vshale)
	assert.Nil(t, res.Porosity)
	assert.Nil(t, res.PorosityEffective)
	assert.Nil(t, res.SaturationWater)
}

func TestCalculateArchieSaturation(t *testing.T) {
	p := DefaultParams()
	curves := map[string]Curve{
		"GR":    grCurve([]float64{1000, 1001}, []float64{20, 20}),       // clean
		"DENS":  {Depths: []float64{1000, 1001}, Values: []float64{2.32, 2.32}}, // phi = 0.2
		"RESIS": {Depths: []float64{1000, 1001}, Values: []float64{10, 10}, Unit: "ohm.m"},
	}

	res, err := Calculate(curves, 999, 1002, p)
	require.NoError(t, err)
	require.NotNil(t, res.SaturationWater)
	// Sw = sqrt((1*0.1) / (0.2^2 * 10)) = sqrt(0.25) = 0.5
	assert.InDelta(t, 0.5, *res.SaturationWater, 1e-9)
	require.NotNil(t, res.SaturationOil)
	assert.InDelta(t, 0.5, *res.SaturationOil, 1e-9)
}

func TestCalculateNaNSamplesExcluded(t *testing.T) {
	p := DefaultParams()
	curves := map[string]Curve{
		"GR": grCurve([]float64{1000, 1001, 1002}, []float64{20, math.NaN(), 120}),
	}

	res, err := Calculate(curves, 999, 1003, p)
	require.NoError(t, err)
	require.NotNil(t, res.Vshale)
	assert.InDelta(t, 0.5, *res.Vshale, 1e-9, "NaN sample must not poison the mean")
}

func TestCalculateInvalidWindow(t *testing.T) {
	p := DefaultParams()
	curves := map[string]Curve{"GR": grCurve([]float64{1000, 1001}, []float64{30, 40})}

	_, err := Calculate(curves, 1005, 1001, p)
	var rangeErr *InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)

	_, err = Calculate(curves, 5000, 6000, p)
	require.ErrorAs(t, err, &rangeErr, "window outside all curves is a range error")
}

func TestCalculateNoCurvesYieldsAllNil(t *testing.T) {
	res, err := Calculate(map[string]Curve{}, 1000, 1010, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"gr_shale below gr_clean", func(p *Params) { p.GRShale = p.GRClean - 1 }},
		{"gr_shale equals gr_clean", func(p *Params) { p.GRShale = p.GRClean }},
		{"non-positive rho_fluid", func(p *Params) { p.RhoFluid = 0 }},
		{"rho_matrix below rho_fluid", func(p *Params) { p.RhoMatrix = 0.5 }},
		{"non-positive rw", func(p *Params) { p.Rw = -0.1 }},
		{"non-positive cementation", func(p *Params) { p.CementationM = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			_, err := Calculate(map[string]Curve{}, 1000, 1010, p)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}
