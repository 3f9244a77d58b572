package petro

import "math"

// Result holds the derived properties of one depth window. Fields are
// independently nullable: a missing input curve nulls its outputs instead
// of failing the calculation (partial-result policy).
type Result struct {
	Vshale            *float64
	Porosity          *float64
	PorosityEffective *float64
	SaturationWater   *float64
	SaturationOil     *float64
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// windowMean averages f(value) over the curve's samples inside [from,to].
// NaN samples are excluded, not propagated. Returns nil when the window
// holds no usable sample.
func windowMean(c Curve, from, to float64, f func(float64) float64) *float64 {
	var sum float64
	var n int
	for i, d := range c.Depths {
		if d < from || d > to {
			continue
		}
		v := c.Values[i]
		if math.IsNaN(v) {
			continue
		}
		sum += f(v)
		n++
	}
	if n == 0 {
		return nil
	}
	m := sum / float64(n)
	return &m
}

// Calculate derives the petrophysical properties of [from,to] from the
// given curve set. Only a structurally invalid window is an error; curves
// map may legitimately be empty (all outputs nil).
//
// Steps: linear GR-index vshale, density porosity, shale-corrected
// effective porosity, then Archie water saturation over the mean
// in-window resistivity.
func Calculate(curves map[string]Curve, from, to float64, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if from >= to {
		return Result{}, &InvalidRangeError{From: from, To: to, Reason: "depth_from must be less than depth_to"}
	}
	if len(curves) > 0 && !windowHitsAnyCurve(curves, from, to) {
		return Result{}, &InvalidRangeError{From: from, To: to, Reason: "window outside available curve data"}
	}

	var res Result

	// Step 1: shale volume from the GR index, clamped per sample.
	res.Vshale = windowMean(curves["GR"], from, to, func(g float64) float64 {
		return clamp01((g - p.GRClean) / (p.GRShale - p.GRClean))
	})

	// Step 2: total porosity from bulk density.
	res.Porosity = windowMean(curves["DENS"], from, to, func(rhob float64) float64 {
		return clamp01((p.RhoMatrix - rhob) / (p.RhoMatrix - p.RhoFluid))
	})

	// Step 3: effective porosity corrects for clay-bound water.
	if res.Porosity != nil && res.Vshale != nil {
		phiEff := clamp01(*res.Porosity * (1 - *res.Vshale))
		res.PorosityEffective = &phiEff
	}

	// Step 4: Archie Sw^n = (a*Rw) / (phiEff^m * Rt).
	if res.PorosityEffective != nil && *res.PorosityEffective > 0 {
		if rt := windowMean(curves["RESIS"], from, to, func(v float64) float64 { return v }); rt != nil && *rt > 0 {
			swN := (p.TortuosityA * p.Rw) / (math.Pow(*res.PorosityEffective, p.CementationM) * *rt)
			sw := clamp01(math.Pow(swN, 1/p.SaturationN))
			so := clamp01(1 - sw)
			res.SaturationWater = &sw
			res.SaturationOil = &so
		}
	}

	return res, nil
}

func windowHitsAnyCurve(curves map[string]Curve, from, to float64) bool {
	for _, c := range curves {
		if min, max, ok := c.DepthRange(); ok && from <= max && to >= min {
			return true
		}
	}
	return false
}
