package petro

import "math"

// Curve is one log curve as parallel depth/value slices, depths strictly
// increasing. Values may contain NaN for sensor dropouts; downstream
// averaging skips them.
type Curve struct {
	Depths []float64
	Values []float64
	Unit   string
}

func (c Curve) Len() int { return len(c.Depths) }

// DepthRange returns the observed depth span, ok=false for an empty curve.
func (c Curve) DepthRange() (min, max float64, ok bool) {
	if len(c.Depths) == 0 {
		return 0, 0, false
	}
	return c.Depths[0], c.Depths[len(c.Depths)-1], true
}

type AlignMode int

const (
	// AlignIntersection keeps a depth only when every required curve has a
	// sample there.
	AlignIntersection AlignMode = iota
	// AlignSingle takes the first required curve's depth set as-is; other
	// curves contribute NaN where they have no matching sample.
	AlignSingle
)

// Aligned is the result of merging curves onto a common depth set. An
// empty Depths slice is a valid outcome, not an error.
type Aligned struct {
	Depths []float64
	Values map[string][]float64
}

// Depths are matched on a 1 mm grid rather than by float equality, which
// absorbs representation noise between independently imported curves.
func depthKey(d float64) int64 { return int64(math.Round(d * 1000)) }

// Align merges the required curves onto a common ordered depth sequence.
// No interpolation: only depths actually sampled are emitted.
func Align(curves map[string]Curve, required []string, mode AlignMode) Aligned {
	out := Aligned{Values: map[string][]float64{}}
	if len(required) == 0 {
		return out
	}
	for _, name := range required {
		out.Values[name] = nil
	}

	switch mode {
	case AlignSingle:
		base, ok := curves[required[0]]
		if !ok {
			return out
		}
		out.Depths = append(out.Depths, base.Depths...)
	default:
		out.Depths = intersectDepths(curves, required)
	}

	for _, name := range required {
		c := curves[name]
		byKey := make(map[int64]float64, c.Len())
		for i, d := range c.Depths {
			byKey[depthKey(d)] = c.Values[i]
		}
		vals := make([]float64, len(out.Depths))
		for i, d := range out.Depths {
			if v, ok := byKey[depthKey(d)]; ok {
				vals[i] = v
			} else {
				vals[i] = math.NaN()
			}
		}
		out.Values[name] = vals
	}
	return out
}

// intersectDepths builds the key set from the shortest required curve and
// scans the others for membership, keeping the cost linear in total
// sample count.
func intersectDepths(curves map[string]Curve, required []string) []float64 {
	shortest := required[0]
	for _, name := range required {
		c, ok := curves[name]
		if !ok || c.Len() == 0 {
			return nil // a missing curve empties the intersection
		}
		if c.Len() < curves[shortest].Len() {
			shortest = name
		}
	}

	candidate := make(map[int64]struct{}, curves[shortest].Len())
	for _, d := range curves[shortest].Depths {
		candidate[depthKey(d)] = struct{}{}
	}
	for _, name := range required {
		if name == shortest {
			continue
		}
		present := make(map[int64]struct{}, curves[name].Len())
		for _, d := range curves[name].Depths {
			present[depthKey(d)] = struct{}{}
		}
		for k := range candidate {
			if _, ok := present[k]; !ok {
				delete(candidate, k)
			}
		}
	}

	// Emit in depth order by walking the shortest curve, which is already
	// sorted.
	out := make([]float64, 0, len(candidate))
	for _, d := range curves[shortest].Depths {
		if _, ok := candidate[depthKey(d)]; ok {
			out = append(out, d)
		}
	}
	return out
}
