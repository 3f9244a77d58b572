package petro

// Zone classification cutoffs. Fixed configuration, not request
// parameters: reservoir needs a clean interval with usable effective
// porosity.
const (
	VshaleCutoff = 0.5
	PhiEffCutoff = 0.08
)

const (
	ZoneReservoir = "reservoir"
	ZoneShale     = "shale"
	ZoneOther     = "other"
)

// Classify tags a calculator result. Nil or indeterminate inputs fall
// through to "other".
func Classify(r Result) string {
	if r.Vshale != nil && *r.Vshale >= VshaleCutoff {
		return ZoneShale
	}
	if r.Vshale != nil && *r.Vshale < VshaleCutoff &&
		r.PorosityEffective != nil && *r.PorosityEffective > PhiEffCutoff {
		return ZoneReservoir
	}
	return ZoneOther
}
