package petro

// Params is the immutable per-request parameter bundle for one
// calculation. The Archie constants (Rw, a, m, n) are exposed here with
// the defaults the original workflow assumed, so callers can override
// them when formation water data is available.
type Params struct {
	GRClean float64 `json:"gr_clean"` // clean-sand GR baseline (API)
	GRShale float64 `json:"gr_shale"` // shale GR baseline (API)

	RhoMatrix float64 `json:"rho_matrix"` // matrix density (g/cm3)
	RhoFluid  float64 `json:"rho_fluid"`  // fluid density (g/cm3)

	Rw           float64 `json:"rw"`            // formation water resistivity (ohm.m)
	TortuosityA  float64 `json:"tortuosity_a"`  // Archie a
	CementationM float64 `json:"cementation_m"` // Archie m
	SaturationN  float64 `json:"saturation_n"`  // Archie n
}

func DefaultParams() Params {
	return Params{
		GRClean:      20,
		GRShale:      120,
		RhoMatrix:    2.65,
		RhoFluid:     1.0,
		Rw:           0.1,
		TortuosityA:  1.0,
		CementationM: 2.0,
		SaturationN:  2.0,
	}
}

// Validate rejects physically impossible parameters before any
// computation runs.
func (p Params) Validate() error {
	if p.GRShale <= p.GRClean {
		return &ValidationError{Param: "gr_shale", Reason: "must be greater than gr_clean"}
	}
	if p.RhoFluid <= 0 {
		return &ValidationError{Param: "rho_fluid", Reason: "must be positive"}
	}
	if p.RhoMatrix <= p.RhoFluid {
		return &ValidationError{Param: "rho_matrix", Reason: "must be greater than rho_fluid"}
	}
	if p.Rw <= 0 {
		return &ValidationError{Param: "rw", Reason: "must be positive"}
	}
	if p.TortuosityA <= 0 {
		return &ValidationError{Param: "tortuosity_a", Reason: "must be positive"}
	}
	if p.CementationM <= 0 {
		return &ValidationError{Param: "cementation_m", Reason: "must be positive"}
	}
	if p.SaturationN <= 0 {
		return &ValidationError{Param: "saturation_n", Reason: "must be positive"}
	}
	return nil
}
