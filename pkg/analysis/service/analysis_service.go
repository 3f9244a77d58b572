package service

import (
	"petrolog/entities"
	"petrolog/pkg/petro"
)

// CalcRequest carries the depth window and the optional parameter
// overrides for one calculation. Omitted parameters fall back to
// petro.DefaultParams.
type CalcRequest struct {
	DepthFrom *float64 `json:"depth_from"`
	DepthTo   *float64 `json:"depth_to"`

	GRClean      *float64 `json:"gr_clean"`
	GRShale      *float64 `json:"gr_shale"`
	RhoMatrix    *float64 `json:"rho_matrix"`
	RhoFluid     *float64 `json:"rho_fluid"`
	Rw           *float64 `json:"rw"`
	TortuosityA  *float64 `json:"tortuosity_a"`
	CementationM *float64 `json:"cementation_m"`
	SaturationN  *float64 `json:"saturation_n"`
}

// Params resolves the request against the documented defaults.
func (r CalcRequest) Params() petro.Params {
	p := petro.DefaultParams()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.GRClean, r.GRClean)
	set(&p.GRShale, r.GRShale)
	set(&p.RhoMatrix, r.RhoMatrix)
	set(&p.RhoFluid, r.RhoFluid)
	set(&p.Rw, r.Rw)
	set(&p.TortuosityA, r.TortuosityA)
	set(&p.CementationM, r.CementationM)
	set(&p.SaturationN, r.SaturationN)
	return p
}

// Interpretation accompanies every created zone in the calculate
// response.
type Interpretation struct {
	ZoneType        string   `json:"zone_type"`
	IsReservoir     bool     `json:"is_reservoir"`
	Recommendations []string `json:"recommendations"`
}

type AnalysisService interface {
	// Calculate derives the window's properties, classifies them and
	// appends the resulting zone.
	Calculate(wellID uint, req CalcRequest) (*entities.Zone, Interpretation, error)
}
