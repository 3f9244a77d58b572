package serviceImp

import (
	"fmt"

	zonerepo "petrolog/pkg/analysis/repository"
	"petrolog/pkg/analysis/service"
	"petrolog/pkg/petro"
	logrepo "petrolog/pkg/welllog/repository"

	"petrolog/entities"
)

// calcCurveTypes are the curves a calculation reads; anything else on
// the well is irrelevant to the derivations.
var calcCurveTypes = []string{"GR", "DENS", "NEUT", "RESIS"}

type AnalysisSvc struct {
	logs  logrepo.LogRepository
	zones zonerepo.ZoneRepository
}

func New(logs logrepo.LogRepository, zones zonerepo.ZoneRepository) *AnalysisSvc {
	return &AnalysisSvc{logs: logs, zones: zones}
}

func (s *AnalysisSvc) Calculate(wellID uint, req service.CalcRequest) (*entities.Zone, service.Interpretation, error) {
	if req.DepthFrom == nil || req.DepthTo == nil {
		return nil, service.Interpretation{}, &petro.ValidationError{
			Param: "depth_from/depth_to", Reason: "both are required",
		}
	}
	from, to := *req.DepthFrom, *req.DepthTo

	curves, err := s.logs.Curves(wellID, calcCurveTypes)
	if err != nil {
		return nil, service.Interpretation{}, err
	}

	// A well with no curves still yields an all-null zone: the history
	// records that the interval was looked at and nothing was derivable.
	res, err := petro.Calculate(curves, from, to, req.Params())
	if err != nil {
		return nil, service.Interpretation{}, err
	}

	z := &entities.Zone{
		WellID:            wellID,
		DepthFrom:         from,
		DepthTo:           to,
		Vshale:            res.Vshale,
		Porosity:          res.Porosity,
		PorosityEffective: res.PorosityEffective,
		SaturationWater:   res.SaturationWater,
		SaturationOil:     res.SaturationOil,
		ZoneType:          petro.Classify(res),
		CalculatedBy:      "auto",
	}
	if err := s.zones.Append(z); err != nil {
		return nil, service.Interpretation{}, err
	}

	interp := service.Interpretation{
		ZoneType:        z.ZoneType,
		IsReservoir:     z.IsReservoir(),
		Recommendations: recommendations(z),
	}
	return z, interp, nil
}

// recommendations mirrors the per-zone advisory lines shown next to a
// fresh calculation.
func recommendations(z *entities.Zone) []string {
	var out []string
	if z.Vshale != nil {
		switch {
		case *z.Vshale > 0.5:
			out = append(out, "Shaly interval, low reservoir potential")
		case *z.Vshale < 0.2:
			out = append(out, "Clean interval, good reservoir potential")
		}
	}
	if z.PorosityEffective != nil {
		switch {
		case *z.PorosityEffective > 0.15:
			out = append(out, "Good effective porosity (>15%)")
		case *z.PorosityEffective < 0.08:
			out = append(out, "Low porosity, marginal reservoir")
		}
	}
	if z.SaturationWater != nil {
		switch {
		case *z.SaturationWater < 0.4:
			out = append(out, "Low water saturation, potential hydrocarbon zone")
		case *z.SaturationWater > 0.7:
			out = append(out, fmt.Sprintf("High water saturation (%.0f%%), probable aquifer", *z.SaturationWater*100))
		}
	}
	return out
}
