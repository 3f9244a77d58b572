// Package report composes well metadata, zone history and curve coverage
// into a single report document. The document is built once and rendered
// either as JSON (the document itself) or as HTML; both views carry the
// same numbers.
package report

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"petrolog/entities"
	"petrolog/pkg/suggest"
)

type Document struct {
	Metadata        Metadata             `json:"metadata"`
	Well            WellBlock            `json:"well"`
	DataSummary     DataSummary          `json:"data_summary"`
	ZoneStatistics  ZoneStatistics       `json:"zone_statistics"`
	Zones           []entities.Zone      `json:"zones"`
	Suggestions     []suggest.Suggestion `json:"suggestions"`
	Interpretation  []string             `json:"interpretation"`
	Recommendations []string             `json:"recommendations"`
}

type Metadata struct {
	GeneratedAt string `json:"generated_at"`
	ReportType  string `json:"report_type"`
}

type WellBlock struct {
	Name       string   `json:"name"`
	Field      string   `json:"field,omitempty"`
	Location   string   `json:"location,omitempty"`
	TotalDepth *float64 `json:"total_depth,omitempty"`
	Status     string   `json:"status"`
	Description string  `json:"description,omitempty"`
}

type DataSummary struct {
	LogTypes      []string   `json:"log_types"`
	DepthRange    []*float64 `json:"depth_range"` // [min, max], nils when no curves
	ZonesAnalyzed int        `json:"zones_analyzed"`
}

// PropertyStats summarizes one derived property across all zones that
// carry it.
type PropertyStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

type ZoneStatistics struct {
	Porosity          *PropertyStats `json:"porosity,omitempty"`
	PorosityEffective *PropertyStats `json:"porosity_effective,omitempty"`
	SaturationWater   *PropertyStats `json:"saturation_water,omitempty"`
}

// Build assembles the intermediate document. Pure: every input is fetched
// by the caller beforehand.
func Build(well entities.Well, zones []entities.Zone, coverage []string, depthMin, depthMax *float64, suggestions []suggest.Suggestion) Document {
	if coverage == nil {
		coverage = []string{}
	}
	if zones == nil {
		zones = []entities.Zone{}
	}
	return Document{
		Metadata: Metadata{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			ReportType:  "Petrophysical Analysis Report",
		},
		Well: WellBlock{
			Name:        well.Name,
			Field:       well.FieldName,
			Location:    well.Location,
			TotalDepth:  well.DepthTotal,
			Status:      well.Status,
			Description: well.Description,
		},
		DataSummary: DataSummary{
			LogTypes:      coverage,
			DepthRange:    []*float64{depthMin, depthMax},
			ZonesAnalyzed: len(zones),
		},
		ZoneStatistics:  zoneStatistics(zones),
		Zones:           zones,
		Suggestions:     suggestions,
		Interpretation:  Interpret(zones),
		Recommendations: Recommend(zones),
	}
}

func zoneStatistics(zones []entities.Zone) ZoneStatistics {
	return ZoneStatistics{
		Porosity:          propertyStats(zones, func(z entities.Zone) *float64 { return z.Porosity }),
		PorosityEffective: propertyStats(zones, func(z entities.Zone) *float64 { return z.PorosityEffective }),
		SaturationWater:   propertyStats(zones, func(z entities.Zone) *float64 { return z.SaturationWater }),
	}
}

func propertyStats(zones []entities.Zone, pick func(entities.Zone) *float64) *PropertyStats {
	var vals []float64
	for _, z := range zones {
		if v := pick(z); v != nil {
			vals = append(vals, *v)
		}
	}
	if len(vals) == 0 {
		return nil
	}
	min, _ := stats.Min(vals)
	max, _ := stats.Max(vals)
	mean, _ := stats.Mean(vals)
	return &PropertyStats{Min: min, Max: max, Mean: mean, Count: len(vals)}
}

// AnalysisSummary is the condensed view served by the summary endpoint.
type AnalysisSummary struct {
	TotalZones            int      `json:"total_zones"`
	ReservoirZones        int      `json:"reservoir_zones"`
	TotalThickness        float64  `json:"total_thickness"`
	NetReservoirThickness float64  `json:"net_reservoir_thickness"`
	NetToGross            float64  `json:"net_to_gross"`
	AvgPorosityEffective  *float64 `json:"average_porosity,omitempty"`
	AvgSaturationWater    *float64 `json:"average_water_saturation,omitempty"`
	AvgSaturationHC       *float64 `json:"average_hydrocarbon_saturation,omitempty"`
}

// Summarize computes net-to-gross and reservoir averages over the zone
// history. Averages are over reservoir zones only, nil when there are
// none with the property.
func Summarize(zones []entities.Zone) AnalysisSummary {
	s := AnalysisSummary{TotalZones: len(zones)}
	var phi, sw []float64
	for _, z := range zones {
		s.TotalThickness += z.Thickness()
		if z.ZoneType != "reservoir" {
			continue
		}
		s.ReservoirZones++
		s.NetReservoirThickness += z.Thickness()
		if z.PorosityEffective != nil {
			phi = append(phi, *z.PorosityEffective)
		}
		if z.SaturationWater != nil {
			sw = append(sw, *z.SaturationWater)
		}
	}
	if s.TotalThickness > 0 {
		s.NetToGross = s.NetReservoirThickness / s.TotalThickness
	}
	if m, err := stats.Mean(phi); err == nil {
		s.AvgPorosityEffective = &m
	}
	if m, err := stats.Mean(sw); err == nil {
		s.AvgSaturationWater = &m
		hc := 1 - m
		s.AvgSaturationHC = &hc
	}
	return s
}

// Interpret turns the summary numbers into narrative lines.
func Interpret(zones []entities.Zone) []string {
	s := Summarize(zones)
	if s.ReservoirZones == 0 {
		return []string{"No reservoir zone identified in the analyzed intervals."}
	}

	var out []string
	switch {
	case s.NetToGross > 0.5:
		out = append(out, fmt.Sprintf("Excellent net-to-gross ratio (%.1f%%) indicating a reservoir-dominated sequence.", s.NetToGross*100))
	case s.NetToGross > 0.3:
		out = append(out, fmt.Sprintf("Good net-to-gross ratio (%.1f%%) with a significant reservoir proportion.", s.NetToGross*100))
	default:
		out = append(out, fmt.Sprintf("Low net-to-gross ratio (%.1f%%) indicating a shale-dominated sequence.", s.NetToGross*100))
	}

	if phi := s.AvgPorosityEffective; phi != nil {
		switch {
		case *phi > 0.15:
			out = append(out, fmt.Sprintf("High average effective porosity (%.1f%%) suggesting good storage capacity.", *phi*100))
		case *phi > 0.10:
			out = append(out, fmt.Sprintf("Acceptable average effective porosity (%.1f%%).", *phi*100))
		default:
			out = append(out, fmt.Sprintf("Low porosity (%.1f%%) which may limit productivity.", *phi*100))
		}
	}

	if sw := s.AvgSaturationWater; sw != nil {
		switch {
		case *sw < 0.4:
			out = append(out, fmt.Sprintf("Low water saturation (%.1f%%) indicating good hydrocarbon saturation.", *sw*100))
		case *sw < 0.6:
			out = append(out, fmt.Sprintf("Moderate water saturation (%.1f%%).", *sw*100))
		default:
			out = append(out, fmt.Sprintf("High water saturation (%.1f%%), likely an aquifer or low-productivity interval.", *sw*100))
		}
	}
	return out
}

// Recommend derives follow-up actions from the zone history: the best
// zone by phi_eff * (1 - Sw), multi-zone completion, and water-risk
// proximity between wet intervals and reservoirs.
func Recommend(zones []entities.Zone) []string {
	if len(zones) == 0 {
		return []string{"Run a petrophysical calculation on the intervals of interest."}
	}

	var reservoir, wet []entities.Zone
	for _, z := range zones {
		switch {
		case z.ZoneType == "reservoir":
			reservoir = append(reservoir, z)
		case z.SaturationWater != nil && *z.SaturationWater >= 0.7:
			wet = append(wet, z)
		}
	}

	var out []string
	if len(reservoir) > 0 {
		best := reservoir[0]
		for _, z := range reservoir[1:] {
			if zoneQuality(z) > zoneQuality(best) {
				best = z
			}
		}
		line := fmt.Sprintf("Best zone identified: %.1f-%.1fm", best.DepthFrom, best.DepthTo)
		if best.PorosityEffective != nil && best.SaturationWater != nil {
			line += fmt.Sprintf(" (phi_eff=%.1f%%, Sw=%.1f%%)", *best.PorosityEffective*100, *best.SaturationWater*100)
		}
		out = append(out, line)

		if len(reservoir) > 1 {
			out = append(out, fmt.Sprintf("%d reservoir zones identified: consider a multi-zone completion.", len(reservoir)))
		}

		for _, wz := range wet {
			for _, rz := range reservoir {
				if absf(wz.DepthFrom-rz.DepthTo) < 20 || absf(rz.DepthFrom-wz.DepthTo) < 20 {
					out = append(out, fmt.Sprintf("Warning: water-bearing interval near reservoir at %.1fm, water breakthrough risk.", wz.DepthFrom))
					break
				}
			}
		}
	}
	return out
}

func zoneQuality(z entities.Zone) float64 {
	phi, sw := 0.0, 1.0
	if z.PorosityEffective != nil {
		phi = *z.PorosityEffective
	}
	if z.SaturationWater != nil {
		sw = *z.SaturationWater
	}
	return phi * (1 - sw)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
