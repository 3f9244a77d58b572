package entities

import "time"

// Zone is one petrophysical analysis of a depth interval. The zone table
// is an append-only log: every calculation inserts a new row, overlapping
// intervals are allowed and never merged.
type Zone struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	WellID    uint    `gorm:"index" json:"well_id"`
	DepthFrom float64 `json:"depth_from"` // meters
	DepthTo   float64 `json:"depth_to"`

	// Derived fractions, each independently nullable, in [0,1] when set.
	Porosity          *float64 `json:"porosity,omitempty"`
	PorosityEffective *float64 `json:"porosity_effective,omitempty"`
	Permeability      *float64 `json:"permeability,omitempty"` // mD
	SaturationWater   *float64 `json:"saturation_water,omitempty"`
	SaturationOil     *float64 `json:"saturation_oil,omitempty"`
	SaturationGas     *float64 `json:"saturation_gas,omitempty"`
	Vshale            *float64 `json:"vshale,omitempty"`

	Lithology    string `gorm:"size:50" json:"lithology,omitempty"`
	ZoneType     string `gorm:"size:30" json:"zone_type"` // reservoir|shale|other
	Notes        string `json:"notes,omitempty"`
	CalculatedBy string `gorm:"size:50;default:auto" json:"calculated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (z *Zone) Thickness() float64 { return z.DepthTo - z.DepthFrom }

// IsReservoir applies the original screening criteria on top of the
// classifier tag: clean, porous and not water-wet.
func (z *Zone) IsReservoir() bool {
	if z.Porosity == nil || z.Vshale == nil || z.SaturationWater == nil {
		return false
	}
	return *z.Porosity > 0.10 && *z.Vshale < 0.40 && *z.SaturationWater < 0.60
}
