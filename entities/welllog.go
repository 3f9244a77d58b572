package entities

import "time"

// WellLog is one depth sample of one curve. A curve is the set of rows
// sharing (well_id, log_type), depths strictly increasing.
type WellLog struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	WellID  uint    `gorm:"index:idx_well_log_depth,priority:1" json:"well_id"`
	LogType string  `gorm:"size:20;index:idx_well_log_depth,priority:2" json:"log_type"`
	Depth   float64 `gorm:"index:idx_well_log_depth,priority:3" json:"depth"` // meters
	Value   float64 `json:"value"`
	Unit    string  `gorm:"size:20" json:"unit,omitempty"`
	Quality string  `gorm:"size:10;default:good" json:"quality"` // good|suspect|bad

	CreatedAt time.Time `json:"created_at"`
}

type LogTypeInfo struct {
	Name string  `json:"name"`
	Unit string  `json:"unit"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// LogTypes is the fixed curve vocabulary with canonical units and
// plausible physical bounds.
var LogTypes = map[string]LogTypeInfo{
	"GR":    {Name: "Gamma Ray", Unit: "API", Min: 0, Max: 200},
	"RESIS": {Name: "Resistivity", Unit: "ohm.m", Min: 0.1, Max: 1000},
	"DENS":  {Name: "Bulk Density", Unit: "g/cm3", Min: 1.8, Max: 3.0},
	"NEUT":  {Name: "Neutron Porosity", Unit: "fraction", Min: 0, Max: 0.6},
	"SP":    {Name: "Spontaneous Potential", Unit: "mV", Min: -200, Max: 100},
	"CALI":  {Name: "Caliper", Unit: "inch", Min: 6, Max: 20},
}

func LogTypeKnown(t string) bool { _, ok := LogTypes[t]; return ok }

func LogTypeUnit(t string) string {
	if info, ok := LogTypes[t]; ok {
		return info.Unit
	}
	return ""
}
