package repository

import (
	"petrolog/entities"
	"petrolog/pkg/petro"
)

// TypeStats are the per-curve SQL aggregates used by well stats and
// report summaries.
type TypeStats struct {
	LogType  string  `json:"type"`
	Count    int64   `json:"count"`
	MinDepth float64 `json:"min_depth"`
	MaxDepth float64 `json:"max_depth"`
	MinValue float64 `json:"min_value"`
	MaxValue float64 `json:"max_value"`
	AvgValue float64 `json:"avg_value"`
}

type LogRepository interface {
	ListByWell(wellID uint, logType string, depthFrom, depthTo *float64) ([]entities.WellLog, error)
	DistinctTypes(wellID uint) ([]string, error)
	// Curves loads each requested type as a depth-ordered curve. Types
	// with no samples are omitted from the map. Empty types slice loads
	// every available curve.
	Curves(wellID uint, types []string) (map[string]petro.Curve, error)
	// ReplaceCurve swaps a type's curve atomically: concurrent readers
	// see either the old or the new samples, never a mix.
	ReplaceCurve(wellID uint, logType string, samples []entities.WellLog) error
	AppendSamples(samples []entities.WellLog) error
	DeleteType(wellID uint, logType string) error
	DepthRange(wellID uint) (min, max *float64, err error)
	StatsByType(wellID uint) ([]TypeStats, error)
}
