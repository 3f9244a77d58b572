package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petrolog/entities"
	"petrolog/pkg/suggest"
)

func fp(v float64) *float64 { return &v }

func sampleZones() []entities.Zone {
	return []entities.Zone{
		{
			WellID: 1, DepthFrom: 1000, DepthTo: 1010, ZoneType: "reservoir",
			Vshale: fp(0.15), Porosity: fp(0.22), PorosityEffective: fp(0.18), SaturationWater: fp(0.35),
		},
		{
			WellID: 1, DepthFrom: 1010, DepthTo: 1030, ZoneType: "shale",
			Vshale: fp(0.80), Porosity: fp(0.10), PorosityEffective: fp(0.02),
		},
		{
			WellID: 1, DepthFrom: 1030, DepthTo: 1040, ZoneType: "other",
			SaturationWater: fp(0.85), PorosityEffective: fp(0.12),
		},
	}
}

func TestBuildZoneStatistics(t *testing.T) {
	doc := Build(entities.Well{Name: "WELL-001", Status: "active"}, sampleZones(),
		[]string{"GR", "DENS"}, fp(1000), fp(1040), nil)

	require.NotNil(t, doc.ZoneStatistics.Porosity)
	assert.Equal(t, 2, doc.ZoneStatistics.Porosity.Count)
	assert.Equal(t, 0.10, doc.ZoneStatistics.Porosity.Min)
	assert.Equal(t, 0.22, doc.ZoneStatistics.Porosity.Max)
	assert.InDelta(t, 0.16, doc.ZoneStatistics.Porosity.Mean, 1e-9)

	require.NotNil(t, doc.ZoneStatistics.SaturationWater)
	assert.Equal(t, 2, doc.ZoneStatistics.SaturationWater.Count)
}

func TestBuildWithNoZones(t *testing.T) {
	doc := Build(entities.Well{Name: "EMPTY"}, nil, nil, nil, nil, nil)

	assert.Nil(t, doc.ZoneStatistics.Porosity)
	assert.Equal(t, 0, doc.DataSummary.ZonesAnalyzed)
	assert.Equal(t, []string{"Run a petrophysical calculation on the intervals of interest."}, doc.Recommendations)
	assert.Equal(t, []string{"No reservoir zone identified in the analyzed intervals."}, doc.Interpretation)
}

func TestSummarizeNetToGross(t *testing.T) {
	s := Summarize(sampleZones())

	assert.Equal(t, 3, s.TotalZones)
	assert.Equal(t, 1, s.ReservoirZones)
	assert.Equal(t, 40.0, s.TotalThickness)
	assert.Equal(t, 10.0, s.NetReservoirThickness)
	assert.InDelta(t, 0.25, s.NetToGross, 1e-9)
	require.NotNil(t, s.AvgPorosityEffective)
	assert.InDelta(t, 0.18, *s.AvgPorosityEffective, 1e-9)
	require.NotNil(t, s.AvgSaturationHC)
	assert.InDelta(t, 0.65, *s.AvgSaturationHC, 1e-9)
}

func TestRecommendWaterRiskProximity(t *testing.T) {
	out := Recommend(sampleZones()) // wet interval starts 20m after reservoir top

	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "Best zone identified: 1000.0-1010.0m")
	assert.Contains(t, joined, "water breakthrough risk")
}

func TestHTMLRenderingMatchesDocument(t *testing.T) {
	doc := Build(entities.Well{Name: "WELL-007", Status: "active"}, sampleZones(),
		[]string{"GR"}, fp(1000), fp(1040), []suggest.Suggestion{{Type: "info", Message: "hello"}})

	html1, err := RenderHTML(doc)
	require.NoError(t, err)
	html2, err := RenderHTML(doc)
	require.NoError(t, err)
	assert.Equal(t, html1, html2, "rendering is a pure function of the document")

	page := string(html1)
	assert.Contains(t, page, "WELL-007")
	// Zone table reflects the same values the JSON document carries.
	assert.Contains(t, page, "1000.0 - 1010.0")
	assert.Contains(t, page, "18.0%")
	// Statistics block carries the same mean as the document.
	assert.Contains(t, page, fmt.Sprintf("%.3f", doc.ZoneStatistics.Porosity.Mean))
}
