// pkg/ai/mock_client.go

package ai

import (
	"fmt"
	"strings"

	"petrolog/entities"
	"petrolog/pkg/report"
)

type mockClient struct{}

// NewMock returns a deterministic client used when no LLM endpoint is
// configured. The narrative is assembled from the summary numbers alone.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) InterpretWell(w *entities.Well, s report.AnalysisSummary, zones []entities.Zone, kbCtx string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s: preliminary interpretation**\n\n", w.Name)
	fmt.Fprintf(&b, "- %d interval(s) analyzed, %d classified as reservoir (net-to-gross %.1f%%).\n",
		s.TotalZones, s.ReservoirZones, s.NetToGross*100)
	if s.AvgPorosityEffective != nil {
		fmt.Fprintf(&b, "- Average effective porosity over reservoir zones: %.1f%%.\n", *s.AvgPorosityEffective*100)
	}
	if s.AvgSaturationWater != nil {
		fmt.Fprintf(&b, "- Average water saturation: %.1f%% (hydrocarbon saturation %.1f%%).\n",
			*s.AvgSaturationWater*100, (1-*s.AvgSaturationWater)*100)
	}
	for _, line := range report.Interpret(zones) {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	return b.String(), nil
}
