// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petrolog/entities"
	"petrolog/pkg/report"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) InterpretWell(w *entities.Well, s report.AnalysisSummary, zones []entities.Zone, kbCtx string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a petrophysicist who writes concise, actionable well interpretations in Markdown."},
			{"role": "user", "content": renderInterpretPrompt(w, s, zones, kbCtx)},
		},
		"temperature": 0.2,
	}

	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		// degrade to the deterministic narrative rather than failing the request
		return NewMock().InterpretWell(w, s, zones, kbCtx)
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Choices) == 0 {
		return NewMock().InterpretWell(w, s, zones, kbCtx)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return NewMock().InterpretWell(w, s, zones, kbCtx)
	}
	return content, nil
}

func renderInterpretPrompt(w *entities.Well, s report.AnalysisSummary, zones []entities.Zone, kbCtx string) string {
	zoneLines := make([]string, 0, len(zones))
	for _, z := range zones {
		zoneLines = append(zoneLines, fmt.Sprintf("%.1f-%.1fm %s vsh=%s phi_eff=%s sw=%s",
			z.DepthFrom, z.DepthTo, z.ZoneType,
			fmtFrac(z.Vshale), fmtFrac(z.PorosityEffective), fmtFrac(z.SaturationWater)))
	}
	return fmt.Sprintf(`Write a short Markdown interpretation (max 10 lines) of this well's
petrophysical analysis. State net pay quality, porosity and saturation trends,
and concrete next steps. Cite figures, avoid generic language.

WELL: %s (field %q, status %s)

SUMMARY: %d zones, %d reservoir, net-to-gross %.3f

ZONES:
%s

REFERENCE NOTES (may be empty, do not quote at length):
%s
`, w.Name, w.FieldName, w.Status,
		s.TotalZones, s.ReservoirZones, s.NetToGross,
		strings.Join(zoneLines, "\n"), kbCtx)
}

func fmtFrac(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", *v)
}
