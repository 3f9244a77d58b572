// pkg/ai/client.go

package ai

import (
	"petrolog/entities"
	"petrolog/pkg/report"
)

// Client produces a narrative interpretation of a well's accumulated
// analyses. kbCtx carries reference-library snippets to ground the
// wording; it may be empty.
type Client interface {
	InterpretWell(w *entities.Well, summary report.AnalysisSummary, zones []entities.Zone, kbCtx string) (string, error)
}
