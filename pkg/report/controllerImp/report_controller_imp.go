package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"petrolog/entities"
	"petrolog/pkg/ai"
	zonerepo "petrolog/pkg/analysis/repository"
	"petrolog/pkg/report"
	"petrolog/pkg/suggest"
	wellrepo "petrolog/pkg/well/repository"
	logrepo "petrolog/pkg/welllog/repository"
)

type kbSearcher interface {
	Search(query string, k int) ([]entities.KBChunk, error)
}

type ReportCtrl struct {
	wells wellrepo.WellRepository
	logs  logrepo.LogRepository
	zones zonerepo.ZoneRepository
	llm   ai.Client
	kb    kbSearcher
}

func New(wells wellrepo.WellRepository, logs logrepo.LogRepository, zones zonerepo.ZoneRepository, llm ai.Client, kb kbSearcher) *ReportCtrl {
	return &ReportCtrl{wells: wells, logs: logs, zones: zones, llm: llm, kb: kb}
}

func (h *ReportCtrl) ownedWell(c echo.Context) (*entities.Well, error) {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	return h.wells.FindByID(uint(id), uid)
}

// Get builds the full report document once and renders it as JSON or,
// with ?format=html, as a downloadable page. Both renderings come from
// the same document.
func (h *ReportCtrl) Get(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	doc, err := h.buildDocument(w)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if c.QueryParam("format") == "html" {
		page, err := report.RenderHTML(doc)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=report_`+w.Name+`.html`)
		return c.HTMLBlob(http.StatusOK, page)
	}
	return c.JSON(http.StatusOK, map[string]any{"report": doc})
}

func (h *ReportCtrl) buildDocument(w *entities.Well) (report.Document, error) {
	zones, err := h.zones.ListByWell(w.ID, "")
	if err != nil {
		return report.Document{}, err
	}
	coverage, err := h.logs.DistinctTypes(w.ID)
	if err != nil {
		return report.Document{}, err
	}
	min, max, err := h.logs.DepthRange(w.ID)
	if err != nil {
		return report.Document{}, err
	}
	return report.Build(*w, zones, coverage, min, max, suggest.Evaluate(coverage, zones)), nil
}

func (h *ReportCtrl) Summary(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	stats, err := h.logs.StatsByType(w.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	zones, err := h.zones.ListByWell(w.ID, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"summary": map[string]any{
		"well":             w,
		"log_statistics":   stats,
		"analysis_summary": report.Summarize(zones),
		"interpretation":   report.Interpret(zones),
	}})
}

// Interpret asks the configured LLM (or its deterministic fallback) for
// a narrative, grounded on reference-library snippets when available.
func (h *ReportCtrl) Interpret(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}
	zones, err := h.zones.ListByWell(w.ID, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var kbCtx string
	if h.kb != nil {
		query := strings.TrimSpace(w.FieldName + " reservoir porosity saturation shale volume interpretation")
		if snips, err := h.kb.Search(query, 6); err == nil {
			var b strings.Builder
			for _, ch := range snips {
				if b.Len() > 6000 {
					break
				}
				b.WriteString("\n---\n")
				b.WriteString(ch.Text)
			}
			kbCtx = b.String()
		}
	}

	text, err := h.llm.InterpretWell(w, report.Summarize(zones), zones, kbCtx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"interpretation": text})
}
