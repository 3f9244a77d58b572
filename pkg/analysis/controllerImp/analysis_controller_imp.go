package controllerImp

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"petrolog/entities"
	zonerepo "petrolog/pkg/analysis/repository"
	"petrolog/pkg/analysis/service"
	"petrolog/pkg/petro"
	"petrolog/pkg/suggest"
	wellrepo "petrolog/pkg/well/repository"
	logrepo "petrolog/pkg/welllog/repository"
)

type AnalysisCtrl struct {
	svc   service.AnalysisService
	wells wellrepo.WellRepository
	logs  logrepo.LogRepository
	zones zonerepo.ZoneRepository
}

func New(svc service.AnalysisService, wells wellrepo.WellRepository, logs logrepo.LogRepository, zones zonerepo.ZoneRepository) *AnalysisCtrl {
	return &AnalysisCtrl{svc: svc, wells: wells, logs: logs, zones: zones}
}

func (h *AnalysisCtrl) ownedWell(c echo.Context) (*entities.Well, error) {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	return h.wells.FindByID(uint(id), uid)
}

func (h *AnalysisCtrl) Calculate(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	var req service.CalcRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	zone, interp, err := h.svc.Calculate(w.ID, req)
	if err != nil {
		var rangeErr *petro.InvalidRangeError
		var valErr *petro.ValidationError
		if errors.As(err, &rangeErr) || errors.As(err, &valErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"zone":           zone,
		"interpretation": interp,
	})
}

func (h *AnalysisCtrl) Zones(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}
	zones, err := h.zones.ListByWell(w.ID, c.QueryParam("zone_type"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	type zoneOut struct {
		entities.Zone
		Thickness float64 `json:"thickness"`
	}
	out := make([]zoneOut, len(zones))
	for i, z := range zones {
		out[i] = zoneOut{Zone: z, Thickness: z.Thickness()}
	}
	return c.JSON(http.StatusOK, map[string]any{"well_id": w.ID, "zones": out})
}

// Crossplot aligns two curves on their common depths for scatter
// plotting. An empty intersection returns empty arrays, not an error:
// the client omits the plot.
func (h *AnalysisCtrl) Crossplot(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	x := strings.ToUpper(c.QueryParam("x"))
	y := strings.ToUpper(c.QueryParam("y"))
	if x == "" {
		x = "DENS"
	}
	if y == "" {
		y = "NEUT"
	}
	if !entities.LogTypeKnown(x) || !entities.LogTypeKnown(y) || x == y {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "x and y must be two distinct known log types"})
	}

	curves, err := h.logs.Curves(w.ID, []string{x, y})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if from, to, ok := depthWindow(c); ok {
		for t, cv := range curves {
			curves[t] = windowCurve(cv, from, to)
		}
	}

	aligned := petro.Align(curves, []string{x, y}, petro.AlignIntersection)
	return c.JSON(http.StatusOK, map[string]any{
		"well_id": w.ID,
		"x":       map[string]any{"type": x, "info": entities.LogTypes[x], "values": aligned.Values[x]},
		"y":       map[string]any{"type": y, "info": entities.LogTypes[y], "values": aligned.Values[y]},
		"depths":  aligned.Depths,
		"count":   len(aligned.Depths),
	})
}

func depthWindow(c echo.Context) (from, to float64, ok bool) {
	from, to = math.Inf(-1), math.Inf(1)
	if v := c.QueryParam("depth_from"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			from, ok = f, true
		}
	}
	if v := c.QueryParam("depth_to"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			to, ok = f, true
		}
	}
	return from, to, ok
}

func windowCurve(c petro.Curve, from, to float64) petro.Curve {
	out := petro.Curve{Unit: c.Unit}
	for i, d := range c.Depths {
		if d >= from && d <= to {
			out.Depths = append(out.Depths, d)
			out.Values = append(out.Values, c.Values[i])
		}
	}
	return out
}

func (h *AnalysisCtrl) Suggestions(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}
	coverage, err := h.logs.DistinctTypes(w.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	zones, err := h.zones.ListByWell(w.ID, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"suggestions": suggest.Evaluate(coverage, zones),
	})
}
