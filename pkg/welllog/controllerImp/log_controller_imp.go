package controllerImp

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"petrolog/entities"
	wellrepo "petrolog/pkg/well/repository"
	"petrolog/pkg/welllog/logfile"
	repo "petrolog/pkg/welllog/repository"
)

type LogCtrl struct {
	logs  repo.LogRepository
	wells wellrepo.WellRepository
}

func New(logs repo.LogRepository, wells wellrepo.WellRepository) *LogCtrl {
	return &LogCtrl{logs: logs, wells: wells}
}

func (h *LogCtrl) ownedWell(c echo.Context) (*entities.Well, error) {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	return h.wells.FindByID(uint(id), uid)
}

func (h *LogCtrl) List(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	var depthFrom, depthTo *float64
	if v := c.QueryParam("depth_from"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			depthFrom = &f
		}
	}
	if v := c.QueryParam("depth_to"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			depthTo = &f
		}
	}

	logs, err := h.logs.ListByWell(w.ID, c.QueryParam("log_type"), depthFrom, depthTo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"well_id": w.ID,
		"count":   len(logs),
		"logs":    logs,
	})
}

func (h *LogCtrl) Types(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	stats, err := h.logs.StatsByType(w.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	type typeInfo struct {
		Type  string `json:"type"`
		Name  string `json:"name"`
		Unit  string `json:"unit"`
		Count int64  `json:"count"`
	}
	out := make([]typeInfo, 0, len(stats))
	for _, s := range stats {
		info := entities.LogTypes[s.LogType]
		name := info.Name
		if name == "" {
			name = s.LogType
		}
		out = append(out, typeInfo{Type: s.LogType, Name: name, Unit: info.Unit, Count: s.Count})
	}
	return c.JSON(http.StatusOK, map[string]any{"log_types": out})
}

// Import ingests a CSV or XLSX curve file. ?mode=replace (default) swaps
// each imported type's prior curve atomically; ?mode=append adds the
// rows to whatever is there.
func (h *LogCtrl) Import(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	curves, err := parseByExtension(fh.Filename, f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	mode := c.QueryParam("mode")
	if mode == "" {
		mode = "replace"
	}
	if mode != "replace" && mode != "append" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "mode must be replace or append"})
	}

	created := 0
	types := make([]string, 0, len(curves))
	for t, samples := range curves {
		rows := make([]entities.WellLog, len(samples))
		for i, s := range samples {
			rows[i] = entities.WellLog{
				WellID:  w.ID,
				LogType: t,
				Depth:   s.Depth,
				Value:   s.Value,
				Unit:    entities.LogTypeUnit(t),
			}
		}
		if mode == "replace" {
			err = h.logs.ReplaceCurve(w.ID, t, rows)
		} else {
			err = h.logs.AppendSamples(rows)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		created += len(rows)
		types = append(types, t)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"logs_created": created,
		"log_types":    types,
		"mode":         mode,
	})
}

func parseByExtension(name string, r io.Reader) (map[string][]logfile.Sample, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".xlsx"):
		return logfile.ParseXLSX(r)
	default:
		return logfile.ParseCSV(r)
	}
}

// Export returns the curves grouped by type, ready for charting;
// ?format=xlsx streams the import-compatible workbook instead.
func (h *LogCtrl) Export(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	var types []string
	if t := c.QueryParam("log_type"); t != "" {
		types = []string{t}
	}
	curves, err := h.logs.Curves(w.ID, types)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if c.QueryParam("format") == "xlsx" {
		raw, err := logfile.WriteXLSX(curves)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=logs_`+w.Name+`.xlsx`)
		return c.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", raw)
	}

	type curveOut struct {
		Info   entities.LogTypeInfo `json:"info"`
		Depths []float64            `json:"depths"`
		Values []float64            `json:"values"`
		Unit   string               `json:"unit"`
	}
	data := map[string]curveOut{}
	for t, cv := range curves {
		data[t] = curveOut{Info: entities.LogTypes[t], Depths: cv.Depths, Values: cv.Values, Unit: cv.Unit}
	}
	return c.JSON(http.StatusOK, map[string]any{"well": w, "data": data})
}

// DeleteType drops one curve atomically.
func (h *LogCtrl) DeleteType(c echo.Context) error {
	w, err := h.ownedWell(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}
	t := strings.ToUpper(c.Param("type"))
	if !entities.LogTypeKnown(t) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown log type"})
	}
	if err := h.logs.DeleteType(w.ID, t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "curve deleted", "log_type": t})
}
