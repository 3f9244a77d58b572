package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"petrolog/entities"
	repo "petrolog/pkg/well/repository"
	logrepo "petrolog/pkg/welllog/repository"
)

type WellCtrl struct {
	wells repo.WellRepository
	logs  logrepo.LogRepository
}

func New(wells repo.WellRepository, logs logrepo.LogRepository) *WellCtrl {
	return &WellCtrl{wells: wells, logs: logs}
}

func (h *WellCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(uint)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 {
		perPage = 10
	}

	wells, total, err := h.wells.List(uid, page, perPage, c.QueryParam("status"), c.QueryParam("search"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	pages := (total + int64(perPage) - 1) / int64(perPage)
	return c.JSON(http.StatusOK, map[string]any{
		"wells":        wells,
		"total":        total,
		"pages":        pages,
		"current_page": page,
	})
}

type wellReq struct {
	Name        string   `json:"name"`
	FieldName   string   `json:"field_name"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	DepthTotal  *float64 `json:"depth_total"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
}

func (h *WellCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req wellReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "well name is required"})
	}
	status := req.Status
	if status == "" {
		status = "active"
	}
	w := &entities.Well{
		UserID:      uid,
		Name:        req.Name,
		FieldName:   req.FieldName,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		DepthTotal:  req.DepthTotal,
		Status:      status,
		Description: req.Description,
	}
	if err := h.wells.Create(w); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"well": w})
}

func (h *WellCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	w, err := h.wells.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}
	if logs, zones, err := h.wells.Counts(w.ID); err == nil {
		w.LogsCount, w.ZonesCount = &logs, &zones
	}
	return c.JSON(http.StatusOK, map[string]any{"well": w})
}

// Update applies a partial update: only fields present in the body
// change.
func (h *WellCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	w, err := h.wells.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	var patch struct {
		Name        *string  `json:"name"`
		FieldName   *string  `json:"field_name"`
		Location    *string  `json:"location"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		DepthTotal  *float64 `json:"depth_total"`
		Status      *string  `json:"status"`
		Description *string  `json:"description"`
	}
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if patch.Name != nil {
		w.Name = *patch.Name
	}
	if patch.FieldName != nil {
		w.FieldName = *patch.FieldName
	}
	if patch.Location != nil {
		w.Location = *patch.Location
	}
	if patch.Latitude != nil {
		w.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		w.Longitude = patch.Longitude
	}
	if patch.DepthTotal != nil {
		w.DepthTotal = patch.DepthTotal
	}
	if patch.Status != nil {
		w.Status = *patch.Status
	}
	if patch.Description != nil {
		w.Description = *patch.Description
	}
	if err := h.wells.Update(w); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"well": w})
}

func (h *WellCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	w, err := h.wells.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}
	if err := h.wells.DeleteCascade(w); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "well deleted"})
}

func (h *WellCtrl) Stats(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	w, err := h.wells.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "well not found"})
	}

	logsCount, zonesCount, err := h.wells.Counts(w.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	types, err := h.logs.DistinctTypes(w.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	min, max, err := h.logs.DepthRange(w.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"stats": map[string]any{
		"well_id":     w.ID,
		"name":        w.Name,
		"logs_count":  logsCount,
		"zones_count": zonesCount,
		"log_types":   types,
		"depth_range": map[string]any{"min": min, "max": max},
	}})
}
