package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"engineview/entities"
	"engineview/pkg/measurement/controller"
	repo "engineview/pkg/measurement/repository"
	paramRepo "engineview/pkg/parameter/repository"
)

type MeasurementCtrl struct {
	repo   repo.MeasurementRepository
	params paramRepo.ParameterRepository
}

func New(repo repo.MeasurementRepository, params paramRepo.ParameterRepository) controller.MeasurementController {
	return &MeasurementCtrl{repo, params}
}

type valueReq struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

type measurementReq struct {
	EngineID  uint       `json:"engine_id"`
	Timestamp string     `json:"timestamp"`
	Notes     string     `json:"notes"`
	Values    []valueReq `json:"values"`
}

type listResp struct {
	Measurements []entities.Measurement `json:"measurements"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
	Pages        int                    `json:"pages"`
}

func (h *MeasurementCtrl) List(c echo.Context) error {
	var f repo.Filter
	if v := c.QueryParam("vessel"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad vessel id"})
		}
		u := uint(id)
		f.VesselID = &u
	}
	if v := c.QueryParam("engine"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad engine id"})
		}
		u := uint(id)
		f.EngineID = &u
	}
	if v := c.QueryParam("date_from"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date_from, want YYYY-MM-DD"})
		}
		f.DateFrom = &d
	}
	if v := c.QueryParam("date_to"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date_to, want YYYY-MM-DD"})
		}
		// date_to is an inclusive calendar date; the repository bound is
		// exclusive, so move to the next midnight.
		end := d.AddDate(0, 0, 1)
		f.DateTo = &end
	}
	f.Page, _ = strconv.Atoi(c.QueryParam("page"))
	if f.Page < 1 {
		f.Page = 1
	}

	out, total, err := h.repo.List(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	pages := int((total + repo.PageSize - 1) / repo.PageSize)
	return c.JSON(http.StatusOK, listResp{
		Measurements: out,
		Total:        total,
		Page:         f.Page,
		PageSize:     repo.PageSize,
		Pages:        pages,
	})
}

func (h *MeasurementCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "measurement not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MeasurementCtrl) Create(c echo.Context) error {
	var req measurementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.EngineID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "engine_id is required"})
	}

	ts := time.Now()
	if req.Timestamp != "" {
		parsed, err := parseTimestamp(req.Timestamp)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad timestamp"})
		}
		ts = parsed
	}

	// Resolve and validate all values against the active parameter set
	// before writing anything.
	active, err := h.params.List(false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	byCode := make(map[string]entities.ParameterType, len(active))
	for _, p := range active {
		byCode[p.Code] = p
	}

	type resolved struct {
		typeID uint
		value  float64
	}
	var toStore []resolved
	for _, v := range req.Values {
		p, ok := byCode[v.Code]
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("unknown or inactive parameter %q", v.Code),
			})
		}
		if p.MinValue != nil && v.Value < *p.MinValue {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("%s: value %g below minimum %g", p.Name, v.Value, *p.MinValue),
			})
		}
		if p.MaxValue != nil && v.Value > *p.MaxValue {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("%s: value %g above maximum %g", p.Name, v.Value, *p.MaxValue),
			})
		}
		toStore = append(toStore, resolved{p.ParameterTypeID, v.Value})
	}

	uid, _ := c.Get("uid").(string)
	m := &entities.Measurement{
		EngineID:  req.EngineID,
		Timestamp: ts,
		Notes:     req.Notes,
		CreatedBy: uid,
	}
	if err := h.repo.Create(m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	for _, v := range toStore {
		pv := &entities.ParameterValue{
			MeasurementID:   m.MeasurementID,
			ParameterTypeID: v.typeID,
			Value:           v.value,
		}
		if err := h.repo.CreateValue(pv); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	full, err := h.repo.Get(m.MeasurementID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, full)
}

func (h *MeasurementCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
