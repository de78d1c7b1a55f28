package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"engineview/entities"
	"engineview/pkg/chart"
	"engineview/pkg/chart/controller"
	measRepo "engineview/pkg/measurement/repository"
	paramRepo "engineview/pkg/parameter/repository"
)

const defaultWindowDays = 30

type ChartCtrl struct {
	meas   measRepo.MeasurementRepository
	params paramRepo.ParameterRepository
}

func New(meas measRepo.MeasurementRepository, params paramRepo.ParameterRepository) controller.ChartController {
	return &ChartCtrl{meas, params}
}

// Data serves chart series for ?vessel=&engine=&parameter=&days=. The window
// is trailing days from now; the parameter falls back to the first active
// type when none is given or the code is unknown.
func (h *ChartCtrl) Data(c echo.Context) error {
	var vesselID, engineID *uint
	if v := c.QueryParam("vessel"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad vessel id"})
		}
		u := uint(id)
		vesselID = &u
	}
	if v := c.QueryParam("engine"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad engine id"})
		}
		u := uint(id)
		engineID = &u
	}
	days := defaultWindowDays
	if v := c.QueryParam("days"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad days"})
		}
		days = d
	}

	parameter, err := h.selectParameter(c.QueryParam("parameter"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "no parameter types available"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	since := time.Now().AddDate(0, 0, -days)
	measurements, err := h.meas.Window(vesselID, engineID, since)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, chart.BuildSeries(measurements, parameter))
}

func (h *ChartCtrl) selectParameter(code string) (*entities.ParameterType, error) {
	if code != "" {
		p, err := h.params.GetByCode(code)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// unknown code: fall through to the first active type
	}
	active, err := h.params.List(false)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &active[0], nil
}
