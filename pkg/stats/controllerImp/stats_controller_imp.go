package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"engineview/pkg/stats/controller"
	repo "engineview/pkg/stats/repository"
)

type StatsCtrl struct{ repo repo.StatsRepository }

func New(repo repo.StatsRepository) controller.StatsController { return &StatsCtrl{repo} }

func (h *StatsCtrl) Summary(c echo.Context) error {
	s, err := h.repo.Summary()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StatsCtrl) VesselStats(c echo.Context) error {
	out, err := h.repo.VesselStats()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
