package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"engineview/database"
	"engineview/entities"
	"engineview/pkg/engine/controller"
	repo "engineview/pkg/engine/repository"
	vesselRepo "engineview/pkg/vessel/repository"
)

type EngineCtrl struct {
	repo    repo.EngineRepository
	vessels vesselRepo.VesselRepository
}

func New(repo repo.EngineRepository, vessels vesselRepo.VesselRepository) controller.EngineController {
	return &EngineCtrl{repo, vessels}
}

type engineReq struct {
	VesselID     uint   `json:"vessel_id"`
	Name         string `json:"name"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}

func (h *EngineCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EngineCtrl) ListByVessel(c echo.Context) error {
	vid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListByVessel(uint(vid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EngineCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	e, err := h.repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "engine not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EngineCtrl) Create(c echo.Context) error {
	var req engineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.VesselID == 0 || req.Name == "" || req.SerialNumber == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "vessel_id, name and serial_number are required"})
	}
	if _, err := h.vessels.Get(req.VesselID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "vessel not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	e := &entities.Engine{
		VesselID:     req.VesselID,
		Name:         req.Name,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
	}
	if err := h.repo.Create(e); err != nil {
		if database.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "serial number already registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EngineCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	e, err := h.repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "engine not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	var req engineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		e.Name = req.Name
	}
	if req.Model != "" {
		e.Model = req.Model
	}
	if req.SerialNumber != "" {
		e.SerialNumber = req.SerialNumber
	}
	if err := h.repo.Update(e); err != nil {
		if database.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "serial number already registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EngineCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
