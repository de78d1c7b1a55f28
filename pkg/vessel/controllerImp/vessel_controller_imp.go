package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"engineview/database"
	"engineview/entities"
	"engineview/pkg/vessel/controller"
	repo "engineview/pkg/vessel/repository"
)

type VesselCtrl struct{ repo repo.VesselRepository }

func New(repo repo.VesselRepository) controller.VesselController { return &VesselCtrl{repo} }

type vesselReq struct {
	Name      string `json:"name"`
	IMONumber string `json:"imo_number"`
}

func (h *VesselCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *VesselCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	v, err := h.repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "vessel not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VesselCtrl) Create(c echo.Context) error {
	var req vesselReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" || req.IMONumber == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and imo_number are required"})
	}
	v := &entities.Vessel{Name: req.Name, IMONumber: req.IMONumber}
	if err := h.repo.Create(v); err != nil {
		if database.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "IMO number already registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *VesselCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	v, err := h.repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "vessel not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	var req vesselReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		v.Name = req.Name
	}
	if req.IMONumber != "" {
		v.IMONumber = req.IMONumber
	}
	if err := h.repo.Update(v); err != nil {
		if database.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "IMO number already registered"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VesselCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
