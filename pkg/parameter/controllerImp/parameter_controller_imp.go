package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"engineview/database"
	"engineview/entities"
	"engineview/pkg/parameter/controller"
	repo "engineview/pkg/parameter/repository"
)

type ParameterCtrl struct{ repo repo.ParameterRepository }

func New(repo repo.ParameterRepository) controller.ParameterController {
	return &ParameterCtrl{repo}
}

type paramReq struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	MinValue    *float64 `json:"min_value"`
	MaxValue    *float64 `json:"max_value"`
	IsActive    *bool    `json:"is_active"`
}

func (h *ParameterCtrl) List(c echo.Context) error {
	includeInactive := c.QueryParam("include_inactive") == "true"
	out, err := h.repo.List(includeInactive)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ParameterCtrl) Create(c echo.Context) error {
	var req paramReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" || req.Code == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and code are required"})
	}
	p := &entities.ParameterType{
		Name:        req.Name,
		Code:        req.Code,
		Unit:        req.Unit,
		Description: req.Description,
		MinValue:    req.MinValue,
		MaxValue:    req.MaxValue,
		IsActive:    true,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := h.repo.Create(p); err != nil {
		if database.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "parameter code already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ParameterCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "parameter not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	var req paramReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	// Code is immutable once data references it; keep it immutable across
	// the board to stay predictable.
	if req.Name != "" {
		p.Name = req.Name
	}
	p.Unit = req.Unit
	p.Description = req.Description
	p.MinValue = req.MinValue
	p.MaxValue = req.MaxValue
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := h.repo.Update(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ParameterCtrl) Toggle(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "parameter not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	p.IsActive = !p.IsActive
	if err := h.repo.Update(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ParameterCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, repo.ErrParameterInUse) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "parameter type is used by stored measurements"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
