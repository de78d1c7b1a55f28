package controller

import "github.com/labstack/echo/v4"

type StatsController interface {
	Summary(c echo.Context) error
	VesselStats(c echo.Context) error
}
