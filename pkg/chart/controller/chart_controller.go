package controller

import "github.com/labstack/echo/v4"

type ChartController interface {
	Data(c echo.Context) error
}
