package controller

import "github.com/labstack/echo/v4"

type ImportController interface {
	Import(c echo.Context) error
	Template(c echo.Context) error
}
