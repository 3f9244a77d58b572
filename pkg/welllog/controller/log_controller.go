package controller

import "github.com/labstack/echo/v4"

type LogController interface {
	List(c echo.Context) error
	Types(c echo.Context) error
	Import(c echo.Context) error
	Export(c echo.Context) error
	DeleteType(c echo.Context) error
}
