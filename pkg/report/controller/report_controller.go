package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	Get(c echo.Context) error
	Summary(c echo.Context) error
	Interpret(c echo.Context) error
}
