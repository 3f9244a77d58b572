package controller

import "github.com/labstack/echo/v4"

type AnalysisController interface {
	Calculate(c echo.Context) error
	Zones(c echo.Context) error
	Crossplot(c echo.Context) error
	Suggestions(c echo.Context) error
}
