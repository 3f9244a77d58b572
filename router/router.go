package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	httpSwagger "github.com/swaggo/http-swagger"

	"petrolog/docs"
	"petrolog/pkg/middleware"
)

// New wires the HTTP surface. Register/login, health and the API docs
// are public; everything else sits behind the JWT middleware.
func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Profile(echo.Context) error
		UpdateProfile(echo.Context) error
	},
	wellCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		Stats(echo.Context) error
	},
	logCtrl interface {
		List(echo.Context) error
		Types(echo.Context) error
		Import(echo.Context) error
		Export(echo.Context) error
		DeleteType(echo.Context) error
	},
	analysisCtrl interface {
		Calculate(echo.Context) error
		Zones(echo.Context) error
		Crossplot(echo.Context) error
		Suggestions(echo.Context) error
	},
	reportCtrl interface {
		Get(echo.Context) error
		Summary(echo.Context) error
		Interpret(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
		Docs(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/api/health", healthCtrl.Health)
	e.POST("/api/auth/register", authCtrl.Register)
	e.POST("/api/auth/login", authCtrl.Login)

	e.GET("/api/openapi.yaml", func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=60")
		return c.Blob(http.StatusOK, "application/yaml; charset=utf-8", docs.OpenAPIYAML)
	})
	e.GET("/swagger/*", echo.WrapHandler(httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	)))

	api := e.Group("/api", middleware.JWT(jwtSecret))

	api.GET("/auth/profile", authCtrl.Profile)
	api.PUT("/auth/profile", authCtrl.UpdateProfile)

	api.GET("/wells", wellCtrl.List)
	api.POST("/wells", wellCtrl.Create)
	api.GET("/wells/:id", wellCtrl.Get)
	api.PUT("/wells/:id", wellCtrl.Update)
	api.DELETE("/wells/:id", wellCtrl.Delete)
	api.GET("/wells/:id/stats", wellCtrl.Stats)

	api.GET("/logs/well/:id", logCtrl.List)
	api.GET("/logs/well/:id/types", logCtrl.Types)
	api.POST("/logs/well/:id/import", logCtrl.Import)
	api.GET("/logs/well/:id/export", logCtrl.Export)
	api.DELETE("/logs/well/:id/type/:type", logCtrl.DeleteType)

	api.POST("/analysis/well/:id/calculate", analysisCtrl.Calculate)
	api.GET("/analysis/well/:id/zones", analysisCtrl.Zones)
	api.GET("/analysis/well/:id/crossplot", analysisCtrl.Crossplot)
	api.GET("/analysis/well/:id/suggestions", analysisCtrl.Suggestions)

	api.GET("/reports/well/:id", reportCtrl.Get)
	api.GET("/reports/well/:id/summary", reportCtrl.Summary)
	api.POST("/reports/well/:id/interpret", reportCtrl.Interpret)

	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)
	api.GET("/kb/docs", kbCtrl.Docs)

	return e
}
