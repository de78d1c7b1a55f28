package router

import (
	"github.com/labstack/echo/v4"

	"engineview/pkg/middleware"

	authCtrl "engineview/pkg/auth/controller"
	chartCtrl "engineview/pkg/chart/controller"
	engineCtrl "engineview/pkg/engine/controller"
	importCtrl "engineview/pkg/importer/controller"
	measCtrl "engineview/pkg/measurement/controller"
	paramCtrl "engineview/pkg/parameter/controller"
	statsCtrl "engineview/pkg/stats/controller"
	vesselCtrl "engineview/pkg/vessel/controller"
)

func New(
	e *echo.Echo,
	vessels vesselCtrl.VesselController,
	engines engineCtrl.EngineController,
	params paramCtrl.ParameterController,
	measurements measCtrl.MeasurementController,
	imports importCtrl.ImportController,
	charts chartCtrl.ChartController,
	stats statsCtrl.StatsController,
	auth authCtrl.AuthController,
	health interface{ Health(echo.Context) error },
	requireUser bool,
) *echo.Echo {
	e.Use(middleware.User(false))

	e.GET("/health", health.Health)
	e.GET("/api/whoami", auth.WhoAmI)
	e.GET("/api/devlogin", auth.DevLogin)

	api := e.Group("/api")
	// Writes go through the user middleware; reads stay open.
	write := e.Group("/api", middleware.User(requireUser))

	api.GET("/summary", stats.Summary)
	api.GET("/stats", stats.VesselStats)

	api.GET("/vessels", vessels.List)
	api.GET("/vessels/:id", vessels.Get)
	api.GET("/vessels/:id/engines", engines.ListByVessel)
	write.POST("/vessels", vessels.Create)
	write.PUT("/vessels/:id", vessels.Update)
	write.DELETE("/vessels/:id", vessels.Delete)

	api.GET("/engines", engines.List)
	api.GET("/engines/:id", engines.Get)
	write.POST("/engines", engines.Create)
	write.PUT("/engines/:id", engines.Update)
	write.DELETE("/engines/:id", engines.Delete)

	api.GET("/parameters", params.List)
	write.POST("/parameters", params.Create)
	write.PUT("/parameters/:id", params.Update)
	write.POST("/parameters/:id/toggle", params.Toggle)
	write.DELETE("/parameters/:id", params.Delete)

	api.GET("/measurements", measurements.List)
	api.GET("/measurements/:id", measurements.Get)
	write.POST("/measurements", measurements.Create)
	write.DELETE("/measurements/:id", measurements.Delete)

	write.POST("/import", imports.Import)
	api.GET("/import/template", imports.Template)

	api.GET("/chart-data", charts.Data)

	return e
}
