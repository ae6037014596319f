package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration. SQL may be nil
// when no database is configured; its routes are then omitted.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Reports  *handlers.ReportsHandler
	Datasets *handlers.DatasetsHandler
	SQL      *handlers.SQLReportsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	datasets := app.Group("/datasets")
	datasets.Post("/import", cfg.Datasets.Import)
	datasets.Post("/generate", cfg.Datasets.Generate)
	datasets.Get("/current", cfg.Datasets.Current)

	reports := app.Group("/reports")
	reports.Get("/sla-summary", cfg.Reports.SLASummary)
	reports.Get("/resolution-stats", cfg.Reports.ResolutionStats)
	reports.Get("/breach-rates", cfg.Reports.BreachRates)
	reports.Get("/volume-trend", cfg.Reports.VolumeTrend)
	reports.Get("/top-categories", cfg.Reports.TopCategories)
	reports.Get("/team-category-matrix", cfg.Reports.TeamCategoryMatrix)
	reports.Get("/outliers", cfg.Reports.Outliers)
	reports.Get("/quick-resolution", cfg.Reports.QuickResolution)
	reports.Get("/recurring-signatures", cfg.Reports.RecurringSignatures)
	reports.Get("/breach-share", cfg.Reports.BreachShare)
	reports.Get("/repeat-incidents", cfg.Reports.RepeatIncidents)
	reports.Get("/recurring-issues", cfg.Reports.RecurringIssues)
	reports.Get("/escalations", cfg.Reports.Escalations)
	reports.Get("/weekly-volume", cfg.Reports.WeeklyVolume)
	reports.Get("/forecast", cfg.Reports.Forecast)

	if cfg.SQL != nil {
		sql := app.Group("/sql")
		sql.Get("/sla-summary", cfg.SQL.SLASummary)
		sql.Get("/volume-trend", cfg.SQL.MonthlyVolume)
		sql.Get("/breach-rates", cfg.SQL.BreachRatesByTeam)
		sql.Get("/count", cfg.SQL.Count)
	}
}
