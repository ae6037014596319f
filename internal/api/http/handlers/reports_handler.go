package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/service"
	apperrors "github.com/DevanshM1211/IT-Service-Desk-Analytics/pkg/util"
)

// ReportsHandler exposes the analytics engine's computations over HTTP. Every
// endpoint reads the immutable snapshot held by the report service; none of
// them mutates state.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// SLASummary GET /reports/sla-summary.
func (h *ReportsHandler) SLASummary(c *fiber.Ctx) error {
	summary, err := h.reports.SLASummary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// ResolutionStats GET /reports/resolution-stats?by=category|team|priority.
func (h *ReportsHandler) ResolutionStats(c *fiber.Ctx) error {
	rows, err := h.reports.ResolutionStats(c.UserContext(), c.Query("by", "category"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// BreachRates GET /reports/breach-rates?by=category|team|priority.
func (h *ReportsHandler) BreachRates(c *fiber.Ctx) error {
	rows, err := h.reports.BreachRates(c.UserContext(), c.Query("by", "team"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// VolumeTrend GET /reports/volume-trend.
func (h *ReportsHandler) VolumeTrend(c *fiber.Ctx) error {
	rows, err := h.reports.VolumeTrend(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// TopCategories GET /reports/top-categories?limit=N.
func (h *ReportsHandler) TopCategories(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	rows, err := h.reports.TopCategories(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// TeamCategoryMatrix GET /reports/team-category-matrix.
func (h *ReportsHandler) TeamCategoryMatrix(c *fiber.Ctx) error {
	rows, err := h.reports.TeamCategoryMatrix(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Outliers GET /reports/outliers?percentile=P.
func (h *ReportsHandler) Outliers(c *fiber.Ctx) error {
	percentile, err := queryFloat(c, "percentile", 0)
	if err != nil {
		return err
	}
	report, err := h.reports.Outliers(c.UserContext(), percentile)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": report})
}

// QuickResolution GET /reports/quick-resolution?max_hours=H.
func (h *ReportsHandler) QuickResolution(c *fiber.Ctx) error {
	maxHours, err := queryFloat(c, "max_hours", 0)
	if err != nil {
		return err
	}
	rows, err := h.reports.QuickResolution(c.UserContext(), maxHours)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// RecurringSignatures GET /reports/recurring-signatures?threshold=T.
func (h *ReportsHandler) RecurringSignatures(c *fiber.Ctx) error {
	threshold, err := queryFloat(c, "threshold", 0)
	if err != nil {
		return err
	}
	rows, err := h.reports.RecurringSignatures(c.UserContext(), threshold)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// BreachShare GET /reports/breach-share.
func (h *ReportsHandler) BreachShare(c *fiber.Ctx) error {
	rows, err := h.reports.BreachShareByTeam(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// RepeatIncidents GET /reports/repeat-incidents.
func (h *ReportsHandler) RepeatIncidents(c *fiber.Ctx) error {
	rows, err := h.reports.RepeatIncidents(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// RecurringIssues GET /reports/recurring-issues?limit=N.
func (h *ReportsHandler) RecurringIssues(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	rows, err := h.reports.RecurringIssues(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Escalations GET /reports/escalations.
func (h *ReportsHandler) Escalations(c *fiber.Ctx) error {
	rows, err := h.reports.Escalations(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// WeeklyVolume GET /reports/weekly-volume.
func (h *ReportsHandler) WeeklyVolume(c *fiber.Ctx) error {
	rows, err := h.reports.WeeklyVolume(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Forecast GET /reports/forecast?window=W&horizon=H.
func (h *ReportsHandler) Forecast(c *fiber.Ctx) error {
	window, err := queryInt(c, "window", 0)
	if err != nil {
		return err
	}
	horizon, err := queryInt(c, "horizon", 0)
	if err != nil {
		return err
	}
	rows, err := h.reports.Forecast(c.UserContext(), window, horizon)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	val := c.Query(name)
	if val == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid "+name, map[string]any{name: val})
	}
	return parsed, nil
}

func queryFloat(c *fiber.Ctx, name string, def float64) (float64, error) {
	val := c.Query(name)
	if val == "" {
		return def, nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid "+name, map[string]any{name: val})
	}
	return parsed, nil
}
