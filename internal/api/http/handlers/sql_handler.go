package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/repository"
)

// SQLReportsHandler answers a subset of the reporting queries straight from
// Postgres. The shapes mirror the in-memory engine so the two surfaces can be
// diffed against each other.
type SQLReportsHandler struct {
	repo repository.TicketRepository
}

// NewSQLReportsHandler constructs handler.
func NewSQLReportsHandler(repo repository.TicketRepository) *SQLReportsHandler {
	return &SQLReportsHandler{repo: repo}
}

// SLASummary GET /sql/sla-summary.
func (h *SQLReportsHandler) SLASummary(c *fiber.Ctx) error {
	summary, err := h.repo.SLASummary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// MonthlyVolume GET /sql/volume-trend.
func (h *SQLReportsHandler) MonthlyVolume(c *fiber.Ctx) error {
	rows, err := h.repo.MonthlyVolume(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// BreachRatesByTeam GET /sql/breach-rates.
func (h *SQLReportsHandler) BreachRatesByTeam(c *fiber.Ctx) error {
	rows, err := h.repo.BreachRatesByTeam(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Count GET /sql/count.
func (h *SQLReportsHandler) Count(c *fiber.Ctx) error {
	count, err := h.repo.Count(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"tickets": count}})
}
