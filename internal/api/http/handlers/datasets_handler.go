package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/api/dto"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/generator"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/service"
	apperrors "github.com/DevanshM1211/IT-Service-Desk-Analytics/pkg/util"
)

// DatasetsHandler manages dataset lifecycle endpoints.
type DatasetsHandler struct {
	ingest  *service.IngestService
	reports *service.ReportService
}

// NewDatasetsHandler constructs handler.
func NewDatasetsHandler(ingest *service.IngestService, reports *service.ReportService) *DatasetsHandler {
	return &DatasetsHandler{ingest: ingest, reports: reports}
}

// Import POST /datasets/import.
func (h *DatasetsHandler) Import(c *fiber.Ctx) error {
	var req dto.ImportDatasetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Path) == "" {
		return apperrors.NewValidationError("path required", nil)
	}
	count, version, err := h.ingest.ImportCSV(c.UserContext(), req.Path)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.DatasetResponse{
		Version:     version,
		TicketCount: count,
		Source:      "csv",
	}})
}

// Generate POST /datasets/generate.
func (h *DatasetsHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateDatasetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	cfg := generator.Defaults()
	if req.Count > 0 {
		cfg.Count = req.Count
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return apperrors.NewValidationError("invalid start_date", map[string]any{"start_date": req.StartDate})
		}
		cfg.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return apperrors.NewValidationError("invalid end_date", map[string]any{"end_date": req.EndDate})
		}
		cfg.EndDate = end
	}

	count, version, err := h.ingest.GenerateSynthetic(c.UserContext(), cfg)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.DatasetResponse{
		Version:     version,
		TicketCount: count,
		Source:      "generator",
	}})
}

// Current GET /datasets/current.
func (h *DatasetsHandler) Current(c *fiber.Ctx) error {
	version := h.reports.Version()
	if version == "" {
		return apperrors.NewNotFound("dataset", nil)
	}
	return c.JSON(fiber.Map{"data": dto.DatasetResponse{
		Version:     version,
		TicketCount: h.reports.TicketCount(),
	}})
}
