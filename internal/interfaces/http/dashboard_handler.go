package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dvergara/Tributario-api/internal/application/analytics"
	"github.com/dvergara/Tributario-api/internal/application/dto"
)

// DashboardHandler expone el panel operativo y el tarifario.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// FeeSchedule GET /api/fees
func (h *DashboardHandler) FeeSchedule(c *fiber.Ctx) error {
	fees, err := h.uc.GetFeeSchedule(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fees)
}
