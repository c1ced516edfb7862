package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dvergara/Tributario-api/internal/application/dto"
	"github.com/dvergara/Tributario-api/internal/application/obligaciones"
	"github.com/dvergara/Tributario-api/internal/domain"
)

// DeclarationHandler maneja las peticiones HTTP del ciclo de vida de
// declaraciones. Las transiciones repetidas responden 200 con el estado
// vigente: reintentar no es error.
type DeclarationHandler struct {
	uc *obligaciones.DeclarationUseCase
}

// NewDeclarationHandler construye el handler.
func NewDeclarationHandler(uc *obligaciones.DeclarationUseCase) *DeclarationHandler {
	return &DeclarationHandler{uc: uc}
}

// GetObligations GET /api/taxpayers/:id/obligations
func (h *DeclarationHandler) GetObligations(c *fiber.Ctx) error {
	resp, err := h.uc.GetObligations(c.Context(), c.Params("id"))
	if err != nil {
		return declarationError(c, err)
	}
	return c.JSON(resp)
}

// MarkFiled POST /api/taxpayers/:id/declarations/:period/file
func (h *DeclarationHandler) MarkFiled(c *fiber.Ctx) error {
	view, err := h.uc.MarkFiled(c.Context(), c.Params("id"), c.Params("period"))
	if err != nil {
		return declarationError(c, err)
	}
	return c.JSON(view)
}

// MarkPaid POST /api/taxpayers/:id/declarations/:period/pay
func (h *DeclarationHandler) MarkPaid(c *fiber.Ctx) error {
	view, err := h.uc.MarkPaid(c.Context(), c.Params("id"), c.Params("period"))
	if err != nil {
		return declarationError(c, err)
	}
	return c.JSON(view)
}

// RevertPayment POST /api/taxpayers/:id/declarations/:period/revert
func (h *DeclarationHandler) RevertPayment(c *fiber.Ctx) error {
	view, err := h.uc.RevertPayment(c.Context(), c.Params("id"), c.Params("period"))
	if err != nil {
		return declarationError(c, err)
	}
	return c.JSON(view)
}

func declarationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidPeriod) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "periodo inválido"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente o declaración no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
