package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dvergara/Tributario-api/internal/application/cobranza"
	"github.com/dvergara/Tributario-api/internal/application/dto"
	"github.com/dvergara/Tributario-api/internal/application/obligaciones"
	"github.com/dvergara/Tributario-api/internal/domain"
)

// AdvanceHandler maneja las peticiones HTTP de abonos masivos y sus recibos.
type AdvanceHandler struct {
	uc    *obligaciones.AdvanceUseCase
	pdfUC *cobranza.ReceiptPDFUseCase
}

// NewAdvanceHandler construye el handler.
func NewAdvanceHandler(uc *obligaciones.AdvanceUseCase, pdfUC *cobranza.ReceiptPDFUseCase) *AdvanceHandler {
	return &AdvanceHandler{uc: uc, pdfUC: pdfUC}
}

// Allocate POST /api/taxpayers/:id/advances
func (h *AdvanceHandler) Allocate(c *fiber.Ctx) error {
	var in dto.AdvanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	receipt, err := h.uc.Allocate(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNothingToAllocate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOTHING_TO_ALLOCATE", Message: "el abono no cubre periodos ni anticipo de renta"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// GetReceipt GET /api/taxpayers/:id/advances/:txid
func (h *AdvanceHandler) GetReceipt(c *fiber.Ctx) error {
	receipt, err := h.uc.GetReceipt(c.Context(), c.Params("id"), c.Params("txid"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(receipt)
}

// DownloadReceiptPDF GET /api/taxpayers/:id/advances/:txid/pdf
func (h *AdvanceHandler) DownloadReceiptPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadReceiptPDF(c.Context(), c.Params("id"), c.Params("txid"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
