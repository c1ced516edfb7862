package cobranza

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dvergara/Tributario-api/internal/application/dto"
	"github.com/dvergara/Tributario-api/internal/domain"
	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/repository"
)

// InvoiceUseCase cobranza interna de la firma: facturas de servicios
// profesionales emitidas a los clientes (no son comprobantes SRI).
type InvoiceUseCase struct {
	invoiceRepo  repository.ServiceInvoiceRepository
	taxpayerRepo repository.TaxpayerRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.ServiceInvoiceRepository,
	taxpayerRepo repository.TaxpayerRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, taxpayerRepo: taxpayerRepo}
}

// Create emite una factura de servicios al cliente. Si no viene número se
// genera uno con el prefijo FS (factura de servicios).
func (uc *InvoiceUseCase) Create(ctx context.Context, taxpayerID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Concept == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	t, err := uc.taxpayerRepo.GetByID(taxpayerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	number := in.Number
	if number == "" {
		number = fmt.Sprintf("FS-%d", now.Unix())
	}

	inv := &entity.ServiceInvoice{
		ID:         uuid.NewString(),
		TaxpayerID: t.ID,
		Number:     number,
		Date:       now,
		Concept:    in.Concept,
		Amount:     in.Amount,
		Status:     entity.InvoiceIssued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// ListByTaxpayer lista las facturas de servicios de un cliente.
func (uc *InvoiceUseCase) ListByTaxpayer(ctx context.Context, taxpayerID string, page dto.PageRequest) ([]dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.invoiceRepo.ListByTaxpayer(taxpayerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInvoiceResponse(inv))
	}
	return out, nil
}

// MarkPaid registra el cobro de una factura emitida. Cobrar una factura
// anulada es conflicto; cobrarla dos veces es un no-op.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	switch inv.Status {
	case entity.InvoiceCancelled:
		return nil, domain.ErrConflict
	case entity.InvoicePaid:
		return toInvoiceResponse(inv), nil
	}

	now := time.Now()
	inv.Status = entity.InvoicePaid
	inv.PaidAt = &now
	inv.UpdatedAt = now
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Cancel anula una factura emitida. Una factura pagada no se anula: primero
// se revierte el cobro por fuera del sistema.
func (uc *InvoiceUseCase) Cancel(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status == entity.InvoicePaid {
		return nil, domain.ErrConflict
	}
	if inv.Status == entity.InvoiceCancelled {
		return toInvoiceResponse(inv), nil
	}

	inv.Status = entity.InvoiceCancelled
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

func toInvoiceResponse(inv *entity.ServiceInvoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:         inv.ID,
		TaxpayerID: inv.TaxpayerID,
		Number:     inv.Number,
		Date:       inv.Date.Format("2006-01-02"),
		Concept:    inv.Concept,
		Amount:     inv.Amount,
		Status:     inv.Status,
	}
	if inv.PaidAt != nil {
		s := inv.PaidAt.Format("2006-01-02")
		resp.PaidAt = &s
	}
	return resp
}
