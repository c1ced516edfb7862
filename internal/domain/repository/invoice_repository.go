package repository

import "github.com/dvergara/Tributario-api/internal/domain/entity"

// ServiceInvoiceRepository persistencia de facturas de servicios de la firma.
type ServiceInvoiceRepository interface {
	Create(inv *entity.ServiceInvoice) error
	GetByID(id string) (*entity.ServiceInvoice, error)
	ListByTaxpayer(taxpayerID string, limit, offset int) ([]*entity.ServiceInvoice, error)
	Update(inv *entity.ServiceInvoice) error
}
