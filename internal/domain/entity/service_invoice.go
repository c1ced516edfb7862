package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de servicios de la firma.
const (
	InvoiceIssued    = "EMITIDA"
	InvoicePaid      = "PAGADA"
	InvoiceCancelled = "ANULADA"
)

// ServiceInvoice representa una factura emitida por la firma contable a un
// cliente por servicios profesionales (cobranza interna, no factura SRI).
type ServiceInvoice struct {
	ID         string
	TaxpayerID string
	Number     string
	Date       time.Time
	Concept    string
	Amount     decimal.Decimal
	Status     string // ver constantes Invoice*
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
