package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest emisión de una factura de servicios al cliente.
type CreateInvoiceRequest struct {
	Concept string          `json:"concept"`
	Amount  decimal.Decimal `json:"amount"`
	Number  string          `json:"number,omitempty"` // vacío = se genera
}

// InvoiceResponse vista de una factura de servicios.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	TaxpayerID string          `json:"taxpayer_id"`
	Number     string          `json:"number"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Concept    string          `json:"concept"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	PaidAt     *string         `json:"paid_at,omitempty"`
}
