package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen operativo de la firma.
type DashboardSummaryDTO struct {
	ActiveClients       int             `json:"active_clients"`
	PendingDeclarations int             `json:"pending_declarations"`
	FiledDeclarations   int             `json:"filed_declarations"`
	PaidThisMonth       int             `json:"paid_this_month"`
	FrozenReceivable    decimal.Decimal `json:"frozen_receivable"`
	InvoicesOutstanding int             `json:"invoices_outstanding"`
	InvoicedThisMonth   decimal.Decimal `json:"invoiced_this_month"`
	CollectedThisMonth  decimal.Decimal `json:"collected_this_month"`
}

// FeeScheduleResponse tarifario vigente expuesto al portal.
type FeeScheduleResponse struct {
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	RentaAnual decimal.Decimal            `json:"renta_anual"`
	Services   map[string]decimal.Decimal `json:"services"`
}
