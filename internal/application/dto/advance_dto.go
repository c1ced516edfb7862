package dto

import "github.com/shopspring/decimal"

// AdvanceRequest solicitud de abono masivo: cuántos periodos prepagar y si
// incluye el anticipo de renta anual.
type AdvanceRequest struct {
	PeriodsToPay         int  `json:"periods_to_pay"`
	IncludeAnnualAdvance bool `json:"include_annual_advance"`
}

// ReceiptLine una línea del recibo.
type ReceiptLine struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// AnnualTaskView la tarea de renta sintetizada por el anticipo.
type AnnualTaskView struct {
	FiscalYear int             `json:"fiscal_year"`
	Concept    string          `json:"concept"`
	DueDate    string          `json:"due_date"` // YYYY-MM-DD
	Cost       decimal.Decimal `json:"cost"`
	Advance    decimal.Decimal `json:"advance"`
}

// ReceiptResponse recibo estructurado de un abono, renderizable de forma
// determinista por el generador de PDF o por el portal.
type ReceiptResponse struct {
	TransactionID string           `json:"transaction_id"`
	TaxpayerID    string           `json:"taxpayer_id"`
	TaxpayerName  string           `json:"taxpayer_name"`
	TaxpayerRUC   string           `json:"taxpayer_ruc"`
	Date          string           `json:"date"` // YYYY-MM-DD
	Lines         []ReceiptLine    `json:"lines"`
	Total         decimal.Decimal  `json:"total"`
	AnnualTask    *AnnualTaskView  `json:"annual_task,omitempty"`
}
