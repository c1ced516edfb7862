package dto

import "github.com/shopspring/decimal"

// DeclarationView una declaración con su clasificación derivada.
type DeclarationView struct {
	Period       string           `json:"period"`
	Label        string           `json:"label"`
	Status       string           `json:"status"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	DueDate      *string          `json:"due_date,omitempty"` // YYYY-MM-DD; ausente = no computable
	DaysUntilDue *int             `json:"days_until_due,omitempty"`
	Overdue      bool             `json:"overdue"`
	DeclaredAt   *string          `json:"declared_at,omitempty"`
	PaidAt       *string          `json:"paid_at,omitempty"`
}

// ObligationsResponse el estado de obligaciones de un cliente: pendientes,
// próxima obligación y deuda total.
type ObligationsResponse struct {
	TaxpayerID    string            `json:"taxpayer_id"`
	CurrentPeriod string            `json:"current_period"`
	NextPeriod    string            `json:"next_period"`
	NextLabel     string            `json:"next_label"`
	Pending       []DeclarationView `json:"pending"`
	TotalDebt     decimal.Decimal   `json:"total_debt"`
}
