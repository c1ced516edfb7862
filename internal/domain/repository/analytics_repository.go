package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardCounts agregados de la operación de la firma para el panel.
type DashboardCounts struct {
	ActiveTaxpayers      int
	PendingDeclarations  int
	FiledDeclarations    int
	PaidThisMonth        int
	FrozenReceivable     decimal.Decimal // deuda con monto ya congelado
	InvoicesOutstanding  int
	InvoicedThisMonth    decimal.Decimal
	CollectedThisMonth   decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	GetDashboardCounts(ctx context.Context) (*DashboardCounts, error)
}
