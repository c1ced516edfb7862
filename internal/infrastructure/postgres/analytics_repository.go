package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dvergara/Tributario-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el panel operativo.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDashboardCounts agrega en una sola consulta los números del panel:
// clientes activos, declaraciones por estado, cartera congelada (montos ya
// fijados y aún no pagados) y cobranza de facturas del mes en curso.
func (r *AnalyticsRepo) GetDashboardCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM taxpayers WHERE is_active)                             AS active_taxpayers,
	    (SELECT COUNT(*) FROM declarations WHERE status = 'PENDIENTE')               AS pending_declarations,
	    (SELECT COUNT(*) FROM declarations WHERE status = 'DECLARADA')               AS filed_declarations,
	    (SELECT COUNT(*) FROM declarations
	        WHERE status = 'PAGADA'
	          AND paid_at >= date_trunc('month', now()))                             AS paid_this_month,
	    (SELECT COALESCE(SUM(amount), 0) FROM declarations
	        WHERE status IN ('PENDIENTE', 'DECLARADA') AND amount IS NOT NULL)       AS frozen_receivable,
	    (SELECT COUNT(*) FROM service_invoices WHERE status = 'EMITIDA')             AS invoices_outstanding,
	    (SELECT COALESCE(SUM(amount), 0) FROM service_invoices
	        WHERE status <> 'ANULADA'
	          AND date >= date_trunc('month', now()))                                AS invoiced_this_month,
	    (SELECT COALESCE(SUM(amount), 0) FROM service_invoices
	        WHERE status = 'PAGADA'
	          AND paid_at >= date_trunc('month', now()))                             AS collected_this_month`

	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query).Scan(
		&c.ActiveTaxpayers, &c.PendingDeclarations, &c.FiledDeclarations, &c.PaidThisMonth,
		&c.FrozenReceivable, &c.InvoicesOutstanding, &c.InvoicedThisMonth, &c.CollectedThisMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}
