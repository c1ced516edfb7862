package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dvergara/Tributario-api/internal/domain"
	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/repository"
)

var _ repository.ServiceInvoiceRepository = (*ServiceInvoiceRepo)(nil)

// ServiceInvoiceRepo implementación de ServiceInvoiceRepository (usable con pool o tx).
type ServiceInvoiceRepo struct {
	q Querier
}

// NewServiceInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceInvoiceRepository(q Querier) *ServiceInvoiceRepo {
	return &ServiceInvoiceRepo{q: q}
}

const invoiceColumns = `id, taxpayer_id, number, date, concept, amount, status, paid_at, created_at, updated_at`

// Create persiste una factura de servicios.
func (r *ServiceInvoiceRepo) Create(inv *entity.ServiceInvoice) error {
	query := `
		INSERT INTO service_invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.TaxpayerID, inv.Number, inv.Date, inv.Concept, inv.Amount,
		inv.Status, inv.PaidAt, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *ServiceInvoiceRepo) GetByID(id string) (*entity.ServiceInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM service_invoices WHERE id = $1`
	var inv entity.ServiceInvoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.TaxpayerID, &inv.Number, &inv.Date, &inv.Concept, &inv.Amount,
		&inv.Status, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service invoice: %w", err)
	}
	return &inv, nil
}

// ListByTaxpayer lista las facturas de un cliente con paginación, más recientes primero.
func (r *ServiceInvoiceRepo) ListByTaxpayer(taxpayerID string, limit, offset int) ([]*entity.ServiceInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM service_invoices WHERE taxpayer_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, taxpayerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list service invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceInvoice
	for rows.Next() {
		var inv entity.ServiceInvoice
		if err := rows.Scan(
			&inv.ID, &inv.TaxpayerID, &inv.Number, &inv.Date, &inv.Concept, &inv.Amount,
			&inv.Status, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update actualiza estado y fechas de una factura.
func (r *ServiceInvoiceRepo) Update(inv *entity.ServiceInvoice) error {
	query := `
		UPDATE service_invoices
		SET concept = $2, amount = $3, status = $4, paid_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Concept, inv.Amount, inv.Status, inv.PaidAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service invoice: %w", err)
	}
	return nil
}
