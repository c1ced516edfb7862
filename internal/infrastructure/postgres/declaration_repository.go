package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/repository"
)

var _ repository.DeclarationRepository = (*DeclarationRepo)(nil)

// DeclarationRepo implementación de DeclarationRepository (usable con pool o tx).
type DeclarationRepo struct {
	q Querier
}

// NewDeclarationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeclarationRepository(q Querier) *DeclarationRepo {
	return &DeclarationRepo{q: q}
}

// ListByTaxpayer carga las declaraciones de un contribuyente, ordenadas por
// periodo ascendente (el orden lexicográfico del periodo es el cronológico
// dentro de cada tipo).
func (r *DeclarationRepo) ListByTaxpayer(taxpayerID string) ([]entity.Declaration, error) {
	query := `
		SELECT id, taxpayer_id, period, status, amount, advance,
		       declared_at, paid_at, transaction_id, updated_at
		FROM declarations WHERE taxpayer_id = $1 ORDER BY period`
	rows, err := r.q.Query(context.Background(), query, taxpayerID)
	if err != nil {
		return nil, fmt.Errorf("list declarations: %w", err)
	}
	defer rows.Close()

	var list []entity.Declaration
	for rows.Next() {
		var d entity.Declaration
		if err := rows.Scan(
			&d.ID, &d.TaxpayerID, &d.Period, &d.Status, &d.Amount, &d.Advance,
			&d.DeclaredAt, &d.PaidAt, &d.TransactionID, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan declaration: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza una declaración por (taxpayer_id, period). El
// historial es append-only: nunca se borra, solo cambia de estado.
func (r *DeclarationRepo) Upsert(d *entity.Declaration) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	query := `
		INSERT INTO declarations (id, taxpayer_id, period, status, amount, advance,
		                          declared_at, paid_at, transaction_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (taxpayer_id, period) DO UPDATE SET
			status = EXCLUDED.status,
			amount = EXCLUDED.amount,
			advance = EXCLUDED.advance,
			declared_at = EXCLUDED.declared_at,
			paid_at = EXCLUDED.paid_at,
			transaction_id = EXCLUDED.transaction_id,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.TaxpayerID, d.Period, d.Status, d.Amount, d.Advance,
		d.DeclaredAt, d.PaidAt, d.TransactionID, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert declaration: %w", err)
	}
	return nil
}

// UpsertAll aplica Upsert a cada elemento. Pensado para correr dentro de una
// transacción (abonos masivos tocan varias declaraciones a la vez).
func (r *DeclarationRepo) UpsertAll(list []entity.Declaration) error {
	for i := range list {
		if err := r.Upsert(&list[i]); err != nil {
			return err
		}
	}
	return nil
}
