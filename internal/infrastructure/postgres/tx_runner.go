package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dvergara/Tributario-api/internal/application/obligaciones"
	"github.com/dvergara/Tributario-api/internal/domain/repository"
)

var _ obligaciones.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunObligaciones inicia una transacción, ejecuta fn con los repos de
// contribuyentes y declaraciones atados a la tx y hace Commit o Rollback.
// Las transiciones del ciclo de vida son ciclos leer-modificar-escribir, así
// que deben correr completas dentro de una sola transacción.
func (r *TxRunner) RunObligaciones(ctx context.Context, fn func(
	taxpayerRepo repository.TaxpayerRepository,
	declRepo repository.DeclarationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	taxpayerRepo := NewTaxpayerRepository(tx)
	declRepo := NewDeclarationRepository(tx)

	if err := fn(taxpayerRepo, declRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
