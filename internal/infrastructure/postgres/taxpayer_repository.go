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

var _ repository.TaxpayerRepository = (*TaxpayerRepo)(nil)

// TaxpayerRepo implementación de TaxpayerRepository (usable con pool o tx).
// Las declaraciones son composición del contribuyente: GetByID, GetByRUC y
// List las cargan siempre.
type TaxpayerRepo struct {
	q Querier
}

// NewTaxpayerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaxpayerRepository(q Querier) *TaxpayerRepo {
	return &TaxpayerRepo{q: q}
}

const taxpayerColumns = `id, name, ruc, email, phone, regime, filing_category, is_active, custom_fee, created_at, updated_at`

// Create persiste un nuevo contribuyente.
func (r *TaxpayerRepo) Create(t *entity.Taxpayer) error {
	query := `
		INSERT INTO taxpayers (` + taxpayerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.RUC, t.Email, t.Phone, t.Regime, t.FilingCategory,
		t.IsActive, t.CustomFee, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert taxpayer: %w", err)
	}
	return nil
}

// GetByID obtiene un contribuyente por ID, con sus declaraciones.
func (r *TaxpayerRepo) GetByID(id string) (*entity.Taxpayer, error) {
	return r.getBy("id", id)
}

// GetByRUC obtiene un contribuyente por RUC/cédula, con sus declaraciones.
func (r *TaxpayerRepo) GetByRUC(ruc string) (*entity.Taxpayer, error) {
	return r.getBy("ruc", ruc)
}

func (r *TaxpayerRepo) getBy(column, value string) (*entity.Taxpayer, error) {
	query := `SELECT ` + taxpayerColumns + ` FROM taxpayers WHERE ` + column + ` = $1`
	var t entity.Taxpayer
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&t.ID, &t.Name, &t.RUC, &t.Email, &t.Phone, &t.Regime, &t.FilingCategory,
		&t.IsActive, &t.CustomFee, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get taxpayer: %w", err)
	}
	if err := r.loadDeclarations(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List lista contribuyentes con paginación, opcionalmente solo los activos.
func (r *TaxpayerRepo) List(onlyActive bool, limit, offset int) ([]*entity.Taxpayer, error) {
	query := `SELECT ` + taxpayerColumns + ` FROM taxpayers`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list taxpayers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Taxpayer
	for rows.Next() {
		var t entity.Taxpayer
		if err := rows.Scan(
			&t.ID, &t.Name, &t.RUC, &t.Email, &t.Phone, &t.Regime, &t.FilingCategory,
			&t.IsActive, &t.CustomFee, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan taxpayer: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		if err := r.loadDeclarations(t); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza un contribuyente (solo cabecera; las declaraciones se
// persisten vía DeclarationRepository).
func (r *TaxpayerRepo) Update(t *entity.Taxpayer) error {
	query := `
		UPDATE taxpayers
		SET name = $2, email = $3, phone = $4, regime = $5, filing_category = $6,
		    is_active = $7, custom_fee = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Email, t.Phone, t.Regime, t.FilingCategory,
		t.IsActive, t.CustomFee, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update taxpayer: %w", err)
	}
	return nil
}

func (r *TaxpayerRepo) loadDeclarations(t *entity.Taxpayer) error {
	decls, err := NewDeclarationRepository(r.q).ListByTaxpayer(t.ID)
	if err != nil {
		return err
	}
	t.Declarations = decls
	return nil
}
