package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/repository"
)

var _ repository.FeeScheduleRepository = (*FeeScheduleRepo)(nil)

// FeeScheduleRepo carga el tarifario desde la tabla fee_schedule. Cada fila
// (kind, key, amount) sobreescribe el default correspondiente: kind 'category'
// usa key como categoría de obligación, 'service' como servicio puntual y
// 'annual' es el honorario general de renta (key ignorada).
type FeeScheduleRepo struct {
	q Querier
}

// NewFeeScheduleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFeeScheduleRepository(q Querier) *FeeScheduleRepo {
	return &FeeScheduleRepo{q: q}
}

// Load devuelve el tarifario vigente: defaults de configuración más los
// overrides de la tabla. Nunca muta defaults.
func (r *FeeScheduleRepo) Load(defaults entity.FeeSchedule) (entity.FeeSchedule, error) {
	out := entity.FeeSchedule{
		ByCategory:      make(map[string]decimal.Decimal, len(defaults.ByCategory)),
		AnnualIncomeTax: defaults.AnnualIncomeTax,
		Services:        make(map[string]decimal.Decimal, len(defaults.Services)),
	}
	for k, v := range defaults.ByCategory {
		out.ByCategory[k] = v
	}
	for k, v := range defaults.Services {
		out.Services[k] = v
	}

	rows, err := r.q.Query(context.Background(), `SELECT kind, key, amount FROM fee_schedule`)
	if err != nil {
		return entity.FeeSchedule{}, fmt.Errorf("load fee schedule: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, key string
		var amount decimal.Decimal
		if err := rows.Scan(&kind, &key, &amount); err != nil {
			return entity.FeeSchedule{}, fmt.Errorf("scan fee: %w", err)
		}
		switch kind {
		case "category":
			out.ByCategory[key] = amount
		case "service":
			out.Services[key] = amount
		case "annual":
			out.AnnualIncomeTax = amount
		}
	}
	return out, rows.Err()
}
