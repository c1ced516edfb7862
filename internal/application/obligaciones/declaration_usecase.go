package obligaciones

import (
	"context"
	"time"

	"github.com/dvergara/Tributario-api/internal/application/dto"
	"github.com/dvergara/Tributario-api/internal/domain"
	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/repository"
	"github.com/dvergara/Tributario-api/internal/domain/tax"
	"github.com/dvergara/Tributario-api/pkg/metrics"
)

// DeclarationUseCase ciclo de vida de declaraciones: consulta de obligaciones
// y transiciones declarar / pagar / revertir. Las transiciones son ciclos
// leer-modificar-escribir ejecutados dentro de una transacción.
type DeclarationUseCase struct {
	txRunner    TxRunner
	taxpayers   repository.TaxpayerRepository
	fees        repository.FeeScheduleRepository
	feeDefaults entity.FeeSchedule
	metrics     *metrics.Metrics
}

// NewDeclarationUseCase construye el caso de uso.
func NewDeclarationUseCase(
	txRunner TxRunner,
	taxpayers repository.TaxpayerRepository,
	fees repository.FeeScheduleRepository,
	feeDefaults entity.FeeSchedule,
	m *metrics.Metrics,
) *DeclarationUseCase {
	return &DeclarationUseCase{
		txRunner:    txRunner,
		taxpayers:   taxpayers,
		fees:        fees,
		feeDefaults: feeDefaults,
		metrics:     m,
	}
}

// GetObligations devuelve el estado de obligaciones de un cliente. Si el
// periodo vigente aún no tiene declaración, la sintetiza (creación perezosa)
// y la persiste antes de responder.
func (uc *DeclarationUseCase) GetObligations(ctx context.Context, taxpayerID string) (*dto.ObligationsResponse, error) {
	now := time.Now()

	var result *dto.ObligationsResponse
	err := uc.txRunner.RunObligaciones(ctx, func(
		taxpayerRepo repository.TaxpayerRepository,
		declRepo repository.DeclarationRepository,
	) error {
		t, err := taxpayerRepo.GetByID(taxpayerID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}

		updated, created := tax.EnsureCurrentPeriod(*t, now)
		if created {
			period := tax.CurrentPeriod(t, now).String()
			if err := declRepo.Upsert(updated.FindDeclaration(period)); err != nil {
				return err
			}
		}

		schedule, err := uc.fees.Load(uc.feeDefaults)
		if err != nil {
			return err
		}

		current := tax.CurrentPeriod(&updated, now)
		next := current.Next()

		resp := &dto.ObligationsResponse{
			TaxpayerID:    updated.ID,
			CurrentPeriod: current.String(),
			NextPeriod:    next.String(),
			NextLabel:     next.Label(),
			TotalDebt:     tax.TotalDebt(&updated, schedule),
		}
		for _, d := range tax.PendingDeclarations(&updated) {
			resp.Pending = append(resp.Pending, toDeclarationView(&updated, d, now))
		}
		result = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MarkFiled marca una declaración como declarada ante el SRI. Transición
// inválida (ya declarada o pagada) es un no-op tolerado: se devuelve el
// estado vigente sin error, porque el doble clic es lo esperado en acciones
// masivas del portal.
func (uc *DeclarationUseCase) MarkFiled(ctx context.Context, taxpayerID, period string) (*dto.DeclarationView, error) {
	return uc.transition(ctx, taxpayerID, period, func(t entity.Taxpayer, now time.Time) (entity.Taxpayer, bool) {
		updated, ok := tax.MarkFiled(t, period, now)
		if ok {
			uc.metrics.DeclaracionesDeclaradas.Inc()
		}
		return updated, ok
	})
}

// MarkPaid marca una declaración como pagada, congelando el honorario vigente
// si aún no estaba fijado.
func (uc *DeclarationUseCase) MarkPaid(ctx context.Context, taxpayerID, period string) (*dto.DeclarationView, error) {
	schedule, err := uc.fees.Load(uc.feeDefaults)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, taxpayerID, period, func(t entity.Taxpayer, now time.Time) (entity.Taxpayer, bool) {
		updated, ok := tax.MarkPaid(t, period, schedule, now)
		if ok {
			uc.metrics.DeclaracionesPagadas.Inc()
		}
		return updated, ok
	})
}

// RevertPayment revierte un pago: la declaración regresa a DECLARADA.
func (uc *DeclarationUseCase) RevertPayment(ctx context.Context, taxpayerID, period string) (*dto.DeclarationView, error) {
	return uc.transition(ctx, taxpayerID, period, func(t entity.Taxpayer, now time.Time) (entity.Taxpayer, bool) {
		updated, ok := tax.RevertPayment(t, period, now)
		if ok {
			uc.metrics.PagosRevertidos.Inc()
		}
		return updated, ok
	})
}

// transition ejecuta una transición del ciclo de vida dentro de una
// transacción y persiste la declaración afectada solo si aplicó.
func (uc *DeclarationUseCase) transition(
	ctx context.Context,
	taxpayerID, period string,
	apply func(entity.Taxpayer, time.Time) (entity.Taxpayer, bool),
) (*dto.DeclarationView, error) {
	if _, err := tax.ParsePeriod(period); err != nil {
		return nil, domain.ErrInvalidPeriod
	}
	now := time.Now()

	var view *dto.DeclarationView
	err := uc.txRunner.RunObligaciones(ctx, func(
		taxpayerRepo repository.TaxpayerRepository,
		declRepo repository.DeclarationRepository,
	) error {
		t, err := taxpayerRepo.GetByID(taxpayerID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if t.FindDeclaration(period) == nil {
			return domain.ErrNotFound
		}

		updated, applied := apply(*t, now)
		if applied {
			if err := declRepo.Upsert(updated.FindDeclaration(period)); err != nil {
				return err
			}
		}
		v := toDeclarationView(&updated, *updated.FindDeclaration(period), now)
		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// toDeclarationView arma la vista de una declaración con fecha límite,
// días restantes y bandera de vencimiento derivados.
func toDeclarationView(t *entity.Taxpayer, d entity.Declaration, now time.Time) dto.DeclarationView {
	view := dto.DeclarationView{
		Period:  d.Period,
		Status:  d.Status,
		Amount:  d.Amount,
		Overdue: tax.DeclarationOverdue(t, d, now),
	}
	if p, err := tax.ParsePeriod(d.Period); err == nil {
		view.Label = p.Label()
		if due := tax.DueDate(t, p); due != nil {
			s := due.Format("2006-01-02")
			view.DueDate = &s
			view.DaysUntilDue = tax.DaysUntilDue(due, now)
		}
	}
	if d.DeclaredAt != nil {
		s := d.DeclaredAt.Format("2006-01-02")
		view.DeclaredAt = &s
	}
	if d.PaidAt != nil {
		s := d.PaidAt.Format("2006-01-02")
		view.PaidAt = &s
	}
	return view
}
