// Package analytics contiene los casos de uso de solo lectura del panel
// operativo de la firma.
package analytics

import (
	"context"
	"fmt"

	"github.com/dvergara/Tributario-api/internal/application/dto"
	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen operativo: clientes activos, estados de
// declaraciones, cartera congelada y cobranza del mes.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	feeRepo       repository.FeeScheduleRepository
	feeDefaults   entity.FeeSchedule
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	feeRepo repository.FeeScheduleRepository,
	feeDefaults entity.FeeSchedule,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		feeRepo:       feeRepo,
		feeDefaults:   feeDefaults,
	}
}

// GetSummary construye el DashboardSummaryDTO de la firma.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	counts, err := uc.analyticsRepo.GetDashboardCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: agregados: %w", err)
	}

	return &dto.DashboardSummaryDTO{
		ActiveClients:       counts.ActiveTaxpayers,
		PendingDeclarations: counts.PendingDeclarations,
		FiledDeclarations:   counts.FiledDeclarations,
		PaidThisMonth:       counts.PaidThisMonth,
		FrozenReceivable:    counts.FrozenReceivable,
		InvoicesOutstanding: counts.InvoicesOutstanding,
		InvoicedThisMonth:   counts.InvoicedThisMonth,
		CollectedThisMonth:  counts.CollectedThisMonth,
	}, nil
}

// GetFeeSchedule expone el tarifario vigente al portal.
func (uc *DashboardUseCase) GetFeeSchedule(ctx context.Context) (*dto.FeeScheduleResponse, error) {
	schedule, err := uc.feeRepo.Load(uc.feeDefaults)
	if err != nil {
		return nil, fmt.Errorf("dashboard: tarifario: %w", err)
	}
	return &dto.FeeScheduleResponse{
		ByCategory: schedule.ByCategory,
		RentaAnual: schedule.AnnualIncomeTax,
		Services:   schedule.Services,
	}, nil
}
