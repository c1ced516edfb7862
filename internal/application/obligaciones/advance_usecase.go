package obligaciones

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvergara/Tributario-api/internal/application/dto"
	"github.com/dvergara/Tributario-api/internal/domain"
	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/repository"
	"github.com/dvergara/Tributario-api/internal/domain/tax"
	"github.com/dvergara/Tributario-api/pkg/metrics"
)

// AdvanceUseCase abonos masivos: un cliente entrega una suma y la firma la
// aplica a los periodos impagos más antiguos bajo un número de transacción
// compartido.
type AdvanceUseCase struct {
	txRunner    TxRunner
	fees        repository.FeeScheduleRepository
	feeDefaults entity.FeeSchedule
	metrics     *metrics.Metrics
}

// NewAdvanceUseCase construye el caso de uso.
func NewAdvanceUseCase(
	txRunner TxRunner,
	fees repository.FeeScheduleRepository,
	feeDefaults entity.FeeSchedule,
	m *metrics.Metrics,
) *AdvanceUseCase {
	return &AdvanceUseCase{
		txRunner:    txRunner,
		fees:        fees,
		feeDefaults: feeDefaults,
		metrics:     m,
	}
}

// Allocate aplica un abono y devuelve el recibo. Pedir más periodos de los
// pendientes no es error: se pagan todos los disponibles. Pedir cero periodos
// sin anticipo de renta sí lo es, porque no habría nada que cobrar.
func (uc *AdvanceUseCase) Allocate(ctx context.Context, taxpayerID string, req dto.AdvanceRequest) (*dto.ReceiptResponse, error) {
	if req.PeriodsToPay <= 0 && !req.IncludeAnnualAdvance {
		return nil, domain.ErrNothingToAllocate
	}

	schedule, err := uc.fees.Load(uc.feeDefaults)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	var receipt *dto.ReceiptResponse
	err = uc.txRunner.RunObligaciones(ctx, func(
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

		result := tax.AllocateAdvance(*t, req.PeriodsToPay, schedule, req.IncludeAnnualAdvance, now)

		var touched []entity.Declaration
		for _, d := range result.Taxpayer.Declarations {
			if d.TransactionID == result.TransactionID {
				touched = append(touched, d)
			}
		}
		if err := declRepo.UpsertAll(touched); err != nil {
			return err
		}

		uc.metrics.AbonosAplicados.Inc()
		uc.metrics.PeriodosAbonados.Add(float64(len(touched)))

		receipt = toReceiptResponse(&result.Taxpayer, result, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetReceipt reconstruye el recibo de una transacción pasada a partir de las
// declaraciones que comparten su TransactionID. La tarea de renta sintetizada
// no se reconstruye: solo vive en el recibo emitido al momento del abono.
func (uc *AdvanceUseCase) GetReceipt(ctx context.Context, taxpayerID, txID string) (*dto.ReceiptResponse, error) {
	var receipt *dto.ReceiptResponse
	err := uc.txRunner.RunObligaciones(ctx, func(
		taxpayerRepo repository.TaxpayerRepository,
		_ repository.DeclarationRepository,
	) error {
		t, err := taxpayerRepo.GetByID(taxpayerID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}

		resp := &dto.ReceiptResponse{
			TransactionID: txID,
			TaxpayerID:    t.ID,
			TaxpayerName:  t.Name,
			TaxpayerRUC:   t.RUC,
			Total:         decimal.Zero,
		}
		for _, d := range t.Declarations {
			if d.TransactionID != txID || d.Amount == nil {
				continue
			}
			resp.Lines = append(resp.Lines, dto.ReceiptLine{Period: d.Period, Amount: *d.Amount})
			resp.Total = resp.Total.Add(*d.Amount)
			if d.PaidAt != nil && resp.Date == "" {
				resp.Date = d.PaidAt.Format("2006-01-02")
			}
		}
		if len(resp.Lines) == 0 {
			return domain.ErrNotFound
		}
		receipt = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func toReceiptResponse(t *entity.Taxpayer, result tax.AdvanceResult, now time.Time) *dto.ReceiptResponse {
	resp := &dto.ReceiptResponse{
		TransactionID: result.TransactionID,
		TaxpayerID:    t.ID,
		TaxpayerName:  t.Name,
		TaxpayerRUC:   t.RUC,
		Date:          now.Format("2006-01-02"),
		Total:         result.Total,
	}
	for _, line := range result.Lines {
		resp.Lines = append(resp.Lines, dto.ReceiptLine{Period: line.Period, Amount: line.Amount})
	}
	if task := result.AnnualTask; task != nil {
		resp.AnnualTask = &dto.AnnualTaskView{
			FiscalYear: task.FiscalYear,
			Concept:    task.Concept,
			DueDate:    task.DueDate.Format("2006-01-02"),
			Cost:       task.Cost,
			Advance:    task.Advance,
		}
	}
	return resp
}
