package tax

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
)

// AdvanceLine es una línea del recibo de abono: un periodo pagado y su monto.
type AdvanceLine struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// AnnualAdvanceTask es la tarea de renta anual sintetizada por un anticipo:
// la declaración de renta del año fiscal anterior, que nace totalmente
// abonada (Advance == Cost). Es un valor transitorio; el caller decide cómo
// materializarla.
type AnnualAdvanceTask struct {
	FiscalYear int             `json:"fiscal_year"`
	Concept    string          `json:"concept"` // "Renta <año>"
	DueDate    time.Time       `json:"due_date"`
	Cost       decimal.Decimal `json:"cost"`
	Advance    decimal.Decimal `json:"advance"`
}

// AdvanceResult es el recibo estructurado de un abono masivo. No se persiste
// como entidad propia: el contribuyente actualizado y sus declaraciones son
// responsabilidad del caller.
type AdvanceResult struct {
	Taxpayer      entity.Taxpayer
	Lines         []AdvanceLine
	TransactionID string
	Total         decimal.Decimal
	AnnualTask    *AnnualAdvanceTask
}

// AllocateAdvance aplica un abono masivo: selecciona los N periodos impagos
// más antiguos (liquidación FIFO — no se puede saltar un periodo viejo para
// prepagar uno nuevo), congela sus montos y los marca pagados bajo un único
// TransactionID compartido. Pedir más periodos de los pendientes simplemente
// paga todos los disponibles (se recorta, no es error). Con cero periodos y
// sin anticipo de renta devuelve un recibo vacío; validar eso es del caller.
//
// Si includeAnnual es true y el régimen no es Negocio Popular, sintetiza
// además la tarea de renta del año fiscal anterior con costo igual al
// honorario general de renta y abono igual al costo, y añade la línea
// "Renta <año>" al recibo.
func AllocateAdvance(t entity.Taxpayer, periodsToPay int, fees entity.FeeSchedule, includeAnnual bool, now time.Time) AdvanceResult {
	txID := fmt.Sprintf("ADV-%06d", now.UnixMilli()%1_000_000)

	result := AdvanceResult{
		Taxpayer:      t.Clone(),
		TransactionID: txID,
		Total:         decimal.Zero,
	}

	pending := PendingDeclarations(&result.Taxpayer)
	if periodsToPay > len(pending) {
		periodsToPay = len(pending)
	}
	if periodsToPay < 0 {
		periodsToPay = 0
	}

	for _, d := range pending[:periodsToPay] {
		updated, ok := MarkPaid(result.Taxpayer, d.Period, fees, now)
		if !ok {
			continue
		}
		result.Taxpayer = updated
		paid := result.Taxpayer.FindDeclaration(d.Period)
		paid.TransactionID = txID
		paid.Advance = paid.Amount
		result.Lines = append(result.Lines, AdvanceLine{Period: d.Period, Amount: *paid.Amount})
		result.Total = result.Total.Add(*paid.Amount)
	}

	if includeAnnual && t.Regime != entity.RegimeRimpeNegocioPopular {
		fiscalYear := now.Year() - 1
		annual := Period{Kind: PeriodAnnual, Year: fiscalYear}

		due := now.AddDate(1, 0, 0) // sin fecha computable: un año desde hoy
		if d := DueDate(&t, annual); d != nil {
			due = *d
		}

		cost := fees.AnnualIncomeTax
		result.AnnualTask = &AnnualAdvanceTask{
			FiscalYear: fiscalYear,
			Concept:    fmt.Sprintf("Renta %d", fiscalYear),
			DueDate:    due,
			Cost:       cost,
			Advance:    cost, // nace totalmente abonada
		}
		result.Lines = append(result.Lines, AdvanceLine{Period: result.AnnualTask.Concept, Amount: cost})
		result.Total = result.Total.Add(cost)
	}

	return result
}
