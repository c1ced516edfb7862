package tax_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/tax"
)

// ── Asignación FIFO ───────────────────────────────────────────────────────────

// TestAllocateAdvance_PagaLosMasAntiguos reproduce el escenario de referencia:
// tres periodos pendientes, abono de dos → paga 2024-11 y 2024-12, deja
// 2025-01 pendiente, y el total del recibo es 2 × honorario.
func TestAllocateAdvance_PagaLosMasAntiguos(t *testing.T) {
	tp := withDeclarations("2024-11", "2024-12", "2025-01")

	result := tax.AllocateAdvance(tp, 2, testFees(), false, now)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, "2024-11", result.Lines[0].Period)
	assert.Equal(t, "2024-12", result.Lines[1].Period)
	assert.True(t, result.Total.Equal(decimal.NewFromInt(50)), "total = 2 × 25, got %s", result.Total)

	assert.Equal(t, entity.DeclarationPaid, result.Taxpayer.FindDeclaration("2024-11").Status)
	assert.Equal(t, entity.DeclarationPaid, result.Taxpayer.FindDeclaration("2024-12").Status)
	assert.Equal(t, entity.DeclarationPending, result.Taxpayer.FindDeclaration("2025-01").Status,
		"el periodo más nuevo queda pendiente")

	// El contribuyente recibido no muta (actualización funcional)
	assert.Equal(t, entity.DeclarationPending, tp.Declarations[0].Status)
}

// TestAllocateAdvance_RecortaSinError: pedir más periodos de los pendientes
// paga todos los disponibles; no es un error.
func TestAllocateAdvance_RecortaSinError(t *testing.T) {
	tp := withDeclarations("2024-11", "2024-12")

	result := tax.AllocateAdvance(tp, 5, testFees(), false, now)

	assert.Len(t, result.Lines, 2, "paga exactamente M periodos cuando M < N")
	assert.Empty(t, tax.PendingDeclarations(&result.Taxpayer))
}

func TestAllocateAdvance_TransactionIDCompartido(t *testing.T) {
	tp := withDeclarations("2024-11", "2024-12", "2025-01")

	result := tax.AllocateAdvance(tp, 3, testFees(), false, now)

	require.True(t, strings.HasPrefix(result.TransactionID, "ADV-"))
	assert.Len(t, result.TransactionID, 10, `formato "ADV-" + 6 dígitos`)
	for _, line := range result.Lines {
		d := result.Taxpayer.FindDeclaration(line.Period)
		assert.Equal(t, result.TransactionID, d.TransactionID,
			"todas las declaraciones del abono comparten un único recibo")
		require.NotNil(t, d.PaidAt)
		assert.Equal(t, now, *d.PaidAt)
	}
}

func TestAllocateAdvance_CongelaMontosExistentes(t *testing.T) {
	tp := withDeclarations("2024-11", "2024-12")
	frozen := decimal.NewFromInt(30)
	tp.Declarations[0].Amount = &frozen

	result := tax.AllocateAdvance(tp, 2, testFees(), false, now)

	assert.True(t, result.Lines[0].Amount.Equal(frozen), "respeta el monto ya congelado")
	assert.True(t, result.Lines[1].Amount.Equal(decimal.NewFromInt(25)))
	assert.True(t, result.Total.Equal(decimal.NewFromInt(55)))
}

// ── Anticipo de renta anual ───────────────────────────────────────────────────

func TestAllocateAdvance_AnticipoDeRenta(t *testing.T) {
	tp := withDeclarations("2024-12") // régimen general, dígito 1
	result := tax.AllocateAdvance(tp, 1, testFees(), true, now)

	require.NotNil(t, result.AnnualTask)
	task := result.AnnualTask
	assert.Equal(t, 2024, task.FiscalYear, "renta del año fiscal anterior")
	assert.Equal(t, "Renta 2024", task.Concept)
	assert.True(t, task.Cost.Equal(decimal.NewFromInt(60)), "costo = honorario general de renta")
	assert.True(t, task.Advance.Equal(task.Cost), "la tarea nace totalmente abonada")
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), task.DueDate,
		"renta 2024 régimen general, dígito 1 → 10 de marzo 2025")

	// Línea extra en el recibo y total acumulado
	require.Len(t, result.Lines, 2)
	assert.Equal(t, "Renta 2024", result.Lines[1].Period)
	assert.True(t, result.Total.Equal(decimal.NewFromInt(85)), "25 + 60, got %s", result.Total)
}

func TestAllocateAdvance_AnticipoSinFechaComputable(t *testing.T) {
	tp := withDeclarations("2024-12")
	tp.RUC = "1234" // sin noveno dígito

	result := tax.AllocateAdvance(tp, 0, testFees(), true, now)

	require.NotNil(t, result.AnnualTask)
	assert.Equal(t, now.AddDate(1, 0, 0), result.AnnualTask.DueDate,
		"sin fecha computable: un año desde hoy")
}

// TestAllocateAdvance_NegocioPopularSinAnticipo: el régimen Negocio Popular ya
// es anual; el anticipo de renta no aplica y no se sintetiza tarea.
func TestAllocateAdvance_NegocioPopularSinAnticipo(t *testing.T) {
	tp := withDeclarations("2024")
	tp.Regime = entity.RegimeRimpeNegocioPopular

	result := tax.AllocateAdvance(tp, 1, testFees(), true, now)

	assert.Nil(t, result.AnnualTask)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, "2024", result.Lines[0].Period)
}

// ── Casos borde ───────────────────────────────────────────────────────────────

func TestAllocateAdvance_CeroTrabajoReciboVacio(t *testing.T) {
	tp := withDeclarations("2024-12")

	result := tax.AllocateAdvance(tp, 0, testFees(), false, now)

	assert.Empty(t, result.Lines)
	assert.True(t, result.Total.IsZero())
	assert.Nil(t, result.AnnualTask)
	assert.Equal(t, entity.DeclarationPending, result.Taxpayer.FindDeclaration("2024-12").Status)
}

func TestAllocateAdvance_TotalEsSumaDeLineas(t *testing.T) {
	tp := withDeclarations("2024-10", "2024-11", "2024-12")

	result := tax.AllocateAdvance(tp, 3, testFees(), true, now)

	sum := decimal.Zero
	for _, line := range result.Lines {
		sum = sum.Add(line.Amount)
	}
	assert.True(t, result.Total.Equal(sum), "el total del recibo es la suma de sus líneas")
}
