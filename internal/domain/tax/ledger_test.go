package tax_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/tax"
)

func testFees() entity.FeeSchedule {
	return entity.FeeSchedule{
		ByCategory: map[string]decimal.Decimal{
			entity.CategoryMensualSuscripcion:   decimal.NewFromInt(25),
			entity.CategorySemestralSuscripcion: decimal.NewFromInt(40),
		},
		AnnualIncomeTax: decimal.NewFromInt(60),
	}
}

func withDeclarations(periods ...string) entity.Taxpayer {
	tp := monthlyTaxpayer()
	for _, p := range periods {
		tp.Declarations = append(tp.Declarations, entity.Declaration{
			ID:         "d-" + p,
			TaxpayerID: tp.ID,
			Period:     p,
			Status:     entity.DeclarationPending,
		})
	}
	return tp
}

var now = time.Date(2025, time.February, 10, 9, 30, 0, 0, time.UTC)

// ── Creación perezosa del periodo vigente ─────────────────────────────────────

func TestEnsureCurrentPeriod_CreaYEsIdempotente(t *testing.T) {
	tp := monthlyTaxpayer()

	updated, created := tax.EnsureCurrentPeriod(tp, now)
	require.True(t, created)
	require.Len(t, updated.Declarations, 1)
	assert.Equal(t, "2025-01", updated.Declarations[0].Period)
	assert.Equal(t, entity.DeclarationPending, updated.Declarations[0].Status)
	assert.Empty(t, tp.Declarations, "el contribuyente original no debe mutar")

	again, created := tax.EnsureCurrentPeriod(updated, now)
	assert.False(t, created, "segunda llamada en el mismo mes es no-op")
	assert.Len(t, again.Declarations, 1)
}

// ── Transiciones de estado ────────────────────────────────────────────────────

func TestMarkFiled_Transicion(t *testing.T) {
	tp := withDeclarations("2025-01")

	updated, ok := tax.MarkFiled(tp, "2025-01", now)
	require.True(t, ok)
	d := updated.FindDeclaration("2025-01")
	assert.Equal(t, entity.DeclarationFiled, d.Status)
	require.NotNil(t, d.DeclaredAt)
	assert.Equal(t, now, *d.DeclaredAt)

	// Ya declarada: no-op
	_, ok = tax.MarkFiled(updated, "2025-01", now)
	assert.False(t, ok, "declarar dos veces debe ser no-op")

	// Periodo inexistente: no-op, no error
	_, ok = tax.MarkFiled(tp, "2024-06", now)
	assert.False(t, ok)
}

func TestMarkPaid_CongelaMonto(t *testing.T) {
	tp := withDeclarations("2025-01")

	updated, ok := tax.MarkPaid(tp, "2025-01", testFees(), now)
	require.True(t, ok)
	d := updated.FindDeclaration("2025-01")
	assert.Equal(t, entity.DeclarationPaid, d.Status)
	require.NotNil(t, d.Amount)
	assert.True(t, d.Amount.Equal(decimal.NewFromInt(25)), "debe congelar el honorario de la categoría")
	require.NotNil(t, d.PaidAt)

	// Pagar de nuevo: no-op
	_, ok = tax.MarkPaid(updated, "2025-01", testFees(), now)
	assert.False(t, ok)
}

func TestMarkPaid_RespetaTarifaPactada(t *testing.T) {
	tp := withDeclarations("2025-01")
	custom := decimal.NewFromInt(18)
	tp.CustomFee = &custom

	updated, ok := tax.MarkPaid(tp, "2025-01", testFees(), now)
	require.True(t, ok)
	assert.True(t, updated.FindDeclaration("2025-01").Amount.Equal(custom))
}

func TestMarkPaid_DesdeDeclarada(t *testing.T) {
	tp := withDeclarations("2025-01")
	filed, _ := tax.MarkFiled(tp, "2025-01", now)

	updated, ok := tax.MarkPaid(filed, "2025-01", testFees(), now)
	require.True(t, ok)
	assert.Equal(t, entity.DeclarationPaid, updated.FindDeclaration("2025-01").Status)
}

// TestRevertPayment_PagarRevertirPagar: revertir y volver a pagar reproduce el
// monto congelado original aunque el tarifario haya cambiado entre medio.
func TestRevertPayment_PagarRevertirPagar(t *testing.T) {
	tp := withDeclarations("2025-01")

	paid, _ := tax.MarkPaid(tp, "2025-01", testFees(), now)
	originalAmount := *paid.FindDeclaration("2025-01").Amount

	reverted, ok := tax.RevertPayment(paid, "2025-01", now.Add(time.Hour))
	require.True(t, ok)
	d := reverted.FindDeclaration("2025-01")
	assert.Equal(t, entity.DeclarationFiled, d.Status, "revertir regresa a DECLARADA")
	assert.Nil(t, d.PaidAt)
	require.NotNil(t, d.Amount, "el monto congelado se conserva al revertir")

	// Tarifario distinto (subida de precios): el repago usa el monto congelado
	expensive := testFees()
	expensive.ByCategory[entity.CategoryMensualSuscripcion] = decimal.NewFromInt(99)

	repaid, ok := tax.MarkPaid(reverted, "2025-01", expensive, now.Add(2*time.Hour))
	require.True(t, ok)
	assert.True(t, repaid.FindDeclaration("2025-01").Amount.Equal(originalAmount),
		"repagar debe reproducir el monto original, no releer el tarifario")
}

func TestRevertPayment_NoopSobreNoPagada(t *testing.T) {
	tp := withDeclarations("2025-01")

	_, ok := tax.RevertPayment(tp, "2025-01", now)
	assert.False(t, ok, "revertir una declaración pendiente es no-op")

	filed, _ := tax.MarkFiled(tp, "2025-01", now)
	_, ok = tax.RevertPayment(filed, "2025-01", now)
	assert.False(t, ok)
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func TestPendingDeclarations_OrdenYFiltro(t *testing.T) {
	tp := withDeclarations("2025-01", "2024-11", "2024-12")
	paid, _ := tax.MarkPaid(tp, "2024-12", testFees(), now)

	cancelled := paid.Clone()
	cancelled.Declarations = append(cancelled.Declarations, entity.Declaration{
		ID: "d-anulada", Period: "2024-10", Status: entity.DeclarationCancelled,
	})

	pending := tax.PendingDeclarations(&cancelled)
	require.Len(t, pending, 2)
	assert.Equal(t, "2024-11", pending[0].Period, "orden ascendente por periodo")
	assert.Equal(t, "2025-01", pending[1].Period)
}

func TestDeclarationOverdue(t *testing.T) {
	tp := withDeclarations("2024-11") // dígito 1 → vence 10 dic 2024
	d := tp.Declarations[0]

	assert.True(t, tax.DeclarationOverdue(&tp, d, now), "2024-11 está vencida en feb 2025")

	before := time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC)
	assert.False(t, tax.DeclarationOverdue(&tp, d, before))

	paid, _ := tax.MarkPaid(tp, "2024-11", testFees(), now)
	assert.False(t, tax.DeclarationOverdue(&paid, *paid.FindDeclaration("2024-11"), now),
		"una declaración pagada nunca está vencida")
}

func TestTotalDebt_CongeladoMasTarifario(t *testing.T) {
	tp := withDeclarations("2024-11", "2024-12")
	frozen := decimal.NewFromInt(30)
	tp.Declarations[0].Amount = &frozen // monto ya fijado

	debt := tax.TotalDebt(&tp, testFees())
	assert.True(t, debt.Equal(decimal.NewFromInt(55)), "30 congelado + 25 del tarifario, got %s", debt)

	paid, _ := tax.MarkPaid(tp, "2024-11", testFees(), now)
	debt = tax.TotalDebt(&paid, testFees())
	assert.True(t, debt.Equal(decimal.NewFromInt(25)), "solo la pendiente suma deuda")
}
