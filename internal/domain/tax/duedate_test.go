package tax_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/tax"
)

// ── Tabla estatutaria de días por dígito ──────────────────────────────────────

// TestDueDayForDigit_TablaExacta es el "canario" del calendario SRI: si
// alguien altera la tabla, este test falla de inmediato. El dígito 0 ocupa el
// último cupo del ciclo (día 28), después del 9.
func TestDueDayForDigit_TablaExacta(t *testing.T) {
	expected := map[int]int{
		1: 10, 2: 12, 3: 14, 4: 16, 5: 18,
		6: 20, 7: 22, 8: 24, 9: 26, 0: 28,
	}
	for digit, wantDay := range expected {
		day, ok := tax.DueDayForDigit(digit)
		require.True(t, ok, "dígito %d debe existir en la tabla", digit)
		assert.Equal(t, wantDay, day, "día del dígito %d", digit)
	}
}

// TestDueDayForDigit_CeroOrdenaAlFinal: el día del dígito 0 es mayor que el
// de todos los demás, y entre 1 y 9 el día crece estrictamente con el dígito.
func TestDueDayForDigit_CeroOrdenaAlFinal(t *testing.T) {
	zeroDay, _ := tax.DueDayForDigit(0)
	prev := 0
	for digit := 1; digit <= 9; digit++ {
		day, _ := tax.DueDayForDigit(digit)
		assert.Greater(t, day, prev, "el día debe crecer con el dígito (dígito %d)", digit)
		assert.Less(t, day, zeroDay, "el dígito 0 debe vencer después del %d", digit)
		prev = day
	}
}

// ── Fecha límite por tipo de periodo ──────────────────────────────────────────

func TestDueDate_MensualVenceMesSiguiente(t *testing.T) {
	tp := monthlyTaxpayer() // dígito 1 → día 10
	p := tax.Period{Kind: tax.PeriodMonthly, Year: 2025, Month: time.March}

	due := tax.DueDate(&tp, p)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC), *due,
		"el periodo 2025-03 vence el día asignado de abril")
}

func TestDueDate_DiciembreVenceEneroSiguiente(t *testing.T) {
	tp := monthlyTaxpayer()
	tp.RUC = makeRUC(0) // día 28
	p := tax.Period{Kind: tax.PeriodMonthly, Year: 2024, Month: time.December}

	due := tax.DueDate(&tp, p)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, time.January, 28, 0, 0, 0, 0, time.UTC), *due)
}

// TestDueDate_DevolucionIVAUltimoDiaDelMes: la devolución de IVA de tercera
// edad vence el último día del propio mes del periodo, no el día asignado del
// mes siguiente (regla especial del trámite).
func TestDueDate_DevolucionIVAUltimoDiaDelMes(t *testing.T) {
	tp := monthlyTaxpayer()
	tp.FilingCategory = entity.CategoryDevolucionIVATercera
	p := tax.Period{Kind: tax.PeriodMonthly, Year: 2025, Month: time.March}

	due := tax.DueDate(&tp, p)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), *due,
		"2025-03 debe vencer el 31 de marzo de 2025, no en abril")
}

func TestDueDate_Semestral(t *testing.T) {
	tp := monthlyTaxpayer()
	tp.RUC = makeRUC(5) // día 18

	s1 := tax.Period{Kind: tax.PeriodSemestral, Year: 2025, Half: 1}
	due := tax.DueDate(&tp, s1)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2025, time.July, 18, 0, 0, 0, 0, time.UTC), *due,
		"S1 ancla en julio del mismo año")

	s2 := tax.Period{Kind: tax.PeriodSemestral, Year: 2025, Half: 2}
	due = tax.DueDate(&tp, s2)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2026, time.January, 18, 0, 0, 0, 0, time.UTC), *due,
		"S2 ancla en enero del año siguiente")
}

func TestDueDate_AnualPorRegimen(t *testing.T) {
	cases := []struct {
		regime string
		month  time.Month
	}{
		{entity.RegimeGeneral, time.March},
		{entity.RegimeRimpeEmprendedor, time.April},
		{entity.RegimeRimpeNegocioPopular, time.May},
	}
	p := tax.Period{Kind: tax.PeriodAnnual, Year: 2024}
	for _, c := range cases {
		tp := monthlyTaxpayer()
		tp.Regime = c.regime
		tp.RUC = makeRUC(9) // día 26

		due := tax.DueDate(&tp, p)
		require.NotNil(t, due, "régimen %s", c.regime)
		assert.Equal(t, time.Date(2025, c.month, 26, 0, 0, 0, 0, time.UTC), *due,
			"renta 2024 del régimen %s", c.regime)
	}
}

// TestDueDate_IdentificadorCorto: sin noveno dígito no se puede computar;
// nil significa "desconocido", no "sin obligación".
func TestDueDate_IdentificadorCorto(t *testing.T) {
	tp := monthlyTaxpayer()
	tp.RUC = "12345678" // 8 caracteres

	due := tax.DueDate(&tp, tax.Period{Kind: tax.PeriodMonthly, Year: 2025, Month: time.March})
	assert.Nil(t, due)
}

// ── Días restantes y vencimiento ──────────────────────────────────────────────

func TestDaysUntilDue_IgnoraLaHora(t *testing.T) {
	due := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, time.April, 7, 23, 59, 0, 0, time.UTC)

	days := tax.DaysUntilDue(&due, today)
	require.NotNil(t, days)
	assert.Equal(t, 3, *days)
}

func TestDaysUntilDue_NegativoSiVencida(t *testing.T) {
	due := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, time.April, 15, 8, 0, 0, 0, time.UTC)

	days := tax.DaysUntilDue(&due, today)
	require.NotNil(t, days)
	assert.Equal(t, -5, *days)

	assert.Nil(t, tax.DaysUntilDue(nil, today), "sin fecha límite no hay días restantes")
}

func TestIsOverdue_EstrictamenteAntes(t *testing.T) {
	due := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	sameDay := time.Date(2025, time.April, 10, 18, 30, 0, 0, time.UTC)
	assert.False(t, tax.IsOverdue(&due, sameDay), "el mismo día aún no está vencida")

	nextDay := time.Date(2025, time.April, 11, 0, 0, 1, 0, time.UTC)
	assert.True(t, tax.IsOverdue(&due, nextDay))

	assert.False(t, tax.IsOverdue(nil, nextDay), "sin fecha límite no hay vencimiento")
}
