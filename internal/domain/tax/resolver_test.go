package tax_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/tax"
)

// makeRUC construye un RUC de 13 dígitos cuyo noveno dígito (índice 8) es el
// dígito de calendario pedido.
func makeRUC(digit int) string {
	return fmt.Sprintf("17904567%d0001", digit)
}

func monthlyTaxpayer() entity.Taxpayer {
	return entity.Taxpayer{
		ID:             "t-mensual",
		Name:           "Comercial Andina",
		RUC:            makeRUC(1),
		Regime:         entity.RegimeGeneral,
		FilingCategory: entity.CategoryMensualSuscripcion,
		IsActive:       true,
	}
}

// ── Resolución del periodo vigente ────────────────────────────────────────────

// TestCurrentPeriod_MensualSiempreMesAnterior: para todo contribuyente mensual
// el periodo adeudado es el mes calendario inmediatamente anterior, con salto
// de año correcto en enero.
func TestCurrentPeriod_MensualSiempreMesAnterior(t *testing.T) {
	tp := monthlyTaxpayer()
	for m := time.January; m <= time.December; m++ {
		ref := time.Date(2025, m, 15, 10, 0, 0, 0, time.UTC)
		got := tax.CurrentPeriod(&tp, ref)

		want := tax.Period{Kind: tax.PeriodMonthly, Year: 2025, Month: m - 1}
		if m == time.January {
			want = tax.Period{Kind: tax.PeriodMonthly, Year: 2024, Month: time.December}
		}
		assert.Equal(t, want.String(), got.String(), "ref=%s", ref.Format("2006-01-02"))
	}
}

// TestCurrentPeriod_Semestral: enero–junio adeuda el 2do semestre del año
// anterior; julio–diciembre, el 1er semestre del año en curso.
func TestCurrentPeriod_Semestral(t *testing.T) {
	tp := monthlyTaxpayer()
	tp.FilingCategory = entity.CategorySemestralSuscripcion

	for m := time.January; m <= time.June; m++ {
		ref := time.Date(2025, m, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2024-S2", tax.CurrentPeriod(&tp, ref).String(), "mes %s", m)
	}
	for m := time.July; m <= time.December; m++ {
		ref := time.Date(2025, m, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2025-S1", tax.CurrentPeriod(&tp, ref).String(), "mes %s", m)
	}
}

// TestCurrentPeriod_NegocioPopularIgnoraCategoria: el régimen Negocio Popular
// siempre adeuda la renta del año fiscal anterior, sin importar la categoría.
func TestCurrentPeriod_NegocioPopularIgnoraCategoria(t *testing.T) {
	categories := []string{
		entity.CategoryMensualSuscripcion,
		entity.CategorySemestralInterno,
		entity.CategoryRentaNegocioPopular,
	}
	for _, cat := range categories {
		tp := monthlyTaxpayer()
		tp.Regime = entity.RegimeRimpeNegocioPopular
		tp.FilingCategory = cat

		ref := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2024", tax.CurrentPeriod(&tp, ref).String(), "categoría %s", cat)
	}
}

func TestCurrentPeriod_DevolucionIVAEsMensual(t *testing.T) {
	tp := monthlyTaxpayer()
	tp.FilingCategory = entity.CategoryDevolucionIVATercera

	ref := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03", tax.CurrentPeriod(&tp, ref).String())
}

func TestCurrentPeriod_CategoriaDesconocidaCaeAMensual(t *testing.T) {
	tp := monthlyTaxpayer()
	tp.FilingCategory = "otra_cosa"

	ref := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-12", tax.CurrentPeriod(&tp, ref).String())
}

// TestNextDeCurrentSiempreAvanza: Next(CurrentPeriod) nunca retrocede y
// siempre difiere del periodo vigente.
func TestNextDeCurrentSiempreAvanza(t *testing.T) {
	taxpayers := []entity.Taxpayer{monthlyTaxpayer()}

	semestral := monthlyTaxpayer()
	semestral.FilingCategory = entity.CategorySemestralInterno
	taxpayers = append(taxpayers, semestral)

	popular := monthlyTaxpayer()
	popular.Regime = entity.RegimeRimpeNegocioPopular
	taxpayers = append(taxpayers, popular)

	for _, tp := range taxpayers {
		for m := time.January; m <= time.December; m++ {
			ref := time.Date(2025, m, 10, 0, 0, 0, 0, time.UTC)
			current := tax.CurrentPeriod(&tp, ref)
			next := current.Next()
			assert.True(t, current.Before(next), "%s: Next debe avanzar", tp.FilingCategory)
			assert.NotEqual(t, current.String(), next.String())
		}
	}
}
