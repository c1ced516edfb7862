package tax_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvergara/Tributario-api/internal/domain/tax"
)

// ── Parseo y round-trip ───────────────────────────────────────────────────────

func TestParsePeriod_RoundTrip(t *testing.T) {
	cases := []string{"2025", "2025-01", "2025-12", "2025-S1", "2025-S2"}
	for _, s := range cases {
		p, err := tax.ParsePeriod(s)
		require.NoError(t, err, "ParsePeriod(%q) no debe fallar", s)
		assert.Equal(t, s, p.String(), "String() debe reproducir la codificación original")
	}
}

func TestParsePeriod_Kinds(t *testing.T) {
	annual, err := tax.ParsePeriod("2024")
	require.NoError(t, err)
	assert.Equal(t, tax.PeriodAnnual, annual.Kind)
	assert.Equal(t, 2024, annual.Year)

	monthly, err := tax.ParsePeriod("2024-03")
	require.NoError(t, err)
	assert.Equal(t, tax.PeriodMonthly, monthly.Kind)
	assert.Equal(t, time.March, monthly.Month)

	semestral, err := tax.ParsePeriod("2024-S2")
	require.NoError(t, err)
	assert.Equal(t, tax.PeriodSemestral, semestral.Kind)
	assert.Equal(t, 2, semestral.Half)
}

func TestParsePeriod_Invalidos(t *testing.T) {
	invalid := []string{"", "abcd", "202", "2024-13", "2024-00", "2024-S3", "2024-S0", "24-01", "2024-"}
	for _, s := range invalid {
		_, err := tax.ParsePeriod(s)
		assert.Error(t, err, "ParsePeriod(%q) debe rechazar la entrada", s)
	}
}

// ── Periodo siguiente ─────────────────────────────────────────────────────────

func TestNext_MensualRuedaElAño(t *testing.T) {
	p := tax.Period{Kind: tax.PeriodMonthly, Year: 2024, Month: time.December}
	next := p.Next()
	assert.Equal(t, "2025-01", next.String(), "diciembre debe rodar a enero del año siguiente")

	mid := tax.Period{Kind: tax.PeriodMonthly, Year: 2024, Month: time.June}
	assert.Equal(t, "2024-07", mid.Next().String())
}

func TestNext_Semestral(t *testing.T) {
	s1 := tax.Period{Kind: tax.PeriodSemestral, Year: 2024, Half: 1}
	assert.Equal(t, "2024-S2", s1.Next().String(), "S1 pasa a S2 del mismo año")

	s2 := tax.Period{Kind: tax.PeriodSemestral, Year: 2024, Half: 2}
	assert.Equal(t, "2025-S1", s2.Next().String(), "S2 pasa a S1 del año siguiente")
}

func TestNext_Anual(t *testing.T) {
	p := tax.Period{Kind: tax.PeriodAnnual, Year: 2024}
	assert.Equal(t, "2025", p.Next().String())
}

func TestNext_NuncaRetrocede(t *testing.T) {
	cases := []tax.Period{
		{Kind: tax.PeriodMonthly, Year: 2024, Month: time.December},
		{Kind: tax.PeriodMonthly, Year: 2025, Month: time.January},
		{Kind: tax.PeriodSemestral, Year: 2024, Half: 2},
		{Kind: tax.PeriodAnnual, Year: 2024},
	}
	for _, p := range cases {
		next := p.Next()
		assert.True(t, p.Before(next), "Next(%s) debe ser cronológicamente posterior", p)
		assert.NotEqual(t, p.String(), next.String(), "Next(%s) debe ser distinto", p)
	}
}

// ── Etiquetas de presentación ─────────────────────────────────────────────────

func TestLabel_FormasUnicas(t *testing.T) {
	assert.Equal(t, "Marzo 2025", tax.Period{Kind: tax.PeriodMonthly, Year: 2025, Month: time.March}.Label())
	assert.Equal(t, "1er semestre 2025", tax.Period{Kind: tax.PeriodSemestral, Year: 2025, Half: 1}.Label())
	assert.Equal(t, "2do semestre 2025", tax.Period{Kind: tax.PeriodSemestral, Year: 2025, Half: 2}.Label())
	assert.Equal(t, "Anual 2025", tax.Period{Kind: tax.PeriodAnnual, Year: 2025}.Label())
}

// TestLabel_SinColisionesPorAño: para un mismo año, las etiquetas de las tres
// codificaciones nunca coinciden entre sí.
func TestLabel_SinColisionesPorAño(t *testing.T) {
	seen := map[string]string{}
	periods := []tax.Period{
		{Kind: tax.PeriodAnnual, Year: 2025},
		{Kind: tax.PeriodSemestral, Year: 2025, Half: 1},
		{Kind: tax.PeriodSemestral, Year: 2025, Half: 2},
	}
	for m := time.January; m <= time.December; m++ {
		periods = append(periods, tax.Period{Kind: tax.PeriodMonthly, Year: 2025, Month: m})
	}
	for _, p := range periods {
		label := p.Label()
		prev, dup := seen[label]
		assert.False(t, dup, "etiqueta %q duplicada entre %s y %s", label, prev, p)
		seen[label] = p.String()
	}
}
