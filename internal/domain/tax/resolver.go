package tax

import (
	"strings"
	"time"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
)

// CurrentPeriod resuelve el periodo que el contribuyente adeuda actualmente
// según su régimen y categoría, tomando ref como "hoy".
//
//   - RIMPE Negocio Popular: renta del año fiscal ANTERIOR (se declara al año
//     siguiente, vence en mayo), sin importar la categoría.
//   - Mensual (y devolución IVA tercera edad): el IVA se declara en el mes
//     siguiente al de la actividad, así que el periodo adeudado es el mes
//     calendario anterior a ref.
//   - Semestral: cada semestre se declara en el semestre que le sigue. En
//     enero–junio se adeuda el 2do semestre del año anterior; en
//     julio–diciembre, el 1er semestre del año en curso.
//   - Cualquier otra categoría se trata como mensual.
func CurrentPeriod(t *entity.Taxpayer, ref time.Time) Period {
	if t.AnnualOnly() {
		return Period{Kind: PeriodAnnual, Year: ref.Year() - 1}
	}

	switch {
	case strings.Contains(t.FilingCategory, "mensual"),
		t.FilingCategory == entity.CategoryDevolucionIVATercera:
		return monthBefore(ref)

	case strings.Contains(t.FilingCategory, "semestral"):
		if ref.Month() <= time.June {
			return Period{Kind: PeriodSemestral, Year: ref.Year() - 1, Half: 2}
		}
		return Period{Kind: PeriodSemestral, Year: ref.Year(), Half: 1}

	default:
		return monthBefore(ref)
	}
}

// monthBefore devuelve el mes calendario anterior a ref como periodo mensual.
func monthBefore(ref time.Time) Period {
	year, month := ref.Year(), ref.Month()
	if month == time.January {
		return Period{Kind: PeriodMonthly, Year: year - 1, Month: time.December}
	}
	return Period{Kind: PeriodMonthly, Year: year, Month: month - 1}
}
