package tax

import (
	"time"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
)

// DueDate calcula la fecha límite estatutaria de un periodo para un
// contribuyente. Devuelve nil cuando el identificador es muy corto para
// extraer el noveno dígito: "no computable" no significa "sin obligación".
//
// Reglas:
//   - Mensual: día asignado del mes SIGUIENTE al del periodo, EXCEPTO la
//     devolución de IVA de tercera edad, que vence el último día del propio
//     mes del periodo (regla especial, no usa el dígito).
//   - Semestral: S1 ancla en julio del mismo año, S2 en enero del año
//     siguiente; se aplica el día asignado sobre ese mes ancla.
//   - Anual: mes según régimen (marzo/abril/mayo) del año siguiente al
//     periodo, con el día asignado.
func DueDate(t *entity.Taxpayer, p Period) *time.Time {
	if p.Kind == PeriodMonthly && t.FilingCategory == entity.CategoryDevolucionIVATercera {
		due := lastDayOfMonth(p.Year, p.Month)
		return &due
	}

	digit, ok := t.LookupDigit()
	if !ok {
		return nil
	}
	day, ok := DueDayForDigit(digit)
	if !ok {
		return nil
	}

	var year int
	var month time.Month
	switch p.Kind {
	case PeriodMonthly:
		year, month = p.Year, p.Month+1
		if p.Month == time.December {
			year, month = p.Year+1, time.January
		}
	case PeriodSemestral:
		if p.Half == 1 {
			year, month = p.Year, time.July
		} else {
			year, month = p.Year+1, time.January
		}
	case PeriodAnnual:
		year, month = p.Year+1, AnnualDueMonth(t.Regime)
	}

	due := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &due
}

// DaysUntilDue devuelve la diferencia en días calendario entre hoy y la fecha
// límite, ignorando la hora. Negativo = vencida. nil si no hay fecha límite.
func DaysUntilDue(due *time.Time, today time.Time) *int {
	if due == nil {
		return nil
	}
	d := truncateDay(*due)
	t := truncateDay(today)
	days := int(d.Sub(t).Hours() / 24)
	return &days
}

// IsOverdue indica si una fecha límite ya pasó estrictamente (solo fecha).
func IsOverdue(due *time.Time, today time.Time) bool {
	if due == nil {
		return false
	}
	return truncateDay(*due).Before(truncateDay(today))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
