package tax

import (
	"time"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
)

// Calendario tributario del SRI: el noveno dígito del RUC/cédula determina el
// día del mes en que vence cada obligación. El dígito 0 ocupa el ÚLTIMO cupo
// del ciclo (día 28), después del 9 — así lo publica la tabla estatutaria y
// así debe preservarse.
var dueDayByDigit = map[int]int{
	1: 10,
	2: 12,
	3: 14,
	4: 16,
	5: 18,
	6: 20,
	7: 22,
	8: 24,
	9: 26,
	0: 28,
}

// DueDayForDigit devuelve el día de vencimiento asignado a un dígito (0–9).
func DueDayForDigit(digit int) (int, bool) {
	day, ok := dueDayByDigit[digit]
	return day, ok
}

// Mes de vencimiento de la declaración de renta anual según régimen, siempre
// sobre el año siguiente al periodo declarado.
var annualDueMonthByRegime = map[string]time.Month{
	entity.RegimeGeneral:             time.March,
	entity.RegimeRimpeEmprendedor:    time.April,
	entity.RegimeRimpeNegocioPopular: time.May,
}

// AnnualDueMonth devuelve el mes de vencimiento de renta para un régimen.
// Regímenes desconocidos caen al calendario del régimen general.
func AnnualDueMonth(regime string) time.Month {
	if m, ok := annualDueMonthByRegime[regime]; ok {
		return m
	}
	return annualDueMonthByRegime[entity.RegimeGeneral]
}

// lastDayOfMonth devuelve el último día calendario del mes dado.
func lastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}
