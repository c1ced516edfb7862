// Package tax implementa el motor de obligaciones tributarias de la firma:
// resolución del periodo fiscal vigente, cálculo de fechas límite según el
// calendario del SRI, ciclo de vida de declaraciones y asignación de abonos.
//
// Todas las operaciones son funciones síncronas sobre objetos-valor en
// memoria: el motor no hace I/O y las mutaciones devuelven copias nuevas
// (el caller decide cuándo persistirlas).
package tax

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dvergara/Tributario-api/internal/domain"
)

// PeriodKind distingue los tres tipos de periodo fiscal.
type PeriodKind int

const (
	PeriodMonthly PeriodKind = iota
	PeriodSemestral
	PeriodAnnual
)

// Period es un periodo fiscal como variante etiquetada. Las tres
// codificaciones en texto son mutuamente excluyentes por forma:
//
//	"YYYY"     anual
//	"YYYY-MM"  mensual
//	"YYYY-S1"  primer semestre / "YYYY-S2" segundo semestre
//
// Se parsea una sola vez en el borde; el resto del motor opera sobre la
// variante, no sobre strings.
type Period struct {
	Kind  PeriodKind
	Year  int
	Month time.Month // solo mensual
	Half  int        // solo semestral: 1 o 2
}

// ParsePeriod interpreta la codificación en texto de un periodo.
func ParsePeriod(s string) (Period, error) {
	switch {
	case len(s) == 4:
		year, err := strconv.Atoi(s)
		if err != nil || year < 1900 {
			return Period{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, s)
		}
		return Period{Kind: PeriodAnnual, Year: year}, nil

	case strings.Contains(s, "-S"):
		parts := strings.SplitN(s, "-S", 2)
		year, errY := strconv.Atoi(parts[0])
		half, errH := strconv.Atoi(parts[1])
		if errY != nil || errH != nil || len(parts[0]) != 4 || (half != 1 && half != 2) {
			return Period{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, s)
		}
		return Period{Kind: PeriodSemestral, Year: year, Half: half}, nil

	default:
		parts := strings.SplitN(s, "-", 2)
		if len(parts) != 2 || len(parts[0]) != 4 {
			return Period{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, s)
		}
		year, errY := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[1])
		if errY != nil || errM != nil || month < 1 || month > 12 {
			return Period{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, s)
		}
		return Period{Kind: PeriodMonthly, Year: year, Month: time.Month(month)}, nil
	}
}

// String devuelve la codificación canónica del periodo (round-trip con ParsePeriod).
func (p Period) String() string {
	switch p.Kind {
	case PeriodAnnual:
		return fmt.Sprintf("%04d", p.Year)
	case PeriodSemestral:
		return fmt.Sprintf("%04d-S%d", p.Year, p.Half)
	default:
		return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
	}
}

// Next devuelve el periodo siguiente del mismo tipo: mes siguiente (con salto
// de año en diciembre), S1→S2 y S2→S1 del año siguiente, o el año siguiente.
func (p Period) Next() Period {
	switch p.Kind {
	case PeriodAnnual:
		return Period{Kind: PeriodAnnual, Year: p.Year + 1}
	case PeriodSemestral:
		if p.Half == 1 {
			return Period{Kind: PeriodSemestral, Year: p.Year, Half: 2}
		}
		return Period{Kind: PeriodSemestral, Year: p.Year + 1, Half: 1}
	default:
		if p.Month == time.December {
			return Period{Kind: PeriodMonthly, Year: p.Year + 1, Month: time.January}
		}
		return Period{Kind: PeriodMonthly, Year: p.Year, Month: p.Month + 1}
	}
}

// Before compara cronológicamente dos periodos usando su fecha de inicio.
func (p Period) Before(q Period) bool {
	return p.start().Before(q.start())
}

// start es el primer día del periodo (clave cronológica para comparación).
func (p Period) start() time.Time {
	switch p.Kind {
	case PeriodAnnual:
		return time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	case PeriodSemestral:
		month := time.January
		if p.Half == 2 {
			month = time.July
		}
		return time.Date(p.Year, month, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	}
}

// Nombres de meses en español para etiquetas de presentación.
var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Label devuelve la forma de presentación del periodo: "Marzo 2025",
// "1er semestre 2025" / "2do semestre 2025", "Anual 2025". Cada codificación
// tiene exactamente una forma de presentación y no colisionan entre tipos.
func (p Period) Label() string {
	switch p.Kind {
	case PeriodAnnual:
		return fmt.Sprintf("Anual %d", p.Year)
	case PeriodSemestral:
		if p.Half == 1 {
			return fmt.Sprintf("1er semestre %d", p.Year)
		}
		return fmt.Sprintf("2do semestre %d", p.Year)
	default:
		return fmt.Sprintf("%s %d", monthNames[p.Month-1], p.Year)
	}
}
