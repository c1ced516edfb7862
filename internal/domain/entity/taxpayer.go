package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Regímenes tributarios SRI (Ecuador).
const (
	RegimeGeneral             = "general"
	RegimeRimpeEmprendedor    = "rimpe_emprendedor"
	RegimeRimpeNegocioPopular = "rimpe_negocio_popular"
)

// Categorías de obligación del cliente dentro de la firma contable.
// Las categorías "suscripcion" corresponden a clientes con tarifa mensual fija;
// las "interno" a clientes atendidos por horas del equipo interno.
const (
	CategoryMensualSuscripcion   = "mensual_suscripcion"
	CategoryMensualInterno       = "mensual_interno"
	CategorySemestralSuscripcion = "semestral_suscripcion"
	CategorySemestralInterno     = "semestral_interno"
	CategoryRentaNegocioPopular  = "renta_negocio_popular"
	CategoryDevolucionIVATercera = "devolucion_iva_tercera_edad"
)

// Taxpayer representa un contribuyente (cliente de la firma contable).
// El noveno dígito del RUC/cédula (índice 8) es el dígito de asignación
// del calendario tributario del SRI.
type Taxpayer struct {
	ID             string
	Name           string
	RUC            string // cédula (10 dígitos) o RUC (13 dígitos)
	Email          string
	Phone          string
	Regime         string // ver constantes Regime*
	FilingCategory string // ver constantes Category*
	IsActive       bool
	CustomFee      *decimal.Decimal // tarifa pactada; nil = usar tarifario
	Declarations   []Declaration    // composición: viven y mueren con el contribuyente
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LookupDigit devuelve el dígito de asignación del calendario (9no carácter
// del identificador) y ok=false si el identificador es muy corto para tenerlo.
func (t *Taxpayer) LookupDigit() (int, bool) {
	if len(t.RUC) < 9 {
		return 0, false
	}
	c := t.RUC[8]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// AnnualOnly indica si el contribuyente declara únicamente renta anual.
// El régimen RIMPE Negocio Popular siempre es anual, sin importar la categoría.
func (t *Taxpayer) AnnualOnly() bool {
	return t.Regime == RegimeRimpeNegocioPopular
}

// FindDeclaration busca la declaración de un periodo. Devuelve nil si no existe.
func (t *Taxpayer) FindDeclaration(period string) *Declaration {
	for i := range t.Declarations {
		if t.Declarations[i].Period == period {
			return &t.Declarations[i]
		}
	}
	return nil
}

// Clone devuelve una copia profunda del contribuyente (incluye declaraciones).
// Las mutaciones del motor de obligaciones operan siempre sobre copias.
func (t *Taxpayer) Clone() Taxpayer {
	out := *t
	out.Declarations = make([]Declaration, len(t.Declarations))
	copy(out.Declarations, t.Declarations)
	if t.CustomFee != nil {
		fee := *t.CustomFee
		out.CustomFee = &fee
	}
	return out
}
