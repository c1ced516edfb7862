package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una declaración.
// El flujo normal es PENDIENTE → DECLARADA → PAGADA; la reversión de pago
// regresa PAGADA → DECLARADA. ANULADA es un estado lateral terminal.
// "Vencida" no es un estado almacenado: se deriva de la fecha límite.
const (
	DeclarationPending   = "PENDIENTE"
	DeclarationFiled     = "DECLARADA"
	DeclarationPaid      = "PAGADA"
	DeclarationCancelled = "ANULADA"
)

// Declaration registra el estado de un periodo fiscal para un contribuyente.
// Existe a lo sumo una declaración por (contribuyente, periodo). El historial
// es append-only: nunca se borra físicamente, revertir un pago solo regresa
// el estado.
type Declaration struct {
	ID         string
	TaxpayerID string
	Period     string // "YYYY" anual, "YYYY-MM" mensual, "YYYY-S1"/"YYYY-S2" semestral
	Status     string // ver constantes Declaration*

	// Amount es el honorario congelado de la declaración. nil = aún no fijado;
	// se resuelve contra el tarifario al momento del pago y desde entonces es
	// inmutable (ediciones posteriores del tarifario no alteran recibos históricos).
	Amount *decimal.Decimal

	// Advance es el abono pre-pagado sobre la declaración (tareas de renta
	// anual sintetizadas por un anticipo nacen con Advance == Amount).
	Advance *decimal.Decimal

	DeclaredAt    *time.Time
	PaidAt        *time.Time
	TransactionID string // recibo compartido por todas las declaraciones de un mismo abono
	UpdatedAt     time.Time
}
