package entity

import "github.com/shopspring/decimal"

// Nombres de servicios puntuales de la firma (fuera de la suscripción).
const (
	ServiceRentaAnual       = "renta_anual"
	ServiceDevolucionIVA    = "devolucion_iva"
	ServiceCertificados     = "certificados"
	ServiceAnexosTributario = "anexos"
)

// FeeSchedule es el tarifario de la firma: honorario por categoría de
// obligación más servicios puntuales. El motor lo trata como tabla de solo
// lectura inyectada; nunca la muta.
type FeeSchedule struct {
	ByCategory      map[string]decimal.Decimal
	AnnualIncomeTax decimal.Decimal // honorario general de renta anual
	Services        map[string]decimal.Decimal
}

// FeeFor resuelve el honorario de un contribuyente: primero la tarifa pactada
// (CustomFee), luego la de su categoría. Sin entrada en el tarifario devuelve cero.
func (f FeeSchedule) FeeFor(t *Taxpayer) decimal.Decimal {
	if t.CustomFee != nil {
		return *t.CustomFee
	}
	if fee, ok := f.ByCategory[t.FilingCategory]; ok {
		return fee
	}
	return decimal.Zero
}
