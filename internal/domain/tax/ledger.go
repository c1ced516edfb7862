package tax

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dvergara/Tributario-api/internal/domain/entity"
)

// Las mutaciones de este archivo nunca modifican el contribuyente recibido:
// devuelven una copia con la declaración actualizada y un bool que indica si
// la transición aplicó. Transición inválida = no-op, no error: estas
// operaciones se disparan desde acciones masivas de usuario donde el doble
// clic accidental es lo esperado.

// EnsureCurrentPeriod sintetiza (si no existe) la declaración del periodo
// actualmente adeudado. Las declaraciones se crean de forma perezosa cuando
// su periodo se vuelve vigente; la operación es idempotente por mes.
func EnsureCurrentPeriod(t entity.Taxpayer, now time.Time) (entity.Taxpayer, bool) {
	period := CurrentPeriod(&t, now).String()
	if t.FindDeclaration(period) != nil {
		return t, false
	}
	out := t.Clone()
	out.Declarations = append(out.Declarations, entity.Declaration{
		ID:         uuid.New().String(),
		TaxpayerID: t.ID,
		Period:     period,
		Status:     entity.DeclarationPending,
		UpdatedAt:  now,
	})
	return out, true
}

// MarkFiled pasa una declaración PENDIENTE a DECLARADA y sella DeclaredAt.
// No-op si no existe o ya fue declarada/pagada.
func MarkFiled(t entity.Taxpayer, period string, now time.Time) (entity.Taxpayer, bool) {
	d := t.FindDeclaration(period)
	if d == nil || d.Status != entity.DeclarationPending {
		return t, false
	}
	out := t.Clone()
	upd := out.FindDeclaration(period)
	upd.Status = entity.DeclarationFiled
	upd.DeclaredAt = &now
	upd.UpdatedAt = now
	return out, true
}

// MarkPaid pasa una declaración PENDIENTE o DECLARADA a PAGADA. Si el monto
// aún no está fijado, congela el honorario vigente del tarifario sobre el
// registro: el monto es inmutable una vez fijado, ediciones posteriores del
// tarifario nunca alteran recibos históricos.
func MarkPaid(t entity.Taxpayer, period string, fees entity.FeeSchedule, now time.Time) (entity.Taxpayer, bool) {
	d := t.FindDeclaration(period)
	if d == nil || (d.Status != entity.DeclarationPending && d.Status != entity.DeclarationFiled) {
		return t, false
	}
	out := t.Clone()
	upd := out.FindDeclaration(period)
	if upd.Amount == nil {
		fee := fees.FeeFor(&out)
		upd.Amount = &fee
	}
	upd.Status = entity.DeclarationPaid
	upd.PaidAt = &now
	upd.UpdatedAt = now
	return out, true
}

// RevertPayment regresa una declaración PAGADA a DECLARADA y limpia PaidAt.
// El monto congelado se conserva: revertir y volver a pagar reproduce el
// recibo original aunque el tarifario haya cambiado entre medio.
// Revertir una declaración no pagada es un no-op (guardia idempotente).
func RevertPayment(t entity.Taxpayer, period string, now time.Time) (entity.Taxpayer, bool) {
	d := t.FindDeclaration(period)
	if d == nil || d.Status != entity.DeclarationPaid {
		return t, false
	}
	out := t.Clone()
	upd := out.FindDeclaration(period)
	upd.Status = entity.DeclarationFiled
	upd.PaidAt = nil
	upd.UpdatedAt = now
	return out, true
}

// PendingDeclarations devuelve las declaraciones no pagadas ni anuladas,
// ordenadas ascendentemente por el string del periodo. El orden lexicográfico
// es válido porque las declaraciones de un mismo contribuyente son homogéneas
// en tipo de periodo y cada codificación ordena bien dentro de su tipo.
func PendingDeclarations(t *entity.Taxpayer) []entity.Declaration {
	var out []entity.Declaration
	for _, d := range t.Declarations {
		if d.Status != entity.DeclarationPaid && d.Status != entity.DeclarationCancelled {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// DeclarationOverdue indica si una declaración está vencida: sigue sin pagar
// y su fecha límite ya pasó. Sin fecha límite computable no hay vencimiento.
func DeclarationOverdue(t *entity.Taxpayer, d entity.Declaration, today time.Time) bool {
	if d.Status != entity.DeclarationPending && d.Status != entity.DeclarationFiled {
		return false
	}
	p, err := ParsePeriod(d.Period)
	if err != nil {
		return false
	}
	return IsOverdue(DueDate(t, p), today)
}

// TotalDebt suma la deuda del contribuyente: monto congelado de cada
// declaración no pagada, o el honorario del tarifario si aún no se fijó.
func TotalDebt(t *entity.Taxpayer, fees entity.FeeSchedule) decimal.Decimal {
	total := decimal.Zero
	for _, d := range PendingDeclarations(t) {
		if d.Amount != nil {
			total = total.Add(*d.Amount)
			continue
		}
		total = total.Add(fees.FeeFor(t))
	}
	return total
}
