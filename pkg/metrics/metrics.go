// Package metrics define los contadores Prometheus del servicio. Los casos de
// uso los incrementan; el endpoint /metrics los expone.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los instrumentos del servicio.
type Metrics struct {
	DeclaracionesDeclaradas prometheus.Counter
	DeclaracionesPagadas    prometheus.Counter
	PagosRevertidos         prometheus.Counter
	AbonosAplicados         prometheus.Counter
	PeriodosAbonados        prometheus.Counter
	RecibosPDFGenerados     prometheus.Counter
}

// New registra los contadores en el registro por defecto de Prometheus.
func New() *Metrics {
	return &Metrics{
		DeclaracionesDeclaradas: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tributario_declaraciones_declaradas_total",
			Help: "Declaraciones marcadas como declaradas ante el SRI.",
		}),
		DeclaracionesPagadas: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tributario_declaraciones_pagadas_total",
			Help: "Declaraciones marcadas como pagadas.",
		}),
		PagosRevertidos: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tributario_pagos_revertidos_total",
			Help: "Reversiones de pago aplicadas.",
		}),
		AbonosAplicados: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tributario_abonos_aplicados_total",
			Help: "Abonos masivos (anticipos) aplicados.",
		}),
		PeriodosAbonados: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tributario_periodos_abonados_total",
			Help: "Periodos individuales cubiertos por abonos.",
		}),
		RecibosPDFGenerados: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tributario_recibos_pdf_generados_total",
			Help: "Recibos de abono renderizados en PDF.",
		}),
	}
}
