package obligaciones

import (
	"context"

	"github.com/dvergara/Tributario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repositorios
// de contribuyentes y declaraciones atados a la misma tx. Las mutaciones del
// ciclo de vida (declarar, pagar, revertir, abonar) son ciclos
// leer-modificar-escribir y deben ser atómicas.
type TxRunner interface {
	RunObligaciones(ctx context.Context, fn func(
		taxpayerRepo repository.TaxpayerRepository,
		declRepo repository.DeclarationRepository,
	) error) error
}
