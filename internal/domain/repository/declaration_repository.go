package repository

import "github.com/dvergara/Tributario-api/internal/domain/entity"

// DeclarationRepository persistencia de declaraciones. Las declaraciones
// nunca se borran físicamente: Upsert inserta o actualiza por
// (taxpayer_id, period).
type DeclarationRepository interface {
	ListByTaxpayer(taxpayerID string) ([]entity.Declaration, error)
	Upsert(d *entity.Declaration) error
	UpsertAll(list []entity.Declaration) error
}
