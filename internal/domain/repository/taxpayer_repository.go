package repository

import "github.com/dvergara/Tributario-api/internal/domain/entity"

// TaxpayerRepository acceso a contribuyentes (clientes de la firma).
// GetByID y List cargan las declaraciones del contribuyente (composición).
type TaxpayerRepository interface {
	Create(t *entity.Taxpayer) error
	GetByID(id string) (*entity.Taxpayer, error)
	GetByRUC(ruc string) (*entity.Taxpayer, error)
	List(onlyActive bool, limit, offset int) ([]*entity.Taxpayer, error)
	Update(t *entity.Taxpayer) error
}
