package obligaciones

import (
	"time"

	"github.com/google/uuid"

	"github.com/dvergara/Tributario-api/internal/application/dto"
	"github.com/dvergara/Tributario-api/internal/domain"
	"github.com/dvergara/Tributario-api/internal/domain/entity"
	"github.com/dvergara/Tributario-api/internal/domain/repository"
	"github.com/dvergara/Tributario-api/pkg/sri"
)

var validRegimes = map[string]bool{
	entity.RegimeGeneral:             true,
	entity.RegimeRimpeEmprendedor:    true,
	entity.RegimeRimpeNegocioPopular: true,
}

var validCategories = map[string]bool{
	entity.CategoryMensualSuscripcion:   true,
	entity.CategoryMensualInterno:       true,
	entity.CategorySemestralSuscripcion: true,
	entity.CategorySemestralInterno:     true,
	entity.CategoryRentaNegocioPopular:  true,
	entity.CategoryDevolucionIVATercera: true,
}

// TaxpayerUseCase casos de uso del registro de clientes de la firma.
type TaxpayerUseCase struct {
	repo repository.TaxpayerRepository
}

// NewTaxpayerUseCase construye el caso de uso.
func NewTaxpayerUseCase(repo repository.TaxpayerRepository) *TaxpayerUseCase {
	return &TaxpayerUseCase{repo: repo}
}

// Create registra un cliente nuevo. Valida RUC/cédula, régimen y categoría.
func (uc *TaxpayerUseCase) Create(in dto.CreateTaxpayerRequest) (*dto.TaxpayerResponse, error) {
	if in.Name == "" || in.RUC == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := sri.ValidateIdentifier(in.RUC); err != nil {
		return nil, domain.ErrInvalidRUC
	}
	if !validRegimes[in.Regime] || !validCategories[in.FilingCategory] {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByRUC(in.RUC)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	t := &entity.Taxpayer{
		ID:             uuid.New().String(),
		Name:           in.Name,
		RUC:            in.RUC,
		Email:          in.Email,
		Phone:          in.Phone,
		Regime:         in.Regime,
		FilingCategory: in.FilingCategory,
		IsActive:       true,
		CustomFee:      in.CustomFee,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTaxpayerResponse(t), nil
}

// GetByID obtiene un cliente con sus declaraciones.
func (uc *TaxpayerUseCase) GetByID(id string) (*dto.TaxpayerResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTaxpayerResponse(t), nil
}

// List lista clientes (activos por defecto).
func (uc *TaxpayerUseCase) List(onlyActive bool, limit, offset int) ([]*dto.TaxpayerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaxpayerResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTaxpayerResponse(t))
	}
	return out, nil
}

// Update edita un cliente; solo los campos presentes en el request cambian.
func (uc *TaxpayerUseCase) Update(id string, in dto.UpdateTaxpayerRequest) (*dto.TaxpayerResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Email != nil {
		t.Email = *in.Email
	}
	if in.Phone != nil {
		t.Phone = *in.Phone
	}
	if in.Regime != nil {
		if !validRegimes[*in.Regime] {
			return nil, domain.ErrInvalidInput
		}
		t.Regime = *in.Regime
	}
	if in.FilingCategory != nil {
		if !validCategories[*in.FilingCategory] {
			return nil, domain.ErrInvalidInput
		}
		t.FilingCategory = *in.FilingCategory
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	if in.CustomFee != nil {
		t.CustomFee = in.CustomFee
	}
	t.UpdatedAt = time.Now()

	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTaxpayerResponse(t), nil
}

func toTaxpayerResponse(t *entity.Taxpayer) *dto.TaxpayerResponse {
	return &dto.TaxpayerResponse{
		ID:             t.ID,
		Name:           t.Name,
		RUC:            t.RUC,
		Email:          t.Email,
		Phone:          t.Phone,
		Regime:         t.Regime,
		FilingCategory: t.FilingCategory,
		IsActive:       t.IsActive,
		CustomFee:      t.CustomFee,
	}
}
