package dto

import "github.com/shopspring/decimal"

// CreateTaxpayerRequest alta de un cliente de la firma.
type CreateTaxpayerRequest struct {
	Name           string           `json:"name"`
	RUC            string           `json:"ruc"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Regime         string           `json:"regime"`
	FilingCategory string           `json:"filing_category"`
	CustomFee      *decimal.Decimal `json:"custom_fee,omitempty"`
}

// UpdateTaxpayerRequest edición de un cliente. Los punteros nil no modifican el campo.
type UpdateTaxpayerRequest struct {
	Name           *string          `json:"name,omitempty"`
	Email          *string          `json:"email,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	Regime         *string          `json:"regime,omitempty"`
	FilingCategory *string          `json:"filing_category,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
	CustomFee      *decimal.Decimal `json:"custom_fee,omitempty"`
}

// TaxpayerResponse vista de un cliente.
type TaxpayerResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	RUC            string           `json:"ruc"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Regime         string           `json:"regime"`
	FilingCategory string           `json:"filing_category"`
	IsActive       bool             `json:"is_active"`
	CustomFee      *decimal.Decimal `json:"custom_fee,omitempty"`
}
