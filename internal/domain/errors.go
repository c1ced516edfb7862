package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidRUC        = errors.New("RUC o cédula inválida")
	ErrInvalidPeriod     = errors.New("periodo fiscal inválido")
	ErrNothingToAllocate = errors.New("nada que abonar: sin periodos ni anticipo de renta")
)
