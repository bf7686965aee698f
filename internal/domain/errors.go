package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrLotNotFound      = errors.New("lote no encontrado")
	ErrLotMismatch      = errors.New("el lote no pertenece al producto")
	ErrNegativeQuantity = errors.New("la cantidad resultante no puede ser negativa")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
)
