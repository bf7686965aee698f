package dto

import (
	"time"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
)

// CreateLotRequest entrada para crear un lote bajo un producto.
// ExpiryDate en formato ISO-8601 (RFC 3339) o fecha "2006-01-02"; vacío = sin vencimiento.
type CreateLotRequest struct {
	LotNumber  string `json:"lot_number"`
	ExpiryDate string `json:"expiry_date"`
	Quantity   int64  `json:"quantity"`
}

// UpdateLotRequest entrada para actualizar un lote (patch con punteros).
// Quantity no es editable: se maneja vía movimientos.
type UpdateLotRequest struct {
	LotNumber  *string `json:"lot_number"`
	ExpiryDate *string `json:"expiry_date"` // "" limpia el vencimiento
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID         int64      `json:"id"`
	ProductID  int64      `json:"product_id"`
	LotNumber  string     `json:"lot_number"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Quantity   int64      `json:"quantity"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToLotResponse mapea la entidad al DTO de salida.
func ToLotResponse(l *entity.Lot) LotResponse {
	return LotResponse{
		ID:         l.ID,
		ProductID:  l.ProductID,
		LotNumber:  l.LotNumber,
		ExpiryDate: l.ExpiryDate,
		Quantity:   l.Quantity,
		CreatedAt:  l.CreatedAt,
	}
}
