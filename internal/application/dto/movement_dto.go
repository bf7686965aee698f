package dto

import (
	"time"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
)

// RecordMovementRequest body para POST /api/inventory/movements.
// MovementDate en ISO-8601 (RFC 3339); vacío = ahora. Se aceptan fechas
// pasadas (retroactivas) y futuras sin validar contra el reloj.
type RecordMovementRequest struct {
	ProductID    int64  `json:"product_id"`
	LotID        *int64 `json:"lot_id"`
	Type         string `json:"type"` // IN | OUT | ADJUST
	Quantity     int64  `json:"quantity"`
	Reason       string `json:"reason"`
	Reference    string `json:"reference"`
	MovementDate string `json:"movement_date"`
}

// StockMovementResponse salida de un movimiento.
type StockMovementResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	LotID        *int64    `json:"lot_id"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	Reason       *string   `json:"reason"`
	Reference    *string   `json:"reference"`
	MovementDate time.Time `json:"movement_date"`
	PreviousQty  int64     `json:"previous_qty"`
	NewQty       int64     `json:"new_qty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecordMovementResponse respuesta de un movimiento registrado:
// producto actualizado, lote actualizado (null si no aplica) y el registro de auditoría.
type RecordMovementResponse struct {
	Product  ProductResponse       `json:"product"`
	Lot      *LotResponse          `json:"lot"`
	Movement StockMovementResponse `json:"movement"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ToStockMovementResponse mapea la entidad al DTO de salida.
func ToStockMovementResponse(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		LotID:        m.LotID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		Reason:       m.Reason,
		Reference:    m.Reference,
		MovementDate: m.MovementDate,
		PreviousQty:  m.PreviousQty,
		NewQty:       m.NewQty,
		CreatedAt:    m.CreatedAt,
	}
}
