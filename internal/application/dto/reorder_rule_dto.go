package dto

import (
	"time"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
)

// UpsertReorderRuleRequest entrada para crear o reemplazar la regla de un producto.
// Hay a lo sumo una regla por producto: POST la crea o actualiza la existente.
type UpsertReorderRuleRequest struct {
	ProductID  int64  `json:"product_id"`
	MinStock   int64  `json:"min_stock"`
	MaxStock   int64  `json:"max_stock"`
	ReorderQty int64  `json:"reorder_qty"`
	SupplierID *int64 `json:"supplier_id"`
}

// PatchReorderRuleRequest patch explícito por campo (nil = no tocar).
// La invariante min_stock < max_stock se re-verifica sobre la regla resultante.
type PatchReorderRuleRequest struct {
	MinStock   *int64 `json:"min_stock"`
	MaxStock   *int64 `json:"max_stock"`
	ReorderQty *int64 `json:"reorder_qty"`
	SupplierID *int64 `json:"supplier_id"`
}

// ReorderRuleResponse salida de una regla de reposición.
type ReorderRuleResponse struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	MinStock   int64     `json:"min_stock"`
	MaxStock   int64     `json:"max_stock"`
	ReorderQty int64     `json:"reorder_qty"`
	SupplierID *int64    `json:"supplier_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToReorderRuleResponse mapea la entidad al DTO de salida.
func ToReorderRuleResponse(r *entity.ReorderRule) ReorderRuleResponse {
	return ReorderRuleResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		MinStock:   r.MinStock,
		MaxStock:   r.MaxStock,
		ReorderQty: r.ReorderQty,
		SupplierID: r.SupplierID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
