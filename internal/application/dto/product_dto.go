package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          *string         `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Campos puntero = opcionales (nil significa "no tocar"): el patch es explícito,
// nunca se infiere presencia campo a campo sobre un mapa.
// Quantity no es editable: se maneja exclusivamente vía movimientos.
type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	SKU               *string          `json:"sku"`
	Category          *string          `json:"category"`
	Price             *decimal.Decimal `json:"price"`
	LowStockThreshold *int64           `json:"low_stock_threshold"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          *string         `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductDetailResponse producto con sus lotes, movimientos recientes y reglas de reposición.
type ProductDetailResponse struct {
	ProductResponse
	Lots         []LotResponse           `json:"lots"`
	Movements    []StockMovementResponse `json:"movements"`
	ReorderRules []ReorderRuleResponse   `json:"reorder_rules"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Category:          p.Category,
		Price:             p.Price,
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
