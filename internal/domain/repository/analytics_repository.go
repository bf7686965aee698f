package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
)

// AnalyticsRepository consultas read-only de agregación para el dashboard
// y la valoración de inventario. No modifica estado.
type AnalyticsRepository interface {
	// GetInventoryTotals retorna el número de productos y el valor total del
	// inventario (SUM(price * quantity)).
	GetInventoryTotals(ctx context.Context) (totalProducts int64, totalValue decimal.Decimal, err error)
	// ListLowStock lista los productos con quantity <= low_stock_threshold,
	// ordenados por nombre.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
}
