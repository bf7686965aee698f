package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación read-only para dashboard y valoración.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventoryTotals retorna el número de productos y SUM(price * quantity).
// COALESCE deja el total en 0 con la tabla vacía.
func (r *AnalyticsRepo) GetInventoryTotals(ctx context.Context) (int64, decimal.Decimal, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(price * quantity), 0) FROM products`
	var count int64
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("inventory totals: %w", err)
	}
	return count, total, nil
}

// ListLowStock lista productos con quantity <= low_stock_threshold, por nombre.
func (r *AnalyticsRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity <= low_stock_threshold ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.Price,
			&p.Quantity, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
