package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// Los movimientos son inmutables: no hay Update ni Delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, product_id, lot_id, type, quantity, reason, reference, movement_date, previous_qty, new_qty, created_at`

// Create persiste un movimiento y asigna ID y created_at generados por la BD.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, lot_id, type, quantity, reason, reference, movement_date, previous_qty, new_qty, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.LotID, movement.Type, movement.Quantity,
		movement.Reason, movement.Reference, movement.MovementDate,
		movement.PreviousQty, movement.NewQty,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List lista movimientos según filtro, ordenados por fecha de movimiento
// descendente y luego por id descendente (desempate estable).
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != nil {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, *filter.ProductID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND movement_date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND movement_date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY movement_date DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	return r.queryList(query, args...)
}

// ListByProduct lista los movimientos más recientes de un producto.
func (r *StockMovementRepo) ListByProduct(productID int64, limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE product_id = $1 ORDER BY movement_date DESC, id DESC LIMIT $2`
	return r.queryList(query, productID, limit)
}

// ListRecent lista los movimientos más recientes de todo el inventario.
func (r *StockMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY movement_date DESC, id DESC LIMIT $1`
	return r.queryList(query, limit)
}

func (r *StockMovementRepo) queryList(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.LotID, &m.Type, &m.Quantity,
			&m.Reason, &m.Reference, &m.MovementDate, &m.PreviousQty, &m.NewQty, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
