package repository

import (
	"time"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ProductID *int64
	Type      string // vacío = todos
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto de persistencia para StockMovement.
// Los movimientos son inmutables: solo se crean y se consultan.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List lista movimientos según filtro, ordenados por fecha de movimiento
	// descendente y luego por id descendente.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	ListByProduct(productID int64, limit int) ([]*entity.StockMovement, error)
	ListRecent(limit int) ([]*entity.StockMovement, error)
}
