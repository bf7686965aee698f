package repository

import "github.com/tu-usuario/inventario-console/internal/domain/entity"

// LotRepository define el puerto de persistencia para Lot.
// GetByID retorna (nil, nil) si el lote no existe.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id int64) (*entity.Lot, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar dentro de una tx.
	GetForUpdate(id int64) (*entity.Lot, error)
	// ListByProduct lista los lotes del producto ordenados por vencimiento ascendente.
	ListByProduct(productID int64) ([]*entity.Lot, error)
	// Update actualiza número de lote y vencimiento; nunca Quantity.
	Update(lot *entity.Lot) error
	// UpdateQuantity fija el stock del lote (usado solo por el registrador de movimientos).
	UpdateQuantity(id int64, quantity int64) error
	Delete(id int64) error
}
