package repository

import "github.com/tu-usuario/inventario-console/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetBySKU retornan (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar dentro de una tx.
	GetForUpdate(id int64) (*entity.Product, error)
	// Update actualiza los campos editables; nunca modifica Quantity (se maneja vía movimientos).
	Update(product *entity.Product) error
	// UpdateQuantity fija el stock del producto (usado solo por el registrador de movimientos).
	UpdateQuantity(id int64, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id int64) error
}
