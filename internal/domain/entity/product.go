package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es el stock disponible y se modifica únicamente a través del
// registrador de movimientos; el CRUD de productos nunca lo toca.
type Product struct {
	ID                int64
	Name              string
	SKU               string // código único
	Category          *string
	Price             decimal.Decimal // precio unitario
	Quantity          int64           // stock disponible (>= 0)
	LowStockThreshold int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral de stock bajo.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}
