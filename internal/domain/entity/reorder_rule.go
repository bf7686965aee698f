package entity

import "time"

// ReorderRule configuración sugerida de reposición por producto.
// Es solo configuración: el registrador de movimientos nunca la consulta.
// Invariante MinStock < MaxStock, verificada en la capa de aplicación.
type ReorderRule struct {
	ID         int64
	ProductID  int64
	MinStock   int64
	MaxStock   int64
	ReorderQty int64
	SupplierID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
