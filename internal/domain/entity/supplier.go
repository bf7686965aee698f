package entity

import "time"

// Supplier representa un proveedor (datos de referencia, sin lógica de negocio).
type Supplier struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
}
