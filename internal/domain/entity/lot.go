package entity

import "time"

// Lot representa un sub-lote del stock de un producto, con fecha de
// vencimiento opcional. Quantity se modifica solo vía movimientos.
type Lot struct {
	ID         int64
	ProductID  int64
	LotNumber  string
	ExpiryDate *time.Time
	Quantity   int64 // >= 0
	CreatedAt  time.Time
}
