package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN     = "IN"     // entrada: suma Quantity
	MovementTypeOUT    = "OUT"    // salida: resta Quantity
	MovementTypeADJUST = "ADJUST" // corrección absoluta: fija el stock en Quantity
)

// ValidMovementType verifica que el tipo sea uno de los tres soportados.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT || t == MovementTypeADJUST
}

// StockMovement es el registro inmutable de auditoría de un ajuste de stock.
// PreviousQty y NewQty son la foto del stock del producto justo antes y
// después de aplicar el movimiento; una vez creado nunca se modifica.
type StockMovement struct {
	ID           int64
	ProductID    int64
	LotID        *int64
	Type         string // IN, OUT, ADJUST
	Quantity     int64  // delta solicitado (IN/OUT) o valor objetivo (ADJUST), >= 0
	Reason       *string
	Reference    *string
	MovementDate time.Time // puede ser retroactiva; la define el caller
	PreviousQty  int64
	NewQty       int64
	CreatedAt    time.Time
}
