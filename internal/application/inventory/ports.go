package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el registrador de
// movimientos: o se confirman las tres escrituras (producto, lote, movimiento)
// o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
