package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de stock (IN, OUT, ADJUST) de
// forma transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único camino por el que cambia el stock de productos y lotes.
type RecordMovementUseCase struct {
	txRunner TxRunner
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento de stock.
// Quantity es el delta solicitado para IN/OUT o el valor objetivo para ADJUST;
// siempre >= 0 (las bajas de stock solo son alcanzables vía OUT).
// MovementDate en cero usa la hora actual; se aceptan fechas retroactivas.
type MovementInput struct {
	ProductID    int64
	LotID        *int64
	Type         string
	Quantity     int64
	Reason       string
	Reference    string
	MovementDate time.Time
}

// MovementResult producto actualizado, lote actualizado (nil si no aplica)
// y el registro de auditoría creado.
type MovementResult struct {
	Product  *entity.Product
	Lot      *entity.Lot
	Movement *entity.StockMovement
}

// RecordMovement valida la entrada, abre una transacción, bloquea las filas de
// producto y lote (SELECT FOR UPDATE), calcula las nuevas cantidades y persiste
// producto, lote y movimiento como una unidad. Cualquier rechazo (no existe,
// cantidad negativa, lote ajeno) hace rollback: nunca queda un movimiento
// registrado ni una escritura parcial.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if input.ProductID <= 0 || input.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.LotID != nil && *input.LotID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	movementDate := input.MovementDate
	if movementDate.IsZero() {
		movementDate = time.Now()
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto: dos movimientos concurrentes sobre el
		// mismo producto se serializan aquí.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		previousQty := product.Quantity
		newQty, err := applyMovement(input.Type, previousQty, input.Quantity)
		if err != nil {
			return err
		}

		var lot *entity.Lot
		if input.LotID != nil {
			lot, err = lotRepo.GetForUpdate(*input.LotID)
			if err != nil {
				return err
			}
			if lot == nil {
				return domain.ErrLotNotFound
			}
			if lot.ProductID != input.ProductID {
				return domain.ErrLotMismatch
			}
			lotNewQty, err := applyMovement(input.Type, lot.Quantity, input.Quantity)
			if err != nil {
				return err
			}
			if err := lotRepo.UpdateQuantity(lot.ID, lotNewQty); err != nil {
				return err
			}
			lot.Quantity = lotNewQty
		}

		if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
			return err
		}
		product.Quantity = newQty

		movement := &entity.StockMovement{
			ProductID:    input.ProductID,
			LotID:        input.LotID,
			Type:         input.Type,
			Quantity:     input.Quantity,
			Reason:       optionalText(input.Reason),
			Reference:    optionalText(input.Reference),
			MovementDate: movementDate,
			PreviousQty:  previousQty,
			NewQty:       newQty,
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}

		result = &MovementResult{Product: product, Lot: lot, Movement: movement}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyMovement calcula la nueva cantidad según el tipo. ADJUST es un brazo
// propio, no un delta con signo: fija el valor absoluto y deja que el par
// previous/new del movimiento documente la diferencia real.
func applyMovement(movType string, current, quantity int64) (int64, error) {
	var newQty int64
	switch movType {
	case entity.MovementTypeIN:
		newQty = current + quantity
	case entity.MovementTypeOUT:
		newQty = current - quantity
	case entity.MovementTypeADJUST:
		newQty = quantity
	default:
		return 0, domain.ErrInvalidInput
	}
	if newQty < 0 {
		return 0, domain.ErrNegativeQuantity
	}
	return newQty, nil
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
