package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/application/inventory"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
	"github.com/tu-usuario/inventario-console/pkg/metrics"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de stock (protegido).
type InventoryHandler struct {
	uc      *inventory.RecordMovementUseCase
	movRepo repository.StockMovementRepository
	metrics *metrics.Metrics
}

// NewInventoryHandler construye el handler. metrics puede ser nil (tests).
func NewInventoryHandler(uc *inventory.RecordMovementUseCase, movRepo repository.StockMovementRepository, m *metrics.Metrics) *InventoryHandler {
	return &InventoryHandler{uc: uc, movRepo: movRepo, metrics: m}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Registra un movimiento IN/OUT/ADJUST y actualiza atómicamente
//
//	el stock del producto y, si se indica lot_id, del lote.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, type, quantity, lot_id opcional, movement_date opcional (RFC 3339)"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	// Validación de forma en el borde; el caso de uso re-valida existencia y signo.
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id debe ser un entero positivo"})
	}
	if in.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser >= 0"})
	}
	if !entity.ValidMovementType(in.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser IN, OUT o ADJUST"})
	}
	if in.LotID != nil && *in.LotID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lot_id debe ser un entero positivo"})
	}
	var movementDate time.Time
	if in.MovementDate != "" {
		parsed, err := time.Parse(time.RFC3339, in.MovementDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movement_date debe ser ISO-8601 (RFC 3339)"})
		}
		movementDate = parsed
	}

	result, err := h.uc.RecordMovement(c.Context(), inventory.MovementInput{
		ProductID:    in.ProductID,
		LotID:        in.LotID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
		Reference:    in.Reference,
		MovementDate: movementDate,
	})
	h.countMovement(in.Type, err)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrLotNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		case errors.Is(err, domain.ErrLotMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "LOT_MISMATCH", Message: "el lote no pertenece al producto"})
		case errors.Is(err, domain.ErrNegativeQuantity):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_QUANTITY", Message: "la cantidad resultante no puede ser negativa"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := dto.RecordMovementResponse{
		Product:  dto.ToProductResponse(result.Product),
		Movement: dto.ToStockMovementResponse(result.Movement),
	}
	if result.Lot != nil {
		lot := dto.ToLotResponse(result.Lot)
		out.Lot = &lot
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Param        type        query  string  false  "IN | OUT | ADJUST"
// @Param        from        query  string  false  "Desde (RFC 3339)"
// @Param        to          query  string  false  "Hasta (RFC 3339)"
// @Param        limit       query  int     false  "Límite"  default(25)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		Limit:  c.QueryInt("limit", 25),
		Offset: c.QueryInt("offset", 0),
	}
	if filter.Limit <= 0 {
		filter.Limit = 25
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if raw := c.Query("product_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			filter.ProductID = &id
		}
	}
	if t := c.Query("type"); entity.ValidMovementType(t) {
		filter.Type = t
	}
	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.To = &to
		}
	}

	movements, err := h.movRepo.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.ToStockMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page: dto.PageResponse{
			Limit:   filter.Limit,
			Offset:  filter.Offset,
			HasMore: len(movements) == filter.Limit,
		},
	})
}

func (h *InventoryHandler) countMovement(movType string, err error) {
	if h.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	h.metrics.MovementCounter.WithLabelValues(movType, result).Inc()
}
