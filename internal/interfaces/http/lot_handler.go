package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/application/usecase"
	"github.com/tu-usuario/inventario-console/internal/domain"
)

// LotHandler maneja las peticiones HTTP de lotes (protegido).
type LotHandler struct {
	uc *usecase.LotUseCase
}

func NewLotHandler(uc *usecase.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lote para un producto
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID del producto"
// @Param        body  body  dto.CreateLotRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/lots [post]
func (h *LotHandler) Create(c *fiber.Ctx) error {
	productID := parseID(c, "id")
	if productID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lot, err := h.uc.Create(productID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_LOT", Message: "ya existe un lote con ese número para el producto"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(lot)
}

// ListByProduct godoc
// @Summary      Listar lotes de un producto
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}   dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/lots [get]
func (h *LotHandler) ListByProduct(c *fiber.Ctx) error {
	productID := parseID(c, "id")
	if productID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	lots, err := h.uc.ListByProduct(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(lots)
}

// Update godoc
// @Summary      Actualizar lote
// @Description  Actualización parcial de número de lote y fecha de caducidad.
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID del lote"
// @Param        body  body  dto.UpdateLotRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lots/{id} [put]
func (h *LotHandler) Update(c *fiber.Ctx) error {
	id := parseID(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lot, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if lot == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(lot)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         lots
// @Security     Bearer
// @Param        id  path  int  true  "ID del lote"
// @Success      204  "Sin contenido"
// @Router       /api/lots/{id} [delete]
func (h *LotHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
