package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/application/usecase"
	"github.com/tu-usuario/inventario-console/internal/domain"
)

// ReorderRuleHandler maneja las peticiones HTTP de reglas de reposición (protegido).
type ReorderRuleHandler struct {
	uc *usecase.ReorderRuleUseCase
}

func NewReorderRuleHandler(uc *usecase.ReorderRuleUseCase) *ReorderRuleHandler {
	return &ReorderRuleHandler{uc: uc}
}

// Upsert godoc
// @Summary      Crear o reemplazar regla de reposición
// @Description  Si el producto ya tiene regla se sobreescribe; si no, se crea.
// @Tags         reorder-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertReorderRuleRequest  true  "Regla completa"
// @Success      200   {object}  dto.ReorderRuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reorder-rules [post]
func (h *ReorderRuleHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertReorderRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rule, err := h.uc.Upsert(in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(rule)
}

// Patch godoc
// @Summary      Actualizar parcialmente una regla de reposición
// @Description  Sólo se modifican los campos presentes; la regla resultante se
//
//	vuelve a validar completa (min_stock < max_stock).
//
// @Tags         reorder-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID de la regla"
// @Param        body  body  dto.PatchReorderRuleRequest   true  "Campos a actualizar"
// @Success      200   {object}  dto.ReorderRuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reorder-rules/{id} [put]
func (h *ReorderRuleHandler) Patch(c *fiber.Ctx) error {
	id := parseID(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.PatchReorderRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rule, err := h.uc.Patch(id, in)
	if err != nil {
		return h.mapError(c, err)
	}
	if rule == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
	}
	return c.JSON(rule)
}

// List godoc
// @Summary      Listar reglas de reposición
// @Tags         reorder-rules
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReorderRuleResponse
// @Router       /api/reorder-rules [get]
func (h *ReorderRuleHandler) List(c *fiber.Ctx) error {
	rules, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rules)
}

// Delete godoc
// @Summary      Eliminar regla de reposición
// @Tags         reorder-rules
// @Security     Bearer
// @Param        id  path  int  true  "ID de la regla"
// @Success      204  "Sin contenido"
// @Router       /api/reorder-rules/{id} [delete]
func (h *ReorderRuleHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReorderRuleHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
