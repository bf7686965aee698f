package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID lee un parámetro de ruta como entero positivo. Retorna 0 si es inválido.
func parseID(c *fiber.Ctx, name string) int64 {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
