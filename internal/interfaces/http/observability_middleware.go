package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/inventario-console/pkg/logger"
	"github.com/tu-usuario/inventario-console/pkg/metrics"
)

// HeaderRequestID header de correlación; si el cliente no lo envía se genera uno.
const HeaderRequestID = "X-Request-ID"

// RequestLogger registra cada petición con zerolog (método, ruta, estado,
// duración, request id) y alimenta los contadores Prometheus.
func RequestLogger(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(HeaderRequestID, reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		m.RequestCounter.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), path).Observe(elapsed.Seconds())

		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", elapsed).
			Msg("petición HTTP")

		return err
	}
}
