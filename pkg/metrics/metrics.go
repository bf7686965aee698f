// Package metrics expone los colectores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics colectores de la API y del registrador de movimientos.
type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	MovementCounter *prometheus.CounterVec
}

// New crea y registra los colectores en el registry indicado
// (usar prometheus.DefaultRegisterer en producción).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventario_http_requests_total",
				Help: "Total de peticiones HTTP por método, ruta y estado",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventario_http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		MovementCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventario_stock_movements_total",
				Help: "Movimientos de stock registrados por tipo y resultado",
			},
			[]string{"type", "result"},
		),
	}
	reg.MustRegister(m.RequestCounter, m.RequestDuration, m.MovementCounter)
	return m
}
