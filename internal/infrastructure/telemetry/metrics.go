// Package telemetry expone métricas Prometheus y configura las trazas OpenTelemetry.
package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoparts_http_requests_total",
		Help: "Total de requests HTTP atendidos",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "autoparts_http_request_duration_seconds",
		Help:    "Latencia de los requests HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autoparts_orders_created_total",
		Help: "Órdenes creadas con éxito",
	})

	OrderRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoparts_order_rejections_total",
		Help: "Órdenes rechazadas por motivo",
	}, []string{"reason"})

	PaymentsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autoparts_payments_recorded_total",
		Help: "Pagos registrados sobre órdenes",
	})
)

// ObserveHTTP registra un request atendido.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SalesMetrics contadores del flujo de ventas.
type SalesMetrics struct{}

// OrderCreated suma una orden creada.
func (SalesMetrics) OrderCreated() { OrdersCreatedTotal.Inc() }

// OrderRejected suma un rechazo con su motivo (not_found, insufficient_stock, invalid_input, error).
func (SalesMetrics) OrderRejected(reason string) { OrderRejectionsTotal.WithLabelValues(reason).Inc() }

// PaymentRecorded suma un pago registrado.
func (SalesMetrics) PaymentRecorded() { PaymentsRecordedTotal.Inc() }
