// Package sales contiene los casos de uso de clientes y órdenes: creación con reserva
// de stock, pagos, cambios de estado y el reporte de ventas mensuales.
package sales

import (
	"context"
	"time"

	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repositorios atados a ella.
// Si fn devuelve error se hace Rollback y nada de lo escrito persiste.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		inventoryRepo repository.InventoryRepository,
		orderRepo repository.OrderRepository,
		customerRepo repository.CustomerRepository,
		txnRepo repository.TransactionRepository,
	) error) error
}

// NumberGenerator entrega el siguiente número de documento (ORD-/TXN-<YYMMDD>-<n>).
type NumberGenerator interface {
	Next(ctx context.Context, prefix string, at time.Time) (string, error)
}

// Tipos de evento de dominio.
const (
	EventOrderCreated         = "order.created"
	EventOrderPaymentRecorded = "order.payment_recorded"
	EventOrderStatusChanged   = "order.status_changed"
	EventOrderDeleted         = "order.deleted"
)

// Event evento publicado después del commit.
type Event struct {
	Type        string      `json:"type"`
	OccurredAt  time.Time   `json:"occurred_at"`
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	Payload     interface{} `json:"payload,omitempty"`
}

// EventPublisher publica eventos de dominio (Kafka o log).
type EventPublisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// Metrics contadores del flujo de ventas.
type Metrics interface {
	OrderCreated()
	OrderRejected(reason string)
	PaymentRecorded()
}

type nopMetrics struct{}

func (nopMetrics) OrderCreated()        {}
func (nopMetrics) OrderRejected(string) {}
func (nopMetrics) PaymentRecorded()     {}

// OrderDocumentRenderer genera la confirmación de una orden (PDF).
type OrderDocumentRenderer interface {
	RenderOrder(o *entity.Order) ([]byte, error)
}
