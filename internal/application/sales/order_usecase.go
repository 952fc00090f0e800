package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
	domsales "github.com/jhoicas/autoparts-api/internal/domain/sales"
	"github.com/jhoicas/autoparts-api/pkg/logger"
)

var tracer = otel.Tracer("autoparts-api/sales")

// OrderUseCase flujo de órdenes: creación con reserva de stock, pagos, estado y borrado.
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	numbers   NumberGenerator
	events    EventPublisher
	metrics   Metrics
	renderer  OrderDocumentRenderer
	log       *logger.Logger
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso. metrics y renderer son opcionales.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	numbers NumberGenerator,
	events EventPublisher,
	metrics Metrics,
	renderer OrderDocumentRenderer,
	log *logger.Logger,
) *OrderUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		numbers:   numbers,
		events:    events,
		metrics:   metrics,
		renderer:  renderer,
		log:       log.Component("sales"),
		now:       time.Now,
	}
}

// ── Creación ──

// Create convierte el carrito en una orden. Cliente, piezas, reservas de stock, cabecera y
// líneas se escriben en una sola transacción: cualquier fallo deja la base sin cambios.
// Si el número generado ya existe se reintenta la transacción completa con otro número.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	ctx, span := tracer.Start(ctx, "sales.CreateOrder", trace.WithAttributes(
		attribute.String("customer.id", in.CustomerID),
		attribute.Int("order.lines", len(in.Items)),
	))
	defer span.End()

	order, err := uc.create(ctx, in)
	if err != nil {
		uc.metrics.OrderRejected(rejectionReason(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("order.number", order.OrderNumber))
	uc.metrics.OrderCreated()
	uc.log.Info().
		Str("order_number", order.OrderNumber).
		Str("total_amount", order.TotalAmount.String()).
		Int("lines", len(order.Items)).
		Msg("orden creada")

	uc.publish(ctx, EventOrderCreated, order, map[string]interface{}{
		"customer_id":  order.CustomerID,
		"total_amount": order.TotalAmount,
		"currency":     order.Currency,
		"lines":        len(order.Items),
	})
	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

func (uc *OrderUseCase) create(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	if err := validateCart(in); err != nil {
		return nil, err
	}
	var created *entity.Order
	for attempt := 1; ; attempt++ {
		now := uc.now()
		number, err := uc.numbers.Next(ctx, domsales.PrefixOrder, now)
		if err != nil {
			return nil, fmt.Errorf("número de orden: %w", err)
		}
		err = uc.txRunner.RunSales(ctx, func(
			inventoryRepo repository.InventoryRepository,
			orderRepo repository.OrderRepository,
			customerRepo repository.CustomerRepository,
			_ repository.TransactionRepository,
		) error {
			o, err := buildOrder(ctx, in, number, now, inventoryRepo, orderRepo, customerRepo)
			if err != nil {
				return err
			}
			created = o
			return nil
		})
		if errors.Is(err, domain.ErrNumberCollision) && attempt < domsales.MaxNumberAttempts {
			uc.log.Warn().Str("order_number", number).Int("attempt", attempt).Msg("número de orden repetido, reintentando")
			continue
		}
		if err != nil {
			return nil, err
		}
		return created, nil
	}
}

func validateCart(in dto.CreateOrderRequest) error {
	if in.CustomerID == "" {
		return fmt.Errorf("customer_id requerido: %w", domain.ErrInvalidInput)
	}
	if in.Location == "" {
		return fmt.Errorf("location requerido: %w", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("la orden necesita al menos una línea: %w", domain.ErrInvalidInput)
	}
	if err := checkCharges(in.Discount, in.Tax, in.ShippingCost); err != nil {
		return err
	}
	for i, line := range in.Items {
		if line.InventoryID == "" || line.Quantity <= 0 {
			return fmt.Errorf("línea %d: inventory_id y quantity > 0 requeridos: %w", i+1, domain.ErrInvalidInput)
		}
		if line.Discount.IsNegative() {
			return fmt.Errorf("línea %d: descuento negativo: %w", i+1, domain.ErrInvalidInput)
		}
		if err := domsales.CheckMoney("discount", line.Discount); err != nil {
			return fmt.Errorf("línea %d: %w", i+1, err)
		}
		if line.UnitPrice.Valid {
			if err := domsales.CheckMoney("unit_price", line.UnitPrice.Decimal); err != nil {
				return fmt.Errorf("línea %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// checkCharges valida descuento, impuesto y envío de cabecera.
func checkCharges(discount, tax, shipping decimal.Decimal) error {
	if discount.IsNegative() || tax.IsNegative() || shipping.IsNegative() {
		return fmt.Errorf("descuento, impuesto y envío no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	if err := domsales.CheckMoney("discount", discount); err != nil {
		return err
	}
	if err := domsales.CheckMoney("tax", tax); err != nil {
		return err
	}
	return domsales.CheckMoney("shipping_cost", shipping)
}

// buildOrder corre dentro de la transacción: reserva cada línea y escribe cabecera y líneas.
func buildOrder(
	ctx context.Context,
	in dto.CreateOrderRequest,
	number string,
	now time.Time,
	inventoryRepo repository.InventoryRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
) (*entity.Order, error) {
	customer, err := customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %s: %w", in.CustomerID, domain.ErrNotFound)
	}

	order := &entity.Order{
		ID:              uuid.New().String(),
		OrderNumber:     number,
		CustomerID:      customer.ID,
		OrderDate:       now,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   orDefault(in.PaymentMethod, entity.OrderPaymentCash),
		Discount:        in.Discount,
		Tax:             in.Tax,
		ShippingCost:    in.ShippingCost,
		PaidAmount:      decimal.Zero,
		Currency:        orDefault(in.Currency, entity.CurrencyAED),
		Location:        in.Location,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
		Customer:        customer,
	}

	for i, line := range in.Items {
		item, err := inventoryRepo.GetByID(ctx, line.InventoryID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("pieza %s: %w", line.InventoryID, domain.ErrNotFound)
		}
		unitPrice, err := domsales.UnitPrice(line.UnitPrice, item)
		if err != nil {
			return nil, err
		}
		total := domsales.LineTotal(unitPrice, line.Quantity, line.Discount)
		if total.IsNegative() {
			return nil, fmt.Errorf("línea %d: el descuento supera el importe: %w", i+1, domain.ErrInvalidInput)
		}
		reserved, err := inventoryRepo.Reserve(ctx, item.ID, line.Quantity)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return nil, fmt.Errorf("%s (%s): pedido %d: %w", item.PartName, item.SKU, line.Quantity, domain.ErrInsufficientStock)
			}
			return nil, err
		}
		order.Items = append(order.Items, &entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			InventoryID: item.ID,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			Discount:    line.Discount,
			TotalPrice:  total,
			CreatedAt:   now,
			Inventory:   reserved,
		})
	}

	order.Subtotal = domsales.Subtotal(order.Items)
	domsales.Recalculate(order)

	if err := orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	for _, it := range order.Items {
		if err := orderRepo.CreateItem(ctx, it); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

// ── Pagos ──

// RecordPayment suma el pago a la orden, recalcula el estado de pago y registra la
// transacción de ingreso correspondiente, ambas escrituras en la misma transacción.
// El sobrepago se acepta y queda registrado; el saldo resultante es negativo.
func (uc *OrderUseCase) RecordPayment(ctx context.Context, orderID string, in dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	ctx, span := tracer.Start(ctx, "sales.RecordPayment", trace.WithAttributes(
		attribute.String("order.id", orderID),
		attribute.String("payment.amount", in.Amount.String()),
	))
	defer span.End()

	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("el monto debe ser positivo: %w", domain.ErrInvalidInput)
	}
	if err := domsales.CheckMoney("amount", in.Amount); err != nil {
		return nil, err
	}

	var (
		order *entity.Order
		txn   *entity.Transaction
	)
	for attempt := 1; ; attempt++ {
		now := uc.now()
		number, err := uc.numbers.Next(ctx, domsales.PrefixTransaction, now)
		if err != nil {
			return nil, fmt.Errorf("número de transacción: %w", err)
		}
		err = uc.txRunner.RunSales(ctx, func(
			_ repository.InventoryRepository,
			orderRepo repository.OrderRepository,
			_ repository.CustomerRepository,
			txnRepo repository.TransactionRepository,
		) error {
			o, err := orderRepo.GetForUpdate(ctx, orderID)
			if err != nil {
				return err
			}
			if o == nil {
				return fmt.Errorf("orden %s: %w", orderID, domain.ErrNotFound)
			}
			o.PaidAmount = o.PaidAmount.Add(in.Amount)
			if in.PaymentMethod != "" {
				o.PaymentMethod = in.PaymentMethod
			}
			o.PaymentStatus = domsales.PaymentStatusFor(o.PaidAmount, o.TotalAmount)
			o.UpdatedAt = now
			if err := orderRepo.Update(ctx, o); err != nil {
				return err
			}

			oid := o.ID
			t := &entity.Transaction{
				ID:                uuid.New().String(),
				TransactionNumber: number,
				Type:              entity.TransactionTypeIncome,
				Category:          entity.TxCategorySales,
				Amount:            in.Amount,
				Currency:          o.Currency,
				ExchangeRate:      decimal.NewFromInt(1),
				AmountUSD:         in.Amount,
				Date:              now,
				PaymentMethod:     txPaymentMethod(o.PaymentMethod),
				Account:           in.Account,
				Reference:         in.Reference,
				Description:       fmt.Sprintf("Pago de la orden %s", o.OrderNumber),
				OrderID:           &oid,
				Location:          o.Location,
				Status:            entity.TransactionStatusCompleted,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			if err := txnRepo.Create(ctx, t); err != nil {
				return err
			}
			order, txn = o, t
			return nil
		})
		if errors.Is(err, domain.ErrNumberCollision) && attempt < domsales.MaxNumberAttempts {
			uc.log.Warn().Str("transaction_number", number).Int("attempt", attempt).Msg("número de transacción repetido, reintentando")
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		break
	}

	uc.metrics.PaymentRecorded()
	balance := order.Balance()
	event := uc.log.Info
	if balance.IsNegative() {
		event = uc.log.Warn
	}
	event().Str("order_number", order.OrderNumber).
		Str("amount", in.Amount.String()).
		Str("balance", balance.String()).
		Str("payment_status", order.PaymentStatus).
		Msg("pago registrado")

	uc.publish(ctx, EventOrderPaymentRecorded, order, map[string]interface{}{
		"amount":             in.Amount,
		"paid_amount":        order.PaidAmount,
		"balance":            balance,
		"payment_status":     order.PaymentStatus,
		"transaction_number": txn.TransactionNumber,
	})
	return &dto.PaymentResponse{
		Order:       dto.NewOrderResponse(order),
		Transaction: dto.NewTransactionResponse(txn),
		Balance:     balance,
	}, nil
}

// txPaymentMethod el crédito a cliente no es un medio de cobro del libro de caja.
func txPaymentMethod(orderMethod string) string {
	switch orderMethod {
	case entity.OrderPaymentCash:
		return entity.TxPaymentCash
	case entity.OrderPaymentBankTransfer:
		return entity.TxPaymentBankTransfer
	case entity.OrderPaymentCreditCard:
		return entity.TxPaymentCreditCard
	default:
		return ""
	}
}

// ── Estado, edición y borrado ──

var orderStatuses = map[string]bool{
	entity.OrderStatusPending:    true,
	entity.OrderStatusConfirmed:  true,
	entity.OrderStatusProcessing: true,
	entity.OrderStatusShipped:    true,
	entity.OrderStatusDelivered:  true,
	entity.OrderStatusCancelled:  true,
}

// UpdateStatus cambia el estado de la orden. Cancelar no devuelve stock al inventario.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !orderStatuses[in.Status] {
		return nil, fmt.Errorf("estado %q: %w", in.Status, domain.ErrInvalidInput)
	}
	var (
		order *entity.Order
		from  string
	)
	err := uc.inOrderTx(ctx, id, func(o *entity.Order, orderRepo repository.OrderRepository) error {
		from = o.Status
		o.Status = in.Status
		o.UpdatedAt = uc.now()
		order = o
		return orderRepo.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	if from != order.Status {
		uc.publish(ctx, EventOrderStatusChanged, order, map[string]string{"from": from, "to": order.Status})
	}
	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

// Update reemplaza los campos editables de la cabecera y recalcula total y estado de pago.
// Las líneas son inmutables, por lo que el subtotal no cambia.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if err := checkCharges(in.Discount, in.Tax, in.ShippingCost); err != nil {
		return nil, err
	}
	var order *entity.Order
	err := uc.inOrderTx(ctx, id, func(o *entity.Order, orderRepo repository.OrderRepository) error {
		if in.Location != "" {
			o.Location = in.Location
		}
		if in.PaymentMethod != "" {
			o.PaymentMethod = in.PaymentMethod
		}
		o.Discount = in.Discount
		o.Tax = in.Tax
		o.ShippingCost = in.ShippingCost
		o.ShippingAddress = in.ShippingAddress
		o.Notes = in.Notes
		o.UpdatedAt = uc.now()
		domsales.Recalculate(o)
		order = o
		return orderRepo.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

// Delete borra una orden pendiente junto con sus líneas. Cualquier otro estado es ErrConflict.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	var order *entity.Order
	err := uc.inOrderTx(ctx, id, func(o *entity.Order, orderRepo repository.OrderRepository) error {
		if o.Status != entity.OrderStatusPending {
			return fmt.Errorf("solo se pueden eliminar órdenes pendientes (estado actual: %s): %w", o.Status, domain.ErrConflict)
		}
		order = o
		return orderRepo.Delete(ctx, o.ID)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("order_number", order.OrderNumber).Msg("orden eliminada")
	uc.publish(ctx, EventOrderDeleted, order, nil)
	return nil
}

// inOrderTx bloquea la orden dentro de una transacción y aplica fn sobre ella.
func (uc *OrderUseCase) inOrderTx(ctx context.Context, id string, fn func(o *entity.Order, orderRepo repository.OrderRepository) error) error {
	return uc.txRunner.RunSales(ctx, func(
		_ repository.InventoryRepository,
		orderRepo repository.OrderRepository,
		_ repository.CustomerRepository,
		_ repository.TransactionRepository,
	) error {
		o, err := orderRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return fmt.Errorf("orden %s: %w", id, domain.ErrNotFound)
		}
		return fn(o, orderRepo)
	})
}

// ── Lectura ──

// Get detalle de la orden con cliente y líneas.
func (uc *OrderUseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewOrderResponse(o)
	return &resp, nil
}

func (uc *OrderUseCase) load(ctx context.Context, id string) (*entity.Order, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("orden %s: %w", id, domain.ErrNotFound)
	}
	items, err := uc.orderRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// List órdenes paginadas, más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, f dto.OrderFilter) (*dto.ListResponse[dto.OrderResponse], error) {
	orders, total, err := uc.orderRepo.List(ctx, repository.OrderFilter{
		Status:        f.Status,
		PaymentStatus: f.PaymentStatus,
		Location:      f.Location,
		CustomerID:    f.CustomerID,
	}, f.ToRepo())
	if err != nil {
		return nil, err
	}
	resp := dto.NewListResponse(dto.NewOrderResponses(orders), total, f.PageRequest)
	return &resp, nil
}

// MonthlySales ventas no canceladas del periodo: totales y conteos por estado.
func (uc *OrderUseCase) MonthlySales(ctx context.Context, q dto.PeriodQuery) (*dto.MonthlySalesResponse, error) {
	w, err := q.Window(uc.now())
	if err != nil {
		return nil, err
	}
	orders, _, err := uc.orderRepo.List(ctx, repository.OrderFilter{
		Location:         q.Location,
		ExcludeCancelled: true,
		OrderDate:        repository.Days(w.From, w.To),
	}, repository.Page{})
	if err != nil {
		return nil, err
	}
	return &dto.MonthlySalesResponse{
		Period:  w,
		Summary: reporting.SummarizeSales(orders),
		Orders:  dto.NewOrderResponses(orders),
	}, nil
}

// PDF confirmación de la orden. Devuelve el número de orden para el nombre del archivo.
func (uc *OrderUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", fmt.Errorf("generador de PDF no configurado")
	}
	o, err := uc.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.renderer.RenderOrder(o)
	if err != nil {
		return nil, "", fmt.Errorf("render pdf %s: %w", o.OrderNumber, err)
	}
	return b, o.OrderNumber, nil
}

// publish envía el evento después del commit. Un fallo solo se registra.
func (uc *OrderUseCase) publish(ctx context.Context, typ string, o *entity.Order, payload interface{}) {
	if uc.events == nil {
		return
	}
	evt := Event{
		Type:        typ,
		OccurredAt:  uc.now().UTC(),
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Payload:     payload,
	}
	if err := uc.events.Publish(ctx, evt); err != nil {
		uc.log.Warn().Err(err).Str("event", typ).Str("order_number", o.OrderNumber).Msg("no se pudo publicar el evento")
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
