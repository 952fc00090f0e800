package finance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
	domsales "github.com/jhoicas/autoparts-api/internal/domain/sales"
	"github.com/jhoicas/autoparts-api/pkg/logger"
)

// TransactionUseCase libro de caja: CRUD numerado y reportes financieros.
type TransactionUseCase struct {
	txnRepo repository.TransactionRepository
	numbers NumberGenerator
	log     *logger.Logger
	now     func() time.Time
}

// NewTransactionUseCase construye el caso de uso. log nil usa un logger mudo.
func NewTransactionUseCase(txnRepo repository.TransactionRepository, numbers NumberGenerator, log *logger.Logger) *TransactionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TransactionUseCase{
		txnRepo: txnRepo,
		numbers: numbers,
		log:     log.Component("finance"),
		now:     time.Now,
	}
}

// Create registra una transacción con número TXN-AAMMDD-NNNN. Si el número ya existe
// se reintenta con uno nuevo hasta MaxNumberAttempts veces.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	now := uc.now()
	t := &entity.Transaction{ID: uuid.New().String(), CreatedAt: now}
	if err := applyTransaction(t, in, now); err != nil {
		return nil, err
	}
	t.UpdatedAt = now
	for attempt := 1; ; attempt++ {
		number, err := uc.numbers.Next(ctx, domsales.PrefixTransaction, now)
		if err != nil {
			return nil, err
		}
		t.TransactionNumber = number
		err = uc.txnRepo.Create(ctx, t)
		if errors.Is(err, domain.ErrNumberCollision) && attempt < domsales.MaxNumberAttempts {
			uc.log.Warn().Str("transaction_number", number).Int("attempt", attempt).Msg("número de transacción repetido, reintentando")
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	resp := dto.NewTransactionResponse(t)
	return &resp, nil
}

// Get detalle de una transacción.
func (uc *TransactionUseCase) Get(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewTransactionResponse(t)
	return &resp, nil
}

// List transacciones paginadas, más recientes primero. start_date y end_date van juntos.
func (uc *TransactionUseCase) List(ctx context.Context, f dto.TransactionFilter) (*dto.ListResponse[dto.TransactionResponse], error) {
	filter := repository.TransactionFilter{
		Type:     f.Type,
		Category: f.Category,
		Location: f.Location,
		Status:   f.Status,
	}
	if f.StartDate != "" || f.EndDate != "" {
		w, err := dto.PeriodQuery{StartDate: f.StartDate, EndDate: f.EndDate}.Window(uc.now())
		if err != nil {
			return nil, err
		}
		filter.Date = repository.Days(w.From, w.To)
	}
	list, total, err := uc.txnRepo.List(ctx, filter, f.ToRepo())
	if err != nil {
		return nil, err
	}
	page := dto.NewListResponse(dto.NewTransactionResponses(list), total, f.PageRequest)
	return &page, nil
}

// Update reemplaza los campos editables; el número no cambia.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if err := applyTransaction(t, in, now); err != nil {
		return nil, err
	}
	t.UpdatedAt = now
	if err := uc.txnRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	resp := dto.NewTransactionResponse(t)
	return &resp, nil
}

// Delete borra la transacción.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	return uc.txnRepo.Delete(ctx, id)
}

// ── Reportes ──

// Summary ingresos y egresos completados del periodo por categoría, cuenta y región.
func (uc *TransactionUseCase) Summary(ctx context.Context, q dto.PeriodQuery) (*reporting.FinancialSummary, error) {
	w, err := q.Window(uc.now())
	if err != nil {
		return nil, err
	}
	txns, err := uc.completed(ctx, q.Location, repository.Days(w.From, w.To))
	if err != nil {
		return nil, err
	}
	s := reporting.SummarizeTransactions(w, txns)
	return &s, nil
}

// CashFlow neto mensual del año con acumulado.
func (uc *TransactionUseCase) CashFlow(ctx context.Context, q dto.YearQuery) (*reporting.CashFlow, error) {
	year := q.YearOr(uc.now())
	w, err := reporting.YearWindow(year)
	if err != nil {
		return nil, err
	}
	txns, err := uc.completed(ctx, q.Location, repository.Days(w.From, w.To))
	if err != nil {
		return nil, err
	}
	cf := reporting.ComputeCashFlow(year, txns)
	return &cf, nil
}

// Balances saldo de las cuatro cuentas sobre todas las transacciones completadas.
func (uc *TransactionUseCase) Balances(ctx context.Context) (*reporting.AccountBalances, error) {
	txns, err := uc.completed(ctx, "", repository.DateRange{})
	if err != nil {
		return nil, err
	}
	b := reporting.ComputeAccountBalances(txns)
	return &b, nil
}

func (uc *TransactionUseCase) completed(ctx context.Context, location string, dates repository.DateRange) ([]*entity.Transaction, error) {
	txns, _, err := uc.txnRepo.List(ctx, repository.TransactionFilter{
		Status:   entity.TransactionStatusCompleted,
		Location: location,
		Date:     dates,
	}, repository.Page{})
	return txns, err
}

func (uc *TransactionUseCase) get(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := uc.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("transacción %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

// applyTransaction copia la entrada y deriva amount_usd = amount * exchange_rate.
func applyTransaction(t *entity.Transaction, in dto.TransactionRequest, now time.Time) error {
	if !in.Amount.IsPositive() {
		return fmt.Errorf("amount debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	rate := decimal.NewFromInt(1)
	if in.ExchangeRate.Valid {
		if !in.ExchangeRate.Decimal.IsPositive() {
			return fmt.Errorf("exchange_rate debe ser mayor que cero: %w", domain.ErrInvalidInput)
		}
		rate = in.ExchangeRate.Decimal
	}
	t.Type = in.Type
	t.Category = in.Category
	t.Amount = in.Amount
	t.Currency = orDefault(in.Currency, entity.CurrencyAED)
	t.ExchangeRate = rate
	t.AmountUSD = in.Amount.Mul(rate).Round(2)
	if d := in.Date.TimePtr(); d != nil {
		t.Date = *d
	} else if t.Date.IsZero() {
		t.Date = dto.NewDate(now).Time
	}
	t.PaymentMethod = in.PaymentMethod
	t.Account = in.Account
	t.Reference = in.Reference
	t.Description = in.Description
	t.PropertyID = dto.Trimmed(in.PropertyID)
	t.OrderID = dto.Trimmed(in.OrderID)
	t.ContainerID = dto.Trimmed(in.ContainerID)
	t.Location = in.Location
	t.Status = orDefault(in.Status, entity.TransactionStatusCompleted)
	t.Notes = in.Notes
	return nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
