package finance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
	domsales "github.com/jhoicas/autoparts-api/internal/domain/sales"
)

type memTxns struct {
	byID      map[string]*entity.Transaction
	lastQuery repository.TransactionFilter
}

func newMemTxns(list ...*entity.Transaction) *memTxns {
	m := &memTxns{byID: map[string]*entity.Transaction{}}
	for _, t := range list {
		m.byID[t.ID] = t
	}
	return m
}

func (r *memTxns) Create(_ context.Context, t *entity.Transaction) error {
	for _, other := range r.byID {
		if other.TransactionNumber == t.TransactionNumber {
			return fmt.Errorf("transacción %s: %w", t.TransactionNumber, domain.ErrNumberCollision)
		}
	}
	r.byID[t.ID] = t
	return nil
}

func (r *memTxns) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	return r.byID[id], nil
}

func (r *memTxns) List(_ context.Context, f repository.TransactionFilter, _ repository.Page) ([]*entity.Transaction, int, error) {
	r.lastQuery = f
	out := []*entity.Transaction{}
	for _, t := range r.byID {
		switch {
		case f.Status != "" && t.Status != f.Status,
			f.Location != "" && t.Location != f.Location,
			f.Type != "" && t.Type != f.Type,
			f.PropertyID != "" && (t.PropertyID == nil || *t.PropertyID != f.PropertyID),
			f.HasProperty && t.PropertyID == nil,
			f.Date.From != nil && t.Date.Before(*f.Date.From),
			f.Date.To != nil && t.Date.After(*f.Date.To):
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, len(out), nil
}

func (r *memTxns) Update(_ context.Context, t *entity.Transaction) error {
	r.byID[t.ID] = t
	return nil
}

func (r *memTxns) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// seqNumbers entrega los números en orden y vuelve a empezar al agotarlos.
type seqNumbers struct {
	numbers []string
	calls   int
}

func (g *seqNumbers) Next(_ context.Context, prefix string, at time.Time) (string, error) {
	n := g.numbers[g.calls%len(g.numbers)]
	g.calls++
	return n, nil
}

type memProperties struct {
	repository.PropertyRepository
	byID map[string]*entity.Property
}

func (r *memProperties) Create(_ context.Context, p *entity.Property) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memProperties) GetByID(_ context.Context, id string) (*entity.Property, error) {
	return r.byID[id], nil
}

func (r *memProperties) List(_ context.Context, f repository.PropertyFilter, _ repository.Page) ([]*entity.Property, int, error) {
	out := []*entity.Property{}
	for _, p := range r.byID {
		if (f.Status != "" && p.Status != f.Status) || (f.Location != "" && p.Location != f.Location) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, len(out), nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, dd int) time.Time { return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC) }

func strPtr(s string) *string { return &s }

var fixedNow = time.Date(2026, time.March, 7, 10, 30, 0, 0, time.UTC)

func newTxnUseCase(repo *memTxns, numbers ...string) (*TransactionUseCase, *seqNumbers) {
	gen := &seqNumbers{numbers: numbers}
	uc := NewTransactionUseCase(repo, gen, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, gen
}

func TestCreate_DefaultsYMontoUSD(t *testing.T) {
	repo := newMemTxns()
	uc, _ := newTxnUseCase(repo, "TXN-260307-0001")

	got, err := uc.Create(context.Background(), dto.TransactionRequest{
		Type:         entity.TransactionTypeExpense,
		Category:     entity.TxCategoryShipping,
		Amount:       d("150000"),
		Currency:     entity.CurrencyJPY,
		ExchangeRate: decimal.NewNullDecimal(d("0.0067")),
		Location:     entity.LocationJapan,
	})
	require.NoError(t, err)
	assert.Equal(t, "TXN-260307-0001", got.TransactionNumber)
	assert.Equal(t, entity.TransactionStatusCompleted, got.Status)
	assert.True(t, d("1005").Equal(got.AmountUSD), "got %s", got.AmountUSD)
	assert.Equal(t, "2026-03-07", got.Date.Format("2006-01-02"))

	plain, err := uc.Create(context.Background(), dto.TransactionRequest{
		Type: entity.TransactionTypeIncome, Category: entity.TxCategorySales, Amount: d("200"), Location: entity.LocationDubai,
	})
	require.Error(t, err, "el generador solo tiene un número y ya está usado")
	assert.Nil(t, plain)
	assert.True(t, errors.Is(err, domain.ErrNumberCollision))
}

func TestCreate_ReintentaAnteColision(t *testing.T) {
	repo := newMemTxns(&entity.Transaction{ID: "old", TransactionNumber: "TXN-260307-0001"})
	uc, gen := newTxnUseCase(repo, "TXN-260307-0001", "TXN-260307-0002")

	got, err := uc.Create(context.Background(), dto.TransactionRequest{
		Type: entity.TransactionTypeIncome, Category: entity.TxCategorySales, Amount: d("200"), Location: entity.LocationDubai,
	})
	require.NoError(t, err)
	assert.Equal(t, "TXN-260307-0002", got.TransactionNumber)
	assert.Equal(t, 2, gen.calls)
	assert.Equal(t, entity.CurrencyAED, got.Currency)
	assert.True(t, d("1").Equal(got.ExchangeRate))
}

func TestCreate_AgotaIntentos(t *testing.T) {
	repo := newMemTxns(&entity.Transaction{ID: "old", TransactionNumber: "TXN-260307-0001"})
	uc, gen := newTxnUseCase(repo, "TXN-260307-0001")

	_, err := uc.Create(context.Background(), dto.TransactionRequest{
		Type: entity.TransactionTypeIncome, Category: entity.TxCategorySales, Amount: d("1"), Location: entity.LocationDubai,
	})
	assert.True(t, errors.Is(err, domain.ErrNumberCollision))
	assert.Equal(t, domsales.MaxNumberAttempts, gen.calls)
}

func TestUpdate_RecalculaMontoUSD(t *testing.T) {
	repo := newMemTxns(&entity.Transaction{ID: "t1", TransactionNumber: "TXN-260301-0001", Date: day(2026, 3, 1)})
	uc, _ := newTxnUseCase(repo)

	got, err := uc.Update(context.Background(), "t1", dto.TransactionRequest{
		Type: entity.TransactionTypeIncome, Category: entity.TxCategorySales, Amount: d("367.25"),
		ExchangeRate: decimal.NewNullDecimal(d("0.2723")), Location: entity.LocationDubai,
	})
	require.NoError(t, err)
	assert.Equal(t, "TXN-260301-0001", got.TransactionNumber)
	assert.True(t, d("100").Equal(got.AmountUSD), "got %s", got.AmountUSD)
	assert.Equal(t, "2026-03-01", got.Date.Format("2006-01-02"), "sin fecha conserva la existente")

	_, err = uc.Update(context.Background(), "nope", dto.TransactionRequest{Amount: d("1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestList_FechasVanJuntas(t *testing.T) {
	repo := newMemTxns()
	uc, _ := newTxnUseCase(repo)

	_, err := uc.List(context.Background(), dto.TransactionFilter{StartDate: "2026-03-01"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.List(context.Background(), dto.TransactionFilter{StartDate: "2026-03-01", EndDate: "2026-03-31"})
	require.NoError(t, err)
	require.NotNil(t, repo.lastQuery.Date.To)
	assert.Equal(t, 31, repo.lastQuery.Date.To.Day())
}

func ledger() *memTxns {
	return newMemTxns(
		&entity.Transaction{ID: "a", Type: entity.TransactionTypeIncome, Category: entity.TxCategorySales, Amount: d("1000"), Account: entity.AccountBankDubai, Location: entity.LocationDubai, Status: entity.TransactionStatusCompleted, Date: day(2026, 1, 10)},
		&entity.Transaction{ID: "b", Type: entity.TransactionTypeExpense, Category: entity.TxCategoryRent, Amount: d("300"), Account: entity.AccountCashDubai, Location: entity.LocationDubai, Status: entity.TransactionStatusCompleted, Date: day(2026, 3, 2)},
		&entity.Transaction{ID: "c", Type: entity.TransactionTypeIncome, Category: entity.TxCategorySales, Amount: d("500"), Account: entity.AccountBankDubai, Location: entity.LocationDubai, Status: entity.TransactionStatusPending, Date: day(2026, 3, 3)},
		&entity.Transaction{ID: "e", Type: entity.TransactionTypeIncome, Category: entity.TxCategorySales, Amount: d("800"), Account: entity.AccountBankJapan, Location: entity.LocationJapan, Status: entity.TransactionStatusCompleted, Date: day(2026, 3, 5)},
		&entity.Transaction{ID: "f", Type: entity.TransactionTypeExpense, Category: entity.TxCategoryTax, Amount: d("50"), Account: entity.AccountBankDubai, Location: entity.LocationDubai, Status: entity.TransactionStatusCompleted, Date: day(2025, 12, 31)},
	)
}

func TestSummary_SoloCompletadasDelMes(t *testing.T) {
	uc, _ := newTxnUseCase(ledger())

	s, err := uc.Summary(context.Background(), dto.PeriodQuery{Location: entity.LocationDubai})
	require.NoError(t, err)
	assert.Equal(t, 1, s.TransactionCount, "marzo en Dubai: solo la renta completada")
	assert.True(t, d("300").Equal(s.Expense.Total))
	assert.True(t, d("-300").Equal(s.NetIncome))
}

func TestCashFlow_AnioYRegion(t *testing.T) {
	uc, _ := newTxnUseCase(ledger())

	cf, err := uc.CashFlow(context.Background(), dto.YearQuery{Location: entity.LocationDubai})
	require.NoError(t, err)
	assert.Equal(t, 2026, cf.Year)
	require.Len(t, cf.Months, 12)
	assert.True(t, d("1000").Equal(cf.Months[0].Net))
	assert.True(t, d("700").Equal(cf.Months[2].CumulativeNet))
	assert.True(t, d("700").Equal(cf.Months[11].CumulativeNet))
}

func TestBalances_TodasLasCompletadas(t *testing.T) {
	uc, _ := newTxnUseCase(ledger())

	b, err := uc.Balances(context.Background())
	require.NoError(t, err)
	assert.True(t, d("950").Equal(b.Balances[entity.AccountBankDubai]), "got %s", b.Balances[entity.AccountBankDubai])
	assert.True(t, d("-300").Equal(b.Balances[entity.AccountCashDubai]))
	assert.True(t, d("800").Equal(b.Balances[entity.AccountBankJapan]))
	assert.True(t, d("1450").Equal(b.Total))
}

func TestProperty_CreateGetEIngresos(t *testing.T) {
	props := &memProperties{byID: map[string]*entity.Property{}}
	txns := newMemTxns()
	uc := NewPropertyUseCase(props, txns)
	uc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.PropertyRequest{Name: "x", MonthlyRent: d("-1")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	p, err := uc.Create(ctx, dto.PropertyRequest{
		Name: " Almacén Al Quoz ", Type: entity.PropertyTypeWarehouse, Location: entity.LocationDubai,
		Ownership: entity.OwnershipOwned, MonthlyRent: d("12000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Almacén Al Quoz", p.Name)
	assert.Equal(t, entity.PropertyStatusActive, p.Status)
	assert.Equal(t, entity.CurrencyAED, p.Currency)

	txns.byID["r1"] = &entity.Transaction{ID: "r1", Type: entity.TransactionTypeIncome, Amount: d("12000"), PropertyID: strPtr(p.ID), Date: day(2026, 3, 1)}
	txns.byID["r2"] = &entity.Transaction{ID: "r2", Type: entity.TransactionTypeExpense, Amount: d("800"), PropertyID: strPtr(p.ID), Date: day(2026, 3, 15)}
	txns.byID["r3"] = &entity.Transaction{ID: "r3", Type: entity.TransactionTypeIncome, Amount: d("12000"), PropertyID: strPtr(p.ID), Date: day(2026, 2, 1)}
	txns.byID["x"] = &entity.Transaction{ID: "x", Type: entity.TransactionTypeIncome, Amount: d("5"), Date: day(2026, 3, 1)}

	got, err := uc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Transactions, 3)

	r, err := uc.IncomeReport(ctx, dto.PeriodQuery{Year: 2026, Month: 3})
	require.NoError(t, err)
	require.Len(t, r.Properties, 1)
	assert.True(t, d("12000").Equal(r.Properties[0].ActualIncome))
	assert.True(t, d("11200").Equal(r.Properties[0].NetIncome))
	assert.True(t, d("0").Equal(r.Properties[0].Variance))
	assert.True(t, txns.lastQuery.HasProperty)
}
