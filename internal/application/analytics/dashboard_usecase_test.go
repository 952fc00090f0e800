package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

type fakeAnalytics struct {
	counts reporting.EntityCounts
	err    error
}

func (f *fakeAnalytics) CountEntities(context.Context, string) (reporting.EntityCounts, error) {
	return f.counts, f.err
}

type fakeOrders struct {
	repository.OrderRepository
	list      []*entity.Order
	lastQuery repository.OrderFilter
}

func (f *fakeOrders) List(_ context.Context, q repository.OrderFilter, _ repository.Page) ([]*entity.Order, int, error) {
	f.lastQuery = q
	out := []*entity.Order{}
	for _, o := range f.list {
		switch {
		case q.ExcludeCancelled && o.Status == entity.OrderStatusCancelled,
			q.Unpaid && o.PaymentStatus == entity.PaymentStatusPaid,
			q.Location != "" && o.Location != q.Location,
			q.OrderDate.From != nil && o.OrderDate.Before(*q.OrderDate.From):
			continue
		}
		out = append(out, o)
	}
	return out, len(out), nil
}

type fakeInventory struct {
	repository.InventoryRepository
	items       []*entity.InventoryItem
	byContainer map[string][]*entity.InventoryItem
}

func (f *fakeInventory) ListInStock(_ context.Context, location string) ([]*entity.InventoryItem, error) {
	out := []*entity.InventoryItem{}
	for _, it := range f.items {
		if it.Status == entity.InventoryStatusInStock && (location == "" || it.Location == location) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeInventory) ListByContainer(_ context.Context, containerID string) ([]*entity.InventoryItem, error) {
	return f.byContainer[containerID], nil
}

type fakeContainers struct {
	repository.ContainerRepository
	list      []*entity.Container
	lastQuery repository.ContainerFilter
}

func (f *fakeContainers) List(_ context.Context, q repository.ContainerFilter, _ repository.Page) ([]*entity.Container, int, error) {
	f.lastQuery = q
	return f.list, len(f.list), nil
}

type fakeVehicles struct {
	repository.VehicleRepository
	byContainer map[string][]*entity.Vehicle
}

func (f *fakeVehicles) List(_ context.Context, q repository.VehicleFilter, _ repository.Page) ([]*entity.Vehicle, int, error) {
	list := f.byContainer[q.ContainerID]
	return list, len(list), nil
}

type fakeExpenses struct {
	repository.ExpenseRepository
	list []*entity.Expense
}

func (f *fakeExpenses) List(_ context.Context, q repository.ExpenseFilter) ([]*entity.Expense, error) {
	out := []*entity.Expense{}
	for _, e := range f.list {
		if q.Status == "" || e.Status == q.Status {
			out = append(out, e)
		}
	}
	return out, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, dd int) time.Time { return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC) }

var fixedNow = time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC)

func newReports(r Repos) *ReportUseCase {
	uc := NewReportUseCase(r, "")
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestDashboard_MesEnCursoYStock(t *testing.T) {
	orders := &fakeOrders{list: []*entity.Order{
		{ID: "o1", Status: entity.OrderStatusDelivered, Location: entity.LocationDubai, OrderDate: day(2026, 3, 2), TotalAmount: d("1000")},
		{ID: "o2", Status: entity.OrderStatusPending, Location: entity.LocationDubai, OrderDate: day(2026, 3, 15), TotalAmount: d("250")},
		{ID: "o3", Status: entity.OrderStatusCancelled, Location: entity.LocationDubai, OrderDate: day(2026, 3, 16), TotalAmount: d("999")},
		{ID: "o4", Status: entity.OrderStatusDelivered, Location: entity.LocationDubai, OrderDate: day(2026, 2, 28), TotalAmount: d("500")},
	}}
	inventory := &fakeInventory{items: []*entity.InventoryItem{
		{ID: "p1", Status: entity.InventoryStatusInStock, Location: entity.LocationDubai, Quantity: 3, CostPrice: d("20")},
		{ID: "p2", Status: entity.InventoryStatusSold, Location: entity.LocationDubai, Quantity: 0, CostPrice: d("80")},
	}}
	uc := newReports(Repos{
		Analytics: &fakeAnalytics{counts: reporting.EntityCounts{Vehicles: 4, Customers: 2}},
		Orders:    orders,
		Inventory: inventory,
	})

	got, err := uc.Dashboard(context.Background(), entity.LocationDubai)
	require.NoError(t, err)
	assert.EqualValues(t, 4, got.Vehicles)
	assert.Equal(t, 2, got.MonthlyOrders)
	assert.True(t, d("1250").Equal(got.MonthlyRevenue), "got %s", got.MonthlyRevenue)
	assert.True(t, d("60").Equal(got.InventoryValue))
	assert.Equal(t, entity.CurrencyAED, got.Currency)
	require.NotNil(t, orders.lastQuery.OrderDate.From)
	assert.Equal(t, day(2026, 3, 1), *orders.lastQuery.OrderDate.From)
}

func TestDashboard_PropagaError(t *testing.T) {
	boom := errors.New("db caída")
	uc := newReports(Repos{
		Analytics: &fakeAnalytics{err: boom},
		Orders:    &fakeOrders{},
		Inventory: &fakeInventory{},
	})

	_, err := uc.Dashboard(context.Background(), "")
	assert.ErrorIs(t, err, boom)
}

func TestContainerProfitLoss_Consolidado(t *testing.T) {
	containers := &fakeContainers{list: []*entity.Container{
		{ID: "c1", ContainerNumber: "MSCU1", ShippingCost: d("2000")},
		{ID: "c2", ContainerNumber: "MSCU2", ShippingCost: d("1000")},
	}}
	uc := newReports(Repos{
		Containers: containers,
		Vehicles: &fakeVehicles{byContainer: map[string][]*entity.Vehicle{
			"c1": {{ID: "v1", PurchasePrice: d("3000")}},
		}},
		Inventory: &fakeInventory{byContainer: map[string][]*entity.InventoryItem{
			"c1": {
				{ID: "p1", Status: entity.InventoryStatusSold, Quantity: 1, SellingPrice: decimal.NewNullDecimal(d("6000"))},
				{ID: "p2", Status: entity.InventoryStatusInStock, Quantity: 2, CostPrice: d("100")},
			},
		}},
	})

	r, err := uc.ContainerProfitLoss(context.Background(), dto.PeriodQuery{})
	require.NoError(t, err)
	assert.Nil(t, containers.lastQuery.Arrival.From, "sin periodo no se filtra por llegada")
	require.Len(t, r.Containers, 2)
	assert.Equal(t, "MSCU1", r.Containers[0].ContainerNumber, "conserva el orden del listado")
	assert.True(t, d("1000").Equal(r.Containers[0].RealizedProfitLoss))
	assert.True(t, d("20").Equal(r.Containers[0].MarginPct))
	assert.True(t, d("-1000").Equal(r.Containers[1].RealizedProfitLoss))
	assert.Equal(t, 2, r.Summary.TotalContainers)
	assert.True(t, d("6000").Equal(r.Summary.TotalCost))
	assert.True(t, d("200").Equal(r.Summary.ProjectedProfitLoss))

	_, err = uc.ContainerProfitLoss(context.Background(), dto.PeriodQuery{StartDate: "2026-01-01", EndDate: "2026-01-31"})
	require.NoError(t, err)
	require.NotNil(t, containers.lastQuery.Arrival.From)
	assert.Equal(t, day(2026, 1, 1), *containers.lastQuery.Arrival.From)
}

func TestReceivablesYPayables(t *testing.T) {
	uc := newReports(Repos{
		Orders: &fakeOrders{list: []*entity.Order{
			{ID: "o1", PaymentStatus: entity.PaymentStatusPartial, OrderDate: day(2026, 3, 10), TotalAmount: d("500"), PaidAmount: d("200")},
			{ID: "o2", PaymentStatus: entity.PaymentStatusUnpaid, OrderDate: day(2025, 12, 1), TotalAmount: d("100")},
			{ID: "o3", PaymentStatus: entity.PaymentStatusPaid, OrderDate: day(2026, 3, 1), TotalAmount: d("50"), PaidAmount: d("50")},
		}},
		Expenses: &fakeExpenses{list: []*entity.Expense{
			{ID: "x1", Type: entity.ExpenseTypeBonus, Amount: d("300"), Status: entity.ExpenseStatusPending, Date: day(2026, 3, 1)},
			{ID: "x2", Type: entity.ExpenseTypeBonus, Amount: d("900"), Status: entity.ExpenseStatusPaid, Date: day(2026, 3, 1)},
		}},
	})

	rec, err := uc.Receivables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Summary.OrderCount)
	assert.True(t, d("400").Equal(rec.Summary.TotalReceivables))
	assert.True(t, d("300").Equal(rec.Summary.Aging.Current))
	assert.True(t, d("100").Equal(rec.Summary.Aging.Over90))

	pay, err := uc.Payables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, pay.Summary.ExpenseCount)
	assert.True(t, d("300").Equal(pay.Summary.TotalPayables))
	assert.Equal(t, 19, pay.Payables[0].DaysOutstanding)
}
