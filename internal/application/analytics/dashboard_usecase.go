// Package analytics contiene los reportes transversales: tablero, P/L de contenedores,
// cuentas por cobrar y cuentas por pagar.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// maxParallelContainers tope de contenedores procesados a la vez en el reporte de P/L.
const maxParallelContainers = 4

// Repos puertos de lectura que consumen los reportes.
type Repos struct {
	Analytics  repository.AnalyticsRepository
	Orders     repository.OrderRepository
	Inventory  repository.InventoryRepository
	Containers repository.ContainerRepository
	Vehicles   repository.VehicleRepository
	Expenses   repository.ExpenseRepository
}

// ReportUseCase genera los reportes de /api/reports.
//
// Fuente de datos: repositorios de solo lectura; cada llamada recalcula desde cero.
type ReportUseCase struct {
	repos    Repos
	currency string
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso. currency es solo la etiqueta de los montos del tablero.
func NewReportUseCase(repos Repos, currency string) *ReportUseCase {
	if currency == "" {
		currency = entity.CurrencyAED
	}
	return &ReportUseCase{repos: repos, currency: currency, now: time.Now}
}

// Dashboard conteos, ventas del mes en curso y valor del stock, opcionalmente de una región.
//
// Tres consultas en paralelo:
//  1. CountEntities       → conteos por tabla
//  2. órdenes del mes     → MonthlyRevenue + MonthlyOrders
//  3. piezas en stock     → InventoryValue
func (uc *ReportUseCase) Dashboard(ctx context.Context, location string) (*reporting.Dashboard, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var (
		counts  reporting.EntityCounts
		orders  []*entity.Order
		inStock []*entity.InventoryItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if counts, err = uc.repos.Analytics.CountEntities(gctx, location); err != nil {
			return fmt.Errorf("dashboard: conteos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		orders, _, err = uc.repos.Orders.List(gctx, repository.OrderFilter{
			Location:         location,
			ExcludeCancelled: true,
			OrderDate:        repository.DateRange{From: &monthStart},
		}, repository.Page{})
		if err != nil {
			return fmt.Errorf("dashboard: órdenes del mes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if inStock, err = uc.repos.Inventory.ListInStock(gctx, location); err != nil {
			return fmt.Errorf("dashboard: stock: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := reporting.BuildDashboard(counts, orders, inStock, uc.currency)
	return &d, nil
}

// ContainerProfitLoss P/L de todos los contenedores, o de los que llegaron dentro del
// periodo si se indica uno.
func (uc *ReportUseCase) ContainerProfitLoss(ctx context.Context, q dto.PeriodQuery) (*reporting.ContainerPLReport, error) {
	w, err := q.OptionalWindow(uc.now())
	if err != nil {
		return nil, err
	}
	filter := repository.ContainerFilter{}
	if w != nil {
		filter.Arrival = repository.Days(w.From, w.To)
	}
	containers, _, err := uc.repos.Containers.List(ctx, filter, repository.Page{})
	if err != nil {
		return nil, err
	}

	results := make([]reporting.ContainerPL, len(containers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelContainers)
	for i, c := range containers {
		i, c := i, c
		g.Go(func() error {
			vehicles, _, err := uc.repos.Vehicles.List(gctx, repository.VehicleFilter{ContainerID: c.ID}, repository.Page{})
			if err != nil {
				return fmt.Errorf("contenedor %s: vehículos: %w", c.ContainerNumber, err)
			}
			parts, err := uc.repos.Inventory.ListByContainer(gctx, c.ID)
			if err != nil {
				return fmt.Errorf("contenedor %s: piezas: %w", c.ContainerNumber, err)
			}
			results[i] = reporting.ComputeContainerPL(c, vehicles, parts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := reporting.SummarizeContainerPL(results)
	return &r, nil
}

// Receivables órdenes no pagadas con su antigüedad.
func (uc *ReportUseCase) Receivables(ctx context.Context) (*reporting.ReceivablesReport, error) {
	orders, _, err := uc.repos.Orders.List(ctx, repository.OrderFilter{Unpaid: true}, repository.Page{})
	if err != nil {
		return nil, err
	}
	r := reporting.AgeReceivables(orders, uc.now())
	return &r, nil
}

// Payables gastos de empleados pendientes de pago.
func (uc *ReportUseCase) Payables(ctx context.Context) (*reporting.PayablesReport, error) {
	expenses, err := uc.repos.Expenses.List(ctx, repository.ExpenseFilter{Status: entity.ExpenseStatusPending})
	if err != nil {
		return nil, err
	}
	r := reporting.ListPayables(expenses, uc.now())
	return &r, nil
}
