package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// PropertyUseCase CRUD de inmuebles y su reporte de ingresos.
type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	txnRepo      repository.TransactionRepository
	now          func() time.Time
}

// NewPropertyUseCase construye el caso de uso.
func NewPropertyUseCase(propertyRepo repository.PropertyRepository, txnRepo repository.TransactionRepository) *PropertyUseCase {
	return &PropertyUseCase{propertyRepo: propertyRepo, txnRepo: txnRepo, now: time.Now}
}

// Create da de alta un inmueble.
func (uc *PropertyUseCase) Create(ctx context.Context, in dto.PropertyRequest) (*dto.PropertyResponse, error) {
	now := uc.now()
	p := &entity.Property{ID: uuid.New().String(), CreatedAt: now}
	if err := applyProperty(p, in); err != nil {
		return nil, err
	}
	p.UpdatedAt = now
	if err := uc.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.NewPropertyResponse(p)
	return &resp, nil
}

// Get detalle con sus transacciones.
func (uc *PropertyUseCase) Get(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	txns, _, err := uc.txnRepo.List(ctx, repository.TransactionFilter{PropertyID: id}, repository.Page{})
	if err != nil {
		return nil, err
	}
	resp := dto.NewPropertyResponse(p)
	resp.Transactions = dto.NewTransactionResponses(txns)
	return &resp, nil
}

// List inmuebles paginados.
func (uc *PropertyUseCase) List(ctx context.Context, f dto.PropertyFilter) (*dto.ListResponse[dto.PropertyResponse], error) {
	filter := repository.PropertyFilter{Type: f.Type, Location: f.Location, Ownership: f.Ownership, Status: f.Status}
	list, total, err := uc.propertyRepo.List(ctx, filter, f.ToRepo())
	if err != nil {
		return nil, err
	}
	out := make([]dto.PropertyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewPropertyResponse(p))
	}
	page := dto.NewListResponse(out, total, f.PageRequest)
	return &page, nil
}

// Update reemplaza los campos editables.
func (uc *PropertyUseCase) Update(ctx context.Context, id string, in dto.PropertyRequest) (*dto.PropertyResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProperty(p, in); err != nil {
		return nil, err
	}
	p.UpdatedAt = uc.now()
	if err := uc.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.NewPropertyResponse(p)
	return &resp, nil
}

// Delete borra el inmueble; sus transacciones quedan sin inmueble.
func (uc *PropertyUseCase) Delete(ctx context.Context, id string) error {
	return uc.propertyRepo.Delete(ctx, id)
}

// IncomeReport ingresos y egresos reales de los inmuebles activos en el periodo
// frente a la renta esperada.
func (uc *PropertyUseCase) IncomeReport(ctx context.Context, q dto.PeriodQuery) (*reporting.PropertyIncomeReport, error) {
	w, err := q.Window(uc.now())
	if err != nil {
		return nil, err
	}
	properties, _, err := uc.propertyRepo.List(ctx, repository.PropertyFilter{
		Location: q.Location,
		Status:   entity.PropertyStatusActive,
	}, repository.Page{})
	if err != nil {
		return nil, err
	}
	txns, _, err := uc.txnRepo.List(ctx, repository.TransactionFilter{
		HasProperty: true,
		Date:        repository.Days(w.From, w.To),
	}, repository.Page{})
	if err != nil {
		return nil, err
	}
	byProperty := map[string][]*entity.Transaction{}
	for _, t := range txns {
		if t.PropertyID != nil {
			byProperty[*t.PropertyID] = append(byProperty[*t.PropertyID], t)
		}
	}
	r := reporting.BuildPropertyIncome(w, properties, byProperty)
	return &r, nil
}

func (uc *PropertyUseCase) get(ctx context.Context, id string) (*entity.Property, error) {
	p, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("inmueble %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func applyProperty(p *entity.Property, in dto.PropertyRequest) error {
	if in.MonthlyRent.IsNegative() || in.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("renta y gastos mensuales no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	if start, end := in.LeaseStartDate.TimePtr(), in.LeaseEndDate.TimePtr(); start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("lease_end_date anterior a lease_start_date: %w", domain.ErrInvalidInput)
	}
	p.Name = strings.TrimSpace(in.Name)
	p.Type = in.Type
	p.Address = in.Address
	p.City = in.City
	p.Country = in.Country
	p.Location = in.Location
	p.Size = in.Size
	p.SizeUnit = orDefault(in.SizeUnit, "sqm")
	p.Ownership = in.Ownership
	p.PurchasePrice = in.PurchasePrice
	p.CurrentValue = in.CurrentValue
	p.MonthlyRent = in.MonthlyRent
	p.MonthlyExpenses = in.MonthlyExpenses
	p.Currency = orDefault(in.Currency, entity.CurrencyAED)
	p.LeaseStartDate = in.LeaseStartDate.TimePtr()
	p.LeaseEndDate = in.LeaseEndDate.TimePtr()
	p.Status = orDefault(in.Status, entity.PropertyStatusActive)
	p.Notes = in.Notes
	return nil
}
