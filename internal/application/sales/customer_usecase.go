package sales

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/autoparts-api/internal/application/dto"
	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// SearchLimit máximo de resultados de una búsqueda.
const SearchLimit = 20

// CustomerUseCase CRUD de clientes y su saldo calculado desde las órdenes.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, orderRepo: orderRepo}
}

// Create da de alta un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("name requerido: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Customer{ID: uuid.New().String(), IsActive: true, CreatedAt: now}
	applyCustomer(c, in)
	c.UpdatedAt = now
	if err := uc.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(c)
	return &resp, nil
}

// Get detalle del cliente con sus órdenes.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, _, err := uc.orderRepo.List(ctx, repository.OrderFilter{CustomerID: id}, repository.Page{})
	if err != nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(c)
	for _, o := range orders {
		o.Customer = nil
		resp.Orders = append(resp.Orders, dto.NewOrderResponse(o))
	}
	return &resp, nil
}

// List clientes paginados. is_active acepta true/false.
func (uc *CustomerUseCase) List(ctx context.Context, f dto.CustomerFilter) (*dto.ListResponse[dto.CustomerResponse], error) {
	filter := repository.CustomerFilter{Type: f.Type}
	if f.IsActive != "" {
		active, err := strconv.ParseBool(f.IsActive)
		if err != nil {
			return nil, fmt.Errorf("is_active %q: %w", f.IsActive, domain.ErrInvalidInput)
		}
		filter.IsActive = &active
	}
	list, total, err := uc.customerRepo.List(ctx, filter, f.ToRepo())
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCustomerResponse(c))
	}
	resp := dto.NewListResponse(out, total, f.PageRequest)
	return &resp, nil
}

// Search por nombre, email, teléfono o empresa.
func (uc *CustomerUseCase) Search(ctx context.Context, q string) ([]dto.CustomerResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.CustomerResponse{}, nil
	}
	list, err := uc.customerRepo.Search(ctx, q, SearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// Update reemplaza todos los campos editables.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCustomer(c, in)
	c.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewCustomerResponse(c)
	return &resp, nil
}

// Delete borra el cliente. Con órdenes asociadas la base lo impide (ErrConflict).
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.customerRepo.Delete(ctx, id)
}

// Balance saldo pendiente calculado desde las órdenes no pagadas y crédito disponible.
func (uc *CustomerUseCase) Balance(ctx context.Context, id string) (*reporting.CustomerBalance, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, _, err := uc.orderRepo.List(ctx, repository.OrderFilter{CustomerID: id, Unpaid: true}, repository.Page{})
	if err != nil {
		return nil, err
	}
	b := reporting.ComputeCustomerBalance(c, orders)
	return &b, nil
}

func (uc *CustomerUseCase) get(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func applyCustomer(c *entity.Customer, in dto.CustomerRequest) {
	c.Name = strings.TrimSpace(in.Name)
	c.Email = strings.TrimSpace(in.Email)
	c.Phone = in.Phone
	c.Whatsapp = in.Whatsapp
	c.Company = in.Company
	c.Type = orDefault(in.Type, entity.CustomerTypeRetail)
	c.Country = in.Country
	c.City = in.City
	c.Address = in.Address
	c.TaxID = in.TaxID
	c.CreditLimit = in.CreditLimit
	c.CurrentBalance = in.CurrentBalance
	c.Currency = orDefault(in.Currency, entity.CurrencyAED)
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.Notes = in.Notes
}
