package dto

import (
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
)

// Conversión entidad → respuesta. Los casos de uso de varias áreas comparten estas
// funciones porque las respuestas se anidan (vehículo con piezas, orden con cliente, etc.).

// NewVehicleResponse convierte un vehículo.
func NewVehicleResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:               v.ID,
		ChassisNumber:    v.ChassisNumber,
		Make:             v.Make,
		Model:            v.Model,
		Year:             v.Year,
		EngineType:       v.EngineType,
		Transmission:     v.Transmission,
		Color:            v.Color,
		Mileage:          v.Mileage,
		PurchasePrice:    v.PurchasePrice,
		PurchaseCurrency: v.PurchaseCurrency,
		PurchaseDate:     NewDate(v.PurchaseDate),
		AuctionHouse:     v.AuctionHouse,
		AuctionLotNumber: v.AuctionLotNumber,
		Status:           v.Status,
		Location:         v.Location,
		Notes:            v.Notes,
		ContainerID:      v.ContainerID,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

// NewVehicleResponses convierte una lista.
func NewVehicleResponses(list []*entity.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, NewVehicleResponse(v))
	}
	return out
}

// NewContainerResponse convierte un contenedor.
func NewContainerResponse(c *entity.Container) ContainerResponse {
	return ContainerResponse{
		ID:                c.ID,
		ContainerNumber:   c.ContainerNumber,
		BookingNumber:     c.BookingNumber,
		ShippingLine:      c.ShippingLine,
		Size:              c.Size,
		Origin:            c.Origin,
		Destination:       c.Destination,
		DepartureDate:     DatePtr(c.DepartureDate),
		ArrivalDate:       DatePtr(c.ArrivalDate),
		ActualArrivalDate: DatePtr(c.ActualArrivalDate),
		Status:            c.Status,
		ShippingCost:      c.ShippingCost,
		InsuranceCost:     c.InsuranceCost,
		CustomsDuty:       c.CustomsDuty,
		ClearanceFees:     c.ClearanceFees,
		TransportCost:     c.TransportCost,
		TotalCost:         c.TotalCost,
		Currency:          c.Currency,
		Notes:             c.Notes,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// NewInventoryItemResponse convierte una pieza.
func NewInventoryItemResponse(it *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:                it.ID,
		SKU:               it.SKU,
		PartName:          it.PartName,
		PartNumber:        it.PartNumber,
		Category:          it.Category,
		Condition:         it.Condition,
		Quantity:          it.Quantity,
		CostPrice:         it.CostPrice,
		SellingPrice:      it.SellingPrice,
		Currency:          it.Currency,
		Location:          it.Location,
		WarehouseLocation: it.WarehouseLocation,
		ShelfNumber:       it.ShelfNumber,
		Status:            it.Status,
		VehicleID:         it.VehicleID,
		CompatibleModels:  nonNil(it.CompatibleModels),
		Images:            nonNil(it.Images),
		Notes:             it.Notes,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

// NewInventoryItemResponses convierte una lista.
func NewInventoryItemResponses(list []*entity.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, NewInventoryItemResponse(it))
	}
	return out
}

// NewCustomerResponse convierte un cliente.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Whatsapp:       c.Whatsapp,
		Company:        c.Company,
		Type:           c.Type,
		Country:        c.Country,
		City:           c.City,
		Address:        c.Address,
		TaxID:          c.TaxID,
		CreditLimit:    c.CreditLimit,
		CurrentBalance: c.CurrentBalance,
		Currency:       c.Currency,
		IsActive:       c.IsActive,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// NewOrderResponse convierte una orden con el cliente y las líneas que traiga cargados.
func NewOrderResponse(o *entity.Order) OrderResponse {
	r := OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		OrderDate:       o.OrderDate,
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		PaymentMethod:   o.PaymentMethod,
		Subtotal:        o.Subtotal,
		Discount:        o.Discount,
		Tax:             o.Tax,
		ShippingCost:    o.ShippingCost,
		TotalAmount:     o.TotalAmount,
		PaidAmount:      o.PaidAmount,
		Balance:         o.Balance(),
		Currency:        o.Currency,
		Location:        o.Location,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Customer != nil {
		c := NewCustomerResponse(o.Customer)
		r.Customer = &c
		r.CustomerName = o.Customer.Name
	}
	for _, it := range o.Items {
		r.Items = append(r.Items, NewOrderItemResponse(it))
	}
	return r
}

// NewOrderResponses convierte una lista.
func NewOrderResponses(list []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, NewOrderResponse(o))
	}
	return out
}

// NewOrderItemResponse convierte una línea.
func NewOrderItemResponse(it *entity.OrderItem) OrderItemResponse {
	r := OrderItemResponse{
		ID:          it.ID,
		InventoryID: it.InventoryID,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		Discount:    it.Discount,
		TotalPrice:  it.TotalPrice,
	}
	if it.Inventory != nil {
		r.SKU = it.Inventory.SKU
		r.PartName = it.Inventory.PartName
	}
	return r
}

// NewEmployeeResponse convierte un empleado con los gastos que traiga cargados.
func NewEmployeeResponse(e *entity.Employee) EmployeeResponse {
	r := EmployeeResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		Name:             e.Name,
		Email:            e.Email,
		Phone:            e.Phone,
		Department:       e.Department,
		Position:         e.Position,
		Location:         e.Location,
		HireDate:         DatePtr(e.HireDate),
		Salary:           e.Salary,
		SalaryCurrency:   e.SalaryCurrency,
		SalaryFrequency:  e.SalaryFrequency,
		Status:           e.Status,
		VisaStatus:       e.VisaStatus,
		VisaExpiry:       DatePtr(e.VisaExpiry),
		EmergencyContact: e.EmergencyContact,
		EmergencyPhone:   e.EmergencyPhone,
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	for _, x := range e.Expenses {
		r.Expenses = append(r.Expenses, NewExpenseResponse(x))
	}
	return r
}

// NewExpenseResponse convierte un gasto.
func NewExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		Type:         e.Type,
		Amount:       e.Amount,
		Currency:     e.Currency,
		Date:         NewDate(e.Date),
		Description:  e.Description,
		Status:       e.Status,
		ApprovedBy:   e.ApprovedBy,
		PaidDate:     DatePtr(e.PaidDate),
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}

// NewPropertyResponse convierte un inmueble.
func NewPropertyResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:              p.ID,
		Name:            p.Name,
		Type:            p.Type,
		Address:         p.Address,
		City:            p.City,
		Country:         p.Country,
		Location:        p.Location,
		Size:            p.Size,
		SizeUnit:        p.SizeUnit,
		Ownership:       p.Ownership,
		PurchasePrice:   p.PurchasePrice,
		CurrentValue:    p.CurrentValue,
		MonthlyRent:     p.MonthlyRent,
		MonthlyExpenses: p.MonthlyExpenses,
		Currency:        p.Currency,
		LeaseStartDate:  DatePtr(p.LeaseStartDate),
		LeaseEndDate:    DatePtr(p.LeaseEndDate),
		Status:          p.Status,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// NewTransactionResponse convierte una transacción.
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		TransactionNumber: t.TransactionNumber,
		Type:              t.Type,
		Category:          t.Category,
		Amount:            t.Amount,
		Currency:          t.Currency,
		ExchangeRate:      t.ExchangeRate,
		AmountUSD:         t.AmountUSD,
		Date:              NewDate(t.Date),
		PaymentMethod:     t.PaymentMethod,
		Account:           t.Account,
		Reference:         t.Reference,
		Description:       t.Description,
		PropertyID:        t.PropertyID,
		OrderID:           t.OrderID,
		ContainerID:       t.ContainerID,
		Location:          t.Location,
		Status:            t.Status,
		Notes:             t.Notes,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// NewTransactionResponses convierte una lista.
func NewTransactionResponses(list []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}

// NewUserResponse convierte un usuario (sin hash).
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Location:  u.Location,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
