package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Vehículos ──

// VehicleRequest body de POST y PUT /api/vehicles.
type VehicleRequest struct {
	ChassisNumber    string          `json:"chassis_number" validate:"required,max=100"`
	Make             string          `json:"make" validate:"required,max=100"`
	Model            string          `json:"model" validate:"required,max=100"`
	Year             int             `json:"year" validate:"required,min=1900,max=2100"`
	EngineType       string          `json:"engine_type" validate:"max=100"`
	Transmission     string          `json:"transmission" validate:"omitempty,oneof=automatic manual cvt"`
	Color            string          `json:"color" validate:"max=50"`
	Mileage          *int            `json:"mileage" validate:"omitempty,min=0"`
	PurchasePrice    decimal.Decimal `json:"purchase_price" validate:"gte=0"`
	PurchaseCurrency string          `json:"purchase_currency" validate:"omitempty,oneof=JPY AED USD"`
	PurchaseDate     *Date           `json:"purchase_date" validate:"required"`
	AuctionHouse     string          `json:"auction_house" validate:"max=100"`
	AuctionLotNumber string          `json:"auction_lot_number" validate:"max=100"`
	Status           string          `json:"status" validate:"omitempty,oneof=purchased in_transit in_stock dismantling sold scrapped"`
	Location         string          `json:"location" validate:"omitempty,oneof=japan dubai"`
	Notes            string          `json:"notes"`
	ContainerID      *string         `json:"container_id" validate:"omitempty,uuid"`
}

// VehicleFilter query de GET /api/vehicles.
type VehicleFilter struct {
	PageRequest
	Status      string `query:"status"`
	Location    string `query:"location"`
	ContainerID string `query:"container_id"`
}

// VehicleResponse vehículo en respuestas.
type VehicleResponse struct {
	ID               string                  `json:"id"`
	ChassisNumber    string                  `json:"chassis_number"`
	Make             string                  `json:"make"`
	Model            string                  `json:"model"`
	Year             int                     `json:"year"`
	EngineType       string                  `json:"engine_type"`
	Transmission     string                  `json:"transmission"`
	Color            string                  `json:"color"`
	Mileage          *int                    `json:"mileage"`
	PurchasePrice    decimal.Decimal         `json:"purchase_price"`
	PurchaseCurrency string                  `json:"purchase_currency"`
	PurchaseDate     Date                    `json:"purchase_date"`
	AuctionHouse     string                  `json:"auction_house"`
	AuctionLotNumber string                  `json:"auction_lot_number"`
	Status           string                  `json:"status"`
	Location         string                  `json:"location"`
	Notes            string                  `json:"notes"`
	ContainerID      *string                 `json:"container_id"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
	Container        *ContainerResponse      `json:"container,omitempty"`
	Parts            []InventoryItemResponse `json:"parts,omitempty"`
}

// ── Contenedores ──

// ContainerRequest body de POST y PUT /api/containers.
type ContainerRequest struct {
	ContainerNumber   string          `json:"container_number" validate:"required,max=50"`
	BookingNumber     string          `json:"booking_number" validate:"max=100"`
	ShippingLine      string          `json:"shipping_line" validate:"max=100"`
	Size              string          `json:"size" validate:"omitempty,oneof=20ft 40ft 40ft_hc"`
	Origin            string          `json:"origin" validate:"max=100"`
	Destination       string          `json:"destination" validate:"max=100"`
	DepartureDate     *Date           `json:"departure_date"`
	ArrivalDate       *Date           `json:"arrival_date"`
	ActualArrivalDate *Date           `json:"actual_arrival_date"`
	Status            string          `json:"status" validate:"omitempty,oneof=loading in_transit arrived cleared delivered"`
	ShippingCost      decimal.Decimal `json:"shipping_cost" validate:"gte=0"`
	InsuranceCost     decimal.Decimal `json:"insurance_cost" validate:"gte=0"`
	CustomsDuty       decimal.Decimal `json:"customs_duty" validate:"gte=0"`
	ClearanceFees     decimal.Decimal `json:"clearance_fees" validate:"gte=0"`
	TransportCost     decimal.Decimal `json:"transport_cost" validate:"gte=0"`
	Currency          string          `json:"currency" validate:"omitempty,oneof=JPY AED USD"`
	Notes             string          `json:"notes"`
}

// ContainerFilter query de GET /api/containers.
type ContainerFilter struct {
	PageRequest
	Status string `query:"status"`
}

// AssignVehiclesRequest body de POST /api/containers/:id/vehicles.
type AssignVehiclesRequest struct {
	VehicleIDs []string `json:"vehicle_ids" validate:"required,min=1,dive,uuid"`
}

// AssignVehiclesResponse resultado de la asignación.
type AssignVehiclesResponse struct {
	ContainerID string `json:"container_id"`
	Assigned    int    `json:"assigned"`
}

// ContainerResponse contenedor en respuestas.
type ContainerResponse struct {
	ID                string            `json:"id"`
	ContainerNumber   string            `json:"container_number"`
	BookingNumber     string            `json:"booking_number"`
	ShippingLine      string            `json:"shipping_line"`
	Size              string            `json:"size"`
	Origin            string            `json:"origin"`
	Destination       string            `json:"destination"`
	DepartureDate     *Date             `json:"departure_date"`
	ArrivalDate       *Date             `json:"arrival_date"`
	ActualArrivalDate *Date             `json:"actual_arrival_date"`
	Status            string            `json:"status"`
	ShippingCost      decimal.Decimal   `json:"shipping_cost"`
	InsuranceCost     decimal.Decimal   `json:"insurance_cost"`
	CustomsDuty       decimal.Decimal   `json:"customs_duty"`
	ClearanceFees     decimal.Decimal   `json:"clearance_fees"`
	TransportCost     decimal.Decimal   `json:"transport_cost"`
	TotalCost         decimal.Decimal   `json:"total_cost"`
	Currency          string            `json:"currency"`
	Notes             string            `json:"notes"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	Vehicles          []VehicleResponse `json:"vehicles,omitempty"`
}
