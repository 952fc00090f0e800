package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un contenedor.
const (
	ContainerStatusLoading   = "loading"
	ContainerStatusInTransit = "in_transit"
	ContainerStatusArrived   = "arrived"
	ContainerStatusCleared   = "cleared"
	ContainerStatusDelivered = "delivered"
)

// Tamaños de contenedor.
const (
	ContainerSize20ft   = "20ft"
	ContainerSize40ft   = "40ft"
	ContainerSize40ftHC = "40ft_hc"
)

// Container unidad de envío que transporta vehículos entre regiones.
type Container struct {
	ID                string
	ContainerNumber   string // único
	BookingNumber     string
	ShippingLine      string
	Size              string
	Origin            string
	Destination       string
	DepartureDate     *time.Time
	ArrivalDate       *time.Time
	ActualArrivalDate *time.Time
	Status            string
	ShippingCost      decimal.Decimal
	InsuranceCost     decimal.Decimal
	CustomsDuty       decimal.Decimal
	ClearanceFees     decimal.Decimal
	TransportCost     decimal.Decimal
	TotalCost         decimal.Decimal // siempre igual a CostSum()
	Currency          string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CostSum suma los cinco conceptos de costo del contenedor.
func (c *Container) CostSum() decimal.Decimal {
	return c.ShippingCost.
		Add(c.InsuranceCost).
		Add(c.CustomsDuty).
		Add(c.ClearanceFees).
		Add(c.TransportCost)
}
