package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un vehículo.
const (
	VehicleStatusPurchased   = "purchased"
	VehicleStatusInTransit   = "in_transit"
	VehicleStatusInStock     = "in_stock"
	VehicleStatusDismantling = "dismantling"
	VehicleStatusSold        = "sold"
	VehicleStatusScrapped    = "scrapped"
)

// Tipos de transmisión.
const (
	TransmissionAutomatic = "automatic"
	TransmissionManual    = "manual"
	TransmissionCVT       = "cvt"
)

// Vehicle vehículo comprado (normalmente en subasta) para desmontar o revender.
type Vehicle struct {
	ID               string
	ChassisNumber    string // único
	Make             string
	Model            string
	Year             int
	EngineType       string
	Transmission     string
	Color            string
	Mileage          *int
	PurchasePrice    decimal.Decimal
	PurchaseCurrency string
	PurchaseDate     time.Time
	AuctionHouse     string
	AuctionLotNumber string
	Status           string
	Location         string
	Notes            string
	ContainerID      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
