package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusRented      EquipmentStatus = "RENTED"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// TieredPrice is a fixed total price for an exact rental duration. An
// entry matching the requested duration overrides the formulaic
// discount in the pricing calculator.
type TieredPrice struct {
	Days     int32            `json:"days"`
	Price    decimal.Decimal  `json:"price"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
}

// TieredPrices is stored as a single JSONB column.
type TieredPrices []TieredPrice

func (t TieredPrices) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

func (t *TieredPrices) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported tiered prices column type %T", src)
	}
}

// Stock partitions an equipment's units. Invariant:
// Available + Rented + Maintenance == Total after every operation.
type Stock struct {
	Total       int32 `json:"total"`
	Available   int32 `json:"available"`
	Rented      int32 `json:"rented"`
	Maintenance int32 `json:"maintenance"`
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Equipment describes one rentable equipment record with unit stock.
// Status is a coarse summary of the stock counts: it flips to RENTED
// only when the last available unit goes out and back to AVAILABLE only
// when the last rented unit returns. Per-unit renter data lives on the
// rentals, not here.
type Equipment struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	TieredPrices TieredPrices    `json:"tiered_prices"`
	Status       EquipmentStatus `json:"status"`
	Location     *Location       `json:"location,omitempty"`
	Stock        Stock           `json:"stock"`
	CreatedOn    time.Time       `json:"created_on"`
}

// ActiveRentalUnit is one rented-out unit of an equipment record,
// derived from its open rentals. Each unit carries its own renter and
// dates, so several units of the same equipment can be out to different
// customers at once.
type ActiveRentalUnit struct {
	RentalID     string    `json:"rental_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}
