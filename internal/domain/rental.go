package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusFinalized RentalStatus = "FINALIZED"
	// RentalStatusOverdue is assigned only by the optional cron sweep,
	// never by the lifecycle engine itself.
	RentalStatusOverdue RentalStatus = "OVERDUE"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusOwing   PaymentStatus = "OWING"
)

// Rental is one contract for one unit of equipment. Status and
// PaymentStatus are independent axes: a rental can be active-and-owing
// or finalized-and-paid.
type Rental struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	EquipmentID string    `json:"equipment_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	// DurationDays and TotalPrice only ever grow, via renewals.
	DurationDays int32 `json:"duration_days"`
	// DailyRate is a snapshot captured at creation time. Renewals price
	// against the equipment's live rate, not this snapshot.
	DailyRate     decimal.Decimal `json:"daily_rate"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        RentalStatus    `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Renewals      []Renewal       `json:"renewals,omitempty"`
	CreatedOn     time.Time       `json:"created_on"`
}

// Renewal is one entry of a rental's append-only renewal log.
type Renewal struct {
	ID              string          `json:"id"`
	RentalID        string          `json:"rental_id"`
	RenewedOn       time.Time       `json:"renewed_on"`
	NewEndDate      time.Time       `json:"new_end_date"`
	AdditionalDays  int32           `json:"additional_days"`
	AdditionalPrice decimal.Decimal `json:"additional_price"`
}
