package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueRental is one row of the due-soon report: an open rental joined
// with its customer and equipment, classified against the lead window.
type DueRental struct {
	Rental        Rental    `json:"rental"`
	Customer      Customer  `json:"customer"`
	Equipment     Equipment `json:"equipment"`
	DaysRemaining int32     `json:"days_remaining"`
	Overdue       bool      `json:"overdue"`
}

// CustomerHistory is the per-customer summary recomputed from the
// customer's rentals on every read. Revenue sums PAID totals, debt sums
// OWING totals.
type CustomerHistory struct {
	Customer       Customer        `json:"customer"`
	Rentals        []Rental        `json:"rentals"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	DebtAmount     decimal.Decimal `json:"debt_amount"`
	HasDebt        bool            `json:"has_debt"`
	ActiveCount    int32           `json:"active_count"`
	FinalizedCount int32           `json:"finalized_count"`
}

// LastActivity returns the latest end date across the customer's rentals.
func (h *CustomerHistory) LastActivity() time.Time {
	var last time.Time
	for _, r := range h.Rentals {
		if r.EndDate.After(last) {
			last = r.EndDate
		}
	}
	return last
}
