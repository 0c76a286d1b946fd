package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository"
)

type reportService struct {
	rentalRepo    repository.RentalRepository
	customerRepo  repository.CustomerRepository
	equipmentRepo repository.EquipmentRepository
	leadDays      int32
}

func NewReportService(
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	equipmentRepo repository.EquipmentRepository,
	leadDays int32,
) ReportService {
	return &reportService{
		rentalRepo:    rentalRepo,
		customerRepo:  customerRepo,
		equipmentRepo: equipmentRepo,
		leadDays:      leadDays,
	}
}

func (s *reportService) DueSoon(ctx context.Context, now time.Time) ([]domain.DueRental, error) {
	open, err := s.rentalRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing open rentals: %w", err)
	}

	due := make([]domain.DueRental, 0, len(open))
	for _, rental := range open {
		remaining := daysUntil(now, rental.EndDate)
		if remaining > s.leadDays {
			continue
		}

		customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
		if err != nil {
			// The customer may have been deleted out from under the rental.
			logger.Warn("skipping due rental with unresolvable customer",
				"rental_id", rental.ID, "customer_id", rental.CustomerID, "error", err)
			continue
		}
		equipment, err := s.equipmentRepo.GetByID(ctx, rental.EquipmentID)
		if err != nil {
			logger.Warn("skipping due rental with unresolvable equipment",
				"rental_id", rental.ID, "equipment_id", rental.EquipmentID, "error", err)
			continue
		}

		due = append(due, domain.DueRental{
			Rental:        rental,
			Customer:      *customer,
			Equipment:     *equipment,
			DaysRemaining: remaining,
			Overdue:       remaining < 0,
		})
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DaysRemaining < due[j].DaysRemaining
	})
	return due, nil
}

func (s *reportService) CustomerHistory(ctx context.Context, customerID string) (*domain.CustomerHistory, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	rentals, err := s.rentalRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing customer rentals: %w", err)
	}

	return buildHistory(customer, rentals), nil
}

func (s *reportService) CustomersWithDebt(ctx context.Context) ([]domain.CustomerHistory, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	var debtors []domain.CustomerHistory
	for _, customer := range customers {
		rentals, err := s.rentalRepo.ListByCustomer(ctx, customer.ID)
		if err != nil {
			logger.Warn("skipping customer in debt report",
				"customer_id", customer.ID, "error", err)
			continue
		}
		history := buildHistory(&customer, rentals)
		if history.HasDebt {
			debtors = append(debtors, *history)
		}
	}
	return debtors, nil
}

// buildHistory recomputes the customer's aggregates from the rental
// list. Revenue sums PAID totals, debt sums OWING totals; PENDING
// contributes to neither.
func buildHistory(customer *domain.Customer, rentals []domain.Rental) *domain.CustomerHistory {
	history := &domain.CustomerHistory{
		Customer:     *customer,
		Rentals:      rentals,
		TotalRevenue: decimal.Zero,
		DebtAmount:   decimal.Zero,
	}

	for _, rental := range rentals {
		switch rental.PaymentStatus {
		case domain.PaymentStatusPaid:
			history.TotalRevenue = history.TotalRevenue.Add(rental.TotalPrice)
		case domain.PaymentStatusOwing:
			history.DebtAmount = history.DebtAmount.Add(rental.TotalPrice)
		}

		if rental.Status == domain.RentalStatusFinalized {
			history.FinalizedCount++
		} else {
			history.ActiveCount++
		}
	}

	history.HasDebt = history.DebtAmount.IsPositive()
	return history
}

// daysUntil counts whole days from now to the deadline, rounding any
// partial day up. A deadline earlier than now yields a negative count.
func daysUntil(now, deadline time.Time) int32 {
	diff := deadline.Sub(now)
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int32(days)
}
