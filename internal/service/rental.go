package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/pricing"
	"equiprent-backend/internal/repository"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	customerRepo  repository.CustomerRepository
	equipmentRepo repository.EquipmentRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	equipmentRepo repository.EquipmentRepository,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		customerRepo:  customerRepo,
		equipmentRepo: equipmentRepo,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, customerID, equipmentID string, startDate time.Time, days int32, notes string) (*domain.Rental, error) {
	if days < 1 {
		return nil, ErrInvalidDuration
	}

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	if equipment.Stock.Available < 1 {
		return nil, ErrNoUnitsAvailable
	}

	rental := &domain.Rental{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		EquipmentID:   equipmentID,
		StartDate:     startDate,
		EndDate:       startDate.AddDate(0, 0, int(days)),
		DurationDays:  days,
		DailyRate:     equipment.DailyRate,
		TotalPrice:    pricing.Calculate(equipment, days),
		Status:        domain.RentalStatusActive,
		PaymentStatus: domain.PaymentStatusPending,
		Notes:         notes,
		CreatedOn:     time.Now().UTC(),
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, fmt.Errorf("creating rental: %w", err)
	}

	equipment.Stock.Available--
	equipment.Stock.Rented++
	if equipment.Stock.Available == 0 {
		// Status only flips when the last unit leaves the shelf.
		equipment.Status = domain.EquipmentStatusRented
	}
	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, fmt.Errorf("updating equipment stock: %w", err)
	}

	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListRentalsByCustomer(ctx context.Context, customerID string) ([]domain.Rental, error) {
	return s.rentalRepo.ListByCustomer(ctx, customerID)
}

func (s *rentalService) RenewRental(ctx context.Context, id string, additionalDays int32) (*domain.Rental, error) {
	if additionalDays < 1 {
		return nil, ErrInvalidDuration
	}

	rental, err := s.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, ErrRentalNotActive
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, rental.EquipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	// The extension is priced on its own, against the equipment's live
	// rate and tiers, so a renewal can earn a different discount band
	// than the original period did.
	additionalPrice := pricing.Calculate(equipment, additionalDays)

	renewal := &domain.Renewal{
		ID:              uuid.NewString(),
		RentalID:        rental.ID,
		RenewedOn:       time.Now().UTC(),
		NewEndDate:      rental.EndDate.AddDate(0, 0, int(additionalDays)),
		AdditionalDays:  additionalDays,
		AdditionalPrice: additionalPrice,
	}

	rental.EndDate = renewal.NewEndDate
	rental.DurationDays += additionalDays
	rental.TotalPrice = rental.TotalPrice.Add(additionalPrice)

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, fmt.Errorf("updating rental: %w", err)
	}
	if err := s.rentalRepo.AddRenewal(ctx, renewal); err != nil {
		return nil, fmt.Errorf("recording renewal: %w", err)
	}

	rental.Renewals = append(rental.Renewals, *renewal)
	return rental, nil
}

func (s *rentalService) FinalizeRental(ctx context.Context, id string) (*domain.Rental, error) {
	rental, err := s.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status == domain.RentalStatusFinalized {
		// Already returned; finalizing again is a no-op.
		return rental, nil
	}

	rental.Status = domain.RentalStatusFinalized
	if rental.PaymentStatus == domain.PaymentStatusPending {
		now := time.Now().UTC()
		rental.PaymentStatus = domain.PaymentStatusPaid
		rental.PaymentDate = &now
	}

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, fmt.Errorf("updating rental: %w", err)
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, rental.EquipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Equipment deleted while the rental was out; nothing to return
			// the unit to.
			return rental, nil
		}
		return nil, err
	}

	if equipment.Stock.Rented > 0 {
		equipment.Stock.Rented--
		equipment.Stock.Available++
		if equipment.Stock.Rented == 0 {
			// Status only flips back once the last outstanding unit returns.
			equipment.Status = domain.EquipmentStatusAvailable
		}
	}
	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, fmt.Errorf("updating equipment stock: %w", err)
	}

	return rental, nil
}

func (s *rentalService) SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Rental, error) {
	rental, err := s.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}

	rental.PaymentStatus = status
	if status == domain.PaymentStatusPaid {
		now := time.Now().UTC()
		rental.PaymentDate = &now
	} else {
		rental.PaymentDate = nil
	}

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, fmt.Errorf("updating rental: %w", err)
	}
	return rental, nil
}
