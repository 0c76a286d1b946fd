package repository

import (
	"context"
	"errors"
	"time"

	"equiprent-backend/internal/domain"
)

// ErrNotFound is returned by Get* methods when no record matches.
var ErrNotFound = errors.New("record not found")

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	// Delete removes the customer only. Rentals referencing the customer
	// are left in place; dangling references are tolerated.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	Update(ctx context.Context, equipment *domain.Equipment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Equipment, error)
	// ListAvailable returns equipment with at least one available unit,
	// including records whose coarse status is RENTED or MAINTENANCE.
	ListAvailable(ctx context.Context) ([]domain.Equipment, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	// GetByID loads the rental with its renewal log attached. List
	// queries return bare rentals without renewals.
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context) ([]domain.Rental, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Rental, error)
	// ListOpen returns ACTIVE and OVERDUE rentals.
	ListOpen(ctx context.Context) ([]domain.Rental, error)
	// ListActiveByEquipment returns one row per rented unit of the
	// equipment, each with its own renter and dates.
	ListActiveByEquipment(ctx context.Context, equipmentID string) ([]domain.ActiveRentalUnit, error)
	AddRenewal(ctx context.Context, renewal *domain.Renewal) error
	// MarkOverdue flips ACTIVE rentals whose end date is before asOf to
	// OVERDUE and reports how many rows changed.
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
