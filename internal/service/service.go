package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"equiprent-backend/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrRentalNotFound     = errors.New("rental not found")
	ErrRentalNotActive    = errors.New("rental is not active")
	ErrNoUnitsAvailable   = errors.New("no units available")
	ErrInvalidDuration    = errors.New("duration must be at least one day")
	ErrInvalidStock       = errors.New("stock counts do not partition the total")
	ErrUsernameTaken      = errors.New("username already taken")
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error) // token, user
	CreateUser(ctx context.Context, username, password, name, email string, role domain.UserRole) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	// WhatsAppLink builds a click-to-chat URL for the customer's phone
	// with an optional prefilled message.
	WhatsAppLink(ctx context.Context, id string, message string) (string, error)
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, equipment *domain.Equipment) error
	// GetEquipment returns the record together with one entry per unit
	// currently out on an open rental.
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, []domain.ActiveRentalUnit, error)
	UpdateEquipment(ctx context.Context, equipment *domain.Equipment) error
	DeleteEquipment(ctx context.Context, id string) error
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
	ListAvailableEquipment(ctx context.Context) ([]domain.Equipment, error)
	// Quote prices a hypothetical rental without creating one.
	Quote(ctx context.Context, equipmentID string, days int32) (decimal.Decimal, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, customerID, equipmentID string, startDate time.Time, days int32, notes string) (*domain.Rental, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	ListRentalsByCustomer(ctx context.Context, customerID string) ([]domain.Rental, error)
	RenewRental(ctx context.Context, id string, additionalDays int32) (*domain.Rental, error)
	FinalizeRental(ctx context.Context, id string) (*domain.Rental, error)
	SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Rental, error)
}

type ReportService interface {
	// DueSoon lists open rentals ending within the lead window or already
	// past due, soonest deadline first.
	DueSoon(ctx context.Context, now time.Time) ([]domain.DueRental, error)
	CustomerHistory(ctx context.Context, customerID string) (*domain.CustomerHistory, error)
	CustomersWithDebt(ctx context.Context) ([]domain.CustomerHistory, error)
}

type EmailService interface {
	SendDueReminder(ctx context.Context, due *domain.DueRental) error
}
