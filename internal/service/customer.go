package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	waLinks      *WhatsAppLinkBuilder
}

func NewCustomerService(customerRepo repository.CustomerRepository, waLinks *WhatsAppLinkBuilder) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		waLinks:      waLinks,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	if customer.CreatedOn.IsZero() {
		customer.CreatedOn = time.Now().UTC()
	}
	if customer.DocumentType == "" {
		customer.DocumentType = domain.DocumentTypeCPF
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) WhatsAppLink(ctx context.Context, id string, message string) (string, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return "", err
	}
	return s.waLinks.BuildLink(customer.Phone, message), nil
}
