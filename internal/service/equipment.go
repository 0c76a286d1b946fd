package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/pricing"
	"equiprent-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	rentalRepo    repository.RentalRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, rentalRepo repository.RentalRepository) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		rentalRepo:    rentalRepo,
	}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, equipment *domain.Equipment) error {
	if equipment.ID == "" {
		equipment.ID = uuid.NewString()
	}
	if equipment.CreatedOn.IsZero() {
		equipment.CreatedOn = time.Now().UTC()
	}
	if equipment.Stock.Total == 0 && equipment.Stock.Available == 0 &&
		equipment.Stock.Rented == 0 && equipment.Stock.Maintenance == 0 {
		// A record created without stock counts is a single unit on the shelf.
		equipment.Stock = domain.Stock{Total: 1, Available: 1}
	}
	if err := validateStock(equipment.Stock); err != nil {
		return err
	}
	equipment.Status = deriveStatus(equipment.Stock, equipment.Status)

	if err := s.equipmentRepo.Create(ctx, equipment); err != nil {
		return fmt.Errorf("creating equipment: %w", err)
	}
	return nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, []domain.ActiveRentalUnit, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrEquipmentNotFound
		}
		return nil, nil, err
	}

	units, err := s.rentalRepo.ListActiveByEquipment(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("listing active units: %w", err)
	}

	return equipment, units, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, equipment *domain.Equipment) error {
	if err := validateStock(equipment.Stock); err != nil {
		return err
	}
	equipment.Status = deriveStatus(equipment.Stock, equipment.Status)

	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	return nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id string) error {
	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	return nil
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

func (s *equipmentService) ListAvailableEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.ListAvailable(ctx)
}

func (s *equipmentService) Quote(ctx context.Context, equipmentID string, days int32) (decimal.Decimal, error) {
	if days < 1 {
		return decimal.Zero, ErrInvalidDuration
	}
	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return decimal.Zero, ErrEquipmentNotFound
		}
		return decimal.Zero, err
	}
	return pricing.Calculate(equipment, days), nil
}

func validateStock(stock domain.Stock) error {
	if stock.Total < 0 || stock.Available < 0 || stock.Rented < 0 || stock.Maintenance < 0 {
		return ErrInvalidStock
	}
	if stock.Available+stock.Rented+stock.Maintenance != stock.Total {
		return ErrInvalidStock
	}
	return nil
}

// deriveStatus recomputes the coarse status after a direct stock edit.
// Rental create and finalize flip status on the boundary counts instead.
// MAINTENANCE is only held while no units are out.
func deriveStatus(stock domain.Stock, current domain.EquipmentStatus) domain.EquipmentStatus {
	switch {
	case stock.Rented > 0 && stock.Available == 0:
		return domain.EquipmentStatusRented
	case stock.Available > 0:
		return domain.EquipmentStatusAvailable
	case current == domain.EquipmentStatusMaintenance && stock.Rented == 0:
		return domain.EquipmentStatusMaintenance
	case stock.Rented > 0:
		return domain.EquipmentStatusRented
	default:
		return domain.EquipmentStatusAvailable
	}
}
