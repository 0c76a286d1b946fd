package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

func TestEquipmentService_CreateEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults To Single Unit", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewEquipmentService(equipmentRepo, new(MockRentalRepo))

		equipmentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Equipment")).Return(nil)

		equipment := &domain.Equipment{Name: "Ladder", DailyRate: dec("5")}
		err := svc.CreateEquipment(ctx, equipment)
		assert.NoError(t, err)
		assert.NotEmpty(t, equipment.ID)
		assert.Equal(t, domain.Stock{Total: 1, Available: 1}, equipment.Stock)
		assert.Equal(t, domain.EquipmentStatusAvailable, equipment.Status)
	})

	t.Run("Rejects Broken Stock Partition", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewEquipmentService(equipmentRepo, new(MockRentalRepo))

		equipment := &domain.Equipment{
			Name:  "Ladder",
			Stock: domain.Stock{Total: 3, Available: 1, Rented: 1},
		}
		err := svc.CreateEquipment(ctx, equipment)
		assert.ErrorIs(t, err, ErrInvalidStock)
		equipmentRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Rejects Negative Counts", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewEquipmentService(equipmentRepo, new(MockRentalRepo))

		equipment := &domain.Equipment{
			Name:  "Ladder",
			Stock: domain.Stock{Total: 0, Available: -1, Rented: 1},
		}
		err := svc.CreateEquipment(ctx, equipment)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})
}

func TestEquipmentService_GetEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Includes Active Units", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewEquipmentService(equipmentRepo, rentalRepo)

		equipmentRepo.On("GetByID", ctx, "eq-1").Return(mixerEquipment(), nil)
		rentalRepo.On("ListActiveByEquipment", ctx, "eq-1").Return([]domain.ActiveRentalUnit{
			{RentalID: "rent-1", CustomerID: "cust-1", CustomerName: "Maria"},
		}, nil)

		equipment, units, err := svc.GetEquipment(ctx, "eq-1")
		assert.NoError(t, err)
		assert.Equal(t, "eq-1", equipment.ID)
		assert.Len(t, units, 1)
		assert.Equal(t, "Maria", units[0].CustomerName)
	})

	t.Run("Not Found", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewEquipmentService(equipmentRepo, new(MockRentalRepo))

		equipmentRepo.On("GetByID", ctx, "ghost").Return(nil, repository.ErrNotFound)

		_, _, err := svc.GetEquipment(ctx, "ghost")
		assert.ErrorIs(t, err, ErrEquipmentNotFound)
	})
}

func TestEquipmentService_Quote(t *testing.T) {
	ctx := context.Background()

	equipmentRepo := new(MockEquipmentRepo)
	svc := NewEquipmentService(equipmentRepo, new(MockRentalRepo))

	equipment := mixerEquipment()
	equipment.TieredPrices = domain.TieredPrices{{Days: 30, Price: dec("500")}}
	equipmentRepo.On("GetByID", ctx, "eq-1").Return(equipment, nil)

	t.Run("Formula Price", func(t *testing.T) {
		price, err := svc.Quote(ctx, "eq-1", 7)
		assert.NoError(t, err)
		assert.True(t, price.Equal(dec("157.5")), "got %s", price)
	})

	t.Run("Tier Override", func(t *testing.T) {
		price, err := svc.Quote(ctx, "eq-1", 30)
		assert.NoError(t, err)
		assert.True(t, price.Equal(dec("500")))
	})

	t.Run("Invalid Duration", func(t *testing.T) {
		_, err := svc.Quote(ctx, "eq-1", 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name    string
		stock   domain.Stock
		current domain.EquipmentStatus
		want    domain.EquipmentStatus
	}{
		{"All Available", domain.Stock{Total: 3, Available: 3}, domain.EquipmentStatusAvailable, domain.EquipmentStatusAvailable},
		{"Some Rented", domain.Stock{Total: 3, Available: 1, Rented: 2}, domain.EquipmentStatusAvailable, domain.EquipmentStatusAvailable},
		{"Last Unit Out", domain.Stock{Total: 3, Rented: 3}, domain.EquipmentStatusAvailable, domain.EquipmentStatusRented},
		{"In Maintenance", domain.Stock{Total: 2, Maintenance: 2}, domain.EquipmentStatusMaintenance, domain.EquipmentStatusMaintenance},
		{"Rented Plus Maintenance", domain.Stock{Total: 2, Rented: 1, Maintenance: 1}, domain.EquipmentStatusAvailable, domain.EquipmentStatusRented},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveStatus(tt.stock, tt.current))
		})
	}
}
