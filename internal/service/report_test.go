package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"equiprent-backend/internal/domain"
)

func TestReportService_DueSoon(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	rentalEnding := func(id string, end time.Time, status domain.RentalStatus) domain.Rental {
		return domain.Rental{
			ID:          id,
			CustomerID:  "cust-1",
			EquipmentID: "eq-1",
			EndDate:     end,
			Status:      status,
		}
	}

	t.Run("Window And Ordering", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		customerRepo := new(MockCustomerRepo)
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewReportService(rentalRepo, customerRepo, equipmentRepo, 3)

		rentalRepo.On("ListOpen", ctx).Return([]domain.Rental{
			rentalEnding("due-tomorrow", now.Add(20*time.Hour), domain.RentalStatusActive),
			rentalEnding("overdue", now.Add(-30*time.Hour), domain.RentalStatusOverdue),
			rentalEnding("due-in-3", now.Add(61*time.Hour), domain.RentalStatusActive),
			rentalEnding("due-in-5", now.Add(110*time.Hour), domain.RentalStatusActive),
		}, nil)
		customerRepo.On("GetByID", ctx, "cust-1").Return(&domain.Customer{ID: "cust-1", Name: "Maria"}, nil)
		equipmentRepo.On("GetByID", ctx, "eq-1").Return(&domain.Equipment{ID: "eq-1", Name: "Mixer"}, nil)

		due, err := svc.DueSoon(ctx, now)
		assert.NoError(t, err)
		assert.Len(t, due, 3)

		// Most urgent first; the rental outside the lead window is absent
		assert.Equal(t, "overdue", due[0].Rental.ID)
		assert.True(t, due[0].Overdue)
		assert.Equal(t, int32(-1), due[0].DaysRemaining)

		assert.Equal(t, "due-tomorrow", due[1].Rental.ID)
		assert.False(t, due[1].Overdue)
		assert.Equal(t, int32(1), due[1].DaysRemaining)

		assert.Equal(t, "due-in-3", due[2].Rental.ID)
		assert.Equal(t, int32(3), due[2].DaysRemaining)
	})

	t.Run("Skips Dangling Customer", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		customerRepo := new(MockCustomerRepo)
		equipmentRepo := new(MockEquipmentRepo)
		svc := NewReportService(rentalRepo, customerRepo, equipmentRepo, 3)

		orphan := rentalEnding("orphan", now.Add(-24*time.Hour), domain.RentalStatusActive)
		orphan.CustomerID = "gone"
		rentalRepo.On("ListOpen", ctx).Return([]domain.Rental{orphan}, nil)
		customerRepo.On("GetByID", ctx, "gone").Return(nil, errors.New("not found"))

		due, err := svc.DueSoon(ctx, now)
		assert.NoError(t, err)
		assert.Empty(t, due)
	})
}

func TestReportService_CustomerHistory(t *testing.T) {
	ctx := context.Background()

	rentalRepo := new(MockRentalRepo)
	customerRepo := new(MockCustomerRepo)
	equipmentRepo := new(MockEquipmentRepo)
	svc := NewReportService(rentalRepo, customerRepo, equipmentRepo, 3)

	customerRepo.On("GetByID", ctx, "cust-1").Return(&domain.Customer{ID: "cust-1", Name: "Maria"}, nil)
	rentalRepo.On("ListByCustomer", ctx, "cust-1").Return([]domain.Rental{
		{ID: "r1", Status: domain.RentalStatusFinalized, PaymentStatus: domain.PaymentStatusPaid, TotalPrice: dec("100")},
		{ID: "r2", Status: domain.RentalStatusFinalized, PaymentStatus: domain.PaymentStatusOwing, TotalPrice: dec("80")},
		{ID: "r3", Status: domain.RentalStatusActive, PaymentStatus: domain.PaymentStatusPending, TotalPrice: dec("50")},
		{ID: "r4", Status: domain.RentalStatusOverdue, PaymentStatus: domain.PaymentStatusOwing, TotalPrice: dec("20")},
	}, nil)

	history, err := svc.CustomerHistory(ctx, "cust-1")
	assert.NoError(t, err)
	assert.True(t, history.TotalRevenue.Equal(dec("100")), "got %s", history.TotalRevenue)
	assert.True(t, history.DebtAmount.Equal(dec("100")), "got %s", history.DebtAmount)
	assert.True(t, history.HasDebt)
	assert.Equal(t, int32(2), history.ActiveCount)
	assert.Equal(t, int32(2), history.FinalizedCount)
}

func TestReportService_CustomersWithDebt(t *testing.T) {
	ctx := context.Background()

	rentalRepo := new(MockRentalRepo)
	customerRepo := new(MockCustomerRepo)
	equipmentRepo := new(MockEquipmentRepo)
	svc := NewReportService(rentalRepo, customerRepo, equipmentRepo, 3)

	customerRepo.On("List", ctx).Return([]domain.Customer{
		{ID: "debtor"},
		{ID: "clean"},
		{ID: "broken"},
	}, nil)
	rentalRepo.On("ListByCustomer", ctx, "debtor").Return([]domain.Rental{
		{Status: domain.RentalStatusFinalized, PaymentStatus: domain.PaymentStatusOwing, TotalPrice: dec("75")},
	}, nil)
	rentalRepo.On("ListByCustomer", ctx, "clean").Return([]domain.Rental{
		{Status: domain.RentalStatusFinalized, PaymentStatus: domain.PaymentStatusPaid, TotalPrice: dec("75")},
	}, nil)
	rentalRepo.On("ListByCustomer", ctx, "broken").Return(nil, errors.New("boom"))

	debtors, err := svc.CustomersWithDebt(ctx)
	assert.NoError(t, err)
	assert.Len(t, debtors, 1)
	assert.Equal(t, "debtor", debtors[0].Customer.ID)
	assert.True(t, debtors[0].DebtAmount.Equal(dec("75")))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     int32
	}{
		{"Exact Now", now, 0},
		{"Partial Day Rounds Up", now.Add(time.Hour), 1},
		{"Exactly One Day", now.Add(24 * time.Hour), 1},
		{"Just Over One Day", now.Add(25 * time.Hour), 2},
		{"Past Due Within A Day", now.Add(-time.Hour), 0},
		{"Past Due Over A Day", now.Add(-30 * time.Hour), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysUntil(now, tt.deadline))
		})
	}
}
