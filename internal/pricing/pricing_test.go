package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"equiprent-backend/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		days     int32
		expected string
	}{
		{1, "0"},
		{2, "0"},
		{3, "0.05"},
		{6, "0.05"},
		{7, "0.1"},
		{14, "0.1"},
		{15, "0.15"},
		{29, "0.15"},
		{30, "0.25"},
		{365, "0.25"},
	}

	for _, tt := range tests {
		got := Discount(tt.days)
		assert.True(t, got.Equal(dec(tt.expected)), "days=%d got=%s want=%s", tt.days, got, tt.expected)
	}
}

func TestCalculate_DiscountSchedule(t *testing.T) {
	equipment := &domain.Equipment{DailyRate: dec("25")}

	t.Run("No discount under 3 days", func(t *testing.T) {
		got := Calculate(equipment, 2)
		assert.True(t, got.Equal(dec("50")), "got %s", got)
	})

	t.Run("5 percent from 3 days", func(t *testing.T) {
		got := Calculate(equipment, 3)
		assert.True(t, got.Equal(dec("71.25")), "got %s", got) // 25*3*0.95
	})

	t.Run("10 percent from 7 days", func(t *testing.T) {
		got := Calculate(equipment, 7)
		assert.True(t, got.Equal(dec("157.5")), "got %s", got) // 25*7*0.90
	})

	t.Run("15 percent from 15 days", func(t *testing.T) {
		got := Calculate(equipment, 15)
		assert.True(t, got.Equal(dec("318.75")), "got %s", got) // 25*15*0.85
	})

	t.Run("25 percent from 30 days", func(t *testing.T) {
		got := Calculate(equipment, 30)
		assert.True(t, got.Equal(dec("562.5")), "got %s", got) // 25*30*0.75
	})
}

func TestCalculate_TieredOverride(t *testing.T) {
	equipment := &domain.Equipment{
		DailyRate: dec("25"),
		TieredPrices: domain.TieredPrices{
			{Days: 7, Price: dec("140")},
			{Days: 30, Price: dec("500")},
		},
	}

	t.Run("Exact match returns stored price verbatim", func(t *testing.T) {
		got := Calculate(equipment, 7)
		assert.True(t, got.Equal(dec("140")), "got %s", got)

		got = Calculate(equipment, 30)
		assert.True(t, got.Equal(dec("500")), "got %s", got)
	})

	t.Run("No match falls back to the formula", func(t *testing.T) {
		got := Calculate(equipment, 10)
		assert.True(t, got.Equal(dec("225")), "got %s", got) // 25*10*0.90
	})
}
