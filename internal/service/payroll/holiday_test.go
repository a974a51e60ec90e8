package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHolidayPremium(t *testing.T) {
	rate800 := decimal.NewFromInt(800)

	tests := []struct {
		name      string
		dailyRate decimal.Decimal
		hours     string
		rate      string
		want      string
	}{
		{
			name:      "regular holiday full day",
			dailyRate: rate800,
			hours:     "8",
			rate:      "2.0",
			want:      "1600",
		},
		{
			name:      "special holiday full day",
			dailyRate: rate800,
			hours:     "8",
			rate:      "0.3",
			want:      "240",
		},
		{
			name:      "partial holiday hours",
			dailyRate: rate800,
			hours:     "4",
			rate:      "2.0",
			want:      "800",
		},
		{
			name:      "zero hours",
			dailyRate: rate800,
			hours:     "0",
			rate:      "2.0",
			want:      "0",
		},
		{
			name:      "zero rate",
			dailyRate: rate800,
			hours:     "8",
			rate:      "0",
			want:      "0",
		},
		{
			name:      "zero daily rate",
			dailyRate: decimal.Zero,
			hours:     "8",
			rate:      "2.0",
			want:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := holidayPremium(tt.dailyRate, decimal.RequireFromString(tt.hours), decimal.RequireFromString(tt.rate))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
