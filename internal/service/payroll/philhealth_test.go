package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/payroll"
)

func TestPhilHealthCalculator_Calculate(t *testing.T) {
	calc := NewPhilHealthCalculator()

	tests := []struct {
		name      string
		monthly   string
		wantTotal string
		wantMin   bool
		wantMax   bool
	}{
		{
			name:      "floor below 10k",
			monthly:   "8000",
			wantTotal: "500",
			wantMin:   true,
		},
		{
			name:      "floor at exactly 10k",
			monthly:   "10000",
			wantTotal: "500",
			wantMin:   true,
		},
		{
			name:      "five percent in the middle",
			monthly:   "13520",
			wantTotal: "676",
		},
		{
			name:      "ceiling boundary still five percent",
			monthly:   "100000",
			wantTotal: "5000",
		},
		{
			name:      "cap above 100k",
			monthly:   "100000.01",
			wantTotal: "5000",
			wantMax:   true,
		},
		{
			name:      "cap far above 100k",
			monthly:   "250000",
			wantTotal: "5000",
			wantMax:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(decimal.RequireFromString(tt.monthly))

			wantTotal := decimal.RequireFromString(tt.wantTotal)
			assert.True(t, got.TotalContribution.Equal(wantTotal), "total: got %s", got.TotalContribution)
			assert.True(t, got.EmployeeContribution.Equal(got.EmployerContribution),
				"premium must split evenly: %s vs %s", got.EmployeeContribution, got.EmployerContribution)
			assert.Equal(t, tt.wantMin, got.IsMinimum)
			assert.Equal(t, tt.wantMax, got.IsMaximum)
		})
	}
}

func TestPhilHealthCalculator_Calculate_NonPositive(t *testing.T) {
	calc := NewPhilHealthCalculator()

	got := calc.Calculate(decimal.Zero)
	assert.True(t, got.TotalContribution.IsZero())
	assert.False(t, got.IsMinimum)
	assert.False(t, got.IsMaximum)
}

func TestPhilHealthCalculator_CalculateSemiMonthly(t *testing.T) {
	calc := NewPhilHealthCalculator()
	monthly := decimal.NewFromInt(13520) // 5% = 676, employee share 338

	t.Run("full_second deducts only in second cutoff", func(t *testing.T) {
		first := calc.CalculateSemiMonthly(monthly, payroll.ScheduleFullSecond, false)
		assert.True(t, first.CutoffEmployee.IsZero(), "got %s", first.CutoffEmployee)

		second := calc.CalculateSemiMonthly(monthly, payroll.ScheduleFullSecond, true)
		assert.True(t, second.CutoffEmployee.Equal(decimal.NewFromInt(338)), "got %s", second.CutoffEmployee)
		assert.True(t, second.CutoffEmployer.Equal(decimal.NewFromInt(338)), "got %s", second.CutoffEmployer)
	})

	t.Run("full_first deducts only in first cutoff", func(t *testing.T) {
		first := calc.CalculateSemiMonthly(monthly, payroll.ScheduleFullFirst, false)
		assert.True(t, first.CutoffEmployee.Equal(decimal.NewFromInt(338)), "got %s", first.CutoffEmployee)

		second := calc.CalculateSemiMonthly(monthly, payroll.ScheduleFullFirst, true)
		assert.True(t, second.CutoffEmployee.IsZero(), "got %s", second.CutoffEmployee)
	})

	t.Run("split halves the premium in both cutoffs", func(t *testing.T) {
		first := calc.CalculateSemiMonthly(monthly, payroll.ScheduleSplit, false)
		second := calc.CalculateSemiMonthly(monthly, payroll.ScheduleSplit, true)

		assert.True(t, first.CutoffEmployee.Equal(decimal.NewFromInt(169)), "got %s", first.CutoffEmployee)
		assert.True(t, second.CutoffEmployee.Equal(decimal.NewFromInt(169)), "got %s", second.CutoffEmployee)
	})

	t.Run("monthly figures ride along for the audit trail", func(t *testing.T) {
		got := calc.CalculateSemiMonthly(monthly, payroll.ScheduleFullSecond, false)
		assert.True(t, got.Monthly.TotalContribution.Equal(decimal.NewFromInt(676)), "got %s", got.Monthly.TotalContribution)
	})
}
