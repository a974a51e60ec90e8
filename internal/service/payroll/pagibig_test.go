package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPagIBIGCalculator_Calculate(t *testing.T) {
	calc := NewPagIBIGCalculator()

	tests := []struct {
		name         string
		monthly      string
		wantEmployee string
		wantEmployer string
		wantCapped   bool
	}{
		{
			name:         "low rate at exactly 1500",
			monthly:      "1500",
			wantEmployee: "15.00",
			wantEmployer: "30.00",
		},
		{
			name:         "high rate just above 1500",
			monthly:      "1500.01",
			wantEmployee: "30.00",
			wantEmployer: "30.00",
		},
		{
			name:         "uncapped mid salary",
			monthly:      "8000",
			wantEmployee: "160.00",
			wantEmployer: "160.00",
		},
		{
			name:         "cap reached at exactly 10000",
			monthly:      "10000",
			wantEmployee: "200.00",
			wantEmployer: "200.00",
			wantCapped:   true,
		},
		{
			name:         "employer forced to cap above 10000",
			monthly:      "13520",
			wantEmployee: "200.00",
			wantEmployer: "200.00",
			wantCapped:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(decimal.RequireFromString(tt.monthly))

			assert.True(t, got.EmployeeContribution.Equal(decimal.RequireFromString(tt.wantEmployee)),
				"employee: got %s", got.EmployeeContribution)
			assert.True(t, got.EmployerContribution.Equal(decimal.RequireFromString(tt.wantEmployer)),
				"employer: got %s", got.EmployerContribution)
			assert.Equal(t, tt.wantCapped, got.IsCapped)
			assert.True(t, got.TotalContribution.Equal(got.EmployeeContribution.Add(got.EmployerContribution)))
		})
	}
}

func TestPagIBIGCalculator_Calculate_NonPositive(t *testing.T) {
	calc := NewPagIBIGCalculator()

	got := calc.Calculate(decimal.Zero)
	assert.True(t, got.EmployeeContribution.IsZero())
	assert.True(t, got.EmployerContribution.IsZero())
	assert.False(t, got.IsCapped)
}

func TestPagIBIGCalculator_CalculateSemiMonthly(t *testing.T) {
	calc := NewPagIBIGCalculator()

	// Capped monthly 200/200 halves to 100/100 per cutoff.
	got := calc.CalculateSemiMonthly(decimal.NewFromInt(13520))

	assert.True(t, got.Monthly.IsCapped)
	assert.True(t, got.CutoffEmployee.Equal(decimal.NewFromInt(100)), "got %s", got.CutoffEmployee)
	assert.True(t, got.CutoffEmployer.Equal(decimal.NewFromInt(100)), "got %s", got.CutoffEmployer)
	assert.True(t, got.CutoffTotal.Equal(decimal.NewFromInt(200)), "got %s", got.CutoffTotal)
}

func TestPagIBIGCalculator_CalculatePartialMonth(t *testing.T) {
	calc := NewPagIBIGCalculator()

	// 300/day for 4 days projects to 1200, inside the 1% band.
	got := calc.CalculatePartialMonth(decimal.NewFromInt(300), decimal.NewFromInt(4))

	assert.True(t, got.EmployeeContribution.Equal(decimal.NewFromInt(12)), "got %s", got.EmployeeContribution)
	assert.True(t, got.EmployerContribution.Equal(decimal.NewFromInt(24)), "got %s", got.EmployerContribution)
	assert.False(t, got.IsCapped)
}
