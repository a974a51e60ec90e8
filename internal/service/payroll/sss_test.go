package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSSCalculator_Calculate(t *testing.T) {
	calc := NewSSSCalculator()

	tests := []struct {
		name           string
		basis          string
		isSecondCutoff bool
		wantEmployee   string
		wantEmployer   string
		wantEC         string
	}{
		{
			name:           "lowest bracket",
			basis:          "1000",
			isSecondCutoff: false,
			wantEmployee:   "36.30",
			wantEmployer:   "73.70",
			wantEC:         "0",
		},
		{
			name:           "mid bracket first cutoff",
			basis:          "6760",
			isSecondCutoff: false,
			wantEmployee:   "254.30",
			wantEmployer:   "515.70",
			wantEC:         "0",
		},
		{
			name:           "mid bracket second cutoff includes EC",
			basis:          "6760",
			isSecondCutoff: true,
			wantEmployee:   "254.30",
			wantEmployer:   "515.70",
			wantEC:         "10",
		},
		{
			name:           "lower boundary is inclusive",
			basis:          "6250",
			isSecondCutoff: false,
			wantEmployee:   "236.20",
			wantEmployer:   "478.80",
			wantEC:         "0",
		},
		{
			name:           "upper boundary is inclusive",
			basis:          "6749.99",
			isSecondCutoff: false,
			wantEmployee:   "236.20",
			wantEmployer:   "478.80",
			wantEC:         "0",
		},
		{
			name:           "open-ended top bracket",
			basis:          "50000",
			isSecondCutoff: true,
			wantEmployee:   "581.30",
			wantEmployer:   "1178.70",
			wantEC:         "30",
		},
		{
			name:           "higher EC premium near the top of the table",
			basis:          "15000",
			isSecondCutoff: true,
			wantEmployee:   "545.00",
			wantEmployer:   "1105.00",
			wantEC:         "30",
		},
		{
			name:           "base EC premium below 14750",
			basis:          "14500",
			isSecondCutoff: true,
			wantEmployee:   "526.80",
			wantEmployer:   "1068.20",
			wantEC:         "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Calculate(decimal.RequireFromString(tt.basis), tt.isSecondCutoff)
			require.NoError(t, err)

			assert.True(t, got.EmployeeContribution.Equal(decimal.RequireFromString(tt.wantEmployee)),
				"employee: got %s", got.EmployeeContribution)
			assert.True(t, got.EmployerContribution.Equal(decimal.RequireFromString(tt.wantEmployer)),
				"employer: got %s", got.EmployerContribution)
			assert.True(t, got.ECContribution.Equal(decimal.RequireFromString(tt.wantEC)),
				"ec: got %s", got.ECContribution)

			wantTotal := got.EmployeeContribution.Add(got.EmployerContribution).Add(got.ECContribution)
			assert.True(t, got.TotalContribution.Equal(wantTotal), "total: got %s", got.TotalContribution)
		})
	}
}

func TestSSSCalculator_Calculate_NonPositiveBasis(t *testing.T) {
	calc := NewSSSCalculator()

	for _, basis := range []string{"0", "-100"} {
		got, err := calc.Calculate(decimal.RequireFromString(basis), true)
		require.NoError(t, err)
		assert.True(t, got.EmployeeContribution.IsZero())
		assert.True(t, got.EmployerContribution.IsZero())
		assert.True(t, got.ECContribution.IsZero())
		assert.True(t, got.TotalContribution.IsZero())
	}
}

func TestSSSCalculator_BracketsAreContiguous(t *testing.T) {
	// Every positive basis must land in exactly one row, so each row's
	// min has to pick up right after the previous row's max.
	for i := 1; i < len(sssBrackets); i++ {
		prev := sssBrackets[i-1]
		cur := sssBrackets[i]

		require.NotNil(t, prev.max, "bracket %d: only the last bracket may be open-ended", i-1)
		gap := cur.min.Sub(*prev.max)
		assert.True(t, gap.Equal(decimal.RequireFromString("0.01")),
			"bracket %d: min %s does not follow previous max %s", i, cur.min, prev.max)
	}

	last := sssBrackets[len(sssBrackets)-1]
	assert.Nil(t, last.max, "last bracket must be open-ended")
	assert.True(t, sssBrackets[0].min.IsZero(), "first bracket must start at zero")
}

func TestSSSCalculator_EmployerAlwaysExceedsEmployee(t *testing.T) {
	for i, b := range sssBrackets {
		assert.True(t, b.employer.GreaterThan(b.employee), "bracket %d", i)
	}
}
