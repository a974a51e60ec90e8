package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/payroll"
)

var (
	philHealthRate         = decimal.RequireFromString("0.05")
	philHealthFloorSalary  = decimal.NewFromInt(10000)
	philHealthFloorTotal   = decimal.NewFromInt(500)
	philHealthCeilSalary   = decimal.NewFromInt(100000)
	philHealthCeilTotal    = decimal.NewFromInt(5000)
	philHealthShareDivisor = decimal.NewFromInt(2)
)

type PhilHealthContribution struct {
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	TotalContribution    decimal.Decimal
	IsMinimum            bool
	IsMaximum            bool
}

// PhilHealthSemiMonthly carries the per-cutoff deduction plus the
// full-month figures. Whichever cutoff the schedule does not select
// contributes zero.
type PhilHealthSemiMonthly struct {
	Monthly        PhilHealthContribution
	CutoffEmployee decimal.Decimal
	CutoffEmployer decimal.Decimal
	CutoffTotal    decimal.Decimal
}

// PhilHealthCalculator computes PHIC premiums: 5% of monthly basic
// salary split evenly, floored at P500 total up to P10,000 and capped
// at P5,000 total above P100,000.
type PhilHealthCalculator struct{}

func NewPhilHealthCalculator() *PhilHealthCalculator {
	return &PhilHealthCalculator{}
}

func (c *PhilHealthCalculator) Calculate(monthlyBasicSalary decimal.Decimal) PhilHealthContribution {
	if !monthlyBasicSalary.IsPositive() {
		return PhilHealthContribution{
			EmployeeContribution: decimal.Zero,
			EmployerContribution: decimal.Zero,
			TotalContribution:    decimal.Zero,
		}
	}

	var total decimal.Decimal
	var isMin, isMax bool

	switch {
	case monthlyBasicSalary.LessThanOrEqual(philHealthFloorSalary):
		total = philHealthFloorTotal
		isMin = true
	case monthlyBasicSalary.GreaterThan(philHealthCeilSalary):
		total = philHealthCeilTotal
		isMax = true
	default:
		total = monthlyBasicSalary.Mul(philHealthRate)
	}

	half := total.Div(philHealthShareDivisor).Round(2)

	return PhilHealthContribution{
		EmployeeContribution: half,
		EmployerContribution: half,
		TotalContribution:    half.Add(half),
		IsMinimum:            isMin,
		IsMaximum:            isMax,
	}
}

// CalculateSemiMonthly applies the company's deduction schedule:
// full_first puts the whole monthly premium in the first cutoff,
// full_second (production default) in the second, split halves it.
func (c *PhilHealthCalculator) CalculateSemiMonthly(monthlyBasicSalary decimal.Decimal, schedule payroll.DeductionSchedule, isSecondCutoff bool) PhilHealthSemiMonthly {
	monthly := c.Calculate(monthlyBasicSalary)

	result := PhilHealthSemiMonthly{
		Monthly:        monthly,
		CutoffEmployee: decimal.Zero,
		CutoffEmployer: decimal.Zero,
		CutoffTotal:    decimal.Zero,
	}

	switch schedule {
	case payroll.ScheduleSplit:
		result.CutoffEmployee = monthly.EmployeeContribution.Div(philHealthShareDivisor).Round(2)
		result.CutoffEmployer = monthly.EmployerContribution.Div(philHealthShareDivisor).Round(2)
	case payroll.ScheduleFullFirst:
		if !isSecondCutoff {
			result.CutoffEmployee = monthly.EmployeeContribution
			result.CutoffEmployer = monthly.EmployerContribution
		}
	default:
		// full_second
		if isSecondCutoff {
			result.CutoffEmployee = monthly.EmployeeContribution
			result.CutoffEmployer = monthly.EmployerContribution
		}
	}

	result.CutoffTotal = result.CutoffEmployee.Add(result.CutoffEmployer)

	return result
}
