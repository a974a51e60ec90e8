package payroll

import (
	"github.com/shopspring/decimal"
)

var (
	pagIBIGLowRateCeiling = decimal.NewFromInt(1500)
	pagIBIGEmployeeLow    = decimal.RequireFromString("0.01")
	pagIBIGEmployeeHigh   = decimal.RequireFromString("0.02")
	pagIBIGEmployerRate   = decimal.RequireFromString("0.02")
	pagIBIGCap            = decimal.NewFromInt(200)
)

type PagIBIGContribution struct {
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	TotalContribution    decimal.Decimal
	IsCapped             bool
}

// PagIBIGSemiMonthly carries both the per-cutoff deduction and the
// full-month figures for the payslip audit trail.
type PagIBIGSemiMonthly struct {
	Monthly        PagIBIGContribution
	CutoffEmployee decimal.Decimal
	CutoffEmployer decimal.Decimal
	CutoffTotal    decimal.Decimal
}

// PagIBIGCalculator computes HDMF contributions from monthly basic
// salary. The employee share is 1% up to P1,500, 2% above, capped at
// P200; once the cap is hit the employer share is also forced to P200
// instead of a straight 2%. The asymmetric cap is the documented
// business rule, not an accident.
type PagIBIGCalculator struct{}

func NewPagIBIGCalculator() *PagIBIGCalculator {
	return &PagIBIGCalculator{}
}

func (c *PagIBIGCalculator) Calculate(monthlyBasicSalary decimal.Decimal) PagIBIGContribution {
	if !monthlyBasicSalary.IsPositive() {
		return PagIBIGContribution{
			EmployeeContribution: decimal.Zero,
			EmployerContribution: decimal.Zero,
			TotalContribution:    decimal.Zero,
		}
	}

	employeeRate := pagIBIGEmployeeHigh
	if monthlyBasicSalary.LessThanOrEqual(pagIBIGLowRateCeiling) {
		employeeRate = pagIBIGEmployeeLow
	}

	employee := monthlyBasicSalary.Mul(employeeRate)
	employer := monthlyBasicSalary.Mul(pagIBIGEmployerRate)

	capped := employee.GreaterThanOrEqual(pagIBIGCap)
	if capped {
		employee = pagIBIGCap
		employer = pagIBIGCap
	}

	employee = employee.Round(2)
	employer = employer.Round(2)

	return PagIBIGContribution{
		EmployeeContribution: employee,
		EmployerContribution: employer,
		TotalContribution:    employee.Add(employer),
		IsCapped:             capped,
	}
}

// CalculateSemiMonthly halves the monthly contribution for each cutoff.
func (c *PagIBIGCalculator) CalculateSemiMonthly(monthlyBasicSalary decimal.Decimal) PagIBIGSemiMonthly {
	monthly := c.Calculate(monthlyBasicSalary)
	two := decimal.NewFromInt(2)

	return PagIBIGSemiMonthly{
		Monthly:        monthly,
		CutoffEmployee: monthly.EmployeeContribution.Div(two).Round(2),
		CutoffEmployer: monthly.EmployerContribution.Div(two).Round(2),
		CutoffTotal:    monthly.TotalContribution.Div(two).Round(2),
	}
}

// CalculatePartialMonth projects a monthly salary from days actually
// worked before applying the monthly rules.
func (c *PagIBIGCalculator) CalculatePartialMonth(dailyRate, daysWorked decimal.Decimal) PagIBIGContribution {
	return c.Calculate(dailyRate.Mul(daysWorked))
}
