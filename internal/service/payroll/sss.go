package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/payroll"
)

type SSSContribution struct {
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	ECContribution       decimal.Decimal
	TotalContribution    decimal.Decimal
}

// sssBracket is one row of the SSS schedule. A nil max marks the
// open-ended top bracket.
type sssBracket struct {
	min      decimal.Decimal
	max      *decimal.Decimal
	employee decimal.Decimal
	employer decimal.Decimal
	ec       decimal.Decimal
}

func bracket(min, max, employee, employer, ec string) sssBracket {
	b := sssBracket{
		min:      decimal.RequireFromString(min),
		employee: decimal.RequireFromString(employee),
		employer: decimal.RequireFromString(employer),
		ec:       decimal.RequireFromString(ec),
	}
	if max != "" {
		m := decimal.RequireFromString(max)
		b.max = &m
	}
	return b
}

// sssBrackets is the salary credit schedule. Ranges are closed
// intervals, contiguous from zero, so every positive basis matches
// exactly one row.
var sssBrackets = []sssBracket{
	bracket("0", "1249.99", "36.30", "73.70", "10"),
	bracket("1250", "1749.99", "54.50", "110.50", "10"),
	bracket("1750", "2249.99", "72.70", "147.30", "10"),
	bracket("2250", "2749.99", "90.80", "184.20", "10"),
	bracket("2750", "3249.99", "109.00", "221.00", "10"),
	bracket("3250", "3749.99", "127.20", "257.80", "10"),
	bracket("3750", "4249.99", "145.30", "294.70", "10"),
	bracket("4250", "4749.99", "163.50", "331.50", "10"),
	bracket("4750", "5249.99", "181.70", "368.30", "10"),
	bracket("5250", "5749.99", "199.80", "405.20", "10"),
	bracket("5750", "6249.99", "218.00", "442.00", "10"),
	bracket("6250", "6749.99", "236.20", "478.80", "10"),
	bracket("6750", "7249.99", "254.30", "515.70", "10"),
	bracket("7250", "7749.99", "272.50", "552.50", "10"),
	bracket("7750", "8249.99", "290.70", "589.30", "10"),
	bracket("8250", "8749.99", "308.80", "626.20", "10"),
	bracket("8750", "9249.99", "327.00", "663.00", "10"),
	bracket("9250", "9749.99", "345.20", "699.80", "10"),
	bracket("9750", "10249.99", "363.30", "736.70", "10"),
	bracket("10250", "10749.99", "381.50", "773.50", "10"),
	bracket("10750", "11249.99", "399.70", "810.30", "10"),
	bracket("11250", "11749.99", "417.80", "847.20", "10"),
	bracket("11750", "12249.99", "436.00", "884.00", "10"),
	bracket("12250", "12749.99", "454.20", "920.80", "10"),
	bracket("12750", "13249.99", "472.30", "957.70", "10"),
	bracket("13250", "13749.99", "490.50", "994.50", "10"),
	bracket("13750", "14249.99", "508.70", "1031.30", "10"),
	bracket("14250", "14749.99", "526.80", "1068.20", "10"),
	bracket("14750", "15249.99", "545.00", "1105.00", "30"),
	bracket("15250", "15749.99", "563.20", "1141.80", "30"),
	bracket("15750", "", "581.30", "1178.70", "30"),
}

// SSSCalculator maps a semi-monthly basis salary onto the bracket
// schedule. The EC (employee compensation) premium is an employer cost
// collected only in the second cutoff of the month.
type SSSCalculator struct {
	brackets []sssBracket
}

func NewSSSCalculator() *SSSCalculator {
	return &SSSCalculator{brackets: sssBrackets}
}

func (c *SSSCalculator) Calculate(basisSalary decimal.Decimal, isSecondCutoff bool) (SSSContribution, error) {
	if !basisSalary.IsPositive() {
		return SSSContribution{
			EmployeeContribution: decimal.Zero,
			EmployerContribution: decimal.Zero,
			ECContribution:       decimal.Zero,
			TotalContribution:    decimal.Zero,
		}, nil
	}

	for _, b := range c.brackets {
		if basisSalary.LessThan(b.min) {
			continue
		}
		if b.max != nil && basisSalary.GreaterThan(*b.max) {
			continue
		}

		ec := decimal.Zero
		if isSecondCutoff {
			ec = b.ec
		}
		total := b.employee.Add(b.employer).Add(ec)

		return SSSContribution{
			EmployeeContribution: b.employee.Round(2),
			EmployerContribution: b.employer.Round(2),
			ECContribution:       ec.Round(2),
			TotalContribution:    total.Round(2),
		}, nil
	}

	// The schedule is contiguous from zero; reaching here means the
	// table itself is broken.
	return SSSContribution{}, payroll.ErrNoSSSBracket
}
