package payroll

import (
	"github.com/shopspring/decimal"
)

var workdayHours = decimal.NewFromInt(8)

// holidayPremium is the incremental pay for hours worked on a holiday:
// (dailyRate / 8) x rate x hours. Basic pay already counts the day at
// 100%, so only the premium fraction is added here. The rate per
// holiday type comes from payroll settings.
func holidayPremium(dailyRate, hours, rate decimal.Decimal) decimal.Decimal {
	if !dailyRate.IsPositive() || !hours.IsPositive() || !rate.IsPositive() {
		return decimal.Zero
	}
	return dailyRate.Div(workdayHours).Mul(rate).Mul(hours)
}
