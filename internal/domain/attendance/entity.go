package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the per-employee, per-cutoff attendance aggregate produced
// by the upstream timesheet ingestion. Hour buckets partition the total
// hours worked in the cutoff; the payroll engine consumes it as-is.
type Summary struct {
	ID                     string
	Ecode                  string
	CutoffDate             time.Time
	DaysPresent            decimal.Decimal
	RegularHours           decimal.Decimal
	RegularHolidayHours    decimal.Decimal
	SpecialHolidayHours    decimal.Decimal
	SpecialNonWorkingHours decimal.Decimal
	LateMinutes            int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
