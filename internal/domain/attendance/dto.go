package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hr/payroll-backend-go/internal/pkg/validator"
)

type SummaryResponse struct {
	ID                     string          `json:"id"`
	Ecode                  string          `json:"ecode"`
	CutoffDate             string          `json:"cutoff_date"`
	DaysPresent            decimal.Decimal `json:"days_present"`
	RegularHours           decimal.Decimal `json:"regular_hours"`
	RegularHolidayHours    decimal.Decimal `json:"regular_holiday_hours"`
	SpecialHolidayHours    decimal.Decimal `json:"special_holiday_hours"`
	SpecialNonWorkingHours decimal.Decimal `json:"special_nonworking_hours"`
	LateMinutes            int             `json:"late_minutes"`
}

type UpsertSummaryRequest struct {
	Ecode                  string          `json:"ecode"`
	CutoffDate             string          `json:"cutoff_date"`
	DaysPresent            decimal.Decimal `json:"days_present"`
	RegularHours           decimal.Decimal `json:"regular_hours"`
	RegularHolidayHours    decimal.Decimal `json:"regular_holiday_hours"`
	SpecialHolidayHours    decimal.Decimal `json:"special_holiday_hours"`
	SpecialNonWorkingHours decimal.Decimal `json:"special_nonworking_hours"`
	LateMinutes            int             `json:"late_minutes"`
}

func (r *UpsertSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEcode(r.Ecode) {
		errs = append(errs, validator.ValidationError{Field: "ecode", Message: "must be 3-20 uppercase alphanumeric characters"})
	}
	if _, ok := validator.IsValidDate(r.CutoffDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "cutoff_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.DaysPresent.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "days_present", Message: "must be non-negative"})
	}
	hourFields := map[string]decimal.Decimal{
		"regular_hours":            r.RegularHours,
		"regular_holiday_hours":    r.RegularHolidayHours,
		"special_holiday_hours":    r.SpecialHolidayHours,
		"special_nonworking_hours": r.SpecialNonWorkingHours,
	}
	for field, hours := range hourFields {
		if hours.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
