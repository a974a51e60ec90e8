package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hr/payroll-backend-go/internal/pkg/validator"
)

// ========== SETTINGS DTOs ==========

type PayrollSettingsResponse struct {
	ID                     string          `json:"id"`
	LateDeductionPerMinute decimal.Decimal `json:"late_deduction_per_minute"`
	RegularHolidayRate     decimal.Decimal `json:"regular_holiday_rate"`
	SpecialHolidayRate     decimal.Decimal `json:"special_holiday_rate"`
	SpecialNonWorkingRate  decimal.Decimal `json:"special_nonworking_rate"`
	PhilHealthSchedule     string          `json:"philhealth_schedule"`
}

type UpdatePayrollSettingsRequest struct {
	LateDeductionPerMinute *decimal.Decimal `json:"late_deduction_per_minute,omitempty"`
	RegularHolidayRate     *decimal.Decimal `json:"regular_holiday_rate,omitempty"`
	SpecialHolidayRate     *decimal.Decimal `json:"special_holiday_rate,omitempty"`
	SpecialNonWorkingRate  *decimal.Decimal `json:"special_nonworking_rate,omitempty"`
	PhilHealthSchedule     *string          `json:"philhealth_schedule,omitempty"`
}

func (r *UpdatePayrollSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LateDeductionPerMinute != nil && r.LateDeductionPerMinute.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "late_deduction_per_minute", Message: "must be non-negative"})
	}
	if r.RegularHolidayRate != nil && r.RegularHolidayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "regular_holiday_rate", Message: "must be non-negative"})
	}
	if r.SpecialHolidayRate != nil && r.SpecialHolidayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "special_holiday_rate", Message: "must be non-negative"})
	}
	if r.SpecialNonWorkingRate != nil && r.SpecialNonWorkingRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "special_nonworking_rate", Message: "must be non-negative"})
	}
	if r.PhilHealthSchedule != nil {
		schedules := []string{string(ScheduleFullFirst), string(ScheduleFullSecond), string(ScheduleSplit)}
		if !validator.IsInSlice(*r.PhilHealthSchedule, schedules) {
			errs = append(errs, validator.ValidationError{Field: "philhealth_schedule", Message: "must be 'full_first', 'full_second' or 'split'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PAY CONFIG DTOs ==========

type PayConfigResponse struct {
	ID                 string           `json:"id"`
	Ecode              string           `json:"ecode"`
	DailyRate          decimal.Decimal  `json:"daily_rate"`
	SalaryPackage      *decimal.Decimal `json:"salary_package,omitempty"`
	OvertimeHourlyRate decimal.Decimal  `json:"overtime_hourly_rate"`
	ShiftHours         decimal.Decimal  `json:"shift_hours"`
	Loan               decimal.Decimal  `json:"loan"`
	CashAdvance        decimal.Decimal  `json:"cash_advance"`
	UnderTime          decimal.Decimal  `json:"under_time"`
	Adjustment         decimal.Decimal  `json:"adjustment"`
	OtherDeductions    decimal.Decimal  `json:"other_deductions"`
	TaxDeduction       decimal.Decimal  `json:"tax_deduction"`
}

type UpsertPayConfigRequest struct {
	Ecode              string           `json:"-"`
	DailyRate          decimal.Decimal  `json:"daily_rate"`
	SalaryPackage      *decimal.Decimal `json:"salary_package,omitempty"`
	OvertimeHourlyRate decimal.Decimal  `json:"overtime_hourly_rate"`
	ShiftHours         decimal.Decimal  `json:"shift_hours"`
	Loan               decimal.Decimal  `json:"loan"`
	CashAdvance        decimal.Decimal  `json:"cash_advance"`
	UnderTime          decimal.Decimal  `json:"under_time"`
	Adjustment         decimal.Decimal  `json:"adjustment"`
	OtherDeductions    decimal.Decimal  `json:"other_deductions"`
	TaxDeduction       decimal.Decimal  `json:"tax_deduction"`
}

func (r *UpsertPayConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.DailyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be a positive amount"})
	}
	if r.SalaryPackage != nil && r.SalaryPackage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary_package", Message: "must be non-negative"})
	}
	// Adjustment may be negative; every other amount must not be.
	nonNegative := map[string]decimal.Decimal{
		"overtime_hourly_rate": r.OvertimeHourlyRate,
		"shift_hours":          r.ShiftHours,
		"loan":                 r.Loan,
		"cash_advance":         r.CashAdvance,
		"under_time":           r.UnderTime,
		"other_deductions":     r.OtherDeductions,
		"tax_deduction":        r.TaxDeduction,
	}
	for field, amount := range nonNegative {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== OVERTIME DTOs ==========

type CreateOvertimeApprovalRequest struct {
	Ecode      string          `json:"ecode"`
	CutoffDate string          `json:"cutoff_date"`
	Hours      decimal.Decimal `json:"hours"`
}

func (r *CreateOvertimeApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEcode(r.Ecode) {
		errs = append(errs, validator.ValidationError{Field: "ecode", Message: "must be 3-20 uppercase alphanumeric characters"})
	}
	if _, ok := validator.IsValidDate(r.CutoffDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "cutoff_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeApprovalResponse struct {
	ID         string          `json:"id"`
	Ecode      string          `json:"ecode"`
	CutoffDate string          `json:"cutoff_date"`
	Hours      decimal.Decimal `json:"hours"`
	IsApproved bool            `json:"is_approved"`
	ApprovedBy *string         `json:"approved_by,omitempty"`
}

// ========== GENERATION DTOs ==========

type GeneratePayrollRequest struct {
	CutoffDate  string `json:"cutoff_date"`
	PayrollType string `json:"payroll_type,omitempty"`
	RequestedBy string `json:"-"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.CutoffDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "cutoff_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeError records one employee's failure without aborting the batch.
type EmployeeError struct {
	Ecode   string `json:"ecode"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type GeneratePayrollResponse struct {
	Success        bool              `json:"success"`
	Message        string            `json:"message"`
	BatchID        string            `json:"batch_id"`
	GeneratedCount int               `json:"generated_count"`
	Payslips       []PayslipResponse `json:"payslips"`
	Errors         []EmployeeError   `json:"errors"`
}

// ========== PAYSLIP DTOs ==========

type PayslipResponse struct {
	ID         string `json:"id"`
	BatchID    string `json:"batch_id"`
	Ecode      string `json:"ecode"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Project    string `json:"project"`
	Position   string `json:"position"`
	CutoffDate string `json:"cutoff_date"`

	DaysPresent           decimal.Decimal `json:"days_present"`
	RegularDays           decimal.Decimal `json:"regular_days"`
	RegularHolidayDays    decimal.Decimal `json:"regular_holiday_days"`
	SpecialHolidayDays    decimal.Decimal `json:"special_holiday_days"`
	SpecialNonWorkingDays decimal.Decimal `json:"special_nonworking_days"`

	BasicPay             decimal.Decimal `json:"basic_pay"`
	RegularHolidayPay    decimal.Decimal `json:"regular_holiday_pay"`
	SpecialHolidayPay    decimal.Decimal `json:"special_holiday_pay"`
	SpecialNonWorkingPay decimal.Decimal `json:"special_nonworking_pay"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	OvertimePay          decimal.Decimal `json:"overtime_pay"`
	Allowance            decimal.Decimal `json:"allowance"`

	SSS          decimal.Decimal `json:"sss"`
	SSSEmployer  decimal.Decimal `json:"sss_employer"`
	SSSEC        decimal.Decimal `json:"sss_ec"`
	PHIC         decimal.Decimal `json:"phic"`
	PHICEmployer decimal.Decimal `json:"phic_employer"`
	HDMF         decimal.Decimal `json:"hdmf"`
	HDMFEmployer decimal.Decimal `json:"hdmf_employer"`

	Loan            decimal.Decimal `json:"loan"`
	Tardiness       decimal.Decimal `json:"tardiness"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TaxDeduction    decimal.Decimal `json:"tax_deduction"`
	UnderTime       decimal.Decimal `json:"under_time"`
	CashAdvance     decimal.Decimal `json:"cash_advance"`
	Adjustment      decimal.Decimal `json:"adjustment"`

	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	NetPay          decimal.Decimal `json:"net_pay"`

	Status      string  `json:"status"`
	RequestedBy string  `json:"requested_by"`
	ApprovedAt  *string `json:"approved_at,omitempty"`
	ReleasedAt  *string `json:"released_at,omitempty"`
}

type PayslipFilter struct {
	BatchID    string
	Ecode      string
	CutoffDate string
	Status     string
	Page       int
	Limit      int
}

type ListPayslipsResponse struct {
	Data       []PayslipResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type UpdatePayslipStatusRequest struct {
	IDs []string `json:"ids"`
}

func (r *UpdatePayslipStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "at least one payslip id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
