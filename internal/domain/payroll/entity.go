package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionSchedule controls which semi-monthly cutoff carries the
// monthly PhilHealth deduction.
type DeductionSchedule string

const (
	ScheduleFullFirst  DeductionSchedule = "full_first"
	ScheduleFullSecond DeductionSchedule = "full_second"
	ScheduleSplit      DeductionSchedule = "split"
)

// PayrollSettings - company-level pay rules maintained by HR.
// Holiday premium rates are data, not code, so the statutory rate for
// special non-working days can be corrected without a deploy.
type PayrollSettings struct {
	ID                     string
	LateDeductionPerMinute decimal.Decimal
	RegularHolidayRate     decimal.Decimal
	SpecialHolidayRate     decimal.Decimal
	SpecialNonWorkingRate  decimal.Decimal
	PhilHealthSchedule     DeductionSchedule
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

var (
	DefaultRegularHolidayRate    = decimal.NewFromInt(2)
	DefaultSpecialHolidayRate    = decimal.RequireFromString("0.3")
	DefaultSpecialNonWorkingRate = decimal.RequireFromString("0.3")
)

func DefaultSettings() PayrollSettings {
	return PayrollSettings{
		LateDeductionPerMinute: decimal.Zero,
		RegularHolidayRate:     DefaultRegularHolidayRate,
		SpecialHolidayRate:     DefaultSpecialHolidayRate,
		SpecialNonWorkingRate:  DefaultSpecialNonWorkingRate,
		PhilHealthSchedule:     ScheduleFullSecond,
	}
}

// DefaultShiftHours applies when a pay config has no shift hours set.
var DefaultShiftHours = decimal.RequireFromString("4.5")

// EmployeePayConfig - per-employee pay inputs maintained by HR data entry.
// Adjustment, UnderTime, CashAdvance and Loan are one-shot values: the
// batch that consumes them resets them to zero in the same transaction
// that persists the payslip, so they never carry over two cutoffs.
type EmployeePayConfig struct {
	ID                 string
	Ecode              string
	DailyRate          decimal.Decimal
	SalaryPackage      *decimal.Decimal
	OvertimeHourlyRate decimal.Decimal
	ShiftHours         decimal.Decimal
	Loan               decimal.Decimal
	CashAdvance        decimal.Decimal
	UnderTime          decimal.Decimal
	Adjustment         decimal.Decimal
	OtherDeductions    decimal.Decimal
	TaxDeduction       decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OvertimeApproval - overtime only pays when an approver has signed off.
// Unapproved rows are ignored by the engine.
type OvertimeApproval struct {
	ID         string
	Ecode      string
	CutoffDate time.Time
	Hours      decimal.Decimal
	IsApproved bool
	ApprovedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PayslipStatus state machine: pending -> approved -> released.
// Released is terminal; no transition skips a state.
type PayslipStatus string

const (
	PayslipStatusPending  PayslipStatus = "pending"
	PayslipStatusApproved PayslipStatus = "approved"
	PayslipStatusReleased PayslipStatus = "released"
)

// CanTransitionTo reports whether the status machine allows moving from
// s to next.
func (s PayslipStatus) CanTransitionTo(next PayslipStatus) bool {
	switch s {
	case PayslipStatusPending:
		return next == PayslipStatusApproved
	case PayslipStatusApproved:
		return next == PayslipStatusReleased
	default:
		return false
	}
}

// Payslip is immutable once created; corrections are issued as a new
// record in a new batch.
type Payslip struct {
	ID         string
	BatchID    string
	Ecode      string
	EmployeeID string
	Name       string
	Project    string
	Position   string
	CutoffDate time.Time

	DaysPresent decimal.Decimal
	// Day-equivalents (hours / shift hours), for display only. Basic pay
	// is computed from DaysPresent, never from these.
	RegularDays           decimal.Decimal
	RegularHolidayDays    decimal.Decimal
	SpecialHolidayDays    decimal.Decimal
	SpecialNonWorkingDays decimal.Decimal

	BasicPay             decimal.Decimal
	RegularHolidayPay    decimal.Decimal
	SpecialHolidayPay    decimal.Decimal
	SpecialNonWorkingPay decimal.Decimal
	OvertimeHours        decimal.Decimal
	OvertimePay          decimal.Decimal
	Allowance            decimal.Decimal

	SSS          decimal.Decimal
	SSSEmployer  decimal.Decimal
	SSSEC        decimal.Decimal
	PHIC         decimal.Decimal
	PHICEmployer decimal.Decimal
	HDMF         decimal.Decimal
	HDMFEmployer decimal.Decimal

	Loan            decimal.Decimal
	Tardiness       decimal.Decimal
	OtherDeductions decimal.Decimal
	TaxDeduction    decimal.Decimal
	UnderTime       decimal.Decimal
	CashAdvance     decimal.Decimal
	Adjustment      decimal.Decimal

	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	GrossPay        decimal.Decimal
	NetPay          decimal.Decimal

	Status      PayslipStatus
	RequestedBy string
	ApprovedAt  *time.Time
	ReleasedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
