package payroll

import "errors"

var (
	ErrPayrollSettingsNotFound  = errors.New("payroll settings not found")
	ErrPayConfigNotFound        = errors.New("employee pay configuration not found")
	ErrInvalidDailyRate         = errors.New("daily rate must be a positive amount")
	ErrNoSSSBracket             = errors.New("no SSS bracket matches the basis salary")
	ErrPayslipNotFound          = errors.New("payslip not found")
	ErrInvalidStatusTransition  = errors.New("invalid payslip status transition")
	ErrOvertimeNotFound         = errors.New("overtime approval not found")
	ErrOvertimeAlreadyApproved  = errors.New("overtime already approved")
	ErrInvalidCutoffDate        = errors.New("invalid cutoff date")
	ErrInvalidDeductionSchedule = errors.New("invalid deduction schedule")
)
