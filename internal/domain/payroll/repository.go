package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// Settings
	GetSettings(ctx context.Context) (PayrollSettings, error)
	UpsertSettings(ctx context.Context, settings PayrollSettings) (PayrollSettings, error)

	// Pay configuration
	GetPayConfig(ctx context.Context, ecode string) (EmployeePayConfig, error)
	ListPayConfigs(ctx context.Context) ([]EmployeePayConfig, error)
	UpsertPayConfig(ctx context.Context, cfg EmployeePayConfig) (EmployeePayConfig, error)
	// ResetConsumedPayConfigFields zeroes adjustment, under_time,
	// cash_advance and loan after a batch consumes them. Must run inside
	// the same transaction as the payslip insert.
	ResetConsumedPayConfigFields(ctx context.Context, ecode string) error

	// Overtime approvals
	CreateOvertimeApproval(ctx context.Context, approval OvertimeApproval) (OvertimeApproval, error)
	ApproveOvertime(ctx context.Context, id string, approvedBy string) error
	ListApprovedOvertime(ctx context.Context, cutoffDate time.Time) ([]OvertimeApproval, error)

	// Payslips
	CreatePayslip(ctx context.Context, slip Payslip) (Payslip, error)
	GetPayslipByID(ctx context.Context, id string) (Payslip, error)
	ListPayslips(ctx context.Context, filter PayslipFilter) ([]Payslip, int64, error)
	// UpdatePayslipStatus transitions one payslip from exactly `from` to
	// `to`, returning ErrInvalidStatusTransition when the row is in any
	// other state.
	UpdatePayslipStatus(ctx context.Context, id string, from, to PayslipStatus) error
}
