package payroll

import "context"

type PayrollService interface {
	// Settings
	GetSettings(ctx context.Context) (PayrollSettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdatePayrollSettingsRequest) (PayrollSettingsResponse, error)

	// Pay configuration
	GetPayConfig(ctx context.Context, ecode string) (PayConfigResponse, error)
	UpsertPayConfig(ctx context.Context, req UpsertPayConfigRequest) (PayConfigResponse, error)

	// Overtime approvals
	CreateOvertimeApproval(ctx context.Context, req CreateOvertimeApprovalRequest) (OvertimeApprovalResponse, error)
	ApproveOvertime(ctx context.Context, id string) error

	// Batch generation and payslips
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	ListPayslips(ctx context.Context, filter PayslipFilter) (ListPayslipsResponse, error)
	ApprovePayslips(ctx context.Context, req UpdatePayslipStatusRequest) error
	ReleasePayslips(ctx context.Context, req UpdatePayslipStatusRequest) error
}
