package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/employee"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/sweldo-hr/payroll-backend-go/internal/pkg/database"
	appjwt "github.com/sweldo-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/sweldo-hr/payroll-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	engine         *Engine
	batchPrefix    string
	logger         *slog.Logger
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	batchPrefix string,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		engine:         NewEngine(),
		batchPrefix:    batchPrefix,
		logger:         logger,
	}
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.PayrollSettingsResponse, error) {
	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
			return mapToSettingsResponse(payroll.DefaultSettings()), nil
		}
		return payroll.PayrollSettingsResponse{}, err
	}

	return mapToSettingsResponse(settings), nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdatePayrollSettingsRequest) (payroll.PayrollSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	current, err := s.payrollRepo.GetSettings(ctx)
	if err != nil && !errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
		return payroll.PayrollSettingsResponse{}, err
	}
	if errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
		current = payroll.DefaultSettings()
	}

	if req.LateDeductionPerMinute != nil {
		current.LateDeductionPerMinute = *req.LateDeductionPerMinute
	}
	if req.RegularHolidayRate != nil {
		current.RegularHolidayRate = *req.RegularHolidayRate
	}
	if req.SpecialHolidayRate != nil {
		current.SpecialHolidayRate = *req.SpecialHolidayRate
	}
	if req.SpecialNonWorkingRate != nil {
		current.SpecialNonWorkingRate = *req.SpecialNonWorkingRate
	}
	if req.PhilHealthSchedule != nil {
		current.PhilHealthSchedule = payroll.DeductionSchedule(*req.PhilHealthSchedule)
	}

	updated, err := s.payrollRepo.UpsertSettings(ctx, current)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	return mapToSettingsResponse(updated), nil
}

// ========== PAY CONFIGURATION ==========

func (s *PayrollServiceImpl) GetPayConfig(ctx context.Context, ecode string) (payroll.PayConfigResponse, error) {
	cfg, err := s.payrollRepo.GetPayConfig(ctx, ecode)
	if err != nil {
		return payroll.PayConfigResponse{}, err
	}

	return mapToPayConfigResponse(cfg), nil
}

func (s *PayrollServiceImpl) UpsertPayConfig(ctx context.Context, req payroll.UpsertPayConfigRequest) (payroll.PayConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayConfigResponse{}, err
	}

	// The config belongs to a real employee.
	if _, err := s.employeeRepo.GetByEcode(ctx, req.Ecode); err != nil {
		return payroll.PayConfigResponse{}, err
	}

	shiftHours := req.ShiftHours
	if !shiftHours.IsPositive() {
		shiftHours = payroll.DefaultShiftHours
	}

	cfg := payroll.EmployeePayConfig{
		Ecode:              req.Ecode,
		DailyRate:          req.DailyRate,
		SalaryPackage:      req.SalaryPackage,
		OvertimeHourlyRate: req.OvertimeHourlyRate,
		ShiftHours:         shiftHours,
		Loan:               req.Loan,
		CashAdvance:        req.CashAdvance,
		UnderTime:          req.UnderTime,
		Adjustment:         req.Adjustment,
		OtherDeductions:    req.OtherDeductions,
		TaxDeduction:       req.TaxDeduction,
	}

	updated, err := s.payrollRepo.UpsertPayConfig(ctx, cfg)
	if err != nil {
		return payroll.PayConfigResponse{}, err
	}

	return mapToPayConfigResponse(updated), nil
}

// ========== OVERTIME ==========

func (s *PayrollServiceImpl) CreateOvertimeApproval(ctx context.Context, req payroll.CreateOvertimeApprovalRequest) (payroll.OvertimeApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.OvertimeApprovalResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEcode(ctx, req.Ecode); err != nil {
		return payroll.OvertimeApprovalResponse{}, err
	}

	cutoffDate, _ := time.Parse("2006-01-02", req.CutoffDate)

	created, err := s.payrollRepo.CreateOvertimeApproval(ctx, payroll.OvertimeApproval{
		Ecode:      req.Ecode,
		CutoffDate: cutoffDate,
		Hours:      req.Hours,
		IsApproved: false,
	})
	if err != nil {
		return payroll.OvertimeApprovalResponse{}, err
	}

	return payroll.OvertimeApprovalResponse{
		ID:         created.ID,
		Ecode:      created.Ecode,
		CutoffDate: created.CutoffDate.Format("2006-01-02"),
		Hours:      created.Hours,
		IsApproved: created.IsApproved,
		ApprovedBy: created.ApprovedBy,
	}, nil
}

func (s *PayrollServiceImpl) ApproveOvertime(ctx context.Context, id string) error {
	userID, _, err := appjwt.Identity(ctx)
	if err != nil {
		return err
	}

	return s.payrollRepo.ApproveOvertime(ctx, id, userID)
}

// ========== BATCH GENERATION ==========

func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	cutoffDate, _ := time.Parse("2006-01-02", req.CutoffDate)

	requestedBy := req.RequestedBy
	if userID, _, err := appjwt.Identity(ctx); err == nil {
		requestedBy = userID
	}

	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
			return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to load payroll settings: %w", err)
		}
		settings = payroll.DefaultSettings()
	}

	// Any load failure here is batch-fatal: no partial batch without a
	// consistent snapshot of the inputs.
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to load employee roster: %w", err)
	}

	summaries, err := s.attendanceRepo.ListByCutoff(ctx, cutoffDate)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to load attendance summaries: %w", err)
	}
	attendanceMap := make(map[string]attendance.Summary, len(summaries))
	for _, summary := range summaries {
		attendanceMap[summary.Ecode] = summary
	}

	configs, err := s.payrollRepo.ListPayConfigs(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to load pay configurations: %w", err)
	}
	configMap := make(map[string]payroll.EmployeePayConfig, len(configs))
	for _, cfg := range configs {
		configMap[cfg.Ecode] = cfg
	}

	approvals, err := s.payrollRepo.ListApprovedOvertime(ctx, cutoffDate)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to load overtime approvals: %w", err)
	}
	overtimeMap := make(map[string]decimal.Decimal, len(approvals))
	for _, approval := range approvals {
		overtimeMap[approval.Ecode] = overtimeMap[approval.Ecode].Add(approval.Hours)
	}

	batchID := fmt.Sprintf("%s-%s-%d", s.batchPrefix, cutoffDate.Format("20060102"), time.Now().UnixMilli())

	out := s.engine.Run(BatchInput{
		CutoffDate:    cutoffDate,
		BatchID:       batchID,
		RequestedBy:   requestedBy,
		Employees:     employees,
		Attendance:    attendanceMap,
		PayConfigs:    configMap,
		OvertimeHours: overtimeMap,
		Settings:      settings,
	})

	batchErrors := out.Errors
	var persisted []payroll.Payslip

	for _, slip := range out.Payslips {
		slip.ID = uuid.NewString()

		// Payslip insert and one-shot config reset commit together, so
		// adjustments are consumed exactly once per cycle.
		err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			created, err := s.payrollRepo.CreatePayslip(txCtx, slip)
			if err != nil {
				return fmt.Errorf("failed to create payslip: %w", err)
			}
			slip = created

			if err := s.payrollRepo.ResetConsumedPayConfigFields(txCtx, slip.Ecode); err != nil {
				return fmt.Errorf("failed to reset consumed pay config fields: %w", err)
			}
			return nil
		})
		if err != nil {
			s.logger.Error("failed to persist payslip",
				slog.String("batch_id", batchID),
				slog.String("ecode", slip.Ecode),
				slog.String("error", err.Error()),
			)
			batchErrors = append(batchErrors, payroll.EmployeeError{
				Ecode:   slip.Ecode,
				Name:    slip.Name,
				Message: err.Error(),
			})
			continue
		}

		persisted = append(persisted, slip)
	}

	s.logger.Info("payroll batch generated",
		slog.String("batch_id", batchID),
		slog.String("cutoff_date", req.CutoffDate),
		slog.Int("generated", len(persisted)),
		slog.Int("skipped", len(out.Skipped)),
		slog.Int("failed", len(batchErrors)),
	)

	if batchErrors == nil {
		batchErrors = []payroll.EmployeeError{}
	}

	return payroll.GeneratePayrollResponse{
		Success:        true,
		Message:        fmt.Sprintf("%d payslips generated, %d employees failed", len(persisted), len(batchErrors)),
		BatchID:        batchID,
		GeneratedCount: len(persisted),
		Payslips:       mapToPayslipResponses(persisted),
		Errors:         batchErrors,
	}, nil
}

// ========== PAYSLIPS ==========

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	slip, err := s.payrollRepo.GetPayslipByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapToPayslipResponse(slip), nil
}

func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, filter payroll.PayslipFilter) (payroll.ListPayslipsResponse, error) {
	slips, totalCount, err := s.payrollRepo.ListPayslips(ctx, filter)
	if err != nil {
		return payroll.ListPayslipsResponse{}, err
	}

	return payroll.ListPayslipsResponse{
		Data:       mapToPayslipResponses(slips),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) ApprovePayslips(ctx context.Context, req payroll.UpdatePayslipStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	for _, id := range req.IDs {
		if err := s.payrollRepo.UpdatePayslipStatus(ctx, id, payroll.PayslipStatusPending, payroll.PayslipStatusApproved); err != nil {
			return fmt.Errorf("payslip %s: %w", id, err)
		}
	}
	return nil
}

func (s *PayrollServiceImpl) ReleasePayslips(ctx context.Context, req payroll.UpdatePayslipStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	for _, id := range req.IDs {
		if err := s.payrollRepo.UpdatePayslipStatus(ctx, id, payroll.PayslipStatusApproved, payroll.PayslipStatusReleased); err != nil {
			return fmt.Errorf("payslip %s: %w", id, err)
		}
	}
	return nil
}

// ========== HELPERS ==========

func mapToSettingsResponse(s payroll.PayrollSettings) payroll.PayrollSettingsResponse {
	return payroll.PayrollSettingsResponse{
		ID:                     s.ID,
		LateDeductionPerMinute: s.LateDeductionPerMinute,
		RegularHolidayRate:     s.RegularHolidayRate,
		SpecialHolidayRate:     s.SpecialHolidayRate,
		SpecialNonWorkingRate:  s.SpecialNonWorkingRate,
		PhilHealthSchedule:     string(s.PhilHealthSchedule),
	}
}

func mapToPayConfigResponse(cfg payroll.EmployeePayConfig) payroll.PayConfigResponse {
	return payroll.PayConfigResponse{
		ID:                 cfg.ID,
		Ecode:              cfg.Ecode,
		DailyRate:          cfg.DailyRate,
		SalaryPackage:      cfg.SalaryPackage,
		OvertimeHourlyRate: cfg.OvertimeHourlyRate,
		ShiftHours:         cfg.ShiftHours,
		Loan:               cfg.Loan,
		CashAdvance:        cfg.CashAdvance,
		UnderTime:          cfg.UnderTime,
		Adjustment:         cfg.Adjustment,
		OtherDeductions:    cfg.OtherDeductions,
		TaxDeduction:       cfg.TaxDeduction,
	}
}

func mapToPayslipResponse(p payroll.Payslip) payroll.PayslipResponse {
	var approvedAt, releasedAt *string
	if p.ApprovedAt != nil {
		str := p.ApprovedAt.Format(time.RFC3339)
		approvedAt = &str
	}
	if p.ReleasedAt != nil {
		str := p.ReleasedAt.Format(time.RFC3339)
		releasedAt = &str
	}

	return payroll.PayslipResponse{
		ID:         p.ID,
		BatchID:    p.BatchID,
		Ecode:      p.Ecode,
		EmployeeID: p.EmployeeID,
		Name:       p.Name,
		Project:    p.Project,
		Position:   p.Position,
		CutoffDate: p.CutoffDate.Format("2006-01-02"),

		DaysPresent:           p.DaysPresent,
		RegularDays:           p.RegularDays,
		RegularHolidayDays:    p.RegularHolidayDays,
		SpecialHolidayDays:    p.SpecialHolidayDays,
		SpecialNonWorkingDays: p.SpecialNonWorkingDays,

		BasicPay:             p.BasicPay,
		RegularHolidayPay:    p.RegularHolidayPay,
		SpecialHolidayPay:    p.SpecialHolidayPay,
		SpecialNonWorkingPay: p.SpecialNonWorkingPay,
		OvertimeHours:        p.OvertimeHours,
		OvertimePay:          p.OvertimePay,
		Allowance:            p.Allowance,

		SSS:          p.SSS,
		SSSEmployer:  p.SSSEmployer,
		SSSEC:        p.SSSEC,
		PHIC:         p.PHIC,
		PHICEmployer: p.PHICEmployer,
		HDMF:         p.HDMF,
		HDMFEmployer: p.HDMFEmployer,

		Loan:            p.Loan,
		Tardiness:       p.Tardiness,
		OtherDeductions: p.OtherDeductions,
		TaxDeduction:    p.TaxDeduction,
		UnderTime:       p.UnderTime,
		CashAdvance:     p.CashAdvance,
		Adjustment:      p.Adjustment,

		TotalEarnings:   p.TotalEarnings,
		TotalDeductions: p.TotalDeductions,
		GrossPay:        p.GrossPay,
		NetPay:          p.NetPay,

		Status:      string(p.Status),
		RequestedBy: p.RequestedBy,
		ApprovedAt:  approvedAt,
		ReleasedAt:  releasedAt,
	}
}

func mapToPayslipResponses(slips []payroll.Payslip) []payroll.PayslipResponse {
	result := make([]payroll.PayslipResponse, 0, len(slips))
	for _, p := range slips {
		result = append(result, mapToPayslipResponse(p))
	}
	return result
}
