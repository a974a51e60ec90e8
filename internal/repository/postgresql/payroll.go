package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/sweldo-hr/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SETTINGS ==========

// Settings live in a single-row table keyed by a fixed id.
const settingsRowID = "default"

func (r *payrollRepository) GetSettings(ctx context.Context) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, late_deduction_per_minute, regular_holiday_rate, special_holiday_rate,
			   special_nonworking_rate, philhealth_schedule, created_at, updated_at
		FROM payroll_settings
		WHERE id = $1
	`

	var s payroll.PayrollSettings
	err := q.QueryRow(ctx, query, settingsRowID).Scan(
		&s.ID, &s.LateDeductionPerMinute, &s.RegularHolidayRate, &s.SpecialHolidayRate,
		&s.SpecialNonWorkingRate, &s.PhilHealthSchedule, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollSettings{}, payroll.ErrPayrollSettingsNotFound
		}
		return payroll.PayrollSettings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) UpsertSettings(ctx context.Context, settings payroll.PayrollSettings) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (
			id, late_deduction_per_minute, regular_holiday_rate, special_holiday_rate,
			special_nonworking_rate, philhealth_schedule
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			late_deduction_per_minute = EXCLUDED.late_deduction_per_minute,
			regular_holiday_rate = EXCLUDED.regular_holiday_rate,
			special_holiday_rate = EXCLUDED.special_holiday_rate,
			special_nonworking_rate = EXCLUDED.special_nonworking_rate,
			philhealth_schedule = EXCLUDED.philhealth_schedule,
			updated_at = NOW()
		RETURNING id, late_deduction_per_minute, regular_holiday_rate, special_holiday_rate,
			special_nonworking_rate, philhealth_schedule, created_at, updated_at
	`

	var s payroll.PayrollSettings
	err := q.QueryRow(ctx, query,
		settingsRowID, settings.LateDeductionPerMinute, settings.RegularHolidayRate,
		settings.SpecialHolidayRate, settings.SpecialNonWorkingRate, settings.PhilHealthSchedule,
	).Scan(
		&s.ID, &s.LateDeductionPerMinute, &s.RegularHolidayRate, &s.SpecialHolidayRate,
		&s.SpecialNonWorkingRate, &s.PhilHealthSchedule, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollSettings{}, fmt.Errorf("failed to upsert payroll settings: %w", err)
	}

	return s, nil
}

// ========== PAY CONFIGURATION ==========

const payConfigColumns = `
	id, ecode, daily_rate, salary_package, overtime_hourly_rate, shift_hours,
	loan, cash_advance, under_time, adjustment, other_deductions, tax_deduction,
	created_at, updated_at
`

func scanPayConfig(row pgx.Row) (payroll.EmployeePayConfig, error) {
	var c payroll.EmployeePayConfig
	err := row.Scan(
		&c.ID, &c.Ecode, &c.DailyRate, &c.SalaryPackage, &c.OvertimeHourlyRate, &c.ShiftHours,
		&c.Loan, &c.CashAdvance, &c.UnderTime, &c.Adjustment, &c.OtherDeductions, &c.TaxDeduction,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *payrollRepository) GetPayConfig(ctx context.Context, ecode string) (payroll.EmployeePayConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payConfigColumns + ` FROM employee_pay_configs WHERE ecode = $1`

	cfg, err := scanPayConfig(q.QueryRow(ctx, query, ecode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.EmployeePayConfig{}, payroll.ErrPayConfigNotFound
		}
		return payroll.EmployeePayConfig{}, fmt.Errorf("failed to get pay config: %w", err)
	}

	return cfg, nil
}

func (r *payrollRepository) ListPayConfigs(ctx context.Context) ([]payroll.EmployeePayConfig, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+payConfigColumns+` FROM employee_pay_configs ORDER BY ecode`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay configs: %w", err)
	}
	defer rows.Close()

	var configs []payroll.EmployeePayConfig
	for rows.Next() {
		cfg, err := scanPayConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay config: %w", err)
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

func (r *payrollRepository) UpsertPayConfig(ctx context.Context, cfg payroll.EmployeePayConfig) (payroll.EmployeePayConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_pay_configs (
			ecode, daily_rate, salary_package, overtime_hourly_rate, shift_hours,
			loan, cash_advance, under_time, adjustment, other_deductions, tax_deduction
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (ecode) DO UPDATE SET
			daily_rate = EXCLUDED.daily_rate,
			salary_package = EXCLUDED.salary_package,
			overtime_hourly_rate = EXCLUDED.overtime_hourly_rate,
			shift_hours = EXCLUDED.shift_hours,
			loan = EXCLUDED.loan,
			cash_advance = EXCLUDED.cash_advance,
			under_time = EXCLUDED.under_time,
			adjustment = EXCLUDED.adjustment,
			other_deductions = EXCLUDED.other_deductions,
			tax_deduction = EXCLUDED.tax_deduction,
			updated_at = NOW()
		RETURNING ` + payConfigColumns

	updated, err := scanPayConfig(q.QueryRow(ctx, query,
		cfg.Ecode, cfg.DailyRate, cfg.SalaryPackage, cfg.OvertimeHourlyRate, cfg.ShiftHours,
		cfg.Loan, cfg.CashAdvance, cfg.UnderTime, cfg.Adjustment, cfg.OtherDeductions, cfg.TaxDeduction,
	))
	if err != nil {
		return payroll.EmployeePayConfig{}, fmt.Errorf("failed to upsert pay config: %w", err)
	}

	return updated, nil
}

func (r *payrollRepository) ResetConsumedPayConfigFields(ctx context.Context, ecode string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_pay_configs
		SET adjustment = 0, under_time = 0, cash_advance = 0, loan = 0, updated_at = NOW()
		WHERE ecode = $1
	`

	tag, err := q.Exec(ctx, query, ecode)
	if err != nil {
		return fmt.Errorf("failed to reset consumed pay config fields: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayConfigNotFound
	}

	return nil
}

// ========== OVERTIME APPROVALS ==========

const overtimeColumns = `
	id, ecode, cutoff_date, hours, is_approved, approved_by, created_at, updated_at
`

func scanOvertime(row pgx.Row) (payroll.OvertimeApproval, error) {
	var o payroll.OvertimeApproval
	err := row.Scan(
		&o.ID, &o.Ecode, &o.CutoffDate, &o.Hours, &o.IsApproved, &o.ApprovedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *payrollRepository) CreateOvertimeApproval(ctx context.Context, approval payroll.OvertimeApproval) (payroll.OvertimeApproval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_approvals (ecode, cutoff_date, hours, is_approved)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + overtimeColumns

	created, err := scanOvertime(q.QueryRow(ctx, query,
		approval.Ecode, approval.CutoffDate, approval.Hours, approval.IsApproved,
	))
	if err != nil {
		return payroll.OvertimeApproval{}, fmt.Errorf("failed to create overtime approval: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) ApproveOvertime(ctx context.Context, id string, approvedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_approvals
		SET is_approved = TRUE, approved_by = $2, updated_at = NOW()
		WHERE id = $1 AND is_approved = FALSE
	`

	tag, err := q.Exec(ctx, query, id, approvedBy)
	if err != nil {
		return fmt.Errorf("failed to approve overtime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM overtime_approvals WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check overtime approval: %w", err)
		}
		if !exists {
			return payroll.ErrOvertimeNotFound
		}
		return payroll.ErrOvertimeAlreadyApproved
	}

	return nil
}

func (r *payrollRepository) ListApprovedOvertime(ctx context.Context, cutoffDate time.Time) ([]payroll.OvertimeApproval, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_approvals WHERE cutoff_date = $1 AND is_approved = TRUE ORDER BY ecode`

	rows, err := q.Query(ctx, query, cutoffDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved overtime: %w", err)
	}
	defer rows.Close()

	var approvals []payroll.OvertimeApproval
	for rows.Next() {
		approval, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime approval: %w", err)
		}
		approvals = append(approvals, approval)
	}

	return approvals, rows.Err()
}

// ========== PAYSLIPS ==========

const payslipColumns = `
	id, batch_id, ecode, employee_id, name, project, position, cutoff_date,
	days_present, regular_days, regular_holiday_days, special_holiday_days, special_nonworking_days,
	basic_pay, regular_holiday_pay, special_holiday_pay, special_nonworking_pay,
	overtime_hours, overtime_pay, allowance,
	sss, sss_employer, sss_ec, phic, phic_employer, hdmf, hdmf_employer,
	loan, tardiness, other_deductions, tax_deduction, under_time, cash_advance, adjustment,
	total_earnings, total_deductions, gross_pay, net_pay,
	status, requested_by, approved_at, released_at, created_at, updated_at
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.BatchID, &p.Ecode, &p.EmployeeID, &p.Name, &p.Project, &p.Position, &p.CutoffDate,
		&p.DaysPresent, &p.RegularDays, &p.RegularHolidayDays, &p.SpecialHolidayDays, &p.SpecialNonWorkingDays,
		&p.BasicPay, &p.RegularHolidayPay, &p.SpecialHolidayPay, &p.SpecialNonWorkingPay,
		&p.OvertimeHours, &p.OvertimePay, &p.Allowance,
		&p.SSS, &p.SSSEmployer, &p.SSSEC, &p.PHIC, &p.PHICEmployer, &p.HDMF, &p.HDMFEmployer,
		&p.Loan, &p.Tardiness, &p.OtherDeductions, &p.TaxDeduction, &p.UnderTime, &p.CashAdvance, &p.Adjustment,
		&p.TotalEarnings, &p.TotalDeductions, &p.GrossPay, &p.NetPay,
		&p.Status, &p.RequestedBy, &p.ApprovedAt, &p.ReleasedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payrollRepository) CreatePayslip(ctx context.Context, slip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, batch_id, ecode, employee_id, name, project, position, cutoff_date,
			days_present, regular_days, regular_holiday_days, special_holiday_days, special_nonworking_days,
			basic_pay, regular_holiday_pay, special_holiday_pay, special_nonworking_pay,
			overtime_hours, overtime_pay, allowance,
			sss, sss_employer, sss_ec, phic, phic_employer, hdmf, hdmf_employer,
			loan, tardiness, other_deductions, tax_deduction, under_time, cash_advance, adjustment,
			total_earnings, total_deductions, gross_pay, net_pay,
			status, requested_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, $15, $16, $17,
			$18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27,
			$28, $29, $30, $31, $32, $33, $34,
			$35, $36, $37, $38,
			$39, $40
		)
		RETURNING ` + payslipColumns

	created, err := scanPayslip(q.QueryRow(ctx, query,
		slip.ID, slip.BatchID, slip.Ecode, slip.EmployeeID, slip.Name, slip.Project, slip.Position, slip.CutoffDate,
		slip.DaysPresent, slip.RegularDays, slip.RegularHolidayDays, slip.SpecialHolidayDays, slip.SpecialNonWorkingDays,
		slip.BasicPay, slip.RegularHolidayPay, slip.SpecialHolidayPay, slip.SpecialNonWorkingPay,
		slip.OvertimeHours, slip.OvertimePay, slip.Allowance,
		slip.SSS, slip.SSSEmployer, slip.SSSEC, slip.PHIC, slip.PHICEmployer, slip.HDMF, slip.HDMFEmployer,
		slip.Loan, slip.Tardiness, slip.OtherDeductions, slip.TaxDeduction, slip.UnderTime, slip.CashAdvance, slip.Adjustment,
		slip.TotalEarnings, slip.TotalDeductions, slip.GrossPay, slip.NetPay,
		slip.Status, slip.RequestedBy,
	))
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetPayslipByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE id = $1`

	slip, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return slip, nil
}

func (r *payrollRepository) ListPayslips(ctx context.Context, filter payroll.PayslipFilter) ([]payroll.Payslip, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	addCondition := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	addCondition("batch_id", filter.BatchID)
	addCondition("ecode", filter.Ecode)
	addCondition("cutoff_date", filter.CutoffDate)
	addCondition("status", filter.Status)

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payslips`+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM payslips%s ORDER BY created_at DESC, ecode LIMIT $%d OFFSET $%d`,
		payslipColumns, where, len(args)-1, len(args),
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, slip)
	}

	return slips, totalCount, rows.Err()
}

func (r *payrollRepository) UpdatePayslipStatus(ctx context.Context, id string, from, to payroll.PayslipStatus) error {
	if !from.CanTransitionTo(to) {
		return payroll.ErrInvalidStatusTransition
	}

	q := GetQuerier(ctx, r.db)

	timestampColumn := ""
	switch to {
	case payroll.PayslipStatusApproved:
		timestampColumn = ", approved_at = NOW()"
	case payroll.PayslipStatusReleased:
		timestampColumn = ", released_at = NOW()"
	}

	query := fmt.Sprintf(`
		UPDATE payslips
		SET status = $3, updated_at = NOW()%s
		WHERE id = $1 AND status = $2
	`, timestampColumn)

	tag, err := q.Exec(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("failed to update payslip status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payslips WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check payslip: %w", err)
		}
		if !exists {
			return payroll.ErrPayslipNotFound
		}
		return payroll.ErrInvalidStatusTransition
	}

	return nil
}
