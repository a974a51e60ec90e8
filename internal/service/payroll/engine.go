package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/employee"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/payroll"
)

// secondCutoffDay is the first day-of-month of the second semi-monthly
// cutoff period.
const secondCutoffDay = 16

var twentySixDays = decimal.NewFromInt(26)

// BatchInput is a snapshot of everything one payroll run reads. All
// lookups are in-memory; the engine performs no I/O.
type BatchInput struct {
	CutoffDate    time.Time
	BatchID       string
	RequestedBy   string
	Employees     []employee.Employee
	Attendance    map[string]attendance.Summary
	PayConfigs    map[string]payroll.EmployeePayConfig
	OvertimeHours map[string]decimal.Decimal
	Settings      payroll.PayrollSettings
}

// BatchResult collects per-employee outcomes. One bad record never
// aborts the batch: failures land in Errors and processing continues.
type BatchResult struct {
	Payslips []payroll.Payslip
	Skipped  []string
	Errors   []payroll.EmployeeError
}

// Engine turns attendance aggregates and pay configuration into
// payslips.
type Engine struct {
	sss        *SSSCalculator
	pagibig    *PagIBIGCalculator
	philhealth *PhilHealthCalculator
}

func NewEngine() *Engine {
	return &Engine{
		sss:        NewSSSCalculator(),
		pagibig:    NewPagIBIGCalculator(),
		philhealth: NewPhilHealthCalculator(),
	}
}

// Run produces one payslip per active employee with an attendance
// summary for the cutoff. Employees without a summary are skipped
// silently; attendance presence is the gate for inclusion.
func (e *Engine) Run(in BatchInput) BatchResult {
	var result BatchResult

	for _, emp := range in.Employees {
		if emp.EmploymentStatus == employee.StatusInactive {
			continue
		}

		att, ok := in.Attendance[emp.Ecode]
		if !ok {
			result.Skipped = append(result.Skipped, emp.Ecode)
			continue
		}

		slip, err := e.computePayslip(emp, att, in)
		if err != nil {
			result.Errors = append(result.Errors, payroll.EmployeeError{
				Ecode:   emp.Ecode,
				Name:    emp.FullName,
				Message: err.Error(),
			})
			continue
		}

		result.Payslips = append(result.Payslips, slip)
	}

	return result
}

func (e *Engine) computePayslip(emp employee.Employee, att attendance.Summary, in BatchInput) (payroll.Payslip, error) {
	cfg, ok := in.PayConfigs[emp.Ecode]
	if !ok {
		return payroll.Payslip{}, fmt.Errorf("ecode %s: %w", emp.Ecode, payroll.ErrPayConfigNotFound)
	}
	if !cfg.DailyRate.IsPositive() {
		return payroll.Payslip{}, fmt.Errorf("ecode %s: %w", emp.Ecode, payroll.ErrInvalidDailyRate)
	}

	settings := in.Settings

	shiftHours := cfg.ShiftHours
	if !shiftHours.IsPositive() {
		shiftHours = payroll.DefaultShiftHours
	}

	// Earnings. Basic pay counts every day present at 100% regardless of
	// holiday composition; holiday premiums are additive on top.
	basicPay := att.DaysPresent.Mul(cfg.DailyRate).Round(2)
	regularHolidayPay := holidayPremium(cfg.DailyRate, att.RegularHolidayHours, settings.RegularHolidayRate).Round(2)
	specialHolidayPay := holidayPremium(cfg.DailyRate, att.SpecialHolidayHours, settings.SpecialHolidayRate).Round(2)
	specialNonWorkingPay := holidayPremium(cfg.DailyRate, att.SpecialNonWorkingHours, settings.SpecialNonWorkingRate).Round(2)

	allowance := computeAllowance(emp, cfg, att.DaysPresent)

	overtimeHours := in.OvertimeHours[emp.Ecode]
	overtimeRate := cfg.OvertimeHourlyRate
	if !overtimeRate.IsPositive() {
		overtimeRate = cfg.DailyRate.Div(workdayHours)
	}
	overtimePay := overtimeHours.Mul(overtimeRate).Round(2)

	grossPay := basicPay.Add(regularHolidayPay).Add(specialHolidayPay).Add(specialNonWorkingPay).Add(allowance).Add(overtimePay)

	tardiness := decimal.NewFromInt(int64(att.LateMinutes)).Mul(settings.LateDeductionPerMinute).Round(2)

	// Statutory contributions run on gross net of tardiness, never on
	// raw gross. This ordering is load-bearing.
	statutoryBasis := grossPay.Sub(tardiness)
	if statutoryBasis.IsNegative() {
		statutoryBasis = decimal.Zero
	}

	isSecondCutoff := in.CutoffDate.Day() >= secondCutoffDay
	onCall := emp.EmploymentStatus == employee.StatusOnCall

	var sss SSSContribution
	var hdmf PagIBIGSemiMonthly
	var phic PhilHealthSemiMonthly
	if !onCall {
		var err error
		sss, err = e.sss.Calculate(statutoryBasis, isSecondCutoff)
		if err != nil {
			return payroll.Payslip{}, fmt.Errorf("ecode %s: %w", emp.Ecode, err)
		}

		// Pag-IBIG and PhilHealth are monthly schemes; project the
		// monthly basic salary from the daily rate.
		monthlyBasic := cfg.DailyRate.Mul(twentySixDays)
		hdmf = e.pagibig.CalculateSemiMonthly(monthlyBasic)
		phic = e.philhealth.CalculateSemiMonthly(monthlyBasic, settings.PhilHealthSchedule, isSecondCutoff)
	}

	otherDeductions := cfg.OtherDeductions
	taxDeduction := cfg.TaxDeduction
	if onCall {
		otherDeductions = decimal.Zero
		taxDeduction = decimal.Zero
	}

	totalDeductions := sss.EmployeeContribution.
		Add(phic.CutoffEmployee).
		Add(hdmf.CutoffEmployee).
		Add(cfg.Loan).
		Add(otherDeductions).
		Add(taxDeduction).
		Add(tardiness).
		Add(cfg.UnderTime).
		Add(cfg.CashAdvance)

	totalEarnings := grossPay.Add(cfg.Adjustment)
	netPay := grossPay.Sub(totalDeductions).Add(cfg.Adjustment)

	return payroll.Payslip{
		BatchID:    in.BatchID,
		Ecode:      emp.Ecode,
		EmployeeID: emp.ID,
		Name:       emp.FullName,
		Project:    emp.Project,
		Position:   emp.Position,
		CutoffDate: in.CutoffDate,

		DaysPresent:           att.DaysPresent,
		RegularDays:           att.RegularHours.Div(shiftHours).Round(2),
		RegularHolidayDays:    att.RegularHolidayHours.Div(shiftHours).Round(2),
		SpecialHolidayDays:    att.SpecialHolidayHours.Div(shiftHours).Round(2),
		SpecialNonWorkingDays: att.SpecialNonWorkingHours.Div(shiftHours).Round(2),

		BasicPay:             basicPay,
		RegularHolidayPay:    regularHolidayPay,
		SpecialHolidayPay:    specialHolidayPay,
		SpecialNonWorkingPay: specialNonWorkingPay,
		OvertimeHours:        overtimeHours,
		OvertimePay:          overtimePay,
		Allowance:            allowance,

		SSS:          sss.EmployeeContribution,
		SSSEmployer:  sss.EmployerContribution,
		SSSEC:        sss.ECContribution,
		PHIC:         phic.CutoffEmployee,
		PHICEmployer: phic.CutoffEmployer,
		HDMF:         hdmf.CutoffEmployee,
		HDMFEmployer: hdmf.CutoffEmployer,

		Loan:            cfg.Loan,
		Tardiness:       tardiness,
		OtherDeductions: otherDeductions,
		TaxDeduction:    taxDeduction,
		UnderTime:       cfg.UnderTime,
		CashAdvance:     cfg.CashAdvance,
		Adjustment:      cfg.Adjustment,

		TotalEarnings:   totalEarnings.Round(2),
		TotalDeductions: totalDeductions.Round(2),
		GrossPay:        grossPay.Round(2),
		NetPay:          netPay.Round(2),

		Status:      payroll.PayslipStatusPending,
		RequestedBy: in.RequestedBy,
	}, nil
}

// computeAllowance derives the daily allowance from the salary package:
// whatever the package promises beyond 26 days at the daily rate,
// spread over 26 days. Rank-and-file employees get none.
func computeAllowance(emp employee.Employee, cfg payroll.EmployeePayConfig, daysPresent decimal.Decimal) decimal.Decimal {
	if emp.EmploymentRank == employee.RankAndFile {
		return decimal.Zero
	}
	if cfg.SalaryPackage == nil {
		return decimal.Zero
	}

	perDay := cfg.SalaryPackage.Sub(cfg.DailyRate.Mul(twentySixDays)).Div(twentySixDays)
	allowance := perDay.Mul(daysPresent)
	if allowance.IsNegative() {
		return decimal.Zero
	}
	return allowance.Round(2)
}
