package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/employee"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/payroll"
)

var (
	secondCutoff = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	firstCutoff  = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
)

func testEmployee(ecode string) employee.Employee {
	return employee.Employee{
		ID:               "emp-" + ecode,
		Ecode:            ecode,
		FullName:         "Test Employee " + ecode,
		Project:          "Site A",
		Position:         "Crew",
		EmploymentRank:   employee.RankAndFile,
		EmploymentStatus: employee.StatusRegular,
	}
}

func testSummary(ecode string, cutoff time.Time) attendance.Summary {
	return attendance.Summary{
		Ecode:        ecode,
		CutoffDate:   cutoff,
		DaysPresent:  decimal.NewFromInt(13),
		RegularHours: decimal.NewFromInt(104),
	}
}

func testPayConfig(ecode string) payroll.EmployeePayConfig {
	return payroll.EmployeePayConfig{
		Ecode:     ecode,
		DailyRate: decimal.NewFromInt(520),
	}
}

func testBatchInput(cutoff time.Time, emps ...employee.Employee) BatchInput {
	in := BatchInput{
		CutoffDate:    cutoff,
		BatchID:       "PR-20250331-1234567890",
		RequestedBy:   "hr-admin",
		Employees:     emps,
		Attendance:    map[string]attendance.Summary{},
		PayConfigs:    map[string]payroll.EmployeePayConfig{},
		OvertimeHours: map[string]decimal.Decimal{},
		Settings:      payroll.DefaultSettings(),
	}
	for _, emp := range emps {
		in.Attendance[emp.Ecode] = testSummary(emp.Ecode, cutoff)
		in.PayConfigs[emp.Ecode] = testPayConfig(emp.Ecode)
	}
	return in
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)), "%s: want %s, got %s", msg, want, got)
}

func TestEngine_Run_SecondCutoff(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"))

	result := engine.Run(in)

	require.Len(t, result.Payslips, 1)
	require.Empty(t, result.Skipped)
	require.Empty(t, result.Errors)

	slip := result.Payslips[0]
	assert.Equal(t, "E-1001", slip.Ecode)
	assert.Equal(t, "PR-20250331-1234567890", slip.BatchID)
	assert.Equal(t, payroll.PayslipStatusPending, slip.Status)
	assert.Equal(t, "hr-admin", slip.RequestedBy)

	// 13 days at 520/day.
	requireDecimal(t, "6760", slip.BasicPay, "basic pay")
	requireDecimal(t, "6760", slip.GrossPay, "gross pay")

	// SSS bracket for 6760, with EC in the second cutoff.
	requireDecimal(t, "254.30", slip.SSS, "sss employee")
	requireDecimal(t, "515.70", slip.SSSEmployer, "sss employer")
	requireDecimal(t, "10", slip.SSSEC, "sss ec")

	// HDMF on 520 x 26 = 13520 monthly: capped at 200/200, halved.
	requireDecimal(t, "100", slip.HDMF, "hdmf employee")
	requireDecimal(t, "100", slip.HDMFEmployer, "hdmf employer")

	// PHIC on 13520 monthly: 676 total, full_second schedule.
	requireDecimal(t, "338", slip.PHIC, "phic employee")
	requireDecimal(t, "338", slip.PHICEmployer, "phic employer")

	requireDecimal(t, "692.30", slip.TotalDeductions, "total deductions")
	requireDecimal(t, "6067.70", slip.NetPay, "net pay")
}

func TestEngine_Run_FirstCutoff(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(firstCutoff, testEmployee("E-1001"))

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)
	slip := result.Payslips[0]

	// No EC premium and no PHIC in the first cutoff under full_second.
	requireDecimal(t, "0", slip.SSSEC, "sss ec")
	requireDecimal(t, "0", slip.PHIC, "phic employee")
	requireDecimal(t, "254.30", slip.SSS, "sss employee")
	requireDecimal(t, "100", slip.HDMF, "hdmf employee")

	requireDecimal(t, "354.30", slip.TotalDeductions, "total deductions")
	requireDecimal(t, "6405.70", slip.NetPay, "net pay")
}

func TestEngine_Run_TardinessReducesStatutoryBasis(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"))
	in.Settings.LateDeductionPerMinute = decimal.NewFromInt(2)

	att := in.Attendance["E-1001"]
	att.LateMinutes = 120
	in.Attendance["E-1001"] = att

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)
	slip := result.Payslips[0]

	// 120 min x 2.00/min = 240 tardiness lowers the SSS basis from 6760
	// to 6520, which lands in the next bracket down.
	requireDecimal(t, "240", slip.Tardiness, "tardiness")
	requireDecimal(t, "236.20", slip.SSS, "sss employee")
	requireDecimal(t, "478.80", slip.SSSEmployer, "sss employer")

	// Gross itself is untouched by tardiness.
	requireDecimal(t, "6760", slip.GrossPay, "gross pay")
	requireDecimal(t, "914.20", slip.TotalDeductions, "total deductions")
	requireDecimal(t, "5845.80", slip.NetPay, "net pay")
}

func TestEngine_Run_NoTardinessDeductionByDefault(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"))

	att := in.Attendance["E-1001"]
	att.LateMinutes = 120
	in.Attendance["E-1001"] = att

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)

	// Default settings carry a zero per-minute rate, so late minutes
	// deduct nothing until HR configures one.
	requireDecimal(t, "0", result.Payslips[0].Tardiness, "tardiness")
	requireDecimal(t, "254.30", result.Payslips[0].SSS, "sss employee")
}

func TestEngine_Run_HolidayPremiums(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"))

	att := in.Attendance["E-1001"]
	att.RegularHolidayHours = decimal.NewFromInt(8)
	att.SpecialHolidayHours = decimal.NewFromInt(8)
	att.SpecialNonWorkingHours = decimal.NewFromInt(4)
	in.Attendance["E-1001"] = att

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)
	slip := result.Payslips[0]

	// 520/8 = 65/hour. Premiums: 65 x 2.0 x 8, 65 x 0.3 x 8, 65 x 0.3 x 4.
	requireDecimal(t, "1040", slip.RegularHolidayPay, "regular holiday pay")
	requireDecimal(t, "156", slip.SpecialHolidayPay, "special holiday pay")
	requireDecimal(t, "78", slip.SpecialNonWorkingPay, "special non-working pay")
	requireDecimal(t, "8034", slip.GrossPay, "gross pay")
}

func TestEngine_Run_ConfigurableHolidayRates(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"))
	in.Settings.RegularHolidayRate = decimal.NewFromInt(1)

	att := in.Attendance["E-1001"]
	att.RegularHolidayHours = decimal.NewFromInt(8)
	in.Attendance["E-1001"] = att

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)
	requireDecimal(t, "520", result.Payslips[0].RegularHolidayPay, "regular holiday pay")
}

func TestEngine_Run_OvertimePay(t *testing.T) {
	t.Run("uses configured hourly rate", func(t *testing.T) {
		engine := NewEngine()
		in := testBatchInput(secondCutoff, testEmployee("E-1001"))
		cfg := in.PayConfigs["E-1001"]
		cfg.OvertimeHourlyRate = decimal.NewFromInt(100)
		in.PayConfigs["E-1001"] = cfg
		in.OvertimeHours["E-1001"] = decimal.NewFromInt(5)

		result := engine.Run(in)
		require.Len(t, result.Payslips, 1)
		requireDecimal(t, "5", result.Payslips[0].OvertimeHours, "overtime hours")
		requireDecimal(t, "500", result.Payslips[0].OvertimePay, "overtime pay")
	})

	t.Run("falls back to daily rate over eight hours", func(t *testing.T) {
		engine := NewEngine()
		in := testBatchInput(secondCutoff, testEmployee("E-1001"))
		in.OvertimeHours["E-1001"] = decimal.NewFromInt(4)

		result := engine.Run(in)
		require.Len(t, result.Payslips, 1)
		// 520/8 = 65/hour x 4.
		requireDecimal(t, "260", result.Payslips[0].OvertimePay, "overtime pay")
	})
}

func TestEngine_Run_ManagerialAllowance(t *testing.T) {
	engine := NewEngine()
	emp := testEmployee("E-2001")
	emp.EmploymentRank = employee.RankManagerial
	in := testBatchInput(secondCutoff, emp)

	pkg := decimal.NewFromInt(20800)
	cfg := in.PayConfigs["E-2001"]
	cfg.SalaryPackage = &pkg
	in.PayConfigs["E-2001"] = cfg

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)

	// (20800 - 520 x 26) / 26 = 280/day x 13 days.
	requireDecimal(t, "3640", result.Payslips[0].Allowance, "allowance")
	requireDecimal(t, "10400", result.Payslips[0].GrossPay, "gross pay")
}

func TestEngine_Run_NoAllowanceForRankAndFile(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"))

	pkg := decimal.NewFromInt(20800)
	cfg := in.PayConfigs["E-1001"]
	cfg.SalaryPackage = &pkg
	in.PayConfigs["E-1001"] = cfg

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)
	requireDecimal(t, "0", result.Payslips[0].Allowance, "allowance")
}

func TestEngine_Run_OnCallSuppressesDeductions(t *testing.T) {
	engine := NewEngine()
	emp := testEmployee("E-3001")
	emp.EmploymentStatus = employee.StatusOnCall
	in := testBatchInput(secondCutoff, emp)

	cfg := in.PayConfigs["E-3001"]
	cfg.OtherDeductions = decimal.NewFromInt(50)
	cfg.TaxDeduction = decimal.NewFromInt(100)
	cfg.Loan = decimal.NewFromInt(75)
	in.PayConfigs["E-3001"] = cfg

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)
	slip := result.Payslips[0]

	requireDecimal(t, "0", slip.SSS, "sss employee")
	requireDecimal(t, "0", slip.PHIC, "phic employee")
	requireDecimal(t, "0", slip.HDMF, "hdmf employee")
	requireDecimal(t, "0", slip.OtherDeductions, "other deductions")
	requireDecimal(t, "0", slip.TaxDeduction, "tax deduction")

	// Loan repayments still apply.
	requireDecimal(t, "75", slip.Loan, "loan")
	requireDecimal(t, "75", slip.TotalDeductions, "total deductions")
	requireDecimal(t, "6685", slip.NetPay, "net pay")
}

func TestEngine_Run_AdjustmentAddsToNetPay(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"))

	cfg := in.PayConfigs["E-1001"]
	cfg.Adjustment = decimal.NewFromInt(500)
	in.PayConfigs["E-1001"] = cfg

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)
	slip := result.Payslips[0]

	// Adjustment never touches gross or the statutory basis.
	requireDecimal(t, "6760", slip.GrossPay, "gross pay")
	requireDecimal(t, "7260", slip.TotalEarnings, "total earnings")
	requireDecimal(t, "6567.70", slip.NetPay, "net pay")

	wantNet := slip.GrossPay.Sub(slip.TotalDeductions).Add(slip.Adjustment)
	require.True(t, slip.NetPay.Equal(wantNet), "net pay identity: want %s, got %s", wantNet, slip.NetPay)
}

func TestEngine_Run_SkipsEmployeeWithoutAttendance(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"), testEmployee("E-1002"))
	delete(in.Attendance, "E-1002")

	result := engine.Run(in)

	require.Len(t, result.Payslips, 1)
	assert.Equal(t, "E-1001", result.Payslips[0].Ecode)
	assert.Equal(t, []string{"E-1002"}, result.Skipped)
	assert.Empty(t, result.Errors)
}

func TestEngine_Run_ExcludesInactiveEmployees(t *testing.T) {
	engine := NewEngine()
	inactive := testEmployee("E-1002")
	inactive.EmploymentStatus = employee.StatusInactive
	in := testBatchInput(secondCutoff, testEmployee("E-1001"), inactive)

	result := engine.Run(in)

	require.Len(t, result.Payslips, 1)
	assert.Equal(t, "E-1001", result.Payslips[0].Ecode)
	// Inactive is excluded outright, not reported as skipped.
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Errors)
}

func TestEngine_Run_CollectsErrorsWithoutAbortingBatch(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"), testEmployee("E-1002"), testEmployee("E-1003"))

	// E-1002 has no pay config, E-1003 has a zero daily rate.
	delete(in.PayConfigs, "E-1002")
	cfg := in.PayConfigs["E-1003"]
	cfg.DailyRate = decimal.Zero
	in.PayConfigs["E-1003"] = cfg

	result := engine.Run(in)

	require.Len(t, result.Payslips, 1)
	assert.Equal(t, "E-1001", result.Payslips[0].Ecode)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, "E-1002", result.Errors[0].Ecode)
	assert.Contains(t, result.Errors[0].Message, payroll.ErrPayConfigNotFound.Error())
	assert.Equal(t, "E-1003", result.Errors[1].Ecode)
	assert.Contains(t, result.Errors[1].Message, payroll.ErrInvalidDailyRate.Error())
}

func TestEngine_Run_Deterministic(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"))

	first := engine.Run(in)
	second := engine.Run(in)

	require.Len(t, first.Payslips, 1)
	require.Len(t, second.Payslips, 1)
	assert.True(t, first.Payslips[0].NetPay.Equal(second.Payslips[0].NetPay))
	assert.True(t, first.Payslips[0].TotalDeductions.Equal(second.Payslips[0].TotalDeductions))
}

func TestEngine_Run_DayEquivalents(t *testing.T) {
	engine := NewEngine()
	in := testBatchInput(secondCutoff, testEmployee("E-1001"))

	cfg := in.PayConfigs["E-1001"]
	cfg.ShiftHours = decimal.NewFromInt(8)
	in.PayConfigs["E-1001"] = cfg

	att := in.Attendance["E-1001"]
	att.RegularHolidayHours = decimal.NewFromInt(4)
	in.Attendance["E-1001"] = att

	result := engine.Run(in)
	require.Len(t, result.Payslips, 1)
	slip := result.Payslips[0]

	requireDecimal(t, "13", slip.RegularDays, "regular days")
	requireDecimal(t, "0.5", slip.RegularHolidayDays, "regular holiday days")
}
