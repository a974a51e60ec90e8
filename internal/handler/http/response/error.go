package response

import (
	"errors"
	"net/http"

	"github.com/sweldo-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/employee"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/sweldo-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEcodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSummaryNotFound):
		NotFound(w, "Attendance summary not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollSettingsNotFound):
		NotFound(w, "Payroll settings not found")
	case errors.Is(err, payroll.ErrPayConfigNotFound):
		NotFound(w, "Employee pay configuration not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrOvertimeNotFound):
		NotFound(w, "Overtime approval not found")
	case errors.Is(err, payroll.ErrOvertimeAlreadyApproved):
		Conflict(w, "Overtime already approved")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payslip status transition")
	case errors.Is(err, payroll.ErrInvalidCutoffDate):
		BadRequest(w, "Invalid cutoff date", nil)
	case errors.Is(err, payroll.ErrInvalidDeductionSchedule):
		BadRequest(w, "Invalid deduction schedule", nil)
	case errors.Is(err, payroll.ErrInvalidDailyRate):
		BadRequest(w, "Invalid daily rate", nil)
	case errors.Is(err, payroll.ErrNoSSSBracket):
		BadRequest(w, "No SSS contribution bracket matches the basis salary", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
