package employee

import (
	"github.com/sweldo-hr/payroll-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID               string `json:"id"`
	Ecode            string `json:"ecode"`
	FullName         string `json:"full_name"`
	Department       string `json:"department"`
	Project          string `json:"project"`
	Position         string `json:"position"`
	EmploymentRank   string `json:"employment_rank"`
	EmploymentStatus string `json:"employment_status"`
	HireDate         string `json:"hire_date"`
}

type CreateEmployeeRequest struct {
	Ecode            string `json:"ecode"`
	FullName         string `json:"full_name"`
	Department       string `json:"department"`
	Project          string `json:"project"`
	Position         string `json:"position"`
	EmploymentRank   string `json:"employment_rank"`
	EmploymentStatus string `json:"employment_status"`
	HireDate         string `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEcode(r.Ecode) {
		errs = append(errs, validator.ValidationError{Field: "ecode", Message: "must be 3-20 uppercase alphanumeric characters"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.EmploymentRank != string(RankAndFile) && r.EmploymentRank != string(RankManagerial) {
		errs = append(errs, validator.ValidationError{Field: "employment_rank", Message: "must be 'RANK-AND-FILE' or 'MANAGERIAL'"})
	}
	validStatuses := []string{string(StatusRegular), string(StatusProbationary), string(StatusOnCall), string(StatusInactive)}
	if !validator.IsInSlice(r.EmploymentStatus, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "is not a recognized employment status"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Ecode            string  `json:"-"`
	FullName         *string `json:"full_name,omitempty"`
	Department       *string `json:"department,omitempty"`
	Project          *string `json:"project,omitempty"`
	Position         *string `json:"position,omitempty"`
	EmploymentRank   *string `json:"employment_rank,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
}
