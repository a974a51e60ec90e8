package employee

import (
	"context"
	"time"

	"github.com/sweldo-hr/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Ecode:            req.Ecode,
		FullName:         req.FullName,
		Department:       req.Department,
		Project:          req.Project,
		Position:         req.Position,
		EmploymentRank:   employee.EmploymentRank(req.EmploymentRank),
		EmploymentStatus: employee.EmploymentStatus(req.EmploymentStatus),
		HireDate:         hireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByEcode(ctx context.Context, ecode string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEcode(ctx, ecode)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	current, err := s.employeeRepo.GetByEcode(ctx, req.Ecode)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.Department != nil {
		current.Department = *req.Department
	}
	if req.Project != nil {
		current.Project = *req.Project
	}
	if req.Position != nil {
		current.Position = *req.Position
	}
	if req.EmploymentRank != nil {
		current.EmploymentRank = employee.EmploymentRank(*req.EmploymentRank)
	}
	if req.EmploymentStatus != nil {
		current.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
	}

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(updated), nil
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		Ecode:            emp.Ecode,
		FullName:         emp.FullName,
		Department:       emp.Department,
		Project:          emp.Project,
		Position:         emp.Position,
		EmploymentRank:   string(emp.EmploymentRank),
		EmploymentStatus: string(emp.EmploymentStatus),
		HireDate:         emp.HireDate.Format("2006-01-02"),
	}
}
