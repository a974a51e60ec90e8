package attendance

import (
	"context"
	"time"

	"github.com/sweldo-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) UpsertSummary(ctx context.Context, req attendance.UpsertSummaryRequest) (attendance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEcode(ctx, req.Ecode); err != nil {
		return attendance.SummaryResponse{}, err
	}

	cutoffDate, _ := time.Parse("2006-01-02", req.CutoffDate)

	updated, err := s.attendanceRepo.Upsert(ctx, attendance.Summary{
		Ecode:                  req.Ecode,
		CutoffDate:             cutoffDate,
		DaysPresent:            req.DaysPresent,
		RegularHours:           req.RegularHours,
		RegularHolidayHours:    req.RegularHolidayHours,
		SpecialHolidayHours:    req.SpecialHolidayHours,
		SpecialNonWorkingHours: req.SpecialNonWorkingHours,
		LateMinutes:            req.LateMinutes,
	})
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *AttendanceServiceImpl) ListByCutoff(ctx context.Context, cutoffDate string) ([]attendance.SummaryResponse, error) {
	parsed, err := time.Parse("2006-01-02", cutoffDate)
	if err != nil {
		return nil, err
	}

	summaries, err := s.attendanceRepo.ListByCutoff(ctx, parsed)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, mapToResponse(summary))
	}
	return result, nil
}

func mapToResponse(s attendance.Summary) attendance.SummaryResponse {
	return attendance.SummaryResponse{
		ID:                     s.ID,
		Ecode:                  s.Ecode,
		CutoffDate:             s.CutoffDate.Format("2006-01-02"),
		DaysPresent:            s.DaysPresent,
		RegularHours:           s.RegularHours,
		RegularHolidayHours:    s.RegularHolidayHours,
		SpecialHolidayHours:    s.SpecialHolidayHours,
		SpecialNonWorkingHours: s.SpecialNonWorkingHours,
		LateMinutes:            s.LateMinutes,
	}
}
