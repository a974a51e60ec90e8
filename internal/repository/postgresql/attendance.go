package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sweldo-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const summaryColumns = `
	id, ecode, cutoff_date, days_present, regular_hours, regular_holiday_hours,
	special_holiday_hours, special_nonworking_hours, late_minutes, created_at, updated_at
`

func scanSummary(row pgx.Row) (attendance.Summary, error) {
	var s attendance.Summary
	err := row.Scan(
		&s.ID, &s.Ecode, &s.CutoffDate, &s.DaysPresent, &s.RegularHours, &s.RegularHolidayHours,
		&s.SpecialHolidayHours, &s.SpecialNonWorkingHours, &s.LateMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *attendanceRepository) Upsert(ctx context.Context, summary attendance.Summary) (attendance.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_summaries (
			ecode, cutoff_date, days_present, regular_hours, regular_holiday_hours,
			special_holiday_hours, special_nonworking_hours, late_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (ecode, cutoff_date) DO UPDATE SET
			days_present = EXCLUDED.days_present,
			regular_hours = EXCLUDED.regular_hours,
			regular_holiday_hours = EXCLUDED.regular_holiday_hours,
			special_holiday_hours = EXCLUDED.special_holiday_hours,
			special_nonworking_hours = EXCLUDED.special_nonworking_hours,
			late_minutes = EXCLUDED.late_minutes,
			updated_at = NOW()
		RETURNING ` + summaryColumns

	updated, err := scanSummary(q.QueryRow(ctx, query,
		summary.Ecode, summary.CutoffDate, summary.DaysPresent, summary.RegularHours,
		summary.RegularHolidayHours, summary.SpecialHolidayHours,
		summary.SpecialNonWorkingHours, summary.LateMinutes,
	))
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to upsert attendance summary: %w", err)
	}

	return updated, nil
}

func (r *attendanceRepository) GetByEcodeAndCutoff(ctx context.Context, ecode string, cutoffDate time.Time) (attendance.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + summaryColumns + ` FROM attendance_summaries WHERE ecode = $1 AND cutoff_date = $2`

	summary, err := scanSummary(q.QueryRow(ctx, query, ecode, cutoffDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Summary{}, attendance.ErrSummaryNotFound
		}
		return attendance.Summary{}, fmt.Errorf("failed to get attendance summary: %w", err)
	}

	return summary, nil
}

func (r *attendanceRepository) ListByCutoff(ctx context.Context, cutoffDate time.Time) ([]attendance.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + summaryColumns + ` FROM attendance_summaries WHERE cutoff_date = $1 ORDER BY ecode`

	rows, err := q.Query(ctx, query, cutoffDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance summaries: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.Summary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
