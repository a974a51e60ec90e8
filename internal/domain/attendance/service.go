package attendance

import "context"

type AttendanceService interface {
	UpsertSummary(ctx context.Context, req UpsertSummaryRequest) (SummaryResponse, error)
	ListByCutoff(ctx context.Context, cutoffDate string) ([]SummaryResponse, error)
}
