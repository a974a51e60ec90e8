package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Upsert(ctx context.Context, summary Summary) (Summary, error)
	GetByEcodeAndCutoff(ctx context.Context, ecode string, cutoffDate time.Time) (Summary, error)
	ListByCutoff(ctx context.Context, cutoffDate time.Time) ([]Summary, error)
}
