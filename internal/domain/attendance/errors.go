package attendance

import "errors"

var (
	ErrSummaryNotFound = errors.New("attendance summary not found")
)
