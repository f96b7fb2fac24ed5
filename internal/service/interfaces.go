package service

import (
	"context"

	"github.com/mbielecki/tempora/internal/domain"
)

// TimeLogService executes a structured worklog request against the
// remote timesheet service and reports the outcome.
//
// The report is always human-readable text, one line per resolved date.
// Remote failures never surface as errors: fatal ones collapse the whole
// report into a single explanatory line, per-date ones are embedded in
// that date's line so partial success stays visible.
type TimeLogService interface {
	LogTime(ctx context.Context, req domain.LogRequest) string
}

// HistoryService exposes the local audit trail of submissions.
type HistoryService interface {
	ListRecent(ctx context.Context, days int) ([]*domain.Submission, error)
}
