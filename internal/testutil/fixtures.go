package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbielecki/tempora/internal/domain"
)

// NewTestSubmission returns a logged submission for the given date and
// issue key with reasonable defaults.
func NewTestSubmission(date, issueKey string, opts ...SubmissionOption) *domain.Submission {
	s := &domain.Submission{
		ID:          uuid.New().String(),
		Date:        date,
		IssueKey:    issueKey,
		TimeSeconds: 3600,
		StartTime:   "09:00:00",
		Description: "work",
		Status:      domain.SubmissionLogged,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SubmissionOption func(*domain.Submission)

func WithSeconds(seconds int) SubmissionOption {
	return func(s *domain.Submission) { s.TimeSeconds = seconds }
}

func WithFailure(detail string) SubmissionOption {
	return func(s *domain.Submission) {
		s.Status = domain.SubmissionFailed
		s.Detail = detail
	}
}

func WithCreatedAt(at time.Time) SubmissionOption {
	return func(s *domain.Submission) { s.CreatedAt = at }
}

// NewTestWorkItems returns n work items keyed PROJ-1..PROJ-n.
func NewTestWorkItems(n int) []domain.WorkItem {
	items := make([]domain.WorkItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.WorkItem{
			Key: fmt.Sprintf("PROJ-%d", i+1),
			ID:  fmt.Sprintf("2000%d", i),
		})
	}
	return items
}
