package repository

import (
	"context"
	"errors"

	"github.com/mbielecki/tempora/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// SubmissionRepo stores the local audit trail of worklog submissions.
type SubmissionRepo interface {
	Record(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	ListRecent(ctx context.Context, days int) ([]*domain.Submission, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Submission, error)
}
