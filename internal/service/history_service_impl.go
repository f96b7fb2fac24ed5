package service

import (
	"context"

	"github.com/mbielecki/tempora/internal/domain"
	"github.com/mbielecki/tempora/internal/repository"
)

type historyService struct {
	submissions repository.SubmissionRepo
}

func NewHistoryService(submissions repository.SubmissionRepo) HistoryService {
	return &historyService{submissions: submissions}
}

func (s *historyService) ListRecent(ctx context.Context, days int) ([]*domain.Submission, error) {
	return s.submissions.ListRecent(ctx, days)
}
