package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mbielecki/tempora/internal/dates"
	"github.com/mbielecki/tempora/internal/domain"
	"github.com/mbielecki/tempora/internal/plan"
	"github.com/mbielecki/tempora/internal/repository"
	"github.com/mbielecki/tempora/internal/timesheet"
)

type timeLogService struct {
	client  timesheet.Client
	history repository.SubmissionRepo // optional; nil disables the audit trail
	now     func() time.Time
}

// NewTimeLogService creates the logging orchestrator. history may be nil.
func NewTimeLogService(client timesheet.Client, history repository.SubmissionRepo) TimeLogService {
	return &timeLogService{
		client:  client,
		history: history,
		now:     time.Now,
	}
}

// LogTime runs the full pipeline: resolve dates, fetch the identity once,
// then process each date sequentially in manual or automatic mode.
//
// An unparseable date expression or a rejected identity lookup aborts the
// run with a single explanatory line; so does any transport fault, since
// its origin is ambiguous. Everything else is reported inline per date.
func (s *timeLogService) LogTime(ctx context.Context, req domain.LogRequest) string {
	resolved, err := dates.Resolve(req.WorkDate, req.DateRange, s.now())
	if err != nil {
		return exceptionLine(err)
	}

	identity, err := s.client.FetchIdentity(ctx)
	if err != nil {
		return exceptionLine(err)
	}

	results := make([]string, 0, len(resolved))
	for _, date := range resolved {
		var line string
		if req.AutoMode() {
			line, err = s.logAutoForDate(ctx, date, req, identity)
		} else {
			line, err = s.logManual(ctx, date, req, identity)
		}
		if err != nil {
			return exceptionLine(err)
		}
		results = append(results, date+": "+line)
	}

	return strings.Join(results, "\n")
}

// logManual logs the full duration against the named issue.
func (s *timeLogService) logManual(ctx context.Context, date string, req domain.LogRequest, identity domain.Identity) (string, error) {
	item, err := s.client.FetchWorkItem(ctx, req.IssueKey)
	if err != nil {
		if errors.Is(err, timesheet.ErrNotFound) {
			// Fatal to this date only; later dates still run.
			return err.Error(), nil
		}
		return "", err
	}

	return s.submit(ctx, domain.WorklogEntry{
		Item:        item,
		TimeSeconds: req.TimeSeconds,
		Date:        date,
		StartTime:   req.WorkStart,
		Description: req.Description,
		Author:      identity,
	})
}

// logAutoForDate distributes the duration across the user's in-progress
// work items, fetched fresh for this date, and submits one entry each in
// item-list order.
func (s *timeLogService) logAutoForDate(ctx context.Context, date string, req domain.LogRequest, identity domain.Identity) (string, error) {
	items, err := s.client.FetchOpenWorkItems(ctx, identity)
	if err != nil {
		if errors.Is(err, timesheet.ErrSearch) {
			return err.Error(), nil
		}
		return "", err
	}
	if len(items) == 0 {
		return "No in-progress issues found.", nil
	}

	allocations, err := plan.Distribute(req.TimeSeconds, items, req.WorkStart)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(allocations))
	for _, a := range allocations {
		entry := domain.WorklogEntry{
			Item:        a.Item,
			TimeSeconds: a.Seconds,
			Date:        date,
			StartTime:   a.StartTime,
			Description: req.Description,
			Author:      identity,
		}
		outcome, err := s.client.SubmitWorklog(ctx, entry)
		if err != nil {
			return "", err
		}
		s.record(entry, outcome)

		if outcome.OK {
			parts = append(parts, fmt.Sprintf("%s: %sh at %s", a.Item.Key, formatHours(a.Seconds), a.StartTime))
		} else {
			parts = append(parts, fmt.Sprintf("Failed for %s: %s", a.Item.Key, outcome.Body))
		}
	}

	return strings.Join(parts, " | "), nil
}

// submit posts one entry and renders its outcome as a report fragment.
func (s *timeLogService) submit(ctx context.Context, entry domain.WorklogEntry) (string, error) {
	outcome, err := s.client.SubmitWorklog(ctx, entry)
	if err != nil {
		return "", err
	}
	s.record(entry, outcome)

	if outcome.OK {
		return fmt.Sprintf("Logged %dh to %s", entry.TimeSeconds/3600, entry.Item.Key), nil
	}
	return fmt.Sprintf("Failed for %s: %s", entry.Item.Key, outcome.Body), nil
}

// record appends the submission to the local audit trail. Best effort:
// a history write failure must not disturb the logging run.
func (s *timeLogService) record(entry domain.WorklogEntry, outcome timesheet.Outcome) {
	if s.history == nil {
		return
	}
	sub := &domain.Submission{
		ID:          uuid.New().String(),
		Date:        entry.Date,
		IssueKey:    entry.Item.Key,
		TimeSeconds: entry.TimeSeconds,
		StartTime:   entry.StartTime,
		Description: entry.Description,
		Status:      domain.SubmissionLogged,
		CreatedAt:   s.now().UTC(),
	}
	if !outcome.OK {
		sub.Status = domain.SubmissionFailed
		sub.Detail = outcome.Body
	}
	_ = s.history.Record(context.Background(), sub)
}

func exceptionLine(err error) string {
	return fmt.Sprintf("Exception occurred: %v", err)
}
