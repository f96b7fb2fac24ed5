package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mbielecki/tempora/internal/domain"
)

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
type SQLiteSubmissionRepo struct {
	db *sql.DB
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(db *sql.DB) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: db}
}

const submissionColumns = `id, work_date, issue_key, time_seconds, start_time, description, status, detail, created_at`

func (r *SQLiteSubmissionRepo) Record(ctx context.Context, s *domain.Submission) error {
	query := `INSERT INTO submissions (` + submissionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Date,
		s.IssueKey,
		s.TimeSeconds,
		s.StartTime,
		s.Description,
		string(s.Status),
		s.Detail,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = ?`
	return r.scanSubmission(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSubmissionRepo) ListRecent(ctx context.Context, days int) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions
		WHERE created_at >= datetime('now', ? || ' days')
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent submissions: %w", err)
	}
	defer rows.Close()
	return r.scanSubmissions(rows)
}

func (r *SQLiteSubmissionRepo) ListByDate(ctx context.Context, date string) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions
		WHERE work_date = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing submissions by date: %w", err)
	}
	defer rows.Close()
	return r.scanSubmissions(rows)
}

func (r *SQLiteSubmissionRepo) scanSubmission(row *sql.Row) (*domain.Submission, error) {
	var s domain.Submission
	var status, createdAtStr string

	err := row.Scan(
		&s.ID, &s.Date, &s.IssueKey, &s.TimeSeconds, &s.StartTime,
		&s.Description, &status, &s.Detail, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("submission: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}

	return r.populateSubmission(&s, status, createdAtStr)
}

func (r *SQLiteSubmissionRepo) scanSubmissions(rows *sql.Rows) ([]*domain.Submission, error) {
	var submissions []*domain.Submission
	for rows.Next() {
		var s domain.Submission
		var status, createdAtStr string

		err := rows.Scan(
			&s.ID, &s.Date, &s.IssueKey, &s.TimeSeconds, &s.StartTime,
			&s.Description, &status, &s.Detail, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning submission row: %w", err)
		}

		sub, parseErr := r.populateSubmission(&s, status, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		submissions = append(submissions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return submissions, nil
}

func (r *SQLiteSubmissionRepo) populateSubmission(s *domain.Submission, status, createdAtStr string) (*domain.Submission, error) {
	s.Status = domain.SubmissionStatus(status)
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.CreatedAt = createdAt
	return s, nil
}
