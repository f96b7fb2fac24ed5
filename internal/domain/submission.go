package domain

import "time"

type SubmissionStatus string

const (
	SubmissionLogged SubmissionStatus = "logged"
	SubmissionFailed SubmissionStatus = "failed"
)

// Submission is the local audit record of one worklog submission attempt.
// It exists so `tempora history` can show what the tool did; it is never
// read back into orchestration.
type Submission struct {
	ID          string
	Date        string // YYYY-MM-DD
	IssueKey    string
	TimeSeconds int
	StartTime   string // HH:MM:SS
	Description string
	Status      SubmissionStatus
	Detail      string // raw failure body, empty on success
	CreatedAt   time.Time
}
