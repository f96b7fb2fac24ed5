package domain

import (
	"fmt"
	"time"
)

// WorkItemUnspecified is the issue-key sentinel that selects automatic
// mode: the total duration is distributed across all of the user's
// in-progress work items instead of a single named issue.
const WorkItemUnspecified = "unspecified"

const (
	DefaultDescription = "work"
	DefaultWorkStart   = "09:00:00"
)

// LogRequest is the structured form of a worklog instruction. It is the
// only input the logging core accepts; whatever front end produces it
// (CLI flags, the chat agent) validates it at the boundary.
type LogRequest struct {
	// TimeSeconds is the total duration to log. Must be positive.
	TimeSeconds int

	// IssueKey names the target work item in manual mode. The value
	// WorkItemUnspecified selects automatic mode.
	IssueKey string

	// Description is attached to every worklog entry created for this
	// request.
	Description string

	// WorkDate is a single date expression (ISO or natural language).
	// Ignored when DateRange is set.
	WorkDate string

	// DateRange is a named range ("this week", "last week", ...) or a
	// free natural-language expression resolving to a single date.
	DateRange string

	// WorkStart is the HH:MM:SS start time of the first entry per date.
	WorkStart string
}

// ApplyDefaults fills the optional fields the same way the tool schema
// defaults them: automatic mode, "work" description, 09:00:00 start.
func (r *LogRequest) ApplyDefaults() {
	if r.IssueKey == "" {
		r.IssueKey = WorkItemUnspecified
	}
	if r.Description == "" {
		r.Description = DefaultDescription
	}
	if r.WorkStart == "" {
		r.WorkStart = DefaultWorkStart
	}
}

// Validate checks the request invariants before it enters the core.
func (r LogRequest) Validate() error {
	if r.TimeSeconds <= 0 {
		return fmt.Errorf("time_seconds must be positive, got %d", r.TimeSeconds)
	}
	if r.IssueKey == "" {
		return fmt.Errorf("issue_key must be set (use %q for automatic mode)", WorkItemUnspecified)
	}
	if _, err := time.Parse("15:04:05", r.WorkStart); err != nil {
		return fmt.Errorf("work_start must be HH:MM:SS, got %q", r.WorkStart)
	}
	return nil
}

// AutoMode reports whether the request distributes time across all
// in-progress work items rather than a single named issue.
func (r LogRequest) AutoMode() bool {
	return r.IssueKey == WorkItemUnspecified
}
