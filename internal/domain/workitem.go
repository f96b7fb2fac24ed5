package domain

// Identity is the opaque account identifier of the authenticated user.
// It is fetched once per orchestration run and reused for every entry.
type Identity string

// WorkItem is a trackable unit of work in the remote tracker, identified
// by its human-readable key (e.g. "ABC-123") and internal id.
type WorkItem struct {
	Key string
	ID  string
}

// WorklogEntry is the submission payload for one worklog: a number of
// seconds spent on one work item on one date. Entries are transient; the
// remote timesheet service is the system of record.
type WorklogEntry struct {
	Item        WorkItem
	TimeSeconds int
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM:SS
	Description string
	Author      Identity
}
