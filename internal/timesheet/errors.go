package timesheet

import "errors"

var (
	// ErrAuth indicates the identity lookup was rejected. Fatal to the
	// whole logging run.
	ErrAuth = errors.New("failed to fetch account info")

	// ErrNotFound indicates a work-item lookup failed. Fatal to the
	// affected date only.
	ErrNotFound = errors.New("issue not found")

	// ErrSearch indicates the in-progress search was rejected. Fatal to
	// the affected date only.
	ErrSearch = errors.New("failed to fetch in-progress issues")
)
