package plan

import (
	"errors"
	"fmt"
	"time"

	"github.com/mbielecki/tempora/internal/domain"
)

// ErrEmptyWorkSet indicates there are no work items to distribute time
// across. Callers report it per date instead of treating it as a fault.
var ErrEmptyWorkSet = errors.New("no work items to distribute")

const clockFormat = "15:04:05"

// Allocation assigns a share of the total duration to one work item,
// starting at a concrete time of day.
type Allocation struct {
	Item      domain.WorkItem
	Seconds   int
	StartTime string // HH:MM:SS
}

// Distribute splits totalSeconds across items in input order.
//
// Every item receives totalSeconds/len(items); the first
// totalSeconds%len(items) items receive one extra second, so the
// allocations always sum to exactly totalSeconds.
//
// The start time of item i is workStart + i*base seconds. The offset
// deliberately uses the base share, not the running total of actual
// allocations, so remainder-bearing schedules can show overlapping
// start times. Reported timesheets depend on this exact behavior.
func Distribute(totalSeconds int, items []domain.WorkItem, workStart string) ([]Allocation, error) {
	if len(items) == 0 {
		return nil, ErrEmptyWorkSet
	}
	start, err := time.Parse(clockFormat, workStart)
	if err != nil {
		return nil, fmt.Errorf("parsing work start %q: %w", workStart, err)
	}

	base := totalSeconds / len(items)
	remainder := totalSeconds % len(items)

	allocations := make([]Allocation, 0, len(items))
	for i, item := range items {
		seconds := base
		if i < remainder {
			seconds++
		}
		allocations = append(allocations, Allocation{
			Item:      item,
			Seconds:   seconds,
			StartTime: start.Add(time.Duration(i*base) * time.Second).Format(clockFormat),
		})
	}
	return allocations, nil
}
