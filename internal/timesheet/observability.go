package timesheet

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about one remote call.
type CallEvent struct {
	Op        string
	Status    int
	LatencyMs int64
	Success   bool
}

// Observer receives events about remote calls for logging.
type Observer interface {
	OnCall(event CallEvent)
}

// LogObserver writes call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCall(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err"
	}
	fmt.Fprintf(o.w, "[%s] remote_call op=%s http_status=%d latency_ms=%d status=%s\n",
		ts, event.Op, event.Status, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCall(CallEvent) {}
