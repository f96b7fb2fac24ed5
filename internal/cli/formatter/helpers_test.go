package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0m", FormatSeconds(0))
	assert.Equal(t, "0m", FormatSeconds(-5))
	assert.Equal(t, "45m", FormatSeconds(2700))
	assert.Equal(t, "1h", FormatSeconds(3600))
	assert.Equal(t, "7h 30m", FormatSeconds(27000))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-30*time.Second)))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}

func TestHumanDate(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Today", HumanDate(now))
	assert.Equal(t, "Yesterday", HumanDate(now.AddDate(0, 0, -1)))

	old := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 9, 2024", HumanDate(old))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"DATE", "ISSUE"},
		[][]string{
			{"2025-06-16", "PROJ-1"},
			{"2025-06-17", "ABC-12345"},
		},
	)

	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "ISSUE")
	assert.Contains(t, out, "2025-06-16")
	assert.Contains(t, out, "ABC-12345")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
