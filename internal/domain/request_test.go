package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest_ApplyDefaults(t *testing.T) {
	r := LogRequest{TimeSeconds: 3600}
	r.ApplyDefaults()

	assert.Equal(t, WorkItemUnspecified, r.IssueKey)
	assert.Equal(t, "work", r.Description)
	assert.Equal(t, "09:00:00", r.WorkStart)
}

func TestLogRequest_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	r := LogRequest{
		TimeSeconds: 3600,
		IssueKey:    "ABC-1",
		Description: "standup",
		WorkStart:   "13:30:00",
	}
	r.ApplyDefaults()

	assert.Equal(t, "ABC-1", r.IssueKey)
	assert.Equal(t, "standup", r.Description)
	assert.Equal(t, "13:30:00", r.WorkStart)
}

func TestLogRequest_Validate(t *testing.T) {
	r := LogRequest{TimeSeconds: 3600}
	r.ApplyDefaults()
	require.NoError(t, r.Validate())
}

func TestLogRequest_Validate_RejectsNonPositiveDuration(t *testing.T) {
	for _, secs := range []int{0, -1} {
		r := LogRequest{TimeSeconds: secs}
		r.ApplyDefaults()
		assert.Error(t, r.Validate(), "seconds=%d", secs)
	}
}

func TestLogRequest_Validate_RejectsBadStartTime(t *testing.T) {
	r := LogRequest{TimeSeconds: 60, WorkStart: "9am"}
	r.ApplyDefaults()
	assert.Error(t, r.Validate())
}

func TestLogRequest_AutoMode(t *testing.T) {
	auto := LogRequest{IssueKey: WorkItemUnspecified}
	manual := LogRequest{IssueKey: "ABC-1"}

	assert.True(t, auto.AutoMode())
	assert.False(t, manual.AutoMode())
}
