package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mbielecki/tempora/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLogService records the request it received and returns a canned report.
type fakeLogService struct {
	report  string
	lastReq *domain.LogRequest
}

func (f *fakeLogService) LogTime(ctx context.Context, req domain.LogRequest) string {
	f.lastReq = &req
	return f.report
}

type fakeHistoryService struct {
	subs []*domain.Submission
	err  error
}

func (f *fakeHistoryService) ListRecent(ctx context.Context, days int) ([]*domain.Submission, error) {
	return f.subs, f.err
}

type fakeParser struct {
	req *domain.LogRequest
	err error
}

func (f *fakeParser) Parse(ctx context.Context, text string) (*domain.LogRequest, error) {
	return f.req, f.err
}

// runCommand executes the root command with args and captures everything
// written to stdout, including direct fmt.Print calls from handlers.
func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), execErr
}

func TestLogCmd_BuildsRequestFromFlags(t *testing.T) {
	log := &fakeLogService{report: "2025-06-17: Logged 1h to ABC-1"}
	app := &App{Log: log}

	out, err := runCommand(t, app,
		"log", "--time", "1h", "--issue", "ABC-1", "--date", "yesterday", "--desc", "review")
	require.NoError(t, err)

	require.NotNil(t, log.lastReq)
	assert.Equal(t, 3600, log.lastReq.TimeSeconds)
	assert.Equal(t, "ABC-1", log.lastReq.IssueKey)
	assert.Equal(t, "yesterday", log.lastReq.WorkDate)
	assert.Equal(t, "review", log.lastReq.Description)
	assert.Equal(t, "09:00:00", log.lastReq.WorkStart)
	assert.Contains(t, out, "Logged 1h to ABC-1")
}

func TestLogCmd_DefaultsToAutoMode(t *testing.T) {
	log := &fakeLogService{report: "ok"}
	app := &App{Log: log}

	_, err := runCommand(t, app, "log", "--time", "7h30m", "--range", "this week")
	require.NoError(t, err)

	require.NotNil(t, log.lastReq)
	assert.Equal(t, 27000, log.lastReq.TimeSeconds)
	assert.True(t, log.lastReq.AutoMode())
	assert.Equal(t, "this week", log.lastReq.DateRange)
	assert.Equal(t, "work", log.lastReq.Description)
}

func TestLogCmd_RejectsBadDuration(t *testing.T) {
	app := &App{Log: &fakeLogService{}}

	_, err := runCommand(t, app, "log", "--time", "bananas")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --time")
}

func TestLogCmd_RejectsBadStartTime(t *testing.T) {
	app := &App{Log: &fakeLogService{}}

	_, err := runCommand(t, app, "log", "--time", "1h", "--start", "9am")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "work_start")
}

func TestLogCmd_RequiresTime(t *testing.T) {
	app := &App{Log: &fakeLogService{}}

	_, err := runCommand(t, app, "log")
	require.Error(t, err)
}

func TestAskCmd_DisabledWithoutParser(t *testing.T) {
	app := &App{Log: &fakeLogService{}}

	_, err := runCommand(t, app, "ask", "log an hour")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEMPORA_LLM_ENABLED")
}

func TestAskCmd_SubmitsWithYesFlag(t *testing.T) {
	log := &fakeLogService{report: "2025-06-17: Logged 1h to ABC-1"}
	parser := &fakeParser{req: &domain.LogRequest{
		TimeSeconds: 3600,
		IssueKey:    "ABC-1",
		Description: "work",
		WorkDate:    "yesterday",
		WorkStart:   "09:00:00",
	}}
	app := &App{Log: log, Parser: parser}

	out, err := runCommand(t, app, "ask", "--yes", "log 1h on ABC-1 yesterday")
	require.NoError(t, err)

	require.NotNil(t, log.lastReq)
	assert.Equal(t, "ABC-1", log.lastReq.IssueKey)
	assert.Contains(t, out, "Logged 1h to ABC-1")
}

func TestAskCmd_ParseError(t *testing.T) {
	app := &App{
		Log:    &fakeLogService{},
		Parser: &fakeParser{err: fmt.Errorf("model output was not valid")},
	}

	_, err := runCommand(t, app, "ask", "--yes", "gibberish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse failed")
}

func TestHistoryCmd_RendersSubmissions(t *testing.T) {
	app := &App{History: &fakeHistoryService{subs: []*domain.Submission{
		{
			ID:          "id-1",
			Date:        "2025-06-16",
			IssueKey:    "PROJ-1",
			TimeSeconds: 13500,
			StartTime:   "09:00:00",
			Status:      domain.SubmissionLogged,
			CreatedAt:   time.Now(),
		},
		{
			ID:          "id-2",
			Date:        "2025-06-16",
			IssueKey:    "PROJ-2",
			TimeSeconds: 13500,
			StartTime:   "12:45:00",
			Status:      domain.SubmissionFailed,
			Detail:      "issue closed",
			CreatedAt:   time.Now(),
		},
	}}}

	out, err := runCommand(t, app, "history", "--days", "30")
	require.NoError(t, err)

	assert.Contains(t, out, "PROJ-1")
	assert.Contains(t, out, "PROJ-2")
	assert.Contains(t, out, "3h 45m")
	assert.Contains(t, out, "Logged")
	assert.Contains(t, out, "Failed")
}

func TestHistoryCmd_Empty(t *testing.T) {
	app := &App{History: &fakeHistoryService{}}

	out, err := runCommand(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No submissions found.")
}

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app := &App{IsInteractive: func() bool { return false }}

	out, err := runCommand(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}
