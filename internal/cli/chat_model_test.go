package cli

import (
	"fmt"
	"testing"

	"github.com/mbielecki/tempora/internal/domain"
	"github.com/mbielecki/tempora/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newChatModel(app))
	d.DrainInit()
	return d
}

func TestChat_WelcomeMessage(t *testing.T) {
	app := &App{Log: &fakeLogService{}, Parser: &fakeParser{}}
	d := newChatDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "TEMPORA")
	assert.Contains(t, view, "Tell me what to log")
	assert.Contains(t, view, "/quit")
}

func TestChat_WelcomeWithoutParser(t *testing.T) {
	app := &App{Log: &fakeLogService{}}
	d := newChatDriver(t, app)

	assert.Contains(t, d.View(), "LLM parsing is disabled.")
}

func TestChat_QuitCommand(t *testing.T) {
	app := &App{Log: &fakeLogService{}, Parser: &fakeParser{}}
	d := newChatDriver(t, app)

	d.Type("/quit")
	d.PressEnter()

	assert.True(t, d.Quitting)
}

func TestChat_EscQuits(t *testing.T) {
	app := &App{Log: &fakeLogService{}, Parser: &fakeParser{}}
	d := newChatDriver(t, app)

	d.PressEsc()

	assert.True(t, d.Quitting)
}

func TestChat_ParseThenConfirmSubmits(t *testing.T) {
	log := &fakeLogService{report: "2025-06-17: Logged 1h to ABC-1"}
	app := &App{
		Log: log,
		Parser: &fakeParser{req: &domain.LogRequest{
			TimeSeconds: 3600,
			IssueKey:    "ABC-1",
			Description: "work",
			WorkDate:    "yesterday",
			WorkStart:   "09:00:00",
		}},
	}
	d := newChatDriver(t, app)

	d.Type("log 1h on ABC-1 yesterday")
	d.PressEnter()

	// Parsed request shown, awaiting confirmation.
	view := d.View()
	assert.Contains(t, view, "ABC-1")
	assert.Contains(t, view, "confirm")
	assert.Nil(t, log.lastReq)

	d.Type("y")
	d.PressEnter()

	require.NotNil(t, log.lastReq)
	assert.Equal(t, "ABC-1", log.lastReq.IssueKey)
	assert.Contains(t, d.View(), "Logged 1h to ABC-1")
}

func TestChat_DeclineCancels(t *testing.T) {
	log := &fakeLogService{report: "should not appear"}
	app := &App{
		Log: log,
		Parser: &fakeParser{req: &domain.LogRequest{
			TimeSeconds: 3600,
			IssueKey:    "ABC-1",
			Description: "work",
			WorkStart:   "09:00:00",
		}},
	}
	d := newChatDriver(t, app)

	d.Type("log 1h on ABC-1")
	d.PressEnter()
	d.Type("n")
	d.PressEnter()

	assert.Nil(t, log.lastReq)
	assert.Contains(t, d.View(), "Cancelled.")
}

func TestChat_ParseErrorShown(t *testing.T) {
	app := &App{
		Log:    &fakeLogService{},
		Parser: &fakeParser{err: fmt.Errorf("no duration found")},
	}
	d := newChatDriver(t, app)

	d.Type("hello there")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "Could not parse that")
	assert.Contains(t, view, "no duration found")
}

func TestChat_EmptyInputIgnored(t *testing.T) {
	app := &App{Log: &fakeLogService{}, Parser: &fakeParser{}}
	d := newChatDriver(t, app)

	before := d.View()
	d.PressEnter()

	assert.Equal(t, before, d.View())
}
