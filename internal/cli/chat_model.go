package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbielecki/tempora/internal/cli/formatter"
	"github.com/mbielecki/tempora/internal/domain"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat session for logging time",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app)
		},
	}
}

func runChat(app *App) error {
	p := tea.NewProgram(newChatModel(app))
	_, err := p.Run()
	return err
}

// chatModel is the interactive chat loop: each line of input is parsed
// into a worklog request, confirmed, and submitted. Confirmation happens
// in a second turn so a mis-parsed instruction never reaches the remote.
type chatModel struct {
	app   *App
	input textinput.Model

	messages []string

	// pending holds a parsed request awaiting y/n confirmation.
	pending *domain.LogRequest
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	m := &chatModel{
		app:   app,
		input: ti,
	}

	m.messages = append(m.messages, chatWelcome(app))

	return m
}

func chatWelcome(app *App) string {
	var b strings.Builder
	b.WriteString(formatter.Header("tempora"))
	b.WriteString("\n")
	if app.Parser == nil {
		b.WriteString(formatter.StyleYellow.Render("LLM parsing is disabled.") + "\n")
		b.WriteString(formatter.Dim("Enable with TEMPORA_LLM_ENABLED=true, or use 'tempora log' directly.") + "\n")
	} else {
		b.WriteString(formatter.Dim(`Tell me what to log, e.g. "log 7.5 hours for this week".`) + "\n")
	}
	b.WriteString(formatter.Dim("Type /quit to exit."))
	return b.String()
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	prompt := formatter.StylePurple.Render("tempora")
	if m.pending != nil {
		prompt = formatter.StyleYellow.Render("confirm [y/N]")
	}
	b.WriteString(prompt + formatter.Dim("> "))
	b.WriteString(m.input.View())

	return b.String()
}

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		return m, tea.Quit
	}

	m.messages = append(m.messages, formatter.Dim("You: ")+input)

	if m.pending != nil {
		return m.handleConfirmation(input)
	}

	if m.app.Parser == nil {
		m.messages = append(m.messages,
			formatter.StyleYellow.Render("LLM parsing is disabled. Use 'tempora log' with explicit flags."))
		return m, nil
	}

	req, err := m.app.Parser.Parse(context.Background(), input)
	if err != nil {
		m.messages = append(m.messages, formatter.StyleRed.Render("Could not parse that: ")+err.Error())
		return m, nil
	}

	m.pending = req
	m.messages = append(m.messages, formatter.FormatRequest(*req))

	return m, nil
}

func (m *chatModel) handleConfirmation(input string) (tea.Model, tea.Cmd) {
	pending := m.pending
	m.pending = nil

	answer := strings.ToLower(input)
	if answer != "y" && answer != "yes" {
		m.messages = append(m.messages, formatter.Dim("Cancelled."))
		return m, nil
	}

	report := m.app.Log.LogTime(context.Background(), *pending)
	m.messages = append(m.messages, formatter.FormatReport(report))

	return m, nil
}
