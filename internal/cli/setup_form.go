package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mbielecki/tempora/internal/cli/formatter"
	"github.com/mbielecki/tempora/internal/timesheet"
)

// temporaHuhTheme returns the huh form theme matching the formatter palette.
func temporaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent.
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed.
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// PromptCredentials interactively collects whatever connection settings
// are missing from cfg. Values entered here live for this run only; the
// TEMPORA_* environment variables are the persistent configuration.
func PromptCredentials(cfg *timesheet.Config) error {
	var fields []huh.Field

	var domain string
	if cfg.JiraBaseURL == "" {
		fields = append(fields, huh.NewInput().
			Title("Jira domain").
			Placeholder("yourcompany.atlassian.net").
			Value(&domain).
			Validate(validateRequired("Jira domain")))
	}
	if cfg.JiraEmail == "" {
		fields = append(fields, huh.NewInput().
			Title("Jira email").
			Placeholder("you@yourcompany.com").
			Value(&cfg.JiraEmail).
			Validate(validateRequired("Jira email")))
	}
	if cfg.JiraToken == "" {
		fields = append(fields, huh.NewInput().
			Title("Jira API token").
			EchoMode(huh.EchoModePassword).
			Value(&cfg.JiraToken).
			Validate(validateRequired("Jira API token")))
	}
	if cfg.TempoToken == "" {
		fields = append(fields, huh.NewInput().
			Title("Tempo API token").
			EchoMode(huh.EchoModePassword).
			Value(&cfg.TempoToken).
			Validate(validateRequired("Tempo API token")))
	}
	if cfg.ProjectKey == "" {
		fields = append(fields, huh.NewInput().
			Title("Jira project key").
			Placeholder("PROJ").
			Value(&cfg.ProjectKey).
			Validate(validateRequired("project key")))
	}

	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(temporaHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	if domain != "" {
		cfg.JiraBaseURL = "https://" + strings.TrimPrefix(strings.TrimPrefix(domain, "https://"), "http://")
	}
	return nil
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
