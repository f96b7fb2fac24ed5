package cli

import (
	"github.com/mbielecki/tempora/internal/agent"
	"github.com/mbielecki/tempora/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
// Parser is nil when LLM features are disabled; commands that need it
// degrade with a pointer to the explicit alternatives.
type App struct {
	Log     service.TimeLogService
	History service.HistoryService
	Parser  agent.RequestParser

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tempora" command and registers all
// subcommands against the provided App. Running it bare in a terminal
// drops into the chat session; outside a terminal it prints help.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempora",
		Short: "Log work time to Jira/Tempo from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runChat(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newLogCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newHistoryCmd(app),
	)

	return root
}
