package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mbielecki/tempora/internal/agent"
	"github.com/mbielecki/tempora/internal/cli"
	"github.com/mbielecki/tempora/internal/db"
	"github.com/mbielecki/tempora/internal/llm"
	"github.com/mbielecki/tempora/internal/repository"
	"github.com/mbielecki/tempora/internal/service"
	"github.com/mbielecki/tempora/internal/timesheet"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	isInteractive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Remote configuration: env vars first, interactive prompt for the rest.
	tsCfg := timesheet.LoadConfig()
	if !tsCfg.Complete() {
		if !isInteractive() {
			return fmt.Errorf("incomplete configuration: set TEMPORA_JIRA_DOMAIN, " +
				"TEMPORA_JIRA_EMAIL, TEMPORA_JIRA_TOKEN, TEMPORA_TEMPO_TOKEN and TEMPORA_PROJECT")
		}
		if err := cli.PromptCredentials(&tsCfg); err != nil {
			return fmt.Errorf("collecting credentials: %w", err)
		}
	}

	var tsObserver timesheet.Observer = timesheet.NoopObserver{}
	if os.Getenv("TEMPORA_LOG_CALLS") == "true" {
		tsObserver = timesheet.NewLogObserver(os.Stderr)
	}
	client := timesheet.NewClient(tsCfg, tsObserver)

	// Determine DB path: env var or default ~/.tempora/tempora.db
	dbPath := os.Getenv("TEMPORA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempora", "tempora.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	submissionRepo := repository.NewSQLiteSubmissionRepo(database)

	app := &cli.App{
		Log:           service.NewTimeLogService(client, submissionRepo),
		History:       service.NewHistoryService(submissionRepo),
		IsInteractive: isInteractive,
	}

	// Natural-language parsing (only when LLM is enabled).
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		app.Parser = agent.NewRequestParser(llmClient)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
