package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mbielecki/tempora/internal/cli/formatter"
	"github.com/mbielecki/tempora/internal/llm"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   `ask "<natural language>"`,
		Short: "Parse natural language into a worklog request",
		Long:  "Use Ollama to parse a natural-language instruction into a structured worklog request, then submit it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Parser == nil {
				return fmt.Errorf("LLM features are disabled. Use the explicit command:\n" +
					"  tempora log --time 7h30m --range \"this week\"\n" +
					"  tempora log --time 1h --issue ABC-12 --date yesterday\n\n" +
					"Enable with: TEMPORA_LLM_ENABLED=true")
			}

			stopSpinner := formatter.StartSpinner("Parsing...")
			req, err := app.Parser.Parse(context.Background(), args[0])
			stopSpinner()
			if err != nil {
				if errors.Is(err, llm.ErrTimeout) {
					return fmt.Errorf("parse failed: %w (set TEMPORA_LLM_TIMEOUT_MS, e.g. 15000)", err)
				}
				return fmt.Errorf("parse failed: %w", err)
			}

			fmt.Println(formatter.FormatRequest(*req))

			if !yes && !confirmPrompt() {
				fmt.Println("Cancelled.")
				return nil
			}

			stopSpinner = formatter.StartSpinner("Logging time...")
			report := app.Log.LogTime(context.Background(), *req)
			stopSpinner()

			fmt.Println(formatter.FormatReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Submit without confirmation")

	return cmd
}

func confirmPrompt() bool {
	fmt.Print("Submit? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	text, _ := reader.ReadString('\n')
	text = strings.TrimSpace(strings.ToLower(text))
	return text == "y" || text == "yes"
}
