package cli

import (
	"context"
	"fmt"

	"github.com/mbielecki/tempora/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent worklog submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			subs, err := app.History.ListRecent(context.Background(), days)
			if err != nil {
				return err
			}

			if len(subs) == 0 {
				fmt.Println("No submissions found.")
				return nil
			}

			headers := []string{"DATE", "ISSUE", "TIME", "START", "STATUS", "SUBMITTED"}
			rows := make([][]string, 0, len(subs))
			for _, s := range subs {
				rows = append(rows, []string{
					s.Date,
					s.IssueKey,
					formatter.FormatSeconds(s.TimeSeconds),
					s.StartTime,
					formatter.StatusPill(s.Status),
					formatter.HumanTimestamp(s.CreatedAt),
				})
			}

			fmt.Print(formatter.RenderBox("Submissions", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")

	return cmd
}
