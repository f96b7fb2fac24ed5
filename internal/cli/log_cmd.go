package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mbielecki/tempora/internal/cli/formatter"
	"github.com/mbielecki/tempora/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var duration, issue, date, dateRange, start, desc string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log work time",
		Long: "Log work time to a named issue, or distribute it evenly across\n" +
			"all of your in-progress issues when --issue is omitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.ParseDuration(duration)
			if err != nil {
				return fmt.Errorf("invalid --time %q: %w", duration, err)
			}

			req := domain.LogRequest{
				TimeSeconds: int(d.Seconds()),
				IssueKey:    issue,
				Description: desc,
				WorkDate:    date,
				DateRange:   dateRange,
				WorkStart:   start,
			}
			req.ApplyDefaults()
			if err := req.Validate(); err != nil {
				return err
			}

			stopSpinner := formatter.StartSpinner("Logging time...")
			report := app.Log.LogTime(context.Background(), req)
			stopSpinner()

			fmt.Println(formatter.FormatReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&duration, "time", "", `Total duration to log, e.g. "7h30m" or "90m"`)
	cmd.Flags().StringVar(&issue, "issue", "", "Issue key, e.g. ABC-12 (omit to distribute across in-progress issues)")
	cmd.Flags().StringVar(&date, "date", "", `Date to log on: ISO or natural language ("yesterday", "last friday")`)
	cmd.Flags().StringVar(&dateRange, "range", "", `Date range: "this week", "last week", "next week"`)
	cmd.Flags().StringVar(&start, "start", "", "Start time of the first entry (HH:MM:SS, default 09:00:00)")
	cmd.Flags().StringVar(&desc, "desc", "", `Worklog description (default "work")`)
	_ = cmd.MarkFlagRequired("time")

	return cmd
}
