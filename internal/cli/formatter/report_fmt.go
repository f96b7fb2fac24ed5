package formatter

import (
	"strings"

	"github.com/mbielecki/tempora/internal/domain"
)

// FormatReport colorizes the plain-text report produced by a worklog run.
// The report contract is one line per resolved date ("<date>: <result>"),
// or a single "Exception occurred: ..." line when the run aborted.
func FormatReport(report string) string {
	lines := strings.Split(report, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = formatReportLine(line)
	}
	return strings.Join(out, "\n")
}

func formatReportLine(line string) string {
	if strings.HasPrefix(line, "Exception occurred:") {
		return StyleRed.Render(line)
	}

	date, rest, found := strings.Cut(line, ": ")
	if !found {
		return StyleFg.Render(line)
	}

	prefix := StyleBlue.Render(date) + Dim(": ")

	if rest == "No in-progress issues found." {
		return prefix + Dim(rest)
	}

	// Auto-mode results are " | "-separated per-item outcomes; manual mode
	// is a single outcome. Color each outcome by success or failure.
	parts := strings.Split(rest, " | ")
	for i, part := range parts {
		if strings.HasPrefix(part, "Failed for ") {
			parts[i] = StyleRed.Render(part)
		} else {
			parts[i] = StyleGreen.Render(part)
		}
	}
	return prefix + strings.Join(parts, Dim(" | "))
}

// FormatRequest renders the structured request an instruction was parsed
// into, so the user can see what is about to be submitted.
func FormatRequest(req domain.LogRequest) string {
	var b strings.Builder

	b.WriteString(Dim("Time:        ") + StyleFg.Render(FormatSeconds(req.TimeSeconds)) + "\n")
	if req.AutoMode() {
		b.WriteString(Dim("Issue:       ") + StylePurple.Render("all in-progress issues") + "\n")
	} else {
		b.WriteString(Dim("Issue:       ") + StyleFg.Render(req.IssueKey) + "\n")
	}
	switch {
	case req.DateRange != "":
		b.WriteString(Dim("Dates:       ") + StyleFg.Render(req.DateRange) + "\n")
	case req.WorkDate != "":
		b.WriteString(Dim("Date:        ") + StyleFg.Render(req.WorkDate) + "\n")
	default:
		b.WriteString(Dim("Date:        ") + StyleFg.Render("today") + "\n")
	}
	b.WriteString(Dim("Start:       ") + StyleFg.Render(req.WorkStart) + "\n")
	b.WriteString(Dim("Description: ") + StyleFg.Render(req.Description))

	return b.String()
}
