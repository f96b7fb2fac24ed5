package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrDateParse indicates a date or range expression could not be
// understood. It is fatal to the whole logging run: no dates are
// attempted when the request itself is ambiguous.
var ErrDateParse = errors.New("could not parse date expression")

const dayFormat = "2006-01-02"

// parser handles free natural-language expressions ("yesterday",
// "next monday"). Shared across calls; when.Parser is stateless after
// construction.
var parser = newParser()

func newParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// Resolve expands a date expression into an ordered, ascending list of
// YYYY-MM-DD dates, anchored to today.
//
// dateRange wins over workDate when both are set. The named ranges
// "this week"/"full week", "next week" and "last week" expand to the
// Monday–Friday span of the named week; any other range value, and any
// workDate, is parsed as a single natural-language date. With neither
// set the result is today alone.
func Resolve(workDate, dateRange string, today time.Time) ([]string, error) {
	switch {
	case dateRange != "":
		return resolveRange(dateRange, today)
	case workDate != "":
		d, err := parseSingle(workDate, today)
		if err != nil {
			return nil, err
		}
		return []string{d}, nil
	default:
		return []string{today.Format(dayFormat)}, nil
	}
}

func resolveRange(dateRange string, today time.Time) ([]string, error) {
	switch normalizeRange(dateRange) {
	case "this week", "full week":
		return weekdays(startOfWeek(today)), nil
	case "next week":
		return weekdays(startOfWeek(today).AddDate(0, 0, 7)), nil
	case "last week":
		return weekdays(startOfWeek(today).AddDate(0, 0, -7)), nil
	default:
		d, err := parseSingle(dateRange, today)
		if err != nil {
			return nil, err
		}
		return []string{d}, nil
	}
}

// normalizeRange canonicalizes a range expression: lowercase, trimmed,
// underscores treated as spaces, runs of whitespace collapsed.
func normalizeRange(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// weekdays returns Monday through Friday starting at monday, ascending.
func weekdays(monday time.Time) []string {
	days := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		days = append(days, monday.AddDate(0, 0, i).Format(dayFormat))
	}
	return days
}

// parseSingle turns one date expression into a YYYY-MM-DD string.
// Explicit ISO dates are accepted directly; everything else goes through
// the natural-language parser.
func parseSingle(expr string, today time.Time) (string, error) {
	trimmed := strings.TrimSpace(expr)
	if d, err := time.Parse(dayFormat, trimmed); err == nil {
		return d.Format(dayFormat), nil
	}

	r, err := parser.Parse(trimmed, today)
	if err != nil || r == nil {
		return "", fmt.Errorf("%w: %q", ErrDateParse, expr)
	}
	return r.Time.Format(dayFormat), nil
}
