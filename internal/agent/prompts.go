package agent

// parseSystemPrompt instructs the model to emit exactly one JSON object
// describing a worklog request. Durations are always converted to
// seconds; date expressions are passed through verbatim so the date
// resolver owns their interpretation.
const parseSystemPrompt = `You convert a user's timesheet instruction into one JSON object. Respond with ONLY the JSON object, no prose, no code fences.

Schema:
{
  "intent": "log_time",
  "time_seconds": <integer, total duration in seconds>,
  "issue_key": "<issue key like ABC-123, or "unspecified" when no issue is named>",
  "description": "<worklog description, empty if not given>",
  "work_date": "<single date expression exactly as the user said it, empty if not given>",
  "date_range": "<range expression like "this week"/"last week"/"next week", empty if not given>",
  "work_start": "<start time HH:MM:SS, empty if not given>"
}

Rules:
- Convert hours and minutes to seconds: "7.5 hours" -> 27000, "90 min" -> 5400.
- If the user names no specific issue, set issue_key to "unspecified".
- Put week-like expressions in date_range, single-day expressions ("yesterday", "2025-06-01", "last friday") in work_date. Never fill both.
- Copy date wording verbatim; do not compute calendar dates yourself.
- If the instruction is not about logging work time, set intent to "other".

Examples:
"log 7.5 hours for this week" ->
{"intent":"log_time","time_seconds":27000,"issue_key":"unspecified","description":"","work_date":"","date_range":"this week","work_start":""}

"book 1h on ABC-12 yesterday for code review starting at 14:00" ->
{"intent":"log_time","time_seconds":3600,"issue_key":"ABC-12","description":"code review","work_date":"yesterday","date_range":"","work_start":"14:00:00"}

"what's the weather" ->
{"intent":"other","time_seconds":0,"issue_key":"","description":"","work_date":"","date_range":"","work_start":""}`
