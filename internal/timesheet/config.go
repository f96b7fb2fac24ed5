package timesheet

import "os"

// Config holds the remote-service coordinates and credentials for the
// Jira and Tempo APIs. It is injected at client construction; nothing in
// the core reads the environment directly.
type Config struct {
	// JiraBaseURL is the Jira instance root, e.g.
	// "https://your-domain.atlassian.net".
	JiraBaseURL string
	JiraEmail   string
	JiraToken   string

	// TempoBaseURL is the Tempo API root, e.g. "https://api.tempo.io".
	TempoBaseURL string
	TempoToken   string

	// ProjectKey scopes the automatic-mode search to one project.
	ProjectKey string
}

// DefaultConfig returns a Config with the hosted Tempo endpoint and no
// credentials.
func DefaultConfig() Config {
	return Config{
		TempoBaseURL: "https://api.tempo.io",
	}
}

// LoadConfig reads timesheet configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TEMPORA_JIRA_DOMAIN"); v != "" {
		cfg.JiraBaseURL = "https://" + v
	}
	if v := os.Getenv("TEMPORA_JIRA_URL"); v != "" {
		cfg.JiraBaseURL = v
	}
	if v := os.Getenv("TEMPORA_JIRA_EMAIL"); v != "" {
		cfg.JiraEmail = v
	}
	if v := os.Getenv("TEMPORA_JIRA_TOKEN"); v != "" {
		cfg.JiraToken = v
	}
	if v := os.Getenv("TEMPORA_TEMPO_URL"); v != "" {
		cfg.TempoBaseURL = v
	}
	if v := os.Getenv("TEMPORA_TEMPO_TOKEN"); v != "" {
		cfg.TempoToken = v
	}
	if v := os.Getenv("TEMPORA_PROJECT"); v != "" {
		cfg.ProjectKey = v
	}

	return cfg
}

// Complete reports whether every credential needed for a logging run is
// present. Incomplete configs trigger the interactive setup form.
func (c Config) Complete() bool {
	return c.JiraBaseURL != "" &&
		c.JiraEmail != "" &&
		c.JiraToken != "" &&
		c.TempoToken != "" &&
		c.ProjectKey != ""
}
