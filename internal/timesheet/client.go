package timesheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mbielecki/tempora/internal/domain"
)

// Client performs the remote timesheet operations. All calls are
// blocking and are never retried; a failed call's error text is captured
// once by the caller.
type Client interface {
	// FetchIdentity resolves the authenticated user's account id.
	FetchIdentity(ctx context.Context) (domain.Identity, error)

	// FetchWorkItem resolves a work item's internal id from its key.
	FetchWorkItem(ctx context.Context, key string) (domain.WorkItem, error)

	// FetchOpenWorkItems lists the user's in-progress work items within
	// the configured project. An empty result is not an error.
	FetchOpenWorkItems(ctx context.Context, identity domain.Identity) ([]domain.WorkItem, error)

	// SubmitWorklog posts one worklog entry. Non-2xx business responses
	// come back as a failed Outcome, not an error; only transport-level
	// faults are errors.
	SubmitWorklog(ctx context.Context, entry domain.WorklogEntry) (Outcome, error)
}

// Outcome is the business result of a worklog submission.
type Outcome struct {
	OK     bool
	Status int
	Body   string // raw response body, kept for failure reporting
}

// httpClient implements Client against the Jira and Tempo REST APIs.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the given remote configuration.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg:      cfg,
		http:     &http.Client{Timeout: 30 * time.Second},
		observer: observer,
	}
}

type myselfResponse struct {
	AccountID string `json:"accountId"`
}

type issueResponse struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

type searchResponse struct {
	Issues []searchIssue `json:"issues"`
}

type searchIssue struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// worklogPayload is the JSON body sent to POST /4/worklogs.
type worklogPayload struct {
	IssueKey         string `json:"issueKey"`
	IssueID          string `json:"issueId"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
	StartDate        string `json:"startDate"`
	StartTime        string `json:"startTime"`
	Description      string `json:"description"`
	AuthorAccountID  string `json:"authorAccountId"`
}

func (c *httpClient) FetchIdentity(ctx context.Context) (domain.Identity, error) {
	body, status, err := c.jiraGet(ctx, "fetch_identity", "/rest/api/3/myself", nil)
	if err != nil {
		return "", fmt.Errorf("fetching identity: %w", err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrAuth, string(body))
	}

	var resp myselfResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding identity response: %w", err)
	}
	return domain.Identity(resp.AccountID), nil
}

func (c *httpClient) FetchWorkItem(ctx context.Context, key string) (domain.WorkItem, error) {
	body, status, err := c.jiraGet(ctx, "fetch_work_item", "/rest/api/3/issue/"+url.PathEscape(key), nil)
	if err != nil {
		return domain.WorkItem{}, fmt.Errorf("fetching issue %s: %w", key, err)
	}
	if status != http.StatusOK {
		return domain.WorkItem{}, fmt.Errorf("failed to fetch issue %s: %w: %s", key, ErrNotFound, string(body))
	}

	var resp issueResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.WorkItem{}, fmt.Errorf("decoding issue response: %w", err)
	}
	return domain.WorkItem{Key: key, ID: resp.ID}, nil
}

func (c *httpClient) FetchOpenWorkItems(ctx context.Context, identity domain.Identity) ([]domain.WorkItem, error) {
	jql := fmt.Sprintf(`assignee=currentUser() AND project=%s AND statusCategory="In Progress"`, c.cfg.ProjectKey)
	params := url.Values{}
	params.Set("jql", jql)
	params.Set("fields", "id,key")

	body, status, err := c.jiraGet(ctx, "fetch_open_work_items", "/rest/api/3/search", params)
	if err != nil {
		return nil, fmt.Errorf("fetching in-progress issues: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrSearch, string(body))
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	items := make([]domain.WorkItem, 0, len(resp.Issues))
	for _, issue := range resp.Issues {
		items = append(items, domain.WorkItem{Key: issue.Key, ID: issue.ID})
	}
	return items, nil
}

func (c *httpClient) SubmitWorklog(ctx context.Context, entry domain.WorklogEntry) (Outcome, error) {
	payload := worklogPayload{
		IssueKey:         entry.Item.Key,
		IssueID:          entry.Item.ID,
		TimeSpentSeconds: entry.TimeSeconds,
		StartDate:        entry.Date,
		StartTime:        entry.StartTime,
		Description:      entry.Description,
		AuthorAccountID:  string(entry.Author),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Outcome{}, fmt.Errorf("marshaling worklog: %w", err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TempoBaseURL+"/4/worklogs", bytes.NewReader(data))
	if err != nil {
		return Outcome{}, fmt.Errorf("creating worklog request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.TempoToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe("submit_worklog", 0, start, false)
		return Outcome{}, fmt.Errorf("submitting worklog for %s: %w", entry.Item.Key, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe("submit_worklog", resp.StatusCode, start, false)
		return Outcome{}, fmt.Errorf("reading worklog response: %w", err)
	}

	ok := resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated
	c.observe("submit_worklog", resp.StatusCode, start, ok)
	return Outcome{OK: ok, Status: resp.StatusCode, Body: string(body)}, nil
}

// jiraGet performs an authenticated GET against the Jira API and returns
// the raw body and status. Transport faults are errors; business-level
// non-200 handling stays with the caller.
func (c *httpClient) jiraGet(ctx context.Context, op, path string, params url.Values) ([]byte, int, error) {
	u := c.cfg.JiraBaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.cfg.JiraEmail, c.cfg.JiraToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(op, 0, start, false)
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(op, resp.StatusCode, start, false)
		return nil, 0, fmt.Errorf("reading response: %w", err)
	}

	c.observe(op, resp.StatusCode, start, resp.StatusCode == http.StatusOK)
	return body, resp.StatusCode, nil
}

func (c *httpClient) observe(op string, status int, start time.Time, success bool) {
	c.observer.OnCall(CallEvent{
		Op:        op,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   success,
	})
}
