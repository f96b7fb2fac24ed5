package timesheet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mbielecki/tempora/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(jiraURL, tempoURL string) Config {
	return Config{
		JiraBaseURL:  jiraURL,
		JiraEmail:    "me@example.com",
		JiraToken:    "jira-token",
		TempoBaseURL: tempoURL,
		TempoToken:   "tempo-token",
		ProjectKey:   "MGAP",
	}
}

func TestFetchIdentity_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/myself", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "me@example.com", user)
		assert.Equal(t, "jira-token", pass)

		json.NewEncoder(w).Encode(map[string]string{"accountId": "acc-42"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	identity, err := client.FetchIdentity(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Identity("acc-42"), identity)
}

func TestFetchIdentity_AuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad credentials"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	_, err := client.FetchIdentity(context.Background())

	assert.ErrorIs(t, err, ErrAuth)
	assert.Contains(t, err.Error(), "bad credentials")
}

func TestFetchIdentity_TransportFault(t *testing.T) {
	client := NewClient(testConfig("http://127.0.0.1:1", "http://127.0.0.1:1"), NoopObserver{})
	_, err := client.FetchIdentity(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuth)
}

func TestFetchWorkItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/ABC-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"id": "10001", "key": "ABC-1"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	item, err := client.FetchWorkItem(context.Background(), "ABC-1")

	require.NoError(t, err)
	assert.Equal(t, domain.WorkItem{Key: "ABC-1", ID: "10001"}, item)
}

func TestFetchWorkItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errorMessages":["Issue does not exist"]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	_, err := client.FetchWorkItem(context.Background(), "NOPE-9")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "NOPE-9")
	assert.Contains(t, err.Error(), "Issue does not exist")
}

func TestFetchOpenWorkItems_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/search", r.URL.Path)
		jql := r.URL.Query().Get("jql")
		assert.Contains(t, jql, "assignee=currentUser()")
		assert.Contains(t, jql, "project=MGAP")
		assert.Contains(t, jql, `statusCategory="In Progress"`)
		assert.Equal(t, "id,key", r.URL.Query().Get("fields"))

		json.NewEncoder(w).Encode(searchResponse{Issues: []searchIssue{
			{ID: "10001", Key: "MGAP-1"},
			{ID: "10002", Key: "MGAP-2"},
		}})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	items, err := client.FetchOpenWorkItems(context.Background(), "acc-42")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "MGAP-1", items[0].Key)
	assert.Equal(t, "10002", items[1].ID)
}

func TestFetchOpenWorkItems_EmptyIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	items, err := client.FetchOpenWorkItems(context.Background(), "acc-42")

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetchOpenWorkItems_SearchRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid jql"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	_, err := client.FetchOpenWorkItems(context.Background(), "acc-42")

	assert.ErrorIs(t, err, ErrSearch)
	assert.Contains(t, err.Error(), "invalid jql")
}

func TestSubmitWorklog_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/4/worklogs", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tempo-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload worklogPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ABC-1", payload.IssueKey)
		assert.Equal(t, "10001", payload.IssueID)
		assert.Equal(t, 3600, payload.TimeSpentSeconds)
		assert.Equal(t, "2025-06-18", payload.StartDate)
		assert.Equal(t, "09:00:00", payload.StartTime)
		assert.Equal(t, "work", payload.Description)
		assert.Equal(t, "acc-42", payload.AuthorAccountID)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	outcome, err := client.SubmitWorklog(context.Background(), domain.WorklogEntry{
		Item:        domain.WorkItem{Key: "ABC-1", ID: "10001"},
		TimeSeconds: 3600,
		Date:        "2025-06-18",
		StartTime:   "09:00:00",
		Description: "work",
		Author:      "acc-42",
	})

	require.NoError(t, err)
	assert.True(t, outcome.OK)
}

func TestSubmitWorklog_CreatedCountsAsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	outcome, err := client.SubmitWorklog(context.Background(), domain.WorklogEntry{
		Item: domain.WorkItem{Key: "ABC-1", ID: "10001"},
	})

	require.NoError(t, err)
	assert.True(t, outcome.OK)
}

func TestSubmitWorklog_BusinessFailureIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("worklog rejected"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, srv.URL), NoopObserver{})
	outcome, err := client.SubmitWorklog(context.Background(), domain.WorklogEntry{
		Item: domain.WorkItem{Key: "ABC-1", ID: "10001"},
	})

	require.NoError(t, err)
	assert.False(t, outcome.OK)
	assert.Equal(t, http.StatusBadRequest, outcome.Status)
	assert.Equal(t, "worklog rejected", outcome.Body)
}

func TestSubmitWorklog_TransportFault(t *testing.T) {
	client := NewClient(testConfig("http://127.0.0.1:1", "http://127.0.0.1:1"), NoopObserver{})
	_, err := client.SubmitWorklog(context.Background(), domain.WorklogEntry{
		Item: domain.WorkItem{Key: "ABC-1", ID: "10001"},
	})
	assert.Error(t, err)
}

func TestObserverReceivesCallEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"accountId": "acc-42"})
	}))
	defer srv.Close()

	var events []CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { events = append(events, e) }}

	client := NewClient(testConfig(srv.URL, srv.URL), obs)
	_, err := client.FetchIdentity(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "fetch_identity", events[0].Op)
	assert.Equal(t, http.StatusOK, events[0].Status)
	assert.True(t, events[0].Success)
	assert.GreaterOrEqual(t, events[0].LatencyMs, int64(0))
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"TEMPORA_JIRA_DOMAIN", "TEMPORA_JIRA_URL", "TEMPORA_JIRA_EMAIL",
		"TEMPORA_JIRA_TOKEN", "TEMPORA_TEMPO_URL", "TEMPORA_TEMPO_TOKEN",
		"TEMPORA_PROJECT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "https://api.tempo.io", cfg.TempoBaseURL)
	assert.False(t, cfg.Complete())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("TEMPORA_JIRA_DOMAIN", "acme.atlassian.net")
	t.Setenv("TEMPORA_JIRA_EMAIL", "me@acme.com")
	t.Setenv("TEMPORA_JIRA_TOKEN", "jt")
	t.Setenv("TEMPORA_TEMPO_TOKEN", "tt")
	t.Setenv("TEMPORA_PROJECT", "MGAP")

	cfg := LoadConfig()
	assert.Equal(t, "https://acme.atlassian.net", cfg.JiraBaseURL)
	assert.True(t, cfg.Complete())
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCall(e CallEvent) { o.fn(e) }
