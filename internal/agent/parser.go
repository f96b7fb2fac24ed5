package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/mbielecki/tempora/internal/domain"
	"github.com/mbielecki/tempora/internal/llm"
)

// RequestParser turns a free-text worklog instruction into a validated
// LogRequest. It is the only boundary between loosely-typed model output
// and the strongly-typed core.
type RequestParser interface {
	Parse(ctx context.Context, text string) (*domain.LogRequest, error)
}

type requestParser struct {
	client llm.Client
}

// NewRequestParser creates a RequestParser backed by a model client.
func NewRequestParser(client llm.Client) RequestParser {
	return &requestParser{client: client}
}

// parsedRequest is the JSON schema the model is asked to produce.
type parsedRequest struct {
	Intent      string `json:"intent"`
	TimeSeconds int    `json:"time_seconds"`
	IssueKey    string `json:"issue_key"`
	Description string `json:"description"`
	WorkDate    string `json:"work_date"`
	DateRange   string `json:"date_range"`
	WorkStart   string `json:"work_start"`
}

func (p *requestParser) Parse(ctx context.Context, text string) (*domain.LogRequest, error) {
	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: parseSystemPrompt,
		UserPrompt:   text,
	})
	if err != nil {
		return nil, fmt.Errorf("llm parse failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[parsedRequest](resp.Text, validateParsedRequest)
	if err != nil {
		return nil, fmt.Errorf("extracting request: %w", err)
	}

	req := &domain.LogRequest{
		TimeSeconds: parsed.TimeSeconds,
		IssueKey:    strings.ToUpper(strings.TrimSpace(parsed.IssueKey)),
		Description: strings.TrimSpace(parsed.Description),
		WorkDate:    strings.TrimSpace(parsed.WorkDate),
		DateRange:   strings.TrimSpace(parsed.DateRange),
		WorkStart:   strings.TrimSpace(parsed.WorkStart),
	}
	if strings.EqualFold(parsed.IssueKey, domain.WorkItemUnspecified) {
		req.IssueKey = domain.WorkItemUnspecified
	}
	req.ApplyDefaults()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrInvalidOutput, err)
	}
	return req, nil
}

// validateParsedRequest is the schema validator for ExtractJSON.
func validateParsedRequest(p parsedRequest) error {
	if p.Intent != "log_time" {
		return fmt.Errorf("instruction is not a worklog request (intent %q)", p.Intent)
	}
	if p.TimeSeconds <= 0 {
		return fmt.Errorf("time_seconds must be positive, got %d", p.TimeSeconds)
	}
	return nil
}
