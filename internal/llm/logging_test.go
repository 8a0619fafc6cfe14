package llm

import (
	"context"
	"encoding/json"
	"testing"

	"paperforge/internal/store"
)

// captureEventRepo records appended events for inspection.
type captureEventRepo struct {
	events []store.LLMRequestEventData
}

func (r *captureEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *captureEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}

func (r *captureEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func TestLoggingRecordsProviderNameAndModelSeparately(t *testing.T) {
	repo := &captureEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`"ok"`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(mock, "gemini", repo)

	ctx := WithPurpose(WithRun(context.Background(), "run-1"), "section-fill")
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "gemini" {
		t.Fatalf("event provider = %q, want %q", e.Provider, "gemini")
	}
	if e.Model != mock.ModelID() {
		t.Fatalf("event model = %q, want %q", e.Model, mock.ModelID())
	}
	if e.RunID != "run-1" || e.Purpose != "section-fill" {
		t.Fatalf("event correlation fields wrong: run %q purpose %q", e.RunID, e.Purpose)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 3 {
		t.Fatalf("event outcome fields wrong: %+v", e)
	}
}
