package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	type doc struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}

	var out doc
	ok, err := repo.Load(ctx, KeyMetadata, &out)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if ok {
		t.Fatal("expected no record before first save")
	}

	in := doc{Name: "CS301", Items: []string{"a", "b"}}
	if err := repo.Save(ctx, KeyMetadata, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	ok, err = repo.Load(ctx, KeyMetadata, &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("expected record after save")
	}
	if out.Name != in.Name || len(out.Items) != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	// Second save to the same key overwrites, not duplicates.
	in.Name = "CS302"
	if err := repo.Save(ctx, KeyMetadata, in); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if _, err := repo.Load(ctx, KeyMetadata, &out); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if out.Name != "CS302" {
		t.Fatalf("expected overwrite, got %q", out.Name)
	}
}

func TestRecordBareStringPayload(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, KeyKnowledge, "syllabus unit 3: trees and graphs"); err != nil {
		t.Fatalf("save: %v", err)
	}

	var knowledge string
	ok, err := repo.Load(ctx, KeyKnowledge, &knowledge)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok || knowledge != "syllabus unit 3: trees and graphs" {
		t.Fatalf("round trip mismatch: %q", knowledge)
	}
}

func TestRecordAnyAndClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	any0, err := repo.Any(ctx)
	if err != nil {
		t.Fatalf("any (empty): %v", err)
	}
	if any0 {
		t.Fatal("expected no records in a fresh store")
	}

	if err := repo.Save(ctx, KeySections, []int{1, 2, 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	any1, err := repo.Any(ctx)
	if err != nil {
		t.Fatalf("any: %v", err)
	}
	if !any1 {
		t.Fatal("expected records after save")
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	any2, err := repo.Any(ctx)
	if err != nil {
		t.Fatalf("any (cleared): %v", err)
	}
	if any2 {
		t.Fatal("discard must leave a fresh load seeing nothing")
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RunID:        "run-1",
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "section-fill",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[user]\nGenerate 10 questions",
		ResponseBody: `[{"text":"..."}]`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Purpose != "section-fill" || !events[0].Success {
		t.Fatalf("unexpected event: %+v", events[0])
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.RunID != "run-1" {
		t.Fatalf("unexpected event by id: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown id")
	}
}
