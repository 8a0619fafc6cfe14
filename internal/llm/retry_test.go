package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func testWaits() RetryConfig {
	return RetryConfig{
		Waits: []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond},
	}
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, testWaits())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_SucceedsMidSchedule(t *testing.T) {
	mock := NewMockProvider(
		unavailable(),
		unavailable(),
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, testWaits())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ExactlyFourAttemptsThenSurfaces(t *testing.T) {
	final := errors.New("still down")
	mock := NewMockProvider(
		unavailable(),
		unavailable(),
		unavailable(),
		MockResponse{Err: &ErrProviderUnavailable{Err: final}},
	)
	p := WithRetry(mock, testWaits())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	// One initial attempt plus one retry per wait-table entry.
	if mock.CallCount() != 4 {
		t.Fatalf("expected 4 calls, got %d", mock.CallCount())
	}
	// The final attempt's failure is surfaced unmodified.
	if !errors.Is(err, final) {
		t.Fatalf("expected the final attempt's error, got: %v", err)
	}
}

func TestRetry_ConsumesWaitTableInOrder(t *testing.T) {
	waits := []time.Duration{5 * time.Millisecond, 10 * time.Millisecond, 20 * time.Millisecond}
	mock := NewMockProvider(unavailable(), unavailable(), unavailable(), unavailable())
	p := WithRetry(mock, RetryConfig{Waits: waits})

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	elapsed := time.Since(start)

	var total time.Duration
	for _, w := range waits {
		total += w
	}
	if elapsed < total {
		t.Fatalf("expected at least %v of backoff, got %v", total, elapsed)
	}
}

func TestRetry_InvalidResponseIsTerminal(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)}, // must not be reached
	)
	p := WithRetry(mock, testWaits())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("malformed replies must not retry, got %d calls", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}},
	)
	p := WithRetry(mock, testWaits())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_RateLimitRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, testWaits())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancelledNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(unavailable(), unavailable())
	p := WithRetry(mock, testWaits())

	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected no retry after cancellation, got %d calls", mock.CallCount())
	}
}
