package papergen

import (
	"errors"
	"testing"
)

func TestTracker_RejectsSecondRunSameTarget(t *testing.T) {
	tr := NewTracker()
	target := BulkTarget(1)

	id, err := tr.Begin(target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a run ID")
	}

	if _, err := tr.Begin(target); !errors.Is(err, ErrRunInFlight) {
		t.Fatalf("expected ErrRunInFlight, got %v", err)
	}
}

func TestTracker_DistinctTargetsIndependent(t *testing.T) {
	tr := NewTracker()

	if _, err := tr.Begin(BulkTarget(1)); err != nil {
		t.Fatalf("bulk on section 1: %v", err)
	}
	// A revision within section 1 is a different target than its bulk fill.
	if _, err := tr.Begin(QuestionTarget(1, 0)); err != nil {
		t.Fatalf("revision (1,0): %v", err)
	}
	if _, err := tr.Begin(QuestionTarget(1, 1)); err != nil {
		t.Fatalf("revision (1,1): %v", err)
	}
	if _, err := tr.Begin(BulkTarget(2)); err != nil {
		t.Fatalf("bulk on section 2: %v", err)
	}
}

func TestTracker_FinishTransitions(t *testing.T) {
	tr := NewTracker()
	target := QuestionTarget(3, 1)

	if got := tr.StatusOf(target); got != StatusIdle {
		t.Fatalf("fresh target status = %q", got)
	}

	if _, err := tr.Begin(target); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if got := tr.StatusOf(target); got != StatusRunning {
		t.Fatalf("status after begin = %q", got)
	}

	tr.Finish(target, errors.New("boom"))
	if got := tr.StatusOf(target); got != StatusFailed {
		t.Fatalf("status after failed finish = %q", got)
	}

	// A failed target can be retried.
	if _, err := tr.Begin(target); err != nil {
		t.Fatalf("begin after failure: %v", err)
	}
	tr.Finish(target, nil)
	if got := tr.StatusOf(target); got != StatusSucceeded {
		t.Fatalf("status after success = %q", got)
	}
}

func TestTracker_Busy(t *testing.T) {
	tr := NewTracker()

	if _, busy := tr.Busy(); busy {
		t.Fatal("fresh tracker must not be busy")
	}

	target := BulkTarget(7)
	if _, err := tr.Begin(target); err != nil {
		t.Fatalf("begin: %v", err)
	}
	got, busy := tr.Busy()
	if !busy || got != target {
		t.Fatalf("Busy() = %v, %v", got, busy)
	}

	tr.Finish(target, nil)
	if _, busy := tr.Busy(); busy {
		t.Fatal("finished tracker must not be busy")
	}
}
