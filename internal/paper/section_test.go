package paper

import "testing"

func newSubjective(count, attempt, marks int) *Section {
	return &Section{
		ID:               1,
		Type:             TypeSubjective,
		QuestionCount:    count,
		AttemptCount:     attempt,
		MarksPerQuestion: marks,
	}
}

func TestSetType_MultipleChoiceForcesFullAttempt(t *testing.T) {
	s := newSubjective(10, 6, 5)

	if err := s.SetType(TypeMultipleChoice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.AttemptCount != s.QuestionCount {
		t.Fatalf("expected attemptCount == questionCount, got %d != %d", s.AttemptCount, s.QuestionCount)
	}
}

func TestSetType_RejectsUnknown(t *testing.T) {
	s := newSubjective(10, 6, 5)
	if err := s.SetType("essay"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestSetQuestionCount_ClampsAttemptDownOnly(t *testing.T) {
	s := newSubjective(10, 8, 5)

	// Shrink clamps attemptCount down.
	if err := s.SetQuestionCount(6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.AttemptCount != 6 {
		t.Fatalf("expected attemptCount clamped to 6, got %d", s.AttemptCount)
	}

	// Growing back never re-raises it.
	if err := s.SetQuestionCount(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.AttemptCount != 6 {
		t.Fatalf("expected attemptCount to stay 6 after grow, got %d", s.AttemptCount)
	}
}

func TestSetQuestionCount_MultipleChoiceKeepsEquality(t *testing.T) {
	s := newSubjective(10, 10, 1)
	if err := s.SetType(TypeMultipleChoice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, n := range []int{4, 12, 1} {
		if err := s.SetQuestionCount(n); err != nil {
			t.Fatalf("SetQuestionCount(%d): %v", n, err)
		}
		if s.AttemptCount != n {
			t.Fatalf("after SetQuestionCount(%d): attemptCount = %d", n, s.AttemptCount)
		}
	}
}

func TestSetAttemptCount_Bounds(t *testing.T) {
	s := newSubjective(10, 10, 5)

	if err := s.SetAttemptCount(11); err == nil {
		t.Fatal("expected error above questionCount")
	}
	if err := s.SetAttemptCount(0); err == nil {
		t.Fatal("expected error below 1")
	}
	if err := s.SetAttemptCount(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.AttemptCount != 7 {
		t.Fatalf("expected 7, got %d", s.AttemptCount)
	}
}

func TestSetAttemptCount_MultipleChoiceRejectsPartial(t *testing.T) {
	s := newSubjective(10, 10, 1)
	if err := s.SetType(TypeMultipleChoice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetAttemptCount(8); err == nil {
		t.Fatal("expected error: MC sections permit no internal choice")
	}
	if err := s.SetAttemptCount(10); err != nil {
		t.Fatalf("unexpected error at full attempt: %v", err)
	}
}

// attemptCount <= questionCount must hold after any mutation sequence.
func TestInvariant_AttemptNeverExceedsCount(t *testing.T) {
	s := newSubjective(10, 10, 5)
	steps := []func() error{
		func() error { return s.SetQuestionCount(3) },
		func() error { return s.SetType(TypeMultipleChoice) },
		func() error { return s.SetQuestionCount(7) },
		func() error { return s.SetType(TypeFillBlank) },
		func() error { return s.SetQuestionCount(2) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if s.AttemptCount > s.QuestionCount {
			t.Fatalf("step %d: attemptCount %d > questionCount %d", i, s.AttemptCount, s.QuestionCount)
		}
	}
}
