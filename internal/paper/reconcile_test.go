package paper

import "testing"

func reconciledPaper(t *testing.T) *Paper {
	t.Helper()
	p := New()
	Reconcile(p)
	return p
}

func TestReconcile_GrowsWithDefaults(t *testing.T) {
	p := New()
	s := p.Sections[0] // multiple-choice, count 10

	Reconcile(p)

	if len(s.Questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(s.Questions))
	}
	for i, q := range s.Questions {
		if q.ID == "" {
			t.Fatalf("question %d has no ID", i)
		}
		if q.Outcome != CO1 || q.Bloom != BloomRemember {
			t.Fatalf("question %d: wrong default tags %s/%s", i, q.Outcome, q.Bloom)
		}
		if len(q.Options) != 4 {
			t.Fatalf("question %d: expected 4 default options, got %d", i, len(q.Options))
		}
	}
}

func TestReconcile_NoOptionsOutsideMultipleChoice(t *testing.T) {
	p := New()
	s := p.AddSection() // subjective
	Reconcile(p)

	for i, q := range s.Questions {
		if len(q.Options) != 0 {
			t.Fatalf("subjective question %d has options: %v", i, q.Options)
		}
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	p := reconciledPaper(t)
	s := p.Sections[0]

	before := make([]*Question, len(s.Questions))
	copy(before, s.Questions)

	Reconcile(p)

	if len(s.Questions) != len(before) {
		t.Fatalf("length changed: %d -> %d", len(before), len(s.Questions))
	}
	for i := range before {
		if s.Questions[i] != before[i] {
			t.Fatalf("question %d replaced on second reconcile", i)
		}
	}
}

func TestReconcile_ShrinkTruncatesFromEnd(t *testing.T) {
	p := reconciledPaper(t)
	s := p.Sections[0]
	s.Questions[0].Text = "first"
	s.Questions[1].Text = "second"
	discarded := s.Questions[9]

	if err := s.SetQuestionCount(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Reconcile(p)

	if len(s.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(s.Questions))
	}
	if s.Questions[0].Text != "first" || s.Questions[1].Text != "second" {
		t.Fatal("surviving questions lost their content")
	}

	// Growing back mints fresh questions; the discarded one never returns.
	if err := s.SetQuestionCount(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Reconcile(p)
	for i, q := range s.Questions {
		if q == discarded || q.ID == discarded.ID {
			t.Fatalf("discarded question resurrected at index %d", i)
		}
	}
	if s.Questions[0].Text != "first" {
		t.Fatal("grow displaced an existing question")
	}
}

func TestReconcile_ReshapesOptionsOnTypeSwitch(t *testing.T) {
	p := reconciledPaper(t)
	s := p.Sections[0] // multiple-choice, options seeded

	if err := s.SetType(TypeSubjective); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Reconcile(p)
	for i, q := range s.Questions {
		if len(q.Options) != 0 {
			t.Fatalf("subjective question %d kept options %v", i, q.Options)
		}
	}

	if err := s.SetType(TypeMultipleChoice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Reconcile(p)
	for i, q := range s.Questions {
		if len(q.Options) != 4 {
			t.Fatalf("multiple-choice question %d has %d options, want 4", i, len(q.Options))
		}
	}
}

func TestReconcile_KeepsDraftedOptions(t *testing.T) {
	p := reconciledPaper(t)
	s := p.Sections[0]
	drafted := []string{"LIFO", "FIFO", "Tree", "Graph"}
	s.Questions[0].Options = drafted

	Reconcile(p)

	for i, want := range drafted {
		if s.Questions[0].Options[i] != want {
			t.Fatalf("drafted option %d overwritten: %q", i, s.Questions[0].Options[i])
		}
	}
}

func TestReconcile_GrowPreservesIdentityAndPosition(t *testing.T) {
	p := reconciledPaper(t)
	s := p.Sections[0]
	existing := make([]*Question, len(s.Questions))
	copy(existing, s.Questions)

	if err := s.SetQuestionCount(15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Reconcile(p)

	if len(s.Questions) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(s.Questions))
	}
	for i, q := range existing {
		if s.Questions[i] != q {
			t.Fatalf("existing question %d moved or was replaced", i)
		}
	}
}
