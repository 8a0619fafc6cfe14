package papergen

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"paperforge/internal/llm"
	"paperforge/internal/paper"
)

func mcqSection(t *testing.T, count int) *paper.Section {
	t.Helper()
	s := &paper.Section{
		ID:               1,
		Type:             paper.TypeMultipleChoice,
		QuestionCount:    count,
		AttemptCount:     count,
		MarksPerQuestion: 1,
	}
	for range count {
		s.Questions = append(s.Questions, paper.NewDefaultQuestion(s.Type))
	}
	return s
}

func subjectiveSection(t *testing.T, count int) *paper.Section {
	t.Helper()
	s := &paper.Section{
		ID:               2,
		Type:             paper.TypeSubjective,
		QuestionCount:    count,
		AttemptCount:     count,
		MarksPerQuestion: 5,
	}
	for range count {
		s.Questions = append(s.Questions, paper.NewDefaultQuestion(s.Type))
	}
	return s
}

func snapshotQuestions(s *paper.Section) []paper.Question {
	out := make([]paper.Question, len(s.Questions))
	for i, q := range s.Questions {
		out[i] = *q
	}
	return out
}

func TestFillSection_MergesPositionally(t *testing.T) {
	s := mcqSection(t, 3)
	reply := `[
		{"text":"Q1?","options":["a","b","c","d"],"outcome":"CO2","bloom":"Apply"},
		{"text":"Q2?","options":["e","f","g","h"]}
	]`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(reply)})
	g := New(mock, DefaultConfig())

	untouched := *s.Questions[2]

	if err := g.FillSection(context.Background(), FillInput{
		Section:    s,
		Metadata:   &paper.Metadata{},
		Difficulty: DifficultyEasy,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Questions[0].Text != "Q1?" || s.Questions[0].Outcome != paper.CO2 || s.Questions[0].Bloom != paper.BloomApply {
		t.Fatalf("item 0 merged wrong: %+v", s.Questions[0])
	}
	// Missing optional tags keep the existing values.
	if s.Questions[1].Text != "Q2?" || s.Questions[1].Outcome != paper.CO1 || s.Questions[1].Bloom != paper.BloomRemember {
		t.Fatalf("item 1 merged wrong: %+v", s.Questions[1])
	}
	if !reflect.DeepEqual(s.Questions[1].Options, []string{"e", "f", "g", "h"}) {
		t.Fatalf("item 1 options wrong: %v", s.Questions[1].Options)
	}
	// Indices beyond the reply length are left unchanged.
	if !reflect.DeepEqual(*s.Questions[2], untouched) {
		t.Fatalf("question beyond reply changed: %+v", s.Questions[2])
	}
}

func TestFillSection_MalformedReplyLeavesSectionIntact(t *testing.T) {
	s := mcqSection(t, 3)
	s.Questions[0].Text = "existing content"
	before := snapshotQuestions(s)

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Sure! Here are your questions: 1) What...`),
	})
	g := New(mock, DefaultConfig())

	err := g.FillSection(context.Background(), FillInput{
		Section:    s,
		Metadata:   &paper.Metadata{},
		Difficulty: DifficultyHard,
	})
	if err == nil {
		t.Fatal("expected parse error")
	}

	after := snapshotQuestions(s)
	if !reflect.DeepEqual(before, after) {
		t.Fatal("malformed reply must leave every question byte-identical")
	}
}

func TestFillSection_TransportFailureLeavesSectionIntact(t *testing.T) {
	s := subjectiveSection(t, 2)
	before := snapshotQuestions(s)

	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("503")},
	})
	g := New(mock, DefaultConfig())

	err := g.FillSection(context.Background(), FillInput{
		Section:    s,
		Metadata:   &paper.Metadata{},
		Difficulty: DifficultyMedium,
	})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !reflect.DeepEqual(before, snapshotQuestions(s)) {
		t.Fatal("failed call must not mutate the section")
	}
}

func TestFillSection_StripsFencedReply(t *testing.T) {
	s := subjectiveSection(t, 1)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("```json\n[{\"text\":\"Explain hashing.\"}]\n```"),
	})
	g := New(mock, DefaultConfig())

	if err := g.FillSection(context.Background(), FillInput{
		Section:    s,
		Metadata:   &paper.Metadata{},
		Difficulty: DifficultyEasy,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Questions[0].Text != "Explain hashing." {
		t.Fatalf("fenced reply not applied: %q", s.Questions[0].Text)
	}
}

func TestReviseQuestion_EmptyTextIsNoOp(t *testing.T) {
	s := subjectiveSection(t, 1)
	mock := llm.NewMockProvider() // would error if called
	g := New(mock, DefaultConfig())

	err := g.ReviseQuestion(context.Background(), ReviseInput{
		Section: s, Index: 0, Action: ActionRephrase,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("empty question must not reach the provider")
	}
}

func TestReviseQuestion_SubjectiveStripsQuotesAndBold(t *testing.T) {
	s := subjectiveSection(t, 1)
	s.Questions[0].Text = "Explain a stack."
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Explain the **LIFO** property of a stack."`),
	})
	g := New(mock, DefaultConfig())

	if err := g.ReviseQuestion(context.Background(), ReviseInput{
		Section: s, Index: 0, Action: ActionIntensify,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Questions[0].Text; got != "Explain the LIFO property of a stack." {
		t.Fatalf("revised text = %q", got)
	}
}

func TestReviseQuestion_MultipleChoiceStructured(t *testing.T) {
	s := mcqSection(t, 1)
	s.Questions[0].Text = "Which is LIFO?"
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"text":"Which data structure is last-in first-out?","options":["Stack","Queue","Deque","List"]}`),
	})
	g := New(mock, DefaultConfig())

	if err := g.ReviseQuestion(context.Background(), ReviseInput{
		Section: s, Index: 0, Action: ActionRephrase,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := s.Questions[0]
	if q.Text != "Which data structure is last-in first-out?" {
		t.Fatalf("text = %q", q.Text)
	}
	if !reflect.DeepEqual(q.Options, []string{"Stack", "Queue", "Deque", "List"}) {
		t.Fatalf("options = %v", q.Options)
	}
}

func TestReviseQuestion_MalformedStructuredReplyFails(t *testing.T) {
	s := mcqSection(t, 1)
	s.Questions[0].Text = "Which is LIFO?"
	before := *s.Questions[0]

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`here is the revised question`),
	})
	g := New(mock, DefaultConfig())

	err := g.ReviseQuestion(context.Background(), ReviseInput{
		Section: s, Index: 0, Action: ActionRephrase,
	})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !reflect.DeepEqual(before, *s.Questions[0]) {
		t.Fatal("failed revision must not mutate the question")
	}
}

func TestReviseQuestion_IndexOutOfRange(t *testing.T) {
	s := subjectiveSection(t, 1)
	g := New(llm.NewMockProvider(), DefaultConfig())

	if err := g.ReviseQuestion(context.Background(), ReviseInput{
		Section: s, Index: 5, Action: ActionRephrase,
	}); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}
