package paper

import (
	"strings"
	"testing"
)

func TestTotalMarksAndCategory(t *testing.T) {
	p := &Paper{Metadata: NewMetadata(), NextSectionID: 1}
	p.Sections = []*Section{
		{ID: 1, Type: TypeMultipleChoice, QuestionCount: 6, AttemptCount: 6, MarksPerQuestion: 1},
		{ID: 2, Type: TypeSubjective, QuestionCount: 4, AttemptCount: 2, MarksPerQuestion: 3},
	}

	if got := p.TotalMarks(); got != 12 {
		t.Fatalf("TotalMarks = %d, want 12", got)
	}
	if got := p.ExamCategory(); got != CategoryInternal {
		t.Fatalf("ExamCategory = %q, want internal", got)
	}

	// 6*1 + 2*3 + 4*7 = 40 -> external.
	p.Sections = append(p.Sections, &Section{
		ID: 3, Type: TypeSubjective, QuestionCount: 5, AttemptCount: 4, MarksPerQuestion: 7,
	})
	if got := p.TotalMarks(); got != 40 {
		t.Fatalf("TotalMarks = %d, want 40", got)
	}
	if got := p.ExamCategory(); got != CategoryExternal {
		t.Fatalf("ExamCategory = %q, want external", got)
	}
}

func TestCategoryBoundary(t *testing.T) {
	p := &Paper{Metadata: NewMetadata()}
	p.Sections = []*Section{
		{ID: 1, Type: TypeSubjective, QuestionCount: 30, AttemptCount: 30, MarksPerQuestion: 1},
	}
	if got := p.ExamCategory(); got != CategoryInternal {
		t.Fatalf("total 30 should be internal, got %q", got)
	}
	p.Sections[0].MarksPerQuestion = 2
	if got := p.ExamCategory(); got != CategoryExternal {
		t.Fatalf("total 60 should be external, got %q", got)
	}
}

func TestAddSection_DecreasingDefaults(t *testing.T) {
	p := New()
	first := p.Sections[0]
	if first.Type != TypeMultipleChoice || first.QuestionCount != 10 || first.MarksPerQuestion != 1 {
		t.Fatalf("unexpected first-section defaults: %+v", first)
	}

	second := p.AddSection()
	if second.Type != TypeSubjective {
		t.Fatalf("expected subjective, got %q", second.Type)
	}
	if second.QuestionCount != 5 || second.AttemptCount != 5 {
		t.Fatalf("expected count 5, got %d/%d", second.QuestionCount, second.AttemptCount)
	}

	third := p.AddSection()
	if third.QuestionCount != 2 {
		t.Fatalf("expected count 2, got %d", third.QuestionCount)
	}
	if third.ID == second.ID || second.ID == first.ID {
		t.Fatal("section IDs must be unique")
	}
}

func TestRemoveSection_BlocksLast(t *testing.T) {
	p := New()
	if err := p.RemoveSection(p.Sections[0].ID); err == nil {
		t.Fatal("expected removing the last section to fail")
	}

	s2 := p.AddSection()
	if err := p.RemoveSection(s2.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(p.Sections))
	}
	if err := p.RemoveSection(999); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestMoveSection_ByStableID(t *testing.T) {
	p := New()
	s2 := p.AddSection()
	s3 := p.AddSection()

	if err := p.MoveSection(s3.ID, -2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Sections[0] != s3 {
		t.Fatal("expected moved section at the front")
	}

	// Clamped at bounds.
	if err := p.MoveSection(s2.ID, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Sections[len(p.Sections)-1] != s2 {
		t.Fatal("expected moved section at the end")
	}
}

func TestNewQuestionID_UniqueUnderRapidCreation(t *testing.T) {
	seen := make(map[string]bool)
	for range 200 {
		id := NewQuestionID()
		if seen[id] {
			t.Fatalf("duplicate question ID %q", id)
		}
		seen[id] = true
	}
}

func TestPrintFileName(t *testing.T) {
	m := &Metadata{
		Branch:     "CSE (AI & ML)",
		Semester:   "5",
		CourseName: "Data Structures",
		ExamType:   "Mid-Term",
	}
	got := PrintFileName(m)
	want := "CSE_AI_ML_5_Data_Structures_Mid_Term.pdf"
	if got != want {
		t.Fatalf("PrintFileName = %q, want %q", got, want)
	}
	if got2 := PrintFileName(m); got2 != got {
		t.Fatal("PrintFileName must be deterministic")
	}
	if strings.ContainsAny(got, " &()") {
		t.Fatalf("filename keeps forbidden characters: %q", got)
	}

	if got := PrintFileName(&Metadata{}); got != "question_paper.pdf" {
		t.Fatalf("empty metadata fallback = %q", got)
	}
}
