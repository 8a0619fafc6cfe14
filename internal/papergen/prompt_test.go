package papergen

import (
	"strings"
	"testing"
	"unicode/utf8"

	"paperforge/internal/paper"
)

func fillInput(t *testing.T) FillInput {
	t.Helper()
	return FillInput{
		Section: &paper.Section{
			ID:               1,
			Title:            "Section A",
			Type:             paper.TypeMultipleChoice,
			QuestionCount:    10,
			AttemptCount:     10,
			MarksPerQuestion: 1,
		},
		Metadata: &paper.Metadata{
			Branch:          "CSE",
			Semester:        "5",
			CourseCode:      "CS301",
			CourseName:      "Data Structures",
			Specializations: "AI & ML",
		},
		Difficulty: DifficultyMedium,
	}
}

func TestBuildFillPrompt_CountTypeAndDifficulty(t *testing.T) {
	got := buildFillPrompt(fillInput(t))

	for _, want := range []string{
		"exactly 10",
		"multiple-choice",
		"exactly 4 options",
		"Difficulty: Medium",
		"Section A",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildFillPrompt_FallsBackToCurriculum(t *testing.T) {
	in := fillInput(t)
	in.UseKnowledge = false
	in.Knowledge = "should not appear"

	got := buildFillPrompt(in)
	if strings.Contains(got, "should not appear") {
		t.Fatal("knowledge text embedded despite UseKnowledge=false")
	}
	for _, want := range []string{"Data Structures", "CS301", "CSE", "AI & ML"} {
		if !strings.Contains(got, want) {
			t.Fatalf("curriculum fallback missing %q:\n%s", want, got)
		}
	}
}

func TestBuildFillPrompt_EmbedsKnowledgeWhenFlagged(t *testing.T) {
	in := fillInput(t)
	in.UseKnowledge = true
	in.Knowledge = "Unit 3: AVL trees, rotations, balance factors."

	got := buildFillPrompt(in)
	if !strings.Contains(got, "AVL trees") {
		t.Fatalf("knowledge context not embedded:\n%s", got)
	}
}

func TestBuildFillPrompt_CapsKnowledge(t *testing.T) {
	in := fillInput(t)
	in.UseKnowledge = true
	in.Knowledge = strings.Repeat("x", knowledgeContextLimit+500)

	got := buildFillPrompt(in)
	if strings.Contains(got, strings.Repeat("x", knowledgeContextLimit+1)) {
		t.Fatal("knowledge context not capped")
	}
	if !strings.Contains(got, strings.Repeat("x", knowledgeContextLimit)) {
		t.Fatal("capped knowledge context missing")
	}
}

func TestCapKnowledge_RuneBoundary(t *testing.T) {
	// A multi-byte rune straddling the limit must be dropped whole, not
	// cut into an invalid byte sequence.
	s := strings.Repeat("x", knowledgeContextLimit-1) + "§" + strings.Repeat("y", 100)

	got := capKnowledge(s)
	if !utf8.ValidString(got) {
		t.Fatal("capped knowledge contains an invalid UTF-8 sequence")
	}
	if len(got) > knowledgeContextLimit {
		t.Fatalf("capped knowledge is %d bytes, limit is %d", len(got), knowledgeContextLimit)
	}
	if got != strings.Repeat("x", knowledgeContextLimit-1) {
		t.Fatalf("expected the straddling rune dropped whole, got %d bytes", len(got))
	}
}

func TestComplexityTier(t *testing.T) {
	tests := []struct {
		marks int
		want  string
	}{
		{1, "brief"},
		{2, "brief"},
		{3, "analytical"},
		{5, "analytical"},
		{6, "descriptive"},
		{10, "descriptive"},
	}
	for _, tt := range tests {
		if got := complexityTier(tt.marks); !strings.Contains(got, tt.want) {
			t.Fatalf("complexityTier(%d) = %q, want substring %q", tt.marks, got, tt.want)
		}
	}
}

func TestBuildRevisePrompt_Subjective(t *testing.T) {
	in := ReviseInput{
		Section: &paper.Section{ID: 2, Type: paper.TypeSubjective},
		Index:   0,
		Action:  ActionSimplify,
	}
	q := &paper.Question{Text: "Derive the amortized cost of union-find with path compression."}

	got := buildRevisePrompt(in, q)
	if !strings.Contains(got, q.Text) {
		t.Fatal("original text missing from prompt")
	}
	if !strings.Contains(got, "Simplify") {
		t.Fatal("action intent missing from prompt")
	}
	if !strings.Contains(got, "no enclosing quotes, no bold markup") {
		t.Fatal("bare-text reply mandate missing")
	}
	if strings.Contains(got, "options") {
		t.Fatal("subjective revision must not mention options")
	}
}

func TestBuildRevisePrompt_MultipleChoiceEmbedsOptions(t *testing.T) {
	in := ReviseInput{
		Section: &paper.Section{ID: 2, Type: paper.TypeMultipleChoice},
		Index:   0,
		Action:  ActionIntensify,
	}
	q := &paper.Question{
		Text:    "Which traversal visits the root first?",
		Options: []string{"Preorder", "Inorder", "Postorder", "Level order"},
	}

	got := buildRevisePrompt(in, q)
	for _, opt := range q.Options {
		if !strings.Contains(got, opt) {
			t.Fatalf("option %q missing from prompt", opt)
		}
	}
	if !strings.Contains(got, "exactly 4 strings") {
		t.Fatal("structured reply mandate missing")
	}
}
