package papergen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"paperforge/internal/paper"
)

const fillSystemPrompt = `You are an experienced university examiner drafting questions for a formal exam paper.

Rules:
- Generate exactly the requested number of questions, no more and no fewer.
- Every question must be answerable from the given syllabus context alone.
- Questions must be self-contained, unambiguous, and exam-appropriate.
- Write mathematical notation in LaTeX: inline math between single $ delimiters, display math between $$ delimiters, with every backslash escaped as \\ so the output parses as JSON.
- Reply with the structured data only. No surrounding commentary, no numbering outside the fields, no markdown fences.`

const reviseSystemPrompt = `You are an experienced university examiner revising one question on an exam paper. Keep mathematical notation in LaTeX with $ and $$ delimiters, backslashes escaped for JSON.`

// knowledgeContextLimit caps the embedded syllabus text so the prompt
// stays within the service's practical input size.
const knowledgeContextLimit = 3000

// sectionTypeLabel renders the section type as prompt text.
func sectionTypeLabel(t paper.SectionType) string {
	switch t {
	case paper.TypeMultipleChoice:
		return "multiple-choice questions, each with exactly 4 options"
	case paper.TypeFillBlank:
		return "fill-in-the-blank questions"
	default:
		return "subjective questions"
	}
}

// complexityTier scales expected answer depth by marks per question.
func complexityTier(marks int) string {
	switch {
	case marks <= 2:
		return "brief, definition-level questions answerable in a sentence or two"
	case marks <= 5:
		return "analytical short-answer questions requiring working or reasoning"
	default:
		return "descriptive, scenario-based questions requiring a full structured answer"
	}
}

// buildFillPrompt constructs the flat user message for a bulk section fill.
func buildFillPrompt(in FillInput) string {
	s := in.Section
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d %s.\n", s.QuestionCount, sectionTypeLabel(s.Type))
	fmt.Fprintf(&b, "Difficulty: %s\n", in.Difficulty)
	fmt.Fprintf(&b, "Marks per question: %d — write %s.\n", s.MarksPerQuestion, complexityTier(s.MarksPerQuestion))
	if s.Title != "" {
		fmt.Fprintf(&b, "Section: %s\n", s.Title)
	}
	if s.Description != "" {
		fmt.Fprintf(&b, "Section description: %s\n", s.Description)
	}

	b.WriteString("\n")
	if in.UseKnowledge && strings.TrimSpace(in.Knowledge) != "" {
		b.WriteString("Base every question on this syllabus context:\n")
		b.WriteString(capKnowledge(in.Knowledge))
		b.WriteString("\n")
	} else {
		b.WriteString("Base the questions on this curriculum:\n")
		b.WriteString(curriculumLine(in.Metadata))
		b.WriteString("\n")
	}

	b.WriteString("\nReply with a JSON array of objects. Each object has a \"text\" field")
	if s.Type == paper.TypeMultipleChoice {
		b.WriteString(", an \"options\" array of exactly 4 strings, an \"outcome\" tag (CO1-CO6) and a \"bloom\" tag (Remember, Understand, Apply, Analyze, Evaluate, Create)")
	}
	b.WriteString(". No other fields, no commentary.")

	return b.String()
}

// capKnowledge truncates the knowledge context at the limit, backing up
// to a rune boundary so the cut never splits a multi-byte character.
func capKnowledge(s string) string {
	if len(s) <= knowledgeContextLimit {
		return s
	}
	cut := knowledgeContextLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// curriculumLine builds the generic fallback context from metadata.
func curriculumLine(m *paper.Metadata) string {
	return fmt.Sprintf("Course %q (%s) for %s branch, semester %s, specializations: %s.",
		m.CourseName, m.CourseCode, m.Branch, m.Semester, m.Specializations)
}

// buildRevisePrompt constructs the user message for a single-question
// revision. Subjective and fill-blank sections mandate a bare text reply;
// multiple-choice mandates the structured form.
func buildRevisePrompt(in ReviseInput, q *paper.Question) string {
	var b strings.Builder

	b.WriteString(in.Action.intent())
	b.WriteString("\n\nOriginal question:\n")
	b.WriteString(q.Text)
	b.WriteString("\n")

	if in.Section.Type == paper.TypeMultipleChoice {
		b.WriteString("\nOriginal options:\n")
		for i, opt := range q.Options {
			fmt.Fprintf(&b, "%c) %s\n", 'A'+i, opt)
		}
		b.WriteString("\nReply with a JSON object holding the revised \"text\" and an \"options\" array of exactly 4 strings. No commentary.")
	} else {
		b.WriteString("\nReply with the revised question text only: no enclosing quotes, no bold markup, no commentary.")
	}

	return b.String()
}
