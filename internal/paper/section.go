package paper

import (
	"errors"
	"fmt"
)

// Section is one scored question group. AttemptCount never exceeds
// QuestionCount, and for multiple-choice sections the two are kept equal
// (no internal choice). The Questions list may temporarily disagree with
// QuestionCount while the blueprint is being edited; Reconcile aligns it.
type Section struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Type             SectionType `json:"type"`
	QuestionCount    int         `json:"questionCount"`
	AttemptCount     int         `json:"attemptCount"`
	MarksPerQuestion int         `json:"marksPerQuestion"`
	Questions        []*Question `json:"questions"`
}

// ErrUnknownSectionType is returned by SetType for a type outside the
// known set.
var ErrUnknownSectionType = errors.New("unknown section type")

// SetType changes the section type. Switching to multiple-choice forces
// AttemptCount up to QuestionCount; existing questions keep their shape
// until the next reconcile.
func (s *Section) SetType(t SectionType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSectionType, t)
	}
	s.Type = t
	if t == TypeMultipleChoice {
		s.AttemptCount = s.QuestionCount
	}
	return nil
}

// SetQuestionCount changes the configured question count. Shrinking below
// the current AttemptCount clamps AttemptCount down to match; growing
// never raises AttemptCount back, except for multiple-choice sections
// where the two stay equal. The owned question list is left alone: shrink
// is destructive only at reconcile time.
func (s *Section) SetQuestionCount(n int) error {
	if n < 1 {
		return fmt.Errorf("question count must be at least 1, got %d", n)
	}
	s.QuestionCount = n
	if s.Type == TypeMultipleChoice {
		s.AttemptCount = n
	} else if s.AttemptCount > n {
		s.AttemptCount = n
	}
	return nil
}

// SetAttemptCount changes how many questions a student must attempt.
func (s *Section) SetAttemptCount(n int) error {
	if n < 1 {
		return fmt.Errorf("attempt count must be at least 1, got %d", n)
	}
	if n > s.QuestionCount {
		return fmt.Errorf("attempt count %d exceeds question count %d", n, s.QuestionCount)
	}
	if s.Type == TypeMultipleChoice && n != s.QuestionCount {
		return fmt.Errorf("multiple-choice sections require attempting all %d questions", s.QuestionCount)
	}
	s.AttemptCount = n
	return nil
}

// SetMarksPerQuestion changes the marks awarded per attempted question.
func (s *Section) SetMarksPerQuestion(n int) error {
	if n < 1 {
		return fmt.Errorf("marks per question must be at least 1, got %d", n)
	}
	s.MarksPerQuestion = n
	return nil
}

// SectionMarks is the section's contribution to the paper total.
func (s *Section) SectionMarks() int {
	return s.AttemptCount * s.MarksPerQuestion
}

// QuestionAt returns the question at index i, or nil when out of range.
func (s *Section) QuestionAt(i int) *Question {
	if i < 0 || i >= len(s.Questions) {
		return nil
	}
	return s.Questions[i]
}
