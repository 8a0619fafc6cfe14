// Package paper holds the exam paper data model: metadata, scored sections
// and their questions, the mutators that keep section configuration
// internally consistent, and the reconciliation step that aligns each
// section's question list with its configured count.
package paper

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// SectionType classifies how a section's questions are answered.
type SectionType string

const (
	TypeMultipleChoice SectionType = "multiple-choice"
	TypeSubjective     SectionType = "subjective"
	TypeFillBlank      SectionType = "fill-blank"
)

// Valid reports whether t is one of the known section types.
func (t SectionType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeSubjective, TypeFillBlank:
		return true
	}
	return false
}

// CourseOutcome tags a question with the course outcome it assesses.
type CourseOutcome string

const (
	CO1 CourseOutcome = "CO1"
	CO2 CourseOutcome = "CO2"
	CO3 CourseOutcome = "CO3"
	CO4 CourseOutcome = "CO4"
	CO5 CourseOutcome = "CO5"
	CO6 CourseOutcome = "CO6"
)

// CourseOutcomes lists all valid outcome tags in order.
var CourseOutcomes = []CourseOutcome{CO1, CO2, CO3, CO4, CO5, CO6}

// BloomLevel tags a question with its cognitive level.
type BloomLevel string

const (
	BloomRemember   BloomLevel = "Remember"
	BloomUnderstand BloomLevel = "Understand"
	BloomApply      BloomLevel = "Apply"
	BloomAnalyze    BloomLevel = "Analyze"
	BloomEvaluate   BloomLevel = "Evaluate"
	BloomCreate     BloomLevel = "Create"
)

// BloomLevels lists all valid cognitive levels in order.
var BloomLevels = []BloomLevel{
	BloomRemember, BloomUnderstand, BloomApply,
	BloomAnalyze, BloomEvaluate, BloomCreate,
}

// Question is a single question owned by exactly one section.
type Question struct {
	// ID is unique across the paper. Minted from wall-clock millis plus a
	// random suffix so rapid creation cannot collide.
	ID string `json:"id"`

	// Text is the question body. It may embed inline math between single
	// $ markers and block math between $$ markers; both pass through this
	// package verbatim for the external renderer.
	Text string `json:"text"`

	// Options holds the answer choices. Populated (4 entries by
	// convention) only when the owning section is multiple-choice.
	Options []string `json:"options,omitempty"`

	// Image is an opaque data-URI payload produced by the external upload
	// collaborator. Empty when the question has no image.
	Image string `json:"image,omitempty"`

	// Outcome is the course-outcome tag.
	Outcome CourseOutcome `json:"outcome"`

	// Bloom is the cognitive-level tag.
	Bloom BloomLevel `json:"bloom"`
}

// DefaultOptions returns the placeholder option set seeded into new
// multiple-choice questions.
func DefaultOptions() []string {
	return []string{"Option A", "Option B", "Option C", "Option D"}
}

// NewQuestionID mints a question identifier from the current time and a
// random suffix.
func NewQuestionID() string {
	return fmt.Sprintf("q%d%04d", time.Now().UnixMilli(), rand.IntN(10000))
}

// NewDefaultQuestion creates an empty question shaped for the given
// section type: placeholder options for multiple-choice, none otherwise.
func NewDefaultQuestion(t SectionType) *Question {
	q := &Question{
		ID:      NewQuestionID(),
		Outcome: CO1,
		Bloom:   BloomRemember,
	}
	if t == TypeMultipleChoice {
		q.Options = DefaultOptions()
	}
	return q
}
