// Package papergen turns section blueprints into drafted question content
// through the remote generation service: prompt construction, schema-bound
// structured replies, deterministic sanitization, and positional
// all-or-nothing merging back into the paper model.
package papergen

import "paperforge/internal/paper"

// Difficulty is the global difficulty setting for bulk fills.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ReviseAction names the intent of a single-question revision.
type ReviseAction string

const (
	ActionRephrase  ReviseAction = "rephrase"
	ActionSimplify  ReviseAction = "simplify"
	ActionIntensify ReviseAction = "intensify"
)

// Valid reports whether a is a known revision action.
func (a ReviseAction) Valid() bool {
	switch a {
	case ActionRephrase, ActionSimplify, ActionIntensify:
		return true
	}
	return false
}

// intent maps the action to the instruction sentence embedded in the prompt.
func (a ReviseAction) intent() string {
	switch a {
	case ActionSimplify:
		return "Simplify the question so a weaker student can follow it, without changing what it tests."
	case ActionIntensify:
		return "Make the question more challenging and rigorous, staying within the same topic."
	default:
		return "Rephrase the question with different wording while keeping its meaning and difficulty."
	}
}

// FillInput carries everything a bulk section fill needs.
type FillInput struct {
	// Section is the target. Its question list must already be reconciled
	// to QuestionCount.
	Section *paper.Section

	// Metadata supplies the curriculum context when no knowledge text is
	// used.
	Metadata *paper.Metadata

	// Knowledge is the instructor-supplied syllabus/reference text.
	// Whether to consult it is the caller's policy decision, carried by
	// UseKnowledge; the pipeline is agnostic to how that was decided.
	Knowledge    string
	UseKnowledge bool

	// Difficulty is the global difficulty setting.
	Difficulty Difficulty
}

// ReviseInput carries everything a single-question revision needs.
type ReviseInput struct {
	Section *paper.Section
	Index   int
	Action  ReviseAction
}

// fillItem is one raw reply item for a bulk fill, before merging.
type fillItem struct {
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
	Outcome string   `json:"outcome,omitempty"`
	Bloom   string   `json:"bloom,omitempty"`
}

// mcqRevision is the raw structured reply for a multiple-choice revision.
type mcqRevision struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}
