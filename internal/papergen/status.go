package papergen

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Status is the lifecycle of one generation run.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Target identifies what a run acts on: a whole section for bulk fill,
// or one question within it for revision.
type Target struct {
	SectionID int

	// QuestionIndex is -1 for a bulk section fill.
	QuestionIndex int
}

// BulkTarget is the target for a whole-section fill.
func BulkTarget(sectionID int) Target {
	return Target{SectionID: sectionID, QuestionIndex: -1}
}

// QuestionTarget is the target for a single-question revision.
func QuestionTarget(sectionID, index int) Target {
	return Target{SectionID: sectionID, QuestionIndex: index}
}

func (t Target) String() string {
	if t.QuestionIndex < 0 {
		return fmt.Sprintf("section %d", t.SectionID)
	}
	return fmt.Sprintf("section %d question %d", t.SectionID, t.QuestionIndex)
}

// ErrRunInFlight rejects a second run against a target that already has
// one outstanding. There is no queueing and no cancellation: the first
// run always proceeds to success or retry exhaustion.
var ErrRunInFlight = errors.New("a generation run is already in flight for this target")

// Run is the tracked state of one generation call.
type Run struct {
	ID     string
	Target Target
	Status Status
	Err    error
}

// Tracker holds one explicit status per target, so the at-most-one-run
// rule is a map lookup. Callers check and reject; the pipeline itself
// never serializes.
type Tracker struct {
	mu   sync.Mutex
	runs map[Target]*Run
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{runs: make(map[Target]*Run)}
}

// Begin registers a new run for the target, returning its ID.
// Fails with ErrRunInFlight when the target already has a running run.
func (t *Tracker) Begin(target Target) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if r, ok := t.runs[target]; ok && r.Status == StatusRunning {
		return "", fmt.Errorf("%w: %s", ErrRunInFlight, target)
	}

	r := &Run{
		ID:     uuid.NewString(),
		Target: target,
		Status: StatusRunning,
	}
	t.runs[target] = r
	return r.ID, nil
}

// Finish records the run's outcome.
func (t *Tracker) Finish(target Target, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.runs[target]
	if !ok {
		return
	}
	if err != nil {
		r.Status = StatusFailed
		r.Err = err
		return
	}
	r.Status = StatusSucceeded
}

// StatusOf returns the target's current status, StatusIdle when the
// target has never run.
func (t *Tracker) StatusOf(target Target) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	if r, ok := t.runs[target]; ok {
		return r.Status
	}
	return StatusIdle
}

// Busy reports whether any run is outstanding, and if so for which target.
func (t *Tracker) Busy() (Target, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for target, r := range t.runs {
		if r.Status == StatusRunning {
			return target, true
		}
	}
	return Target{}, false
}
