// Package workspace owns the editing context: the paper, the knowledge
// context, the active section pointer, the phase state machine, and the
// persistence that follows every settled mutation.
package workspace

import (
	"context"
	"fmt"
	"os"

	"paperforge/internal/llm"
	"paperforge/internal/paper"
	"paperforge/internal/papergen"
	"paperforge/internal/store"
)

// Phase is the editing phase. The blueprint-to-builder edge is the only
// guarded transition; see EnterBuilder.
type Phase string

const (
	PhaseBlueprint Phase = "blueprint"
	PhaseBuilder   Phase = "builder"
)

// sectionsDoc is the persisted shape of the section list record.
type sectionsDoc struct {
	Sections      []*paper.Section `json:"sections"`
	NextSectionID int              `json:"nextSectionId"`
}

// Workspace is the single owning context for one editing session.
// Mutation handlers run to completion without interleaving; the only
// suspension point is the generation call, and the Tracker rejects a
// second call against a target that already has one outstanding.
type Workspace struct {
	Paper           *paper.Paper
	Knowledge       string
	ActiveSectionID int
	Phase           Phase

	records store.RecordRepo
	tracker *papergen.Tracker
	gen     *papergen.Generator
}

// New creates a workspace with a fresh default paper. gen may be nil
// when no provider is configured; generation entry points then fail.
func New(records store.RecordRepo, gen *papergen.Generator) *Workspace {
	p := paper.New()
	return &Workspace{
		Paper:           p,
		ActiveSectionID: p.Sections[0].ID,
		Phase:           PhaseBlueprint,
		records:         records,
		tracker:         papergen.NewTracker(),
		gen:             gen,
	}
}

// Tracker exposes the run tracker for status display.
func (w *Workspace) Tracker() *papergen.Tracker {
	return w.tracker
}

// HasSavedState reports whether any durable record exists, for the
// startup restore-or-discard offer.
func (w *Workspace) HasSavedState(ctx context.Context) (bool, error) {
	return w.records.Any(ctx)
}

// Restore replaces the in-memory state wholesale from the durable
// records. Missing records keep their defaults.
func (w *Workspace) Restore(ctx context.Context) error {
	var meta paper.Metadata
	if ok, err := w.records.Load(ctx, store.KeyMetadata, &meta); err != nil {
		return fmt.Errorf("restore metadata: %w", err)
	} else if ok {
		w.Paper.Metadata = &meta
	}

	var doc sectionsDoc
	if ok, err := w.records.Load(ctx, store.KeySections, &doc); err != nil {
		return fmt.Errorf("restore sections: %w", err)
	} else if ok && len(doc.Sections) > 0 {
		w.Paper.Sections = doc.Sections
		w.Paper.NextSectionID = doc.NextSectionID
	}

	var knowledge string
	if ok, err := w.records.Load(ctx, store.KeyKnowledge, &knowledge); err != nil {
		return fmt.Errorf("restore knowledge: %w", err)
	} else if ok {
		w.Knowledge = knowledge
	}

	w.repairActiveSection()
	return nil
}

// Discard clears all three durable records and resets to a fresh paper.
func (w *Workspace) Discard(ctx context.Context) error {
	if err := w.records.Clear(ctx); err != nil {
		return err
	}
	w.Paper = paper.New()
	w.Knowledge = ""
	w.ActiveSectionID = w.Paper.Sections[0].ID
	w.Phase = PhaseBlueprint
	return nil
}

// UpdateMetadata applies a metadata edit and persists.
func (w *Workspace) UpdateMetadata(ctx context.Context, edit func(*paper.Metadata)) {
	edit(w.Paper.Metadata)
	w.persist(ctx, store.KeyMetadata, w.Paper.Metadata)
}

// SetKnowledge replaces the knowledge context and persists it.
func (w *Workspace) SetKnowledge(ctx context.Context, text string) {
	w.Knowledge = text
	w.persist(ctx, store.KeyKnowledge, w.Knowledge)
}

// AddSection appends a section with decreasing defaults and makes it active.
func (w *Workspace) AddSection(ctx context.Context) *paper.Section {
	s := w.Paper.AddSection()
	w.ActiveSectionID = s.ID
	w.persistSections(ctx)
	return s
}

// RemoveSection deletes a section, repairing the active pointer.
func (w *Workspace) RemoveSection(ctx context.Context, id int) error {
	if err := w.Paper.RemoveSection(id); err != nil {
		return err
	}
	w.repairActiveSection()
	w.persistSections(ctx)
	return nil
}

// MoveSection reorders a section by delta positions and persists.
func (w *Workspace) MoveSection(ctx context.Context, id, delta int) error {
	if err := w.Paper.MoveSection(id, delta); err != nil {
		return err
	}
	w.persistSections(ctx)
	return nil
}

// UpdateSection applies a section edit by stable ID and persists.
func (w *Workspace) UpdateSection(ctx context.Context, id int, edit func(*paper.Section) error) error {
	s := w.Paper.SectionByID(id)
	if s == nil {
		return fmt.Errorf("%w: id %d", paper.ErrSectionNotFound, id)
	}
	if err := edit(s); err != nil {
		return err
	}
	w.persistSections(ctx)
	return nil
}

// EnterBuilder is the guarded blueprint-to-builder transition: the guard
// is metadata validation, the effect is reconciliation. On guard failure
// the model is left untouched. Re-entering when already consistent is a
// no-op, so the transition is safe to invoke on every tab switch.
func (w *Workspace) EnterBuilder(ctx context.Context) error {
	if err := w.Paper.Metadata.Validate(); err != nil {
		return err
	}
	paper.Reconcile(w.Paper)
	w.repairActiveSection()
	w.Phase = PhaseBuilder
	w.persistSections(ctx)
	return nil
}

// FillSection runs a bulk fill against one section. The use-knowledge
// decision is the caller's policy; the workspace only threads it through.
func (w *Workspace) FillSection(ctx context.Context, sectionID int, difficulty papergen.Difficulty, useKnowledge bool) error {
	if w.gen == nil {
		return fmt.Errorf("no generation provider configured")
	}
	s := w.Paper.SectionByID(sectionID)
	if s == nil {
		return fmt.Errorf("%w: id %d", paper.ErrSectionNotFound, sectionID)
	}

	target := papergen.BulkTarget(sectionID)
	runID, err := w.tracker.Begin(target)
	if err != nil {
		return err
	}
	ctx = llm.WithRun(ctx, runID)

	err = w.gen.FillSection(ctx, papergen.FillInput{
		Section:      s,
		Metadata:     w.Paper.Metadata,
		Knowledge:    w.Knowledge,
		UseKnowledge: useKnowledge,
		Difficulty:   difficulty,
	})
	w.tracker.Finish(target, err)
	if err != nil {
		return err
	}

	// Last writer wins: if the section was removed while the call was
	// outstanding, the merge landed on an orphan and the result is
	// simply dropped.
	if w.Paper.SectionByID(sectionID) != nil {
		w.persistSections(ctx)
	}
	return nil
}

// ReviseQuestion runs a single-question revision.
func (w *Workspace) ReviseQuestion(ctx context.Context, sectionID, index int, action papergen.ReviseAction) error {
	if w.gen == nil {
		return fmt.Errorf("no generation provider configured")
	}
	s := w.Paper.SectionByID(sectionID)
	if s == nil {
		return fmt.Errorf("%w: id %d", paper.ErrSectionNotFound, sectionID)
	}

	target := papergen.QuestionTarget(sectionID, index)
	runID, err := w.tracker.Begin(target)
	if err != nil {
		return err
	}
	ctx = llm.WithRun(ctx, runID)

	err = w.gen.ReviseQuestion(ctx, papergen.ReviseInput{
		Section: s,
		Index:   index,
		Action:  action,
	})
	w.tracker.Finish(target, err)
	if err != nil {
		return err
	}

	if w.Paper.SectionByID(sectionID) != nil {
		w.persistSections(ctx)
	}
	return nil
}

// repairActiveSection points the active section at a still-existing one.
func (w *Workspace) repairActiveSection() {
	if w.Paper.SectionByID(w.ActiveSectionID) != nil {
		return
	}
	if len(w.Paper.Sections) > 0 {
		w.ActiveSectionID = w.Paper.Sections[0].ID
	}
}

func (w *Workspace) persistSections(ctx context.Context) {
	w.persist(ctx, store.KeySections, sectionsDoc{
		Sections:      w.Paper.Sections,
		NextSectionID: w.Paper.NextSectionID,
	})
}

// persist writes one record, fire-and-forget: failures are warned and
// swallowed so storage trouble never blocks editing.
func (w *Workspace) persist(ctx context.Context, key string, v any) {
	if err := w.records.Save(ctx, key, v); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist %s: %v\n", key, err)
	}
}
