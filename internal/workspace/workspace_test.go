package workspace

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperforge/internal/llm"
	"paperforge/internal/paper"
	"paperforge/internal/papergen"
	"paperforge/internal/store"
)

// memRecords is an in-memory RecordRepo for workspace tests.
type memRecords struct {
	data map[string][]byte
}

func newMemRecords() *memRecords {
	return &memRecords{data: make(map[string][]byte)}
}

func (m *memRecords) Save(_ context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memRecords) Load(_ context.Context, key string, v any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, v)
}

func (m *memRecords) Any(_ context.Context) (bool, error) {
	return len(m.data) > 0, nil
}

func (m *memRecords) Clear(_ context.Context) error {
	m.data = make(map[string][]byte)
	return nil
}

func completeMetadata(m *paper.Metadata) {
	m.SchoolName = "School of Computing"
	m.Branch = "CSE"
	m.Semester = "5"
	m.AcademicYear = "2025-26"
	m.ExamType = "Mid Term"
	m.CourseCode = "CS301"
	m.CourseName = "Data Structures"
	m.ExamDate = "2026-09-15"
	m.Specializations = "AI & ML"
}

func newTestWorkspace(t *testing.T, provider llm.Provider) (*Workspace, *memRecords) {
	t.Helper()
	records := newMemRecords()
	var gen *papergen.Generator
	if provider != nil {
		gen = papergen.New(provider, papergen.DefaultConfig())
	}
	return New(records, gen), records
}

func TestEnterBuilderBlockedByIncompleteMetadata(t *testing.T) {
	w, records := newTestWorkspace(t, nil)
	w.Paper.Metadata.SchoolName = "School of Computing"

	before := len(w.Paper.Sections[0].Questions)
	err := w.EnterBuilder(context.Background())

	var incomplete *paper.IncompleteMetadataError
	require.ErrorAs(t, err, &incomplete)
	assert.Contains(t, incomplete.Missing, "branch")
	assert.NotContains(t, incomplete.Missing, "school name")

	// Guard failure leaves the model and the store untouched.
	assert.Equal(t, PhaseBlueprint, w.Phase)
	assert.Len(t, w.Paper.Sections[0].Questions, before)
	_, saved := records.data[store.KeySections]
	assert.False(t, saved)
}

func TestEnterBuilderReconcilesAndPersists(t *testing.T) {
	w, records := newTestWorkspace(t, nil)
	completeMetadata(w.Paper.Metadata)

	require.NoError(t, w.EnterBuilder(context.Background()))

	assert.Equal(t, PhaseBuilder, w.Phase)
	s := w.Paper.Sections[0]
	assert.Len(t, s.Questions, s.QuestionCount)
	_, saved := records.data[store.KeySections]
	assert.True(t, saved)
}

func TestMutatorsPersistAndRestoreRoundTrips(t *testing.T) {
	ctx := context.Background()
	w, records := newTestWorkspace(t, nil)

	w.UpdateMetadata(ctx, completeMetadata)
	w.SetKnowledge(ctx, "Unit 1: arrays and linked lists")
	added := w.AddSection(ctx)
	require.NoError(t, w.UpdateSection(ctx, added.ID, func(s *paper.Section) error {
		return s.SetQuestionCount(3)
	}))

	restored := &Workspace{Paper: paper.New(), records: records, tracker: papergen.NewTracker()}
	restored.ActiveSectionID = restored.Paper.Sections[0].ID
	require.NoError(t, restored.Restore(ctx))

	assert.Equal(t, "Data Structures", restored.Paper.Metadata.CourseName)
	assert.Equal(t, "Unit 1: arrays and linked lists", restored.Knowledge)
	require.Len(t, restored.Paper.Sections, 2)
	assert.Equal(t, 3, restored.Paper.Sections[1].QuestionCount)
	assert.Equal(t, w.Paper.NextSectionID, restored.Paper.NextSectionID)
}

func TestRestoreWithNoRecordsKeepsDefaults(t *testing.T) {
	w, _ := newTestWorkspace(t, nil)
	require.NoError(t, w.Restore(context.Background()))

	assert.Len(t, w.Paper.Sections, 1)
	assert.Empty(t, w.Knowledge)
	assert.Equal(t, "09:00", w.Paper.Metadata.StartTime)
}

func TestDiscardClearsStoreAndResets(t *testing.T) {
	ctx := context.Background()
	w, records := newTestWorkspace(t, nil)

	w.UpdateMetadata(ctx, completeMetadata)
	w.SetKnowledge(ctx, "syllabus")
	w.AddSection(ctx)

	require.NoError(t, w.Discard(ctx))

	assert.Empty(t, records.data)
	assert.Len(t, w.Paper.Sections, 1)
	assert.Empty(t, w.Knowledge)
	assert.Equal(t, PhaseBlueprint, w.Phase)
	assert.Empty(t, w.Paper.Metadata.CourseName)
}

func TestRemoveSectionRepairsActivePointer(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t, nil)

	added := w.AddSection(ctx)
	assert.Equal(t, added.ID, w.ActiveSectionID)

	require.NoError(t, w.RemoveSection(ctx, added.ID))
	assert.Equal(t, w.Paper.Sections[0].ID, w.ActiveSectionID)
}

func TestFillSectionMergesAndPersists(t *testing.T) {
	ctx := context.Background()

	items := []map[string]any{}
	for i := 0; i < 10; i++ {
		items = append(items, map[string]any{
			"text":    "What is a stack?",
			"options": []string{"LIFO", "FIFO", "Tree", "Graph"},
			"outcome": "CO2",
			"bloom":   "Understand",
		})
	}
	reply, err := json.Marshal(items)
	require.NoError(t, err)

	mock := llm.NewMockProvider(llm.MockResponse{Content: reply})
	w, records := newTestWorkspace(t, mock)
	completeMetadata(w.Paper.Metadata)
	require.NoError(t, w.EnterBuilder(ctx))

	id := w.Paper.Sections[0].ID
	require.NoError(t, w.FillSection(ctx, id, papergen.DifficultyMedium, false))

	q := w.Paper.Sections[0].Questions[0]
	assert.Equal(t, "What is a stack?", q.Text)
	assert.Equal(t, paper.CO2, q.Outcome)
	_, saved := records.data[store.KeySections]
	assert.True(t, saved)

	assert.Equal(t, papergen.StatusSucceeded, w.Tracker().StatusOf(papergen.BulkTarget(id)))
}

func TestFillSectionUnknownSection(t *testing.T) {
	mock := llm.NewMockProvider()
	w, _ := newTestWorkspace(t, mock)

	err := w.FillSection(context.Background(), 999, papergen.DifficultyEasy, false)
	assert.ErrorIs(t, err, paper.ErrSectionNotFound)
	assert.Zero(t, mock.CallCount())
}

func TestFillSectionFailureRecordedOnTracker(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	w, _ := newTestWorkspace(t, mock)
	completeMetadata(w.Paper.Metadata)
	require.NoError(t, w.EnterBuilder(ctx))

	id := w.Paper.Sections[0].ID
	err := w.FillSection(ctx, id, papergen.DifficultyHard, false)
	require.Error(t, err)

	assert.Equal(t, papergen.StatusFailed, w.Tracker().StatusOf(papergen.BulkTarget(id)))

	// A failed run releases the target for a retry.
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`[]`)})
	assert.NoError(t, w.FillSection(ctx, id, papergen.DifficultyHard, false))
}

func TestReviseQuestionUpdatesText(t *testing.T) {
	ctx := context.Background()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Explain the difference between a stack and a queue."`),
	})
	w, _ := newTestWorkspace(t, mock)
	completeMetadata(w.Paper.Metadata)
	require.NoError(t, w.EnterBuilder(ctx))

	id := w.Paper.Sections[0].ID
	require.NoError(t, w.UpdateSection(ctx, id, func(s *paper.Section) error {
		return s.SetType(paper.TypeSubjective)
	}))
	paper.Reconcile(w.Paper)
	w.Paper.Sections[0].Questions[0].Text = "Define a stack."

	require.NoError(t, w.ReviseQuestion(ctx, id, 0, papergen.ActionRephrase))
	assert.Equal(t, "Explain the difference between a stack and a queue.",
		w.Paper.Sections[0].Questions[0].Text)
}

func TestGenerationWithoutProvider(t *testing.T) {
	w, _ := newTestWorkspace(t, nil)
	err := w.FillSection(context.Background(), w.Paper.Sections[0].ID, papergen.DifficultyEasy, false)
	assert.Error(t, err)
}
