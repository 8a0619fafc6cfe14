package paper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"paperforge/internal/clock"
)

// InternalMarksCeiling is the total-marks threshold at or below which a
// paper is classified as an internal assessment.
const InternalMarksCeiling = 30

// Category classifies exam weight by total marks.
type Category string

const (
	CategoryInternal Category = "internal"
	CategoryExternal Category = "external"
)

// ErrLastSection is returned when removing the only remaining section.
var ErrLastSection = errors.New("a paper must keep at least one section")

// ErrSectionNotFound is returned when a section ID does not resolve.
var ErrSectionNotFound = errors.New("section not found")

// Paper is the aggregate the instructor edits: metadata plus an ordered,
// user-extensible list of sections. Section IDs are stable; ordering is
// positional but all lookups go through the ID.
type Paper struct {
	Metadata *Metadata  `json:"metadata"`
	Sections []*Section `json:"sections"`

	// NextSectionID is the counter backing stable section IDs. Persisted
	// so restored papers keep minting unique IDs.
	NextSectionID int `json:"nextSectionId"`
}

// New creates a paper with default metadata and one default section.
func New() *Paper {
	p := &Paper{Metadata: NewMetadata(), NextSectionID: 1}
	p.AddSection()
	return p
}

// AddSection appends a new section with decreasing defaults: the first
// section is ten multiple-choice questions at one mark each, and each
// later section defaults to a subjective group holding half the previous
// section's question count at five marks.
func (p *Paper) AddSection() *Section {
	s := &Section{
		ID:               p.NextSectionID,
		Title:            fmt.Sprintf("Section %c", 'A'+len(p.Sections)),
		Type:             TypeMultipleChoice,
		QuestionCount:    10,
		AttemptCount:     10,
		MarksPerQuestion: 1,
	}
	if n := len(p.Sections); n > 0 {
		prev := p.Sections[n-1]
		count := prev.QuestionCount / 2
		if count < 1 {
			count = 1
		}
		s.Type = TypeSubjective
		s.QuestionCount = count
		s.AttemptCount = count
		s.MarksPerQuestion = 5
	}
	p.NextSectionID++
	p.Sections = append(p.Sections, s)
	return s
}

// RemoveSection deletes the section with the given ID. The last remaining
// section cannot be removed.
func (p *Paper) RemoveSection(id int) error {
	if len(p.Sections) <= 1 {
		return ErrLastSection
	}
	for i, s := range p.Sections {
		if s.ID == id {
			p.Sections = append(p.Sections[:i], p.Sections[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrSectionNotFound, id)
}

// SectionByID resolves a section by its stable ID.
func (p *Paper) SectionByID(id int) *Section {
	for _, s := range p.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// MoveSection shifts the section with the given ID by delta positions
// (negative = earlier). The move is clamped at the list bounds.
func (p *Paper) MoveSection(id int, delta int) error {
	from := -1
	for i, s := range p.Sections {
		if s.ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return fmt.Errorf("%w: id %d", ErrSectionNotFound, id)
	}
	to := from + delta
	if to < 0 {
		to = 0
	}
	if to > len(p.Sections)-1 {
		to = len(p.Sections) - 1
	}
	s := p.Sections[from]
	p.Sections = append(p.Sections[:from], p.Sections[from+1:]...)
	p.Sections = append(p.Sections[:to], append([]*Section{s}, p.Sections[to:]...)...)
	return nil
}

// TotalMarks sums attemptCount x marksPerQuestion across all sections.
func (p *Paper) TotalMarks() int {
	total := 0
	for _, s := range p.Sections {
		total += s.SectionMarks()
	}
	return total
}

// ExamCategory classifies the paper by its current total marks.
func (p *Paper) ExamCategory() Category {
	if p.TotalMarks() <= InternalMarksCeiling {
		return CategoryInternal
	}
	return CategoryExternal
}

// DurationLabel renders the scheduled duration, e.g. "1 Hr 30 Mins".
func (p *Paper) DurationLabel() string {
	return clock.DurationLabel(p.Metadata.StartTime, p.Metadata.EndTime)
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// PrintFileName derives the handoff filename for the print boundary from
// branch, semester, course name and exam type. Non-alphanumeric runs
// collapse to single underscores.
func PrintFileName(m *Metadata) string {
	raw := strings.Join([]string{m.Branch, m.Semester, m.CourseName, m.ExamType}, " ")
	name := strings.Trim(nonAlnum.ReplaceAllString(raw, "_"), "_")
	if name == "" {
		name = "question_paper"
	}
	return name + ".pdf"
}
