package paper

import (
	"fmt"
	"strings"
)

// Metadata holds the paper-level identifiers and scheduling fields.
// All fields are free text; StartTime and EndTime are 24-hour "HH:MM".
type Metadata struct {
	SchoolName      string `json:"schoolName"`
	Branch          string `json:"branch"`
	Semester        string `json:"semester"`
	AcademicYear    string `json:"academicYear"`
	ExamType        string `json:"examType"`
	CourseCode      string `json:"courseCode"`
	CourseName      string `json:"courseName"`
	ExamDate        string `json:"examDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Specializations string `json:"specializations"`
	Instructions    string `json:"instructions"`
}

// NewMetadata returns metadata seeded with session-start defaults.
func NewMetadata() *Metadata {
	return &Metadata{
		StartTime: "09:00",
		EndTime:   "12:00",
	}
}

// requiredField pairs a display label with an accessor, so validation
// reports names a reader recognizes from the form.
type requiredField struct {
	label string
	get   func(*Metadata) string
}

var requiredFields = []requiredField{
	{"school name", func(m *Metadata) string { return m.SchoolName }},
	{"branch", func(m *Metadata) string { return m.Branch }},
	{"semester", func(m *Metadata) string { return m.Semester }},
	{"academic year", func(m *Metadata) string { return m.AcademicYear }},
	{"exam type", func(m *Metadata) string { return m.ExamType }},
	{"course code", func(m *Metadata) string { return m.CourseCode }},
	{"course name", func(m *Metadata) string { return m.CourseName }},
	{"exam date", func(m *Metadata) string { return m.ExamDate }},
	{"start time", func(m *Metadata) string { return m.StartTime }},
	{"end time", func(m *Metadata) string { return m.EndTime }},
	{"specializations", func(m *Metadata) string { return m.Specializations }},
}

// RequiredFields lists the display labels of the fields that gate the
// blueprint-to-builder transition, in form order.
func RequiredFields() []string {
	labels := make([]string, len(requiredFields))
	for i, f := range requiredFields {
		labels[i] = f.label
	}
	return labels
}

// IncompleteMetadataError reports the required fields that are still empty.
// It blocks the blueprint-to-builder transition and is never fatal.
type IncompleteMetadataError struct {
	Missing []string
}

func (e *IncompleteMetadataError) Error() string {
	return fmt.Sprintf("incomplete paper details: %s missing", strings.Join(e.Missing, ", "))
}

// Validate checks every required field and returns a single aggregate
// error naming the empty ones, or nil when all are present.
func (m *Metadata) Validate() error {
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(f.get(m)) == "" {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		return &IncompleteMetadataError{Missing: missing}
	}
	return nil
}
