package paper

import (
	"errors"
	"strings"
	"testing"
)

func filledMetadata() *Metadata {
	return &Metadata{
		SchoolName:      "Hillview Institute of Technology",
		Branch:          "CSE",
		Semester:        "5",
		AcademicYear:    "2026-27",
		ExamType:        "Internal Assessment",
		CourseCode:      "CS301",
		CourseName:      "Data Structures",
		ExamDate:        "2026-11-02",
		StartTime:       "09:00",
		EndTime:         "10:30",
		Specializations: "AI & ML",
	}
}

func TestMetadataValidate_AllPresent(t *testing.T) {
	if err := filledMetadata().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMetadataValidate_AggregatesMissing(t *testing.T) {
	m := filledMetadata()
	m.CourseCode = ""
	m.ExamDate = "   " // whitespace counts as empty

	err := m.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	var inc *IncompleteMetadataError
	if !errors.As(err, &inc) {
		t.Fatalf("expected IncompleteMetadataError, got %T", err)
	}
	if len(inc.Missing) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", inc.Missing)
	}
	if !strings.Contains(err.Error(), "course code") {
		t.Fatalf("error should name the field: %q", err.Error())
	}
}

func TestMetadataValidate_InstructionsOptional(t *testing.T) {
	m := filledMetadata()
	m.Instructions = ""
	if err := m.Validate(); err != nil {
		t.Fatalf("instructions should not gate the transition: %v", err)
	}
}
