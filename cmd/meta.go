package cmd

import (
	"fmt"
	"sort"
	"strings"

	"paperforge/internal/paper"

	"github.com/spf13/cobra"
)

// metaFields maps CLI field names to metadata setters.
var metaFields = map[string]func(*paper.Metadata, string){
	"school":          func(m *paper.Metadata, v string) { m.SchoolName = v },
	"branch":          func(m *paper.Metadata, v string) { m.Branch = v },
	"semester":        func(m *paper.Metadata, v string) { m.Semester = v },
	"year":            func(m *paper.Metadata, v string) { m.AcademicYear = v },
	"exam-type":       func(m *paper.Metadata, v string) { m.ExamType = v },
	"course-code":     func(m *paper.Metadata, v string) { m.CourseCode = v },
	"course-name":     func(m *paper.Metadata, v string) { m.CourseName = v },
	"date":            func(m *paper.Metadata, v string) { m.ExamDate = v },
	"start":           func(m *paper.Metadata, v string) { m.StartTime = v },
	"end":             func(m *paper.Metadata, v string) { m.EndTime = v },
	"specializations": func(m *paper.Metadata, v string) { m.Specializations = v },
	"instructions":    func(m *paper.Metadata, v string) { m.Instructions = v },
}

func metaFieldNames() []string {
	names := make([]string, 0, len(metaFields))
	for n := range metaFields {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Edit the paper details",
}

var metaSetCmd = &cobra.Command{
	Use:   "set field=value [field=value ...]",
	Short: "Set paper detail fields",
	Long: "Set one or more paper detail fields, e.g.:\n\n" +
		"  paperforge meta set course-name=\"Data Structures\" semester=5 start=09:00 end=12:00\n\n" +
		"Fields: " + strings.Join(metaFieldNames(), ", "),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, st, err := openWorkspace(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		for _, arg := range args {
			name, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("expected field=value, got %q", arg)
			}
			set, known := metaFields[name]
			if !known {
				return fmt.Errorf("unknown field %q (fields: %s)", name, strings.Join(metaFieldNames(), ", "))
			}
			ws.UpdateMetadata(cmd.Context(), func(m *paper.Metadata) {
				set(m, value)
			})
		}

		if err := ws.Paper.Metadata.Validate(); err != nil {
			fmt.Println(err)
		} else {
			fmt.Println("Paper details complete.")
		}
		return nil
	},
}

func init() {
	metaCmd.AddCommand(metaSetCmd)
}
