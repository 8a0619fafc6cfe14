package cmd

import (
	"fmt"
	"strings"

	"paperforge/internal/clock"
	"paperforge/internal/paper"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var (
	showTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	showLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	showSection = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#14B8A6"))

	showWarn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the paper: details, sections, questions, and derived totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, _ := cmd.Flags().GetBool("questions")

		ws, st, err := openWorkspace(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		p := ws.Paper
		m := p.Metadata

		title := m.CourseName
		if title == "" {
			title = "Untitled paper"
		}
		fmt.Println(showTitle.Render(title))
		if m.CourseCode != "" || m.ExamType != "" {
			fmt.Printf("%s %s\n", m.CourseCode, m.ExamType)
		}
		fmt.Println()

		printField("School", m.SchoolName)
		printField("Branch", m.Branch)
		printField("Semester", m.Semester)
		printField("Academic year", m.AcademicYear)
		printField("Specializations", m.Specializations)
		printField("Exam date", m.ExamDate)
		if m.StartTime != "" && m.EndTime != "" {
			window := fmt.Sprintf("%s to %s",
				clock.Format12Hour(m.StartTime), clock.Format12Hour(m.EndTime))
			if d := p.DurationLabel(); d != "" {
				window += fmt.Sprintf(" (%s)", d)
			}
			printField("Time", window)
		}
		if err := m.Validate(); err != nil {
			fmt.Println(showWarn.Render(err.Error()))
		}
		fmt.Println()

		for _, s := range p.Sections {
			header := fmt.Sprintf("%s [%d]", s.Title, s.ID)
			fmt.Println(showSection.Render(header))

			attempt := fmt.Sprintf("attempt %d of %d", s.AttemptCount, s.QuestionCount)
			if s.AttemptCount == s.QuestionCount {
				attempt = fmt.Sprintf("%d questions", s.QuestionCount)
			}
			fmt.Printf("  %s, %s, %d marks each (%d marks)\n",
				s.Type, attempt, s.MarksPerQuestion, s.SectionMarks())

			if questions {
				for i, q := range s.Questions {
					text := q.Text
					if text == "" {
						text = "(empty)"
					}
					fmt.Printf("  Q%d. %s\n", i+1, text)
					if s.Type == paper.TypeMultipleChoice {
						for j, opt := range q.Options {
							fmt.Printf("      %c) %s\n", 'a'+j, opt)
						}
					}
					if q.Outcome != "" || q.Bloom != "" {
						fmt.Printf("      %s\n", showLabel.Render(
							strings.TrimSpace(fmt.Sprintf("%s %s", q.Outcome, q.Bloom))))
					}
				}
			}
			fmt.Println()
		}

		fmt.Printf("%s %d marks (%s)\n",
			showLabel.Render("Total:"), p.TotalMarks(), p.ExamCategory())
		fmt.Printf("%s %s\n", showLabel.Render("Print file:"), paper.PrintFileName(m))
		return nil
	},
}

func printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%s %s\n", showLabel.Render(label+":"), value)
}

func init() {
	showCmd.Flags().BoolP("questions", "q", false, "Include question texts")
}
