package cmd

import (
	"fmt"
	"strconv"

	"paperforge/internal/paper"

	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Manage paper sections",
}

var sectionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a section with decreasing defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, st, err := openWorkspace(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		s := ws.AddSection(cmd.Context())
		fmt.Printf("Added %s (id %d): %s, %d questions x %d marks\n",
			s.Title, s.ID, s.Type, s.QuestionCount, s.MarksPerQuestion)
		return nil
	},
}

var sectionRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a section by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid section ID %q", args[0])
		}

		ws, st, err := openWorkspace(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := ws.RemoveSection(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Removed section %d.\n", id)
		return nil
	},
}

var sectionSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Change a section's configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid section ID %q", args[0])
		}

		ws, st, err := openWorkspace(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		return ws.UpdateSection(cmd.Context(), id, func(s *paper.Section) error {
			if v, _ := cmd.Flags().GetString("title"); v != "" {
				s.Title = v
			}
			if v, _ := cmd.Flags().GetString("description"); v != "" {
				s.Description = v
			}
			if v, _ := cmd.Flags().GetString("type"); v != "" {
				if err := s.SetType(paper.SectionType(v)); err != nil {
					return err
				}
			}
			if v, _ := cmd.Flags().GetInt("questions"); v != 0 {
				if err := s.SetQuestionCount(v); err != nil {
					return err
				}
			}
			if v, _ := cmd.Flags().GetInt("attempt"); v != 0 {
				if err := s.SetAttemptCount(v); err != nil {
					return err
				}
			}
			if v, _ := cmd.Flags().GetInt("marks"); v != 0 {
				if err := s.SetMarksPerQuestion(v); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var sectionMoveCmd = &cobra.Command{
	Use:   "move <id> <delta>",
	Short: "Move a section up (negative) or down (positive)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid section ID %q", args[0])
		}
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid delta %q", args[1])
		}

		ws, st, err := openWorkspace(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		return ws.MoveSection(cmd.Context(), id, delta)
	},
}

func init() {
	sectionSetCmd.Flags().String("title", "", "Section title")
	sectionSetCmd.Flags().String("description", "", "Section description")
	sectionSetCmd.Flags().String("type", "", "Section type: multiple-choice, subjective, or fill-blank")
	sectionSetCmd.Flags().Int("questions", 0, "Number of questions")
	sectionSetCmd.Flags().Int("attempt", 0, "Number of questions to attempt")
	sectionSetCmd.Flags().Int("marks", 0, "Marks per attempted question")

	sectionCmd.AddCommand(sectionAddCmd)
	sectionCmd.AddCommand(sectionRemoveCmd)
	sectionCmd.AddCommand(sectionSetCmd)
	sectionCmd.AddCommand(sectionMoveCmd)
}
