package cmd

import (
	"fmt"

	"paperforge/internal/papergen"

	"github.com/spf13/cobra"
)

var reviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Revise one question with the LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		sectionID, _ := cmd.Flags().GetInt("section")
		questionNum, _ := cmd.Flags().GetInt("question")
		actionVal, _ := cmd.Flags().GetString("action")

		if sectionID == 0 {
			return fmt.Errorf("pick a section with --section")
		}
		if questionNum < 1 {
			return fmt.Errorf("pick a question with --question (1-based)")
		}

		action := papergen.ReviseAction(actionVal)
		if !action.Valid() {
			return fmt.Errorf("invalid action %q: must be rephrase, simplify, or intensify", actionVal)
		}

		ws, st, err := openWorkspace(cmd, true)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := ws.EnterBuilder(ctx); err != nil {
			return err
		}

		s := ws.Paper.SectionByID(sectionID)
		if s == nil {
			return fmt.Errorf("no section with ID %d", sectionID)
		}

		index := questionNum - 1
		q := s.QuestionAt(index)
		if q == nil {
			return fmt.Errorf("%s has no question %d", s.Title, questionNum)
		}
		if q.Text == "" {
			return fmt.Errorf("question %d is empty; fill the section first", questionNum)
		}

		if err := ws.ReviseQuestion(ctx, sectionID, index, action); err != nil {
			return err
		}

		fmt.Printf("Q%d: %s\n", questionNum, s.Questions[index].Text)
		return nil
	},
}

func init() {
	reviseCmd.Flags().IntP("section", "s", 0, "Section ID")
	reviseCmd.Flags().IntP("question", "q", 0, "Question number within the section (1-based)")
	reviseCmd.Flags().StringP("action", "a", "rephrase", "Revision intent: rephrase, simplify, or intensify")
}
