package cmd

import (
	"fmt"
	"strings"

	"paperforge/internal/papergen"

	"github.com/spf13/cobra"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Draft question content for a section with the LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		sectionID, _ := cmd.Flags().GetInt("section")
		all, _ := cmd.Flags().GetBool("all")
		useKnowledge, _ := cmd.Flags().GetBool("use-knowledge")
		diffVal, _ := cmd.Flags().GetString("difficulty")

		if sectionID == 0 && !all {
			return fmt.Errorf("pick a section with --section, or use --all")
		}

		difficulty := papergen.Difficulty(capitalize(diffVal))
		if !difficulty.Valid() {
			return fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", diffVal)
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

		if useKnowledge && ws.Knowledge == "" {
			fmt.Println("No knowledge context saved; falling back to the curriculum defaults.")
			useKnowledge = false
		}

		ids := []int{sectionID}
		if all {
			ids = ids[:0]
			for _, s := range ws.Paper.Sections {
				ids = append(ids, s.ID)
			}
		}

		for _, id := range ids {
			s := ws.Paper.SectionByID(id)
			if s == nil {
				return fmt.Errorf("no section with ID %d", id)
			}
			fmt.Printf("Filling %s (%d questions)...\n", s.Title, s.QuestionCount)
			if err := ws.FillSection(ctx, id, difficulty, useKnowledge); err != nil {
				return fmt.Errorf("fill %s: %w", s.Title, err)
			}
		}

		fmt.Println("Done. Run `paperforge show` to review the paper.")
		return nil
	},
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func init() {
	fillCmd.Flags().IntP("section", "s", 0, "Section ID to fill")
	fillCmd.Flags().Bool("all", false, "Fill every section")
	fillCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, or hard")
	fillCmd.Flags().BoolP("use-knowledge", "k", false, "Ground questions in the saved knowledge context")
}
