package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Manage the syllabus/reference text used to ground generation",
}

var knowledgeSetCmd = &cobra.Command{
	Use:   "set [text]",
	Short: "Set the knowledge context from an argument or --file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		var text string
		switch {
		case file != "":
			b, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read knowledge file: %w", err)
			}
			text = string(b)
		case len(args) > 0:
			text = strings.Join(args, " ")
		default:
			return fmt.Errorf("provide text as an argument or via --file")
		}

		ws, st, err := openWorkspace(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		ws.SetKnowledge(cmd.Context(), text)
		fmt.Printf("Knowledge context set (%d characters).\n", len(text))
		return nil
	},
}

var knowledgeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the knowledge context",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, st, err := openWorkspace(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		ws.SetKnowledge(cmd.Context(), "")
		fmt.Println("Knowledge context cleared.")
		return nil
	},
}

func init() {
	knowledgeSetCmd.Flags().StringP("file", "f", "", "Read the knowledge text from a file")

	knowledgeCmd.AddCommand(knowledgeSetCmd)
	knowledgeCmd.AddCommand(knowledgeClearCmd)
}
