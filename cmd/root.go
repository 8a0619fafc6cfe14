package cmd

import (
	"paperforge/internal/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paperforge",
	Short: "AI-assisted exam paper builder",
	Long: "Paperforge builds structured exam papers: blueprint the details and sections,\n" +
		"let an LLM draft and revise question content, and hand the result to a renderer.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PAPERFORGE_DB env var)")

	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(knowledgeCmd)
	rootCmd.AddCommand(sectionCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(reviseCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PAPERFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
