package cmd

import (
	"fmt"
	"os"

	"paperforge/internal/llm"
	"paperforge/internal/papergen"
	"paperforge/internal/store"
	"paperforge/internal/workspace"

	"github.com/spf13/cobra"
)

// openWorkspace opens the store, restores the saved paper into a fresh
// workspace, and wires the generation pipeline when a provider is
// configured. needProvider commands fail hard without one; the rest just
// run without generation and warn.
func openWorkspace(cmd *cobra.Command, needProvider bool) (*workspace.Workspace, *store.Store, error) {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	var gen *papergen.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		if needProvider {
			st.Close()
			return nil, nil, fmt.Errorf("LLM provider: %w", err)
		}
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
	} else {
		gen = papergen.New(provider, papergen.DefaultConfig())
	}

	ws := workspace.New(st.RecordRepo(), gen)
	if err := ws.Restore(ctx); err != nil {
		st.Close()
		return nil, nil, err
	}
	return ws, st, nil
}
