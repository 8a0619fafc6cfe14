package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved paper, sections, and knowledge context",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		ws, st, err := openWorkspace(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		saved, err := ws.HasSavedState(cmd.Context())
		if err != nil {
			return err
		}
		if !saved {
			fmt.Println("Nothing saved.")
			return nil
		}

		if !yes {
			fmt.Print("Discard the saved paper? This cannot be undone. [y/N] ")
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := ws.Discard(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Saved paper discarded.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
