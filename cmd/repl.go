package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	Long: `Starts the read-eval-print loop for rolling dice and flipping coins.
Usage:
	> roll 2d20-d5+4
	> coin 3
	> choose pizza, pasta`,
	Run: func(cmd *cobra.Command, args []string) {
		exec := newExecutor()

		maybeStartBot(exec)

		if err := RunTUI(exec); err != nil {
			fmt.Printf("Fatal TUI Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
