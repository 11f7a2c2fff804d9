package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/groghall/tavernbot/internal/engine"
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll <dice> [label...]",
	Short: "Roll dice notation",
	Long: `Simulates dice rolls. The expression is a signed sum of dice terms
and constants; anything after the first space becomes a label.

	tavernbot roll 2d20-d5+4
	tavernbot roll 4dF
	tavernbot roll d20+3 initiative`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := engine.NewRoller().Roll(strings.Join(args, " "))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if result != "" {
			fmt.Println(result)
		}
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)
}
