package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/groghall/tavernbot/internal/engine"
)

// coinCmd represents the coin command
var coinCmd = &cobra.Command{
	Use:   "coin [amount]",
	Short: "Flip one or more coins",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		amount := ""
		if len(args) == 1 {
			amount = args[0]
		}

		result, err := engine.NewRoller().FlipCoins(amount)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(result)
	},
}

func init() {
	rootCmd.AddCommand(coinCmd)
}
