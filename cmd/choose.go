package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/groghall/tavernbot/internal/command"
	"github.com/groghall/tavernbot/internal/engine"
)

// chooseCmd represents the choose command
var chooseCmd = &cobra.Command{
	Use:   "choose <choice1>, [choice2], ...",
	Short: "Randomly pick one of the given choices",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := engine.NewRoller().Choose(strings.Join(args, " "))
		if errors.Is(err, engine.ErrNoChoices) {
			fmt.Println(command.Usage("choose"))
			os.Exit(1)
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(result)
	},
}

func init() {
	rootCmd.AddCommand(chooseCmd)
}
