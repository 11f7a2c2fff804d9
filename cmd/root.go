package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/groghall/tavernbot/internal/command"
	"github.com/groghall/tavernbot/internal/data"
	"github.com/groghall/tavernbot/internal/engine"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tavernbot",
	Short: "Dice, coins, and random choices for tabletop play",
	Long: `tavernbot evaluates dice notation, flips coins, and picks choices,
from a one-shot command, an interactive shell, or a Telegram group bot.

	tavernbot roll 2d20-d5+4 goblin ambush
	tavernbot coin 3
	tavernbot choose pizza, pasta`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tavernbot.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tavernbot")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newExecutor builds the shared command pipeline, loading roll presets
// when a presets_file is configured.
func newExecutor() *command.Executor {
	var presets data.Presets
	if path := viper.GetString("presets_file"); path != "" {
		loaded, err := data.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring presets: %v\n", err)
		} else {
			presets = loaded
		}
	}
	return command.NewExecutor(engine.NewRoller(), presets)
}
