package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/groghall/tavernbot/internal/command"
	"github.com/groghall/tavernbot/internal/telegram"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot in the foreground",
	Long: `Long-polls Telegram for /roll, /dice, /choose, /coin, /flip and /help
commands and replies in the chat. Requires a registered token; see
'tavernbot bot telegram'.`,
	Run: func(cmd *cobra.Command, args []string) {
		token := viper.GetString("telegram_token")
		if token == "" {
			fmt.Println("Error: no telegram_token configured. Run 'tavernbot bot telegram' first.")
			os.Exit(1)
		}

		chatID := viper.GetInt64("telegram_chat_id")
		bot := telegram.NewBot(token, chatID, newExecutor())
		bot.Start(context.Background())
	},
}

// maybeStartBot starts the Telegram worker in the background when a token
// is configured, so the REPL and the chat share one executor.
func maybeStartBot(exec *command.Executor) {
	token := viper.GetString("telegram_token")
	if token == "" {
		return
	}

	chatID := viper.GetInt64("telegram_chat_id")
	bot := telegram.NewBot(token, chatID, exec)

	go bot.Start(context.Background())
	fmt.Printf("[Telegram Bot] Active for chat %d\n", chatID)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
