package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	botToken  string
	botChatID int64
)

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Manage bot configurations",
}

// telegramBotCmd represents the telegram subcommand of bot
var telegramBotCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Register the Telegram bot token and chat",
	Run: func(cmd *cobra.Command, args []string) {
		if botToken == "" {
			fmt.Println("---")
			fmt.Println("Create your Telegram Bot & Get Token")
			fmt.Println("Open Telegram and search for the official @BotFather.")
			fmt.Println("Send the /newbot command and follow the prompts to name your bot and choose a unique username.")
			fmt.Println("BotFather will provide you with an HTTP API token. Store this token securely, as it is required for all API interactions.")
			fmt.Println("To restrict the bot to one group, also pass --chat-id with the group's chat id.")
			fmt.Println("---")
			fmt.Print("token: ")

			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				botToken = strings.TrimSpace(scanner.Text())
			}
		}

		if botToken == "" {
			return
		}

		viper.Set("telegram_token", botToken)
		if botChatID != 0 {
			viper.Set("telegram_chat_id", botChatID)
		}

		err := viper.WriteConfig()
		if err != nil {
			// WriteConfig fails when no config file exists yet; fall back
			// to creating one in the home directory.
			err = viper.SafeWriteConfig()
			if err != nil {
				home, _ := os.UserHomeDir()
				err = viper.WriteConfigAs(home + "/.tavernbot.yaml")
			}
		}
		if err == nil {
			fmt.Println("Telegram bot configuration saved successfully.")
		} else {
			fmt.Printf("Error saving configuration: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
	botCmd.AddCommand(telegramBotCmd)

	telegramBotCmd.Flags().StringVarP(&botToken, "token", "t", "", "Telegram bot API token")
	telegramBotCmd.Flags().Int64Var(&botChatID, "chat-id", 0, "Restrict the bot to this chat id")
}
