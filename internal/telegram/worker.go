package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/groghall/tavernbot/internal/command"
)

const pollTimeout = 25 // seconds, server-side long-poll window

// Runner executes one input line and returns the reply messages.
type Runner interface {
	Execute(input string) (*command.Result, error)
}

// Bot bridges a Telegram chat to the gamebot executor.
type Bot struct {
	client       *Client
	runner       Runner
	chatID       int64
	lastUpdateID int
}

// NewBot wires a bot for one chat. A zero chatID accepts every chat the
// bot is a member of.
func NewBot(token string, chatID int64, runner Runner) *Bot {
	return &Bot{
		client:       NewClient(token),
		runner:       runner,
		chatID:       chatID,
		lastUpdateID: viper.GetInt("tg_last_update_id"),
	}
}

// Start runs the long-polling loop until the context is cancelled.
func (b *Bot) Start(ctx context.Context) {
	log.Printf("Telegram bot started (chat %d)", b.chatID)
	for {
		if ctx.Err() != nil {
			return
		}

		updates, err := b.client.GetUpdates(ctx, b.lastUpdateID+1, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error fetching updates: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, update := range updates {
			if update.UpdateID > b.lastUpdateID {
				b.lastUpdateID = update.UpdateID
				viper.Set("tg_last_update_id", b.lastUpdateID)
				_ = viper.WriteConfig() // Ignore error if config file doesn't exist yet
			}

			if update.Message != nil {
				b.handleMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *Message) {
	if b.chatID != 0 && msg.Chat.ID != b.chatID {
		return
	}

	input, ok := commandText(msg.Text)
	if !ok {
		return
	}

	result, err := b.runner.Execute(input)
	if err != nil {
		// Executor errors are user-phrased notices.
		if sendErr := b.client.SendMessage(ctx, msg.Chat.ID, err.Error()); sendErr != nil {
			log.Printf("Error sending notice: %v", sendErr)
		}
		return
	}

	for _, text := range result.Messages {
		if text == "" {
			continue
		}
		var sendErr error
		if result.Emote {
			sendErr = b.client.SendEmote(ctx, msg.Chat.ID, text)
		} else {
			sendErr = b.client.SendMessage(ctx, msg.Chat.ID, text)
		}
		if sendErr != nil {
			log.Printf("Error sending reply: %v", sendErr)
		}
	}
}

// commandText turns a "/roll@SomeBot 2d6" message into the executor input
// "roll 2d6". Non-command messages report ok=false.
func commandText(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}

	text = strings.TrimPrefix(text, "/")
	name, rest, _ := strings.Cut(text, " ")
	if name == "" {
		return "", false
	}

	// Group chats suffix commands with the bot's username.
	name, _, _ = strings.Cut(name, "@")
	if name == "" {
		return "", false
	}

	if rest == "" {
		return name, true
	}
	return name + " " + rest, true
}
