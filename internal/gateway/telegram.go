package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

var errInvalidChatID = errors.New("contact address is not a telegram chat id")

// TelegramSender delivers messages over the Telegram bot API. The contact
// address must be a numeric chat ID.
type TelegramSender struct {
	api    *tgbotapi.BotAPI
	logger *zerolog.Logger
}

func NewTelegramSender(token string, logger *zerolog.Logger) (*TelegramSender, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}

	return &TelegramSender{api: api, logger: logger}, nil
}

func (s *TelegramSender) Send(_ context.Context, to, text string) error {
	chatID, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidChatID, to)
	}

	if _, err := s.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}

	return nil
}

// NopSender logs instead of delivering; used when no bot token is
// configured.
type NopSender struct {
	Logger *zerolog.Logger
}

func (s NopSender) Send(_ context.Context, to, text string) error {
	s.Logger.Info().Str("to", to).Int("len", len(text)).Msg("nop gateway: message dropped")

	return nil
}
