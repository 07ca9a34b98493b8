package alert

import (
	"fmt"
	"strconv"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// telegramAPI is the slice of tgbot.BotAPI used here, split out so tests can
// inject a fake.
type telegramAPI interface {
	Send(c tgbot.Chattable) (tgbot.Message, error)
}

// Telegram delivers alerts to one chat. Failures are logged and swallowed;
// bursts beyond the rate limit are dropped rather than queued.
type Telegram struct {
	api     telegramAPI
	chatID  int64
	limiter *rate.Limiter
	log     zerolog.Logger
}

func NewTelegram(token, chatID string, log zerolog.Logger) (*Telegram, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse chat id %q: %w", chatID, err)
	}
	bot, err := tgbot.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram login: %w", err)
	}
	return newTelegram(bot, id, log), nil
}

func newTelegram(api telegramAPI, chatID int64, log zerolog.Logger) *Telegram {
	return &Telegram{
		api:    api,
		chatID: chatID,
		// one message per second sustained, short bursts allowed
		limiter: rate.NewLimiter(rate.Limit(1), 5),
		log:     log,
	}
}

func (t *Telegram) Send(msg string) {
	if t == nil || t.api == nil || t.chatID == 0 {
		return
	}
	if !t.limiter.Allow() {
		t.log.Debug().Msg("alert rate limit hit, dropping message")
		return
	}
	if _, err := t.api.Send(tgbot.NewMessage(t.chatID, msg)); err != nil {
		t.log.Warn().Err(err).Msg("telegram send failed")
	}
}

func (t *Telegram) Sendf(format string, args ...any) { t.Send(fmt.Sprintf(format, args...)) }
