package bot

import (
	"log/slog"
	"net/http"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/reyhsu/wanna-play/internal/poll"
)

// Bot wires the Telegram transport to the poll manager for one group chat.
type Bot struct {
	bot      *tele.Bot
	chat     *tele.Chat
	manager  *poll.Manager
	radarURL string
	http     *http.Client
	logger   *slog.Logger
}

func New(b *tele.Bot, chatID int64, manager *poll.Manager, radarURL string, logger *slog.Logger) *Bot {
	return &Bot{
		bot:      b,
		chat:     &tele.Chat{ID: chatID},
		manager:  manager,
		radarURL: radarURL,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

func (b *Bot) Start() {
	b.logger.Info("bot started")
	b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
