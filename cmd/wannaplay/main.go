package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/reyhsu/wanna-play/internal/bot"
	"github.com/reyhsu/wanna-play/internal/config"
	"github.com/reyhsu/wanna-play/internal/logger"
	"github.com/reyhsu/wanna-play/internal/poll"
	"github.com/reyhsu/wanna-play/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg := logger.New(cfg.LogLevel)
	if cfg.SentryDSN != "" {
		lg, err = logger.NewWithSentry(cfg.LogLevel, cfg.SentryDSN)
		if err != nil {
			log.Fatalf("Failed to init Sentry: %v", err)
		}
	}

	lg.Info("config loaded",
		"group_id", cfg.GroupID,
		"open_spec", cfg.CronSpecOpen,
		"close_spec", cfg.CronSpecClose,
		"timezone", cfg.Timezone.String(),
	)

	pref := tele.Settings{
		Token:  cfg.TelegramToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	tb, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("Failed to create Telegram bot: %v", err)
	}

	messenger := bot.NewMessenger(tb, cfg.GroupID)
	manager := poll.NewManager(messenger, lg, cfg.PollQuestion, cfg.PollOptions)

	sched := scheduler.New(manager, lg, cfg.CronSpecOpen, cfg.CronSpecClose, cfg.Timezone)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	b := bot.New(tb, cfg.GroupID, manager, cfg.RadarURL, lg)
	b.RegisterCommands()
	b.RegisterHandlers()

	go b.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("shutting down")
	sched.Stop()
	b.Stop()
}
