package main

import (
	"context"
	"os"

	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/ixteam/teetimes/config"
	"github.com/ixteam/teetimes/feeds"
	applog "github.com/ixteam/teetimes/logger"
	"github.com/ixteam/teetimes/reminder"
	"github.com/ixteam/teetimes/slack"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	pipe, err := reminder.New(cfg, feeds.New(cfg.HTTPTimeout), logger)
	if err != nil {
		logger.Fatal("pipeline setup failed", zap.Error(err))
	}

	ctx := context.Background()

	messages, err := pipe.Messages(ctx)
	if err != nil {
		logger.Fatal("generating messages failed", zap.Error(err))
	}
	if len(messages) == 0 {
		logger.Info("no live tournaments, nothing to send")
		return
	}

	reminders, err := pipe.Reminders(ctx)
	if err != nil {
		logger.Fatal("generating reminders failed", zap.Error(err))
	}

	notifier := slack.New(cfg.SlackToken)
	failed := false

	for _, msg := range messages {
		if msg == "" {
			continue
		}
		if err := notifier.SendMessage(msg, cfg.SlackGroup); err != nil {
			logger.Error("send message failed", zap.Error(err))
			failed = true
			continue
		}
		logger.Info("message sent", zap.String("channel", cfg.SlackGroup))
	}

	for _, rem := range reminders {
		if err := notifier.SetReminder(rem, cfg.SlackGroup); err != nil {
			logger.Error("set reminder failed", zap.Error(err))
			failed = true
			continue
		}
		logger.Info("reminder set", zap.String("channel", cfg.SlackGroup))
	}

	if failed {
		os.Exit(1)
	}
}
