// cmd/preview/main.go
// Runs the reminder pipeline against the live feeds and prints the results
// without delivering anything to Slack.
//
// Usage:
//
//	go run ./cmd/preview
package main

import (
	"context"
	"fmt"
	"log"

	_ "time/tzdata"

	"github.com/ixteam/teetimes/config"
	"github.com/ixteam/teetimes/feeds"
	applog "github.com/ixteam/teetimes/logger"
	"github.com/ixteam/teetimes/reminder"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(true)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	pipe, err := reminder.New(cfg, feeds.New(cfg.HTTPTimeout), logger)
	if err != nil {
		log.Fatal("pipeline:", err)
	}

	ctx := context.Background()

	messages, err := pipe.Messages(ctx)
	if err != nil {
		log.Fatal("messages:", err)
	}
	if len(messages) == 0 {
		fmt.Println("no live tournaments")
		return
	}

	reminders, err := pipe.Reminders(ctx)
	if err != nil {
		log.Fatal("reminders:", err)
	}

	fmt.Println("messages:")
	for _, m := range messages {
		fmt.Printf("  %s\n", m)
	}
	fmt.Println("reminders:")
	for _, r := range reminders {
		fmt.Printf("  %s\n", r)
	}
}
