// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration. It is loaded once at startup
// and passed to component constructors; nothing reads it globally.
type Config struct {
	// Slack delivery.
	SlackToken    string
	SlackGroup    string
	RemindChannel string

	// Remote feeds. TeeTimesURL and MessageURL are fmt templates with two
	// %s slots: lower-cased tour code, then tournament permanent id.
	TriggerURL  string
	TeeTimesURL string
	ScheduleURL string
	MessageURL  string

	HTTPTimeout time.Duration
	Debug       bool
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("REMIND_CHANNEL", "#ix-team-tcss")
	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		SlackToken:    v.GetString("SLACK_TOKEN"),
		SlackGroup:    v.GetString("SLACK_GROUP"),
		RemindChannel: v.GetString("REMIND_CHANNEL"),
		TriggerURL:    v.GetString("FEED_TRIGGER_URL"),
		TeeTimesURL:   v.GetString("FEED_TEE_TIMES_URL"),
		ScheduleURL:   v.GetString("FEED_SCHEDULE_URL"),
		MessageURL:    v.GetString("FEED_MESSAGE_URL"),
		HTTPTimeout:   v.GetDuration("HTTP_TIMEOUT"),
		Debug:         v.GetBool("DEBUG"),
	}

	cfg.validate()
	return cfg
}

// TeeTimesFeedURL returns the tee-times feed URL for one tournament.
func (c *Config) TeeTimesFeedURL(tourCodeLc, trnmID string) string {
	return expand(c.TeeTimesURL, tourCodeLc, trnmID)
}

// MessageFeedURL returns the notes/message feed URL for one tournament.
func (c *Config) MessageFeedURL(tourCodeLc, trnmID string) string {
	return expand(c.MessageURL, tourCodeLc, trnmID)
}

func (c *Config) validate() {
	if c.SlackToken == "" {
		log.Fatal("config: SLACK_TOKEN must be set")
	}
	if c.SlackGroup == "" {
		log.Fatal("config: SLACK_GROUP must be set")
	}
	if c.TriggerURL == "" {
		log.Fatal("config: FEED_TRIGGER_URL must be set")
	}
	if c.TeeTimesURL == "" {
		log.Fatal("config: FEED_TEE_TIMES_URL must be set")
	}
	if c.ScheduleURL == "" {
		log.Fatal("config: FEED_SCHEDULE_URL must be set")
	}
	if c.MessageURL == "" {
		log.Fatal("config: FEED_MESSAGE_URL must be set")
	}
}

func expand(tmpl, tourCodeLc, trnmID string) string {
	return fmt.Sprintf(tmpl, tourCodeLc, trnmID)
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}
