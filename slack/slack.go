// Package slack delivers reminder messages through the Slack Web API.
package slack

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Client wraps the Slack API behind the two calls the pipeline needs.
type Client struct {
	api *slack.Client
}

// New creates a Client authenticated with the given API token.
func New(token string) *Client {
	return &Client{api: slack.New(token)}
}

// SendMessage posts text to the channel.
func (c *Client) SendMessage(text, channel string) error {
	_, _, err := c.api.PostMessage(channel, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("posting to %s: %w", channel, err)
	}
	return nil
}

// SetReminder posts the reminder command string (`#channel "msg" HH:MM`) to
// the channel; the reminders workflow watching it schedules the actual ping.
func (c *Client) SetReminder(text, channel string) error {
	_, _, err := c.api.PostMessage(channel, slack.MsgOptionText(text, false), slack.MsgOptionDisableLinkUnfurl())
	if err != nil {
		return fmt.Errorf("setting reminder in %s: %w", channel, err)
	}
	return nil
}
