package config

import "testing"

func TestFeedURLTemplates(t *testing.T) {
	cfg := &Config{
		TeeTimesURL: "https://feeds.example.com/%s/%s/teetimes.json",
		MessageURL:  "https://feeds.example.com/%s/%s/message.json",
	}

	if got, want := cfg.TeeTimesFeedURL("r", "521"), "https://feeds.example.com/r/521/teetimes.json"; got != want {
		t.Errorf("TeeTimesFeedURL = %q, want %q", got, want)
	}
	if got, want := cfg.MessageFeedURL("s", "600"), "https://feeds.example.com/s/600/message.json"; got != want {
		t.Errorf("MessageFeedURL = %q, want %q", got, want)
	}
}
