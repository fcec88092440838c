package reminder

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ixteam/teetimes/config"
	"github.com/ixteam/teetimes/feeds"
	"github.com/ixteam/teetimes/models"
)

// Pipeline runs the full feed-to-reminder derivation for every live
// tournament. It holds no state between runs; every call re-reads the feeds.
type Pipeline struct {
	cfg      *config.Config
	feeds    *feeds.Client
	composer *Composer
	log      *zap.Logger
}

// New wires a Pipeline from the loaded configuration and a feed client.
func New(cfg *config.Config, fc *feeds.Client, log *zap.Logger) (*Pipeline, error) {
	composer, err := NewComposer(cfg.RemindChannel)
	if err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, feeds: fc, composer: composer, log: log}, nil
}

// Live fetches the trigger feed and returns the ordered live tournaments.
// A trigger failure is fatal: without it there is nothing to do.
func (p *Pipeline) Live(ctx context.Context) ([]LiveTournament, error) {
	var doc models.TriggerDoc
	if err := p.feeds.GetXML(ctx, p.cfg.TriggerURL, &doc); err != nil {
		return nil, err
	}
	return LiveTournaments(&doc), nil
}

// outcome is one tournament's result: a composed reminder, a missing
// tee-times diagnostic, or (ok false, missing nil) nothing to send.
type outcome struct {
	rem     Reminder
	ok      bool
	missing *FeedMissingError
}

// Messages returns the chat message per live tournament, in tour-priority
// order. A tournament whose tee-times feed is absent contributes its
// diagnostic text instead; any other per-tournament failure is logged and
// skipped so the remaining tournaments still go out. Zero live tournaments
// yield an empty slice.
func (p *Pipeline) Messages(ctx context.Context) ([]string, error) {
	outcomes, err := p.collect(ctx)
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, o := range outcomes {
		switch {
		case o.missing != nil:
			messages = append(messages, o.missing.Error())
		case o.ok:
			messages = append(messages, o.rem.Message)
		}
	}
	return messages, nil
}

// Reminders returns the reminder command string per live tournament.
// Tournaments that failed or only produced a diagnostic are skipped; the
// isolation mirrors Messages so one bad feed never blocks the rest.
func (p *Pipeline) Reminders(ctx context.Context) ([]string, error) {
	outcomes, err := p.collect(ctx)
	if err != nil {
		return nil, err
	}

	var reminders []string
	for _, o := range outcomes {
		if o.ok {
			reminders = append(reminders, o.rem.Reminder)
		}
	}
	return reminders, nil
}

func (p *Pipeline) collect(ctx context.Context) ([]outcome, error) {
	live, err := p.Live(ctx)
	if err != nil {
		return nil, err
	}
	p.log.Debug("live tournaments", zap.Int("count", len(live)))

	var outcomes []outcome
	for _, lt := range live {
		o, err := p.one(ctx, lt)
		if err != nil {
			var missing *FeedMissingError
			if errors.As(err, &missing) {
				p.log.Warn("tee times feed missing",
					zap.String("tour", lt.TourCode),
					zap.String("trnm", lt.PermID),
					zap.String("url", missing.URL))
				outcomes = append(outcomes, outcome{missing: missing})
				continue
			}
			p.log.Warn("skipping tournament",
				zap.String("tour", lt.TourCode),
				zap.String("trnm", lt.PermID),
				zap.Error(err))
			continue
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

func (p *Pipeline) one(ctx context.Context, lt LiveTournament) (outcome, error) {
	rc, err := p.resolveRound(ctx, lt)
	if err != nil {
		return outcome{}, err
	}

	loc, err := p.resolveTimezone(ctx, lt)
	if err != nil {
		return outcome{}, err
	}

	var note SuspensionNote
	if rc.State == roundSuspended {
		note, err = p.resolveSuspension(ctx, lt)
		if err != nil {
			return outcome{}, err
		}
	}

	rem, ok := p.composer.Compose(rc, loc, note)
	if !ok {
		p.log.Debug("round starts in the future, nothing to send",
			zap.String("tour", lt.TourCode),
			zap.String("trnm", lt.PermID))
	}
	return outcome{rem: rem, ok: ok}, nil
}
