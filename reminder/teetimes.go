package reminder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ixteam/teetimes/feeds"
	"github.com/ixteam/teetimes/models"
)

// roundSuspended is the RoundState value that triggers the notes lookup.
const roundSuspended = "Suspended"

// startTimeLayout parses the feed's 12-hour clock strings ("9:30 AM").
const startTimeLayout = "3:04 PM"

// RoundContext is everything the composer needs about the current round of
// one tournament.
type RoundContext struct {
	TourCode string
	PermID   string
	Name     string
	Round    int // 1-based
	State    string

	// StartHour is the 12-hour clock numeral of the chronologically earliest
	// group start time. The feed carries no usable meridiem past this point,
	// so 12 means the noon/midnight boundary as-is.
	StartHour int

	// Start date of the first listed group, tournament-local calendar.
	Year  int
	Month int
	Day   int
}

// FeedMissingError reports an absent tee-times feed for one tournament. It is
// non-fatal: its text stands in for that tournament's message.
type FeedMissingError struct {
	TourCode string
	PermID   string
	URL      string
}

func (e *FeedMissingError) Error() string {
	return fmt.Sprintf("Teetimes feed not found for %s%s (%s)", e.TourCode, e.PermID, e.URL)
}

// resolveRound fetches the tee-times feed and extracts the current round's
// context. A 404 comes back as *FeedMissingError; anything else that stops
// the extraction is a hard error for this tournament.
func (p *Pipeline) resolveRound(ctx context.Context, lt LiveTournament) (*RoundContext, error) {
	url := p.cfg.TeeTimesFeedURL(strings.ToLower(lt.TourCode), lt.PermID)

	var doc models.TeeTimesDoc
	if err := p.feeds.GetJSON(ctx, url, &doc); err != nil {
		if errors.Is(err, feeds.ErrNotFound) {
			return nil, &FeedMissingError{TourCode: lt.TourCode, PermID: lt.PermID, URL: url}
		}
		return nil, err
	}

	t := doc.Tournament
	round64, err := t.CurrentRound.Int64()
	if err != nil {
		return nil, fmt.Errorf("tee times %s%s: bad CurrentRound %q: %w", lt.TourCode, lt.PermID, t.CurrentRound, err)
	}
	round := int(round64)
	if round < 1 || round > len(t.Rounds) {
		return nil, fmt.Errorf("tee times %s%s: current round %d out of range (have %d rounds)", lt.TourCode, lt.PermID, round, len(t.Rounds))
	}
	current := t.Rounds[round-1]

	var groups []models.TeeTimesGroup
	for _, course := range current.Courses {
		for _, seg := range course.Segments {
			groups = append(groups, seg.Groups...)
		}
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("tee times %s%s: round %d has no groups", lt.TourCode, lt.PermID, round)
	}

	startHour, err := earliestStartHour(groups)
	if err != nil {
		return nil, fmt.Errorf("tee times %s%s: %w", lt.TourCode, lt.PermID, err)
	}

	year, month, day, err := parseStartDate(groups[0].StartDate)
	if err != nil {
		return nil, fmt.Errorf("tee times %s%s: %w", lt.TourCode, lt.PermID, err)
	}

	return &RoundContext{
		TourCode:  lt.TourCode,
		PermID:    lt.PermID,
		Name:      t.TournamentName,
		Round:     round,
		State:     current.RoundState,
		StartHour: startHour,
		Year:      year,
		Month:     month,
		Day:       day,
	}, nil
}

// earliestStartHour parses every group's 12-hour start time, picks the
// chronologically earliest and returns its clock numeral (1-12).
func earliestStartHour(groups []models.TeeTimesGroup) (int, error) {
	var earliest time.Time
	for i, g := range groups {
		t, err := time.Parse(startTimeLayout, g.StartTime)
		if err != nil {
			return 0, fmt.Errorf("bad start time %q: %w", g.StartTime, err)
		}
		if i == 0 || t.Before(earliest) {
			earliest = t
		}
	}
	hour := earliest.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return hour, nil
}

// parseStartDate reads MM/DD/YYYY from the first ten characters of a
// StartDate string; whatever follows is ignored.
func parseStartDate(s string) (year, month, day int, err error) {
	if len(s) < 10 {
		return 0, 0, 0, fmt.Errorf("bad start date %q", s)
	}
	month, err = strconv.Atoi(s[0:2])
	if err == nil {
		day, err = strconv.Atoi(s[3:5])
	}
	if err == nil {
		year, err = strconv.Atoi(s[6:10])
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad start date %q: %w", s, err)
	}
	return year, month, day, nil
}
