package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ixteam/teetimes/models"
)

// resolveTimezone fetches the schedule feed and walks it down to the
// tournament's IANA timezone: current year for the tour, that year's block,
// the tour inside it, the tournament entry by permanent id. Every missing
// link fails the lookup for this tournament.
func (p *Pipeline) resolveTimezone(ctx context.Context, lt LiveTournament) (*time.Location, error) {
	var doc models.ScheduleDoc
	if err := p.feeds.GetJSON(ctx, p.cfg.ScheduleURL, &doc); err != nil {
		return nil, err
	}

	lc := strings.ToLower(lt.TourCode)
	currentYear, ok := doc.CurrentYears[lc]
	if !ok {
		return nil, fmt.Errorf("schedule: no current year for tour %q", lc)
	}

	var yearBlock *models.ScheduleYear
	for i := range doc.Years {
		if doc.Years[i].Year == currentYear {
			yearBlock = &doc.Years[i]
			break
		}
	}
	if yearBlock == nil {
		return nil, fmt.Errorf("schedule: no year block %s for tour %q", currentYear, lc)
	}

	var tourBlock *models.ScheduleTour
	for i := range yearBlock.Tours {
		if yearBlock.Tours[i].TourCodeLc == lc {
			tourBlock = &yearBlock.Tours[i]
			break
		}
	}
	if tourBlock == nil {
		return nil, fmt.Errorf("schedule: tour %q missing from year %s", lc, currentYear)
	}

	var tz string
	for _, trnm := range tourBlock.Tournaments {
		if trnm.PermNum == lt.PermID {
			tz = trnm.TimeZone
			break
		}
	}
	if tz == "" {
		return nil, fmt.Errorf("schedule: tournament %s not found on tour %q in %s", lt.PermID, lc, currentYear)
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("schedule: tournament %s: %w", lt.PermID, err)
	}
	return loc, nil
}
