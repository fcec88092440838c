package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// messageTemplate slots: tour code, tournament name, round, spotcheck time,
// play time. The round and spotcheck slots double as free-text carriers in
// the suspended/started branches, matching the established message wording.
const messageTemplate = "*%s tour* - %s - Round %s. Spotcheck starts at *%s MSK*. Play starts at *%s MSK*."

// Reminder is one tournament's outgoing pair: the chat message and the
// reminder command string consumed by the reminders workflow.
type Reminder struct {
	Message  string
	Reminder string
}

// Composer turns a round context into localized reminder text.
type Composer struct {
	Moscow        *time.Location
	RemindChannel string

	// Now is the clock used for the "is the round today" comparison;
	// injectable for tests.
	Now func() time.Time
}

// NewComposer builds a Composer targeting the given reminders channel.
func NewComposer(remindChannel string) (*Composer, error) {
	msk, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return nil, fmt.Errorf("loading Moscow timezone: %w", err)
	}
	return &Composer{Moscow: msk, RemindChannel: remindChannel, Now: time.Now}, nil
}

// Compose builds the reminder pair for one tournament. The local start
// timestamp is the round's start date at the earliest start hour (or the
// resume hour when the round is suspended with one), converted to Moscow
// time. ok is false when the round starts on a future date: live flagging
// already covers announcements, so nothing is sent ahead of time.
func (c *Composer) Compose(rc *RoundContext, loc *time.Location, note SuspensionNote) (rem Reminder, ok bool) {
	startHour := rc.StartHour
	if rc.State == roundSuspended && note.HasResumeTime {
		startHour = note.ResumeHour
	}

	local := time.Date(rc.Year, time.Month(rc.Month), rc.Day, startHour, 0, 0, 0, loc)
	moscow := local.In(c.Moscow)
	play := moscow.Format("15:04")
	spotcheck := moscow.Add(-60 * time.Minute).Format("15:04")
	remindAt := moscow.Add(-75 * time.Minute).Format("15:04")

	tour := strings.ToUpper(rc.TourCode)
	localDate := truncateDate(local)
	today := truncateDate(c.Now())

	var message string
	switch {
	case localDate.Equal(today):
		message = fmt.Sprintf(messageTemplate, tour, rc.Name, strconv.Itoa(rc.Round), spotcheck, play)
	case localDate.Before(today):
		switch {
		case rc.State == roundSuspended && note.HasResumeTime:
			round := fmt.Sprintf("%d. %s. Will resume at %s:00 MSK", rc.Round, rc.State, play)
			message = fmt.Sprintf(messageTemplate, tour, rc.Name, round, spotcheck, play)
		case rc.State == roundSuspended:
			round := fmt.Sprintf("%d. %s. There is no information about resume time. Check it manually", rc.Round, rc.State)
			message = fmt.Sprintf("*%s Tour* - %s - Round %s", tour, rc.Name, round)
		default:
			spot := fmt.Sprintf("started %s. It's %s now", local.Format("2006-01-02"), rc.State)
			message = fmt.Sprintf(messageTemplate, tour, rc.Name, strconv.Itoa(rc.Round), spot, "*")
		}
	default:
		// Round starts on a future date.
		return Reminder{}, false
	}

	return Reminder{
		Message:  message,
		Reminder: fmt.Sprintf("%s %q %s", c.RemindChannel, message, remindAt),
	}, true
}

// truncateDate drops the time-of-day so dates compare as calendar days.
func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
