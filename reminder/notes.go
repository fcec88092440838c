package reminder

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/ixteam/teetimes/models"
)

// resumeRe extracts a resume hour from free text like "play will resume
// at 7:30 a.m.". The feed writes a bare clock digit with no reliable
// AM/PM context, so the hour is taken as-is; that ambiguity is inherited
// from the upstream notes and deliberately not guessed around.
var resumeRe = regexp.MustCompile(` at ([0-9]):`)

// SuspensionNote is the outcome of scanning the notes feed for a resume
// time. HasResumeTime false is a valid state, not an error.
type SuspensionNote struct {
	ResumeHour    int
	HasResumeTime bool
}

// resolveSuspension fetches the message/notes feed and scans the first
// note for a resume hour. An empty notes list means no resume info.
func (p *Pipeline) resolveSuspension(ctx context.Context, lt LiveTournament) (SuspensionNote, error) {
	url := p.cfg.MessageFeedURL(strings.ToLower(lt.TourCode), lt.PermID)

	var doc models.NotesDoc
	if err := p.feeds.GetJSON(ctx, url, &doc); err != nil {
		return SuspensionNote{}, err
	}
	if len(doc.Notes) == 0 {
		return SuspensionNote{}, nil
	}
	return parseResume(doc.Notes[0].HTML), nil
}

func parseResume(html string) SuspensionNote {
	m := resumeRe.FindStringSubmatch(html)
	if m == nil {
		return SuspensionNote{}
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return SuspensionNote{}
	}
	return SuspensionNote{ResumeHour: hour, HasResumeTime: true}
}
