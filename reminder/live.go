// Package reminder derives tee-time reminder messages for live golf
// tournaments from the remote feeds and formats them in Moscow time.
package reminder

import (
	"slices"

	"github.com/ixteam/teetimes/models"
)

// LiveTournament identifies one currently live tournament.
type LiveTournament struct {
	TourCode string
	PermID   string
}

// tourPriority orders reminders across tours; lower comes first.
var tourPriority = map[string]int{
	"R": 1,
	"S": 2,
	"H": 3,
	"C": 4,
	"M": 5,
}

// LiveTournaments returns the tournaments flagged live in the trigger
// document, ordered by tour priority. Codes missing from the table sort
// after all known ones; the sort is stable, so ties keep feed order.
func LiveTournaments(doc *models.TriggerDoc) []LiveTournament {
	var live []LiveTournament
	for _, f := range doc.Feeds {
		if f.Live != "yes" {
			continue
		}
		live = append(live, LiveTournament{TourCode: f.TourCode, PermID: f.PermID})
	}

	slices.SortStableFunc(live, func(a, b LiveTournament) int {
		return priority(a.TourCode) - priority(b.TourCode)
	})
	return live
}

func priority(code string) int {
	if p, ok := tourPriority[code]; ok {
		return p
	}
	return len(tourPriority) + 1
}
