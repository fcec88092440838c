package models

import "encoding/json"

// TeeTimesDoc is the per-tournament tee-times feed.
type TeeTimesDoc struct {
	Tournament TeeTimesTournament `json:"tournament"`
}

// TeeTimesTournament is the top-level tournament record of the tee-times feed.
// CurrentRound is 1-based and arrives either as a number or a quoted number
// depending on the feed vintage, hence json.Number.
type TeeTimesTournament struct {
	TournamentName string          `json:"TournamentName"`
	CurrentRound   json.Number     `json:"CurrentRound"`
	Rounds         []TeeTimesRound `json:"rounds"`
}

// TeeTimesRound is one round of the tournament.
type TeeTimesRound struct {
	RoundState string           `json:"RoundState"`
	Courses    []TeeTimesCourse `json:"courses"`
}

// TeeTimesCourse groups tee-time segments for one course.
type TeeTimesCourse struct {
	Segments []TeeTimesSegment `json:"segments"`
}

// TeeTimesSegment holds the actual player groups.
type TeeTimesSegment struct {
	Groups []TeeTimesGroup `json:"groups"`
}

// TeeTimesGroup is a single tee-time group. StartTime is a 12-hour clock
// string ("9:30 AM"); StartDate starts with MM/DD/YYYY and only the first
// ten characters are significant.
type TeeTimesGroup struct {
	StartTime string `json:"StartTime"`
	StartDate string `json:"StartDate"`
}
