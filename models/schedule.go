package models

import "encoding/json"

// ScheduleDoc is the all-tours schedule feed. CurrentYears maps a lower-cased
// tour code to the year whose block applies to it right now. Years arrive as
// numbers or quoted numbers depending on the feed vintage, hence json.Number.
type ScheduleDoc struct {
	CurrentYears map[string]json.Number `json:"currentYears"`
	Years        []ScheduleYear         `json:"years"`
}

// ScheduleYear is one season block.
type ScheduleYear struct {
	Year  json.Number    `json:"year"`
	Tours []ScheduleTour `json:"tours"`
}

// ScheduleTour is one tour inside a season block.
type ScheduleTour struct {
	TourCodeLc  string               `json:"tourCodeLc"`
	Tournaments []ScheduleTournament `json:"trns"`
}

// ScheduleTournament carries the per-tournament metadata the pipeline needs;
// TimeZone is an IANA zone name.
type ScheduleTournament struct {
	PermNum  string `json:"permNum"`
	TimeZone string `json:"timeZone"`
}
