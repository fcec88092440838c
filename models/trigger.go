package models

import "encoding/xml"

// TriggerDoc is the live-tournament trigger feed. Each tournament on a tour
// appears as a <feed> element carrying its state in attributes.
type TriggerDoc struct {
	XMLName xml.Name
	Feeds   []TriggerEntry `xml:"feed"`
}

// TriggerEntry is one <feed> element of the trigger document.
type TriggerEntry struct {
	Live     string `xml:"live,attr"`
	TourCode string `xml:"tourcode,attr"`
	PermID   string `xml:"perm_id,attr"`
	EventID  string `xml:"event_id,attr"`
}
