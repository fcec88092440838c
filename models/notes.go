package models

// NotesDoc is the per-tournament message/notes feed, consulted only when a
// round is suspended.
type NotesDoc struct {
	Notes []Note `json:"notes"`
}

// Note is a single free-text notice; HTML is a markup snippet.
type Note struct {
	HTML string `json:"html"`
}
