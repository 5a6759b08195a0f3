package model

// Entry is the domain model for a todo entry.
// Value is kept exactly as the user typed it.
type Entry struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
