package domain

import "fmt"

// Event is a single document in the events index.
type Event struct {
	RID       string
	DOCID     string
	Title     string
	Theme     string
	Summary   string
	Highlight string
	Object    string
	Country   string
	Year      string
	Count     int
}

// Validate checks the fields required for indexing.
func (e *Event) Validate() error {
	if e.RID == "" {
		return fmt.Errorf("%w: rid is required", ErrInvalidEvent)
	}
	if e.DOCID == "" {
		return fmt.Errorf("%w: docid is required", ErrInvalidEvent)
	}
	return nil
}
