package models

import "github.com/dsartorelli/book-site-backend/errs"

// Event represents an author appearance: launches, signings, Q&A sessions.
// Past events stay listed; there is no future-dating rule.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (e Event) Validate() error {
	if e.ID == "" {
		return errs.NewMissingRequiredFieldError("id")
	}
	if e.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if e.Date == "" {
		return errs.NewMissingRequiredFieldError("date")
	}
	if e.Location == "" {
		return errs.NewMissingRequiredFieldError("location")
	}
	return nil
}
