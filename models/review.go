package models

import "github.com/dsartorelli/book-site-backend/errs"

// Review represents a single reader or press review shown in the carousel.
type Review struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	Location string `json:"location,omitempty"`
	Date     string `json:"date"`
}

// Validate checks the fields a stored review must carry. Ratings outside 1-5
// are rejected rather than clamped.
func (r Review) Validate() error {
	if r.ID == "" {
		return errs.NewMissingRequiredFieldError("id")
	}
	if r.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if r.Text == "" {
		return errs.NewMissingRequiredFieldError("text")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errs.NewInvalidFieldError("rating", "must be between 1 and 5")
	}
	return nil
}
