package models

import (
	"regexp"

	"github.com/dsartorelli/book-site-backend/errs"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ContactMessage is the contact form payload relayed to the author's inbox.
// Messages are not stored.
type ContactMessage struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

func (m ContactMessage) Validate() error {
	if m.FirstName == "" {
		return errs.NewMissingRequiredFieldError("firstName")
	}
	if m.LastName == "" {
		return errs.NewMissingRequiredFieldError("lastName")
	}
	if m.Email == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if !emailPattern.MatchString(m.Email) {
		return errs.NewInvalidFieldError("email", "not a valid email address")
	}
	if m.Message == "" {
		return errs.NewMissingRequiredFieldError("message")
	}
	return nil
}
