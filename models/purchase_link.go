package models

import "github.com/dsartorelli/book-site-backend/errs"

// PurchaseLink represents a retailer the book can be bought from. The URL is
// stored as given; reachability is not checked.
type PurchaseLink struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

func (l PurchaseLink) Validate() error {
	if l.ID == "" {
		return errs.NewMissingRequiredFieldError("id")
	}
	if l.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if l.URL == "" {
		return errs.NewMissingRequiredFieldError("url")
	}
	return nil
}
