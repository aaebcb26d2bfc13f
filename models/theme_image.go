package models

import "github.com/dsartorelli/book-site-backend/errs"

// ThemeImage represents one tile in the themes gallery on the homepage.
// Earlier versions of the site identified these by array position; they now
// carry a stable id so edits survive reordering.
type ThemeImage struct {
	ID     string `json:"id"`
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Theme  string `json:"theme"`
	Credit string `json:"credit,omitempty"`
}

func (t ThemeImage) Validate() error {
	if t.ID == "" {
		return errs.NewMissingRequiredFieldError("id")
	}
	if t.Src == "" {
		return errs.NewMissingRequiredFieldError("src")
	}
	if t.Theme == "" {
		return errs.NewMissingRequiredFieldError("theme")
	}
	return nil
}
