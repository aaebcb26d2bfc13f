package models

import (
	"time"

	"github.com/dsartorelli/book-site-backend/errs"
)

// ExcerptLength is the number of characters of content used when a post is
// saved without an explicit excerpt.
const ExcerptLength = 150

// BlogPost represents a blog entry. Content is free text where a blank line
// separates paragraphs; Excerpt is shown on the homepage and in list views.
type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt,omitempty"`
	Date     string `json:"date"`
	ImageURL string `json:"imageUrl,omitempty"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`
}

func (p BlogPost) Validate() error {
	if p.ID == "" {
		return errs.NewMissingRequiredFieldError("id")
	}
	if p.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if p.Content == "" {
		return errs.NewMissingRequiredFieldError("content")
	}
	return nil
}

// Time parses the post date for sorting. Posts with unparseable dates sort
// oldest.
func (p BlogPost) Time() time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, p.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DeriveExcerpt returns the excerpt to store for the given content: the first
// ExcerptLength characters, with a trailing ellipsis only when the content was
// truncated.
func DeriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= ExcerptLength {
		return content
	}
	return string(runes[:ExcerptLength]) + "..."
}
