// Package database holds the per-collection controllers that mediate between
// the HTTP consumers and the persisted site content.
package database

import (
	"strconv"
	"time"

	"github.com/dsartorelli/book-site-backend/storage"
)

// Slot key names. These match the keys the site has always stored content
// under, so existing data keeps loading.
const (
	slotReviews       = "bookReviews"
	slotBlogPosts     = "bookBlogPosts"
	slotEvents        = "bookEvents"
	slotPurchaseLinks = "bookPurchaseLinks"
	slotThemeImages   = "bookThemeImages"
	slotAdminSession  = "adminLoggedIn"
)

type Database struct {
	reviewRepo       *ReviewRepo
	blogPostRepo     *BlogPostRepo
	eventRepo        *EventRepo
	purchaseLinkRepo *PurchaseLinkRepo
	themeImageRepo   *ThemeImageRepo
	sessionRepo      *SessionRepo
}

// New initializes a Database with each collection repository sharing the same
// content store. Every collection seeds itself on first access.
func New(store *storage.Store) Database {
	return Database{
		reviewRepo:       NewReviewRepo(store),
		blogPostRepo:     NewBlogPostRepo(store),
		eventRepo:        NewEventRepo(store),
		purchaseLinkRepo: NewPurchaseLinkRepo(store),
		themeImageRepo:   NewThemeImageRepo(store),
		sessionRepo:      NewSessionRepo(store),
	}
}

// Accessor methods for each repository

func (d Database) ReviewRepo() *ReviewRepo {
	return d.reviewRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) PurchaseLinkRepo() *PurchaseLinkRepo {
	return d.purchaseLinkRepo
}

func (d Database) ThemeImageRepo() *ThemeImageRepo {
	return d.themeImageRepo
}

func (d Database) SessionRepo() *SessionRepo {
	return d.sessionRepo
}

// newRecordID generates a collection record id from the current wall clock,
// the same scheme the site has always used. Collisions would need two admin
// writes inside the same millisecond and are not defended against.
func newRecordID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
