package api

import (
	"github.com/dsartorelli/book-site-backend/database"
	"github.com/dsartorelli/book-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string) *routeHandlers {
	return &routeHandlers{
		authHandler:         newAuthHandler(database.SessionRepo(), cfg),
		reviewHandler:       newReviewHandler(database.ReviewRepo()),
		blogPostHandler:     newBlogPostHandler(database.BlogPostRepo()),
		eventHandler:        newEventHandler(database.EventRepo()),
		purchaseLinkHandler: newPurchaseLinkHandler(database.PurchaseLinkRepo()),
		themeImageHandler:   newThemeImageHandler(database.ThemeImageRepo()),
		contactHandler:      newContactHandler(services.NewMailer(cfg)),
		imageHandler:        newImageHandler(),
	}
}
