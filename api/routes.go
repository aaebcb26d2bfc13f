package api

import (
	"github.com/go-chi/chi/v5"
)

// setupSiteRoutes sets up the public site routes and the authenticated admin
// routes. Everything the site renders is readable without a session; every
// mutation goes through the admin group.
func setupSiteRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/reviews", handlers.reviewHandler.getAllReviews())
		r.Get("/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog-post/{blogPostID}", handlers.blogPostHandler.getBlogPost())
		r.Get("/blog-categories", handlers.blogPostHandler.getBlogCategories())
		r.Get("/events", handlers.eventHandler.getAllEvents())
		r.Get("/purchase-links", handlers.purchaseLinkHandler.getAllPurchaseLinks())
		r.Get("/theme-images", handlers.themeImageHandler.getAllThemeImages())

		r.Post("/contact", handlers.contactHandler.submitContactMessage())
		r.Post("/admin/login", handlers.authHandler.login())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/review", handlers.reviewHandler.createReview())
		r.Put("/review/{reviewID}", handlers.reviewHandler.updateReview())
		r.Delete("/review/{reviewID}", handlers.reviewHandler.deleteReview())

		r.Post("/blog-post", handlers.blogPostHandler.createBlogPost())
		r.Put("/blog-post/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/blog-post/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

		r.Post("/event", handlers.eventHandler.createEvent())
		r.Put("/event/{eventID}", handlers.eventHandler.updateEvent())
		r.Delete("/event/{eventID}", handlers.eventHandler.deleteEvent())

		r.Post("/purchase-link", handlers.purchaseLinkHandler.createPurchaseLink())
		r.Put("/purchase-link/{linkID}", handlers.purchaseLinkHandler.updatePurchaseLink())
		r.Delete("/purchase-link/{linkID}", handlers.purchaseLinkHandler.deletePurchaseLink())

		r.Post("/theme-image", handlers.themeImageHandler.createThemeImage())
		r.Put("/theme-image/{imageID}", handlers.themeImageHandler.updateThemeImage())
		r.Delete("/theme-image/{imageID}", handlers.themeImageHandler.deleteThemeImage())

		r.Get("/admin/images", handlers.imageHandler.searchImages())
		r.Post("/admin/logout", handlers.authHandler.logout())
	})
}
