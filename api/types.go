package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler         authHandler
	reviewHandler       reviewHandler
	blogPostHandler     blogPostHandler
	eventHandler        eventHandler
	purchaseLinkHandler purchaseLinkHandler
	themeImageHandler   themeImageHandler
	contactHandler      contactHandler
	imageHandler        imageHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
