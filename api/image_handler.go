package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/services"
)

type imageHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newImageHandler() imageHandler {
	logger := log.With().Str("handlerName", "imageHandler").Logger()

	return imageHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// ImageSearchResponse represents the admin image picker results
type ImageSearchResponse struct {
	Query   string                 `json:"query"`
	Results []services.ImageResult `json:"results"`
	Total   int                    `json:"total"`
}

// searchImages returns candidate illustrations for the admin panel picker.
func (h imageHandler) searchImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		results := services.SearchImages(query)

		h.responder.WriteJSON(w, ImageSearchResponse{
			Query:   query,
			Results: results,
			Total:   len(results),
		})
	}
}
