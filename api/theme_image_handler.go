package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/database"
	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
)

type themeImageHandler struct {
	responder      Responder
	logger         zerolog.Logger
	themeImageRepo *database.ThemeImageRepo
}

func newThemeImageHandler(themeImageRepo *database.ThemeImageRepo) themeImageHandler {
	logger := log.With().Str("handlerName", "themeImageHandler").Logger()

	return themeImageHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		themeImageRepo: themeImageRepo,
	}
}

// ThemeImageCollection represents the themes gallery response
type ThemeImageCollection struct {
	ThemeImages []models.ThemeImage `json:"themeImages"`
	Total       int                 `json:"total"`
}

func (h themeImageHandler) getAllThemeImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images := h.themeImageRepo.FindAll()
		h.responder.WriteJSON(w, ThemeImageCollection{
			ThemeImages: images,
			Total:       len(images),
		})
	}
}

func (h themeImageHandler) createThemeImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var image models.ThemeImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode theme image request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		created, err := h.themeImageRepo.Add(image)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

func (h themeImageHandler) updateThemeImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID := chi.URLParam(r, "imageID")
		if imageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing imageID"))
			return
		}

		var image models.ThemeImage
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode theme image request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.themeImageRepo.Update(imageID, image); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "theme image updated successfully",
		})
	}
}

func (h themeImageHandler) deleteThemeImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID := chi.URLParam(r, "imageID")
		if imageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing imageID"))
			return
		}

		if err := h.themeImageRepo.Delete(imageID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "theme image deleted successfully",
		})
	}
}
