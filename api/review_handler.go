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

type reviewHandler struct {
	responder  Responder
	logger     zerolog.Logger
	reviewRepo *database.ReviewRepo
}

func newReviewHandler(reviewRepo *database.ReviewRepo) reviewHandler {
	logger := log.With().Str("handlerName", "reviewHandler").Logger()

	return reviewHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		reviewRepo: reviewRepo,
	}
}

// ReviewCollection represents the review list response
type ReviewCollection struct {
	Reviews []models.Review `json:"reviews"`
	Total   int             `json:"total"`
}

// getAllReviews returns every review in stored order for the carousel.
func (h reviewHandler) getAllReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews := h.reviewRepo.FindAll()
		h.responder.WriteJSON(w, ReviewCollection{
			Reviews: reviews,
			Total:   len(reviews),
		})
	}
}

// createReview adds a new review and returns it with its generated id.
func (h reviewHandler) createReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var review models.Review
		if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode review request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if review.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if review.Text == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("text"))
			return
		}

		created, err := h.reviewRepo.Add(review)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateReview replaces an existing review; unknown ids are a no-op.
func (h reviewHandler) updateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID := chi.URLParam(r, "reviewID")
		if reviewID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing reviewID"))
			return
		}

		var review models.Review
		if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode review request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.reviewRepo.Update(reviewID, review); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "review updated successfully",
		})
	}
}

// deleteReview removes a review. Deleting an absent id still succeeds.
func (h reviewHandler) deleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID := chi.URLParam(r, "reviewID")
		if reviewID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing reviewID"))
			return
		}

		if err := h.reviewRepo.Delete(reviewID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "review deleted successfully",
		})
	}
}
