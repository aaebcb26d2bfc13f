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

type purchaseLinkHandler struct {
	responder        Responder
	logger           zerolog.Logger
	purchaseLinkRepo *database.PurchaseLinkRepo
}

func newPurchaseLinkHandler(purchaseLinkRepo *database.PurchaseLinkRepo) purchaseLinkHandler {
	logger := log.With().Str("handlerName", "purchaseLinkHandler").Logger()

	return purchaseLinkHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		purchaseLinkRepo: purchaseLinkRepo,
	}
}

// PurchaseLinkCollection represents the retailer list response
type PurchaseLinkCollection struct {
	PurchaseLinks []models.PurchaseLink `json:"purchaseLinks"`
	Total         int                   `json:"total"`
}

func (h purchaseLinkHandler) getAllPurchaseLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links := h.purchaseLinkRepo.FindAll()
		h.responder.WriteJSON(w, PurchaseLinkCollection{
			PurchaseLinks: links,
			Total:         len(links),
		})
	}
}

func (h purchaseLinkHandler) createPurchaseLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var link models.PurchaseLink
		if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode purchase link request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		created, err := h.purchaseLinkRepo.Add(link)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

func (h purchaseLinkHandler) updatePurchaseLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		linkID := chi.URLParam(r, "linkID")
		if linkID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing linkID"))
			return
		}

		var link models.PurchaseLink
		if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode purchase link request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.purchaseLinkRepo.Update(linkID, link); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "purchase link updated successfully",
		})
	}
}

func (h purchaseLinkHandler) deletePurchaseLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		linkID := chi.URLParam(r, "linkID")
		if linkID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing linkID"))
			return
		}

		if err := h.purchaseLinkRepo.Delete(linkID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "purchase link deleted successfully",
		})
	}
}
