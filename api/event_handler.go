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

type eventHandler struct {
	responder Responder
	logger    zerolog.Logger
	eventRepo *database.EventRepo
}

func newEventHandler(eventRepo *database.EventRepo) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()

	return eventHandler{
		responder: NewResponder(logger),
		logger:    logger,
		eventRepo: eventRepo,
	}
}

// EventCollection represents the events board response
type EventCollection struct {
	Events []models.Event `json:"events"`
	Total  int            `json:"total"`
}

func (h eventHandler) getAllEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := h.eventRepo.FindAll()
		h.responder.WriteJSON(w, EventCollection{
			Events: events,
			Total:  len(events),
		})
	}
}

func (h eventHandler) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event models.Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		created, err := h.eventRepo.Add(event)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

func (h eventHandler) updateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")
		if eventID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing eventID"))
			return
		}

		var event models.Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.eventRepo.Update(eventID, event); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "event updated successfully",
		})
	}
}

func (h eventHandler) deleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")
		if eventID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing eventID"))
			return
		}

		if err := h.eventRepo.Delete(eventID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "event deleted successfully",
		})
	}
}
