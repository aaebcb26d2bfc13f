package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
	"github.com/dsartorelli/book-site-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    *services.Mailer
}

func newContactHandler(mailer *services.Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

// submitContactMessage validates a contact form submission and relays it to
// the author's inbox. Messages are never stored.
func (h contactHandler) submitContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := msg.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !h.mailer.Configured() {
			h.logger.Error().Msg("Contact message received but mailer is not configured")
			h.responder.WriteError(w, errs.NewInternalError("contact form is not available"))
			return
		}

		if err := h.mailer.SendContactMessage(msg); err != nil {
			h.logger.Error().Err(err).Msg("Failed to deliver contact message")
			h.responder.WriteError(w, errs.NewApiErr(http.StatusBadGateway, "failed to deliver message"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message sent",
		})
	}
}
