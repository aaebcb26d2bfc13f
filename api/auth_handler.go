package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/dsartorelli/book-site-backend/config"
	"github.com/dsartorelli/book-site-backend/database"
	"github.com/dsartorelli/book-site-backend/errs"
)

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	sessions     *database.SessionRepo
	username     string
	passwordHash []byte
	secret       string
}

func newAuthHandler(sessions *database.SessionRepo, cfg map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	// The admin credential can be supplied pre-hashed; a plain password from
	// the environment is hashed once at startup so comparisons never touch
	// the cleartext again.
	passwordHash := []byte(config.GetString(cfg, "ADMIN_PASSWORD_HASH", ""))
	if len(passwordHash) == 0 {
		password := config.GetString(cfg, "ADMIN_PASSWORD", "bookadmin123")
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to hash admin password")
		}
		passwordHash = hashed
	}

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		sessions:     sessions,
		username:     config.GetString(cfg, "ADMIN_USERNAME", "admin"),
		passwordHash: passwordHash,
		secret:       config.GetString(cfg, "SESSION_SECRET", "book-site-dev-secret"),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// login checks the admin credentials, raises the session flag, and returns a
// bearer token for the dashboard.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Username != h.username ||
			bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)) != nil {
			h.logger.Warn().Str("username", req.Username).Msg("Rejected admin login")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid username or password"))
			return
		}

		token, err := newSessionToken(req.Username, h.secret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("could not create session"))
			return
		}

		h.sessions.LogIn()
		h.logger.Info().Msg("Admin logged in")
		h.responder.WriteJSON(w, loginResponse{Token: token})
	}
}

// logout clears the session flag, invalidating outstanding tokens.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		h.sessions.LogOut()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "logged out",
		})
	}
}
