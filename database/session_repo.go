package database

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/storage"
)

// SessionRepo manages the adminLoggedIn flag: a single "true"/absent marker
// gating the admin surface. There is one admin; no per-session bookkeeping.
type SessionRepo struct {
	slot   storage.Slot
	logger zerolog.Logger
}

func NewSessionRepo(store *storage.Store) *SessionRepo {
	return &SessionRepo{
		slot:   store.Slot(),
		logger: log.With().Str("collection", slotAdminSession).Logger(),
	}
}

// LogIn raises the admin session flag.
func (r *SessionRepo) LogIn() {
	if err := r.slot.Set(slotAdminSession, "true"); err != nil {
		r.logger.Warn().Err(err).Msg("could not persist session flag")
	}
}

// LogOut clears the flag, invalidating outstanding tokens.
func (r *SessionRepo) LogOut() {
	if err := r.slot.Remove(slotAdminSession); err != nil {
		r.logger.Warn().Err(err).Msg("could not clear session flag")
	}
}

// Active reports whether the admin session flag is raised.
func (r *SessionRepo) Active() bool {
	value, err := r.slot.Get(slotAdminSession)
	return err == nil && value == "true"
}
