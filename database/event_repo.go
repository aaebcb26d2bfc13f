package database

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
	"github.com/dsartorelli/book-site-backend/storage"
)

// EventRepo manages the bookEvents collection. Event dates come from the
// admin form as given; past events stay listed.
type EventRepo struct {
	mu     sync.Mutex
	store  *storage.Store
	events []models.Event
	logger zerolog.Logger
}

func NewEventRepo(store *storage.Store) *EventRepo {
	return &EventRepo{
		store:  store,
		events: storage.Load(store, slotEvents, defaultEvents),
		logger: log.With().Str("collection", slotEvents).Logger(),
	}
}

func (r *EventRepo) FindAll() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Event(nil), r.events...)
}

func (r *EventRepo) Add(event models.Event) (models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = newRecordID()
	if err := event.Validate(); err != nil {
		return models.Event{}, err
	}
	updated := append(append([]models.Event(nil), r.events...), event)
	if err := storage.Save(r.store, slotEvents, updated); err != nil {
		r.logger.Error().Err(err).Msg("add rolled back, collection not persisted")
		return models.Event{}, errs.NewSaveFailedError("events", err)
	}
	r.events = updated
	return event, nil
}

func (r *EventRepo) Update(id string, event models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.events {
		if r.events[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	event.ID = id
	// Only records that load cleanly may be persisted
	if err := event.Validate(); err != nil {
		return err
	}
	updated := append([]models.Event(nil), r.events...)
	updated[idx] = event
	if err := storage.Save(r.store, slotEvents, updated); err != nil {
		r.logger.Error().Err(err).Msg("update rolled back, collection not persisted")
		return errs.NewSaveFailedError("events", err)
	}
	r.events = updated
	return nil
}

func (r *EventRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]models.Event, 0, len(r.events))
	for _, event := range r.events {
		if event.ID != id {
			updated = append(updated, event)
		}
	}
	if len(updated) == len(r.events) {
		return nil
	}
	if err := storage.Save(r.store, slotEvents, updated); err != nil {
		r.logger.Error().Err(err).Msg("delete rolled back, collection not persisted")
		return errs.NewSaveFailedError("events", err)
	}
	r.events = updated
	return nil
}
