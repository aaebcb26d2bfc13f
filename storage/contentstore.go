package storage

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dsartorelli/book-site-backend/errs"
)

// Record is a collection element that can vouch for its own stored shape.
// Validation runs at the load boundary so corrupt or missing-field data takes
// the reseed path instead of leaking half-formed records into the site.
type Record interface {
	Validate() error
}

// Store binds a Slot to the JSON collection encoding. One Store is shared by
// every collection; the key passed to Load/Save picks the collection.
type Store struct {
	slot   Slot
	logger zerolog.Logger
}

func NewStore(slot Slot, logger zerolog.Logger) *Store {
	return &Store{
		slot:   slot,
		logger: logger.With().Str("component", "contentStore").Logger(),
	}
}

// Slot exposes the underlying slot for single-value flags that are not
// collections, like the admin session marker.
func (s *Store) Slot() Slot {
	return s.slot
}

// Load reads the collection stored under key. An absent slot seeds the
// collection with seed() and persists it; a corrupt one is treated as absent.
// Load always returns a usable list.
func Load[T Record](s *Store, key string, seed func() []T) []T {
	raw, err := s.slot.Get(key)
	if err == nil {
		records, derr := decode[T](raw)
		if derr == nil {
			return records
		}
		s.logger.Warn().Err(derr).Str("key", key).Msg("discarding corrupt collection, reseeding defaults")
	} else if !errs.IsSlotEmpty(err) {
		s.logger.Warn().Err(err).Str("key", key).Msg("collection read failed, reseeding defaults")
	}

	records := seed()
	if err := Save(s, key, records); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("persisting seed data failed")
	}
	return records
}

// Save serializes the whole collection and writes it back to the slot. There
// are no partial writes; every mutation rewrites the full list.
func Save[T Record](s *Store, key string, records []T) error {
	if records == nil {
		// An empty collection is stored as [], distinct from an absent slot.
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", errs.ErrSaveFailed, key, err)
	}
	if err := s.slot.Set(key, string(data)); err != nil {
		return fmt.Errorf("%w: writing %s: %w", errs.ErrSaveFailed, key, err)
	}
	return nil
}

func decode[T Record](raw string) ([]T, error) {
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptRecord, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: stored value is not an array", errs.ErrCorruptRecord)
	}
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", errs.ErrCorruptRecord, i, err)
		}
	}
	return records, nil
}
