package database

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
	"github.com/dsartorelli/book-site-backend/storage"
)

// ReviewRepo manages the bookReviews collection: a live in-memory copy kept in
// sync with the persistent slot after every mutation.
type ReviewRepo struct {
	mu      sync.Mutex
	store   *storage.Store
	reviews []models.Review
	logger  zerolog.Logger
}

func NewReviewRepo(store *storage.Store) *ReviewRepo {
	return &ReviewRepo{
		store:   store,
		reviews: storage.Load(store, slotReviews, defaultReviews),
		logger:  log.With().Str("collection", slotReviews).Logger(),
	}
}

// FindAll returns a snapshot of the collection. Mutating the returned slice
// does not persist anything.
func (r *ReviewRepo) FindAll() []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Review(nil), r.reviews...)
}

// Add assigns an id and creation timestamp, validates the assembled record,
// appends it, and persists the whole collection. Out-of-range ratings are
// rejected, not clamped.
func (r *ReviewRepo) Add(review models.Review) (models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = newRecordID()
	review.Date = time.Now().UTC().Format(time.RFC3339)
	if err := review.Validate(); err != nil {
		return models.Review{}, err
	}

	updated := append(append([]models.Review(nil), r.reviews...), review)
	if err := storage.Save(r.store, slotReviews, updated); err != nil {
		r.logger.Error().Err(err).Msg("add rolled back, collection not persisted")
		return models.Review{}, errs.NewSaveFailedError("reviews", err)
	}
	r.reviews = updated
	return review, nil
}

// Update replaces the review with the given id. An unknown id is a no-op.
func (r *ReviewRepo) Update(id string, review models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	review.ID = id
	if review.Date == "" {
		review.Date = r.reviews[idx].Date
	}
	// Only records that load cleanly may be persisted
	if err := review.Validate(); err != nil {
		return err
	}
	updated := append([]models.Review(nil), r.reviews...)
	updated[idx] = review
	if err := storage.Save(r.store, slotReviews, updated); err != nil {
		r.logger.Error().Err(err).Msg("update rolled back, collection not persisted")
		return errs.NewSaveFailedError("reviews", err)
	}
	r.reviews = updated
	return nil
}

// Delete removes the review with the given id. Deleting an absent id is
// idempotent.
func (r *ReviewRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		if review.ID != id {
			updated = append(updated, review)
		}
	}
	if len(updated) == len(r.reviews) {
		return nil
	}
	if err := storage.Save(r.store, slotReviews, updated); err != nil {
		r.logger.Error().Err(err).Msg("delete rolled back, collection not persisted")
		return errs.NewSaveFailedError("reviews", err)
	}
	r.reviews = updated
	return nil
}
