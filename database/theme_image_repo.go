package database

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
	"github.com/dsartorelli/book-site-backend/storage"
)

// ThemeImageRepo manages the bookThemeImages collection. Theme images were
// once addressed by array position; they now carry uuid identifiers, so
// updates address records by id like every other collection.
type ThemeImageRepo struct {
	mu     sync.Mutex
	store  *storage.Store
	images []models.ThemeImage
	logger zerolog.Logger
}

func NewThemeImageRepo(store *storage.Store) *ThemeImageRepo {
	return &ThemeImageRepo{
		store:  store,
		images: storage.Load(store, slotThemeImages, defaultThemeImages),
		logger: log.With().Str("collection", slotThemeImages).Logger(),
	}
}

func (r *ThemeImageRepo) FindAll() []models.ThemeImage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ThemeImage(nil), r.images...)
}

func (r *ThemeImageRepo) Add(image models.ThemeImage) (models.ThemeImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	image.ID = uuid.NewString()
	if err := image.Validate(); err != nil {
		return models.ThemeImage{}, err
	}
	updated := append(append([]models.ThemeImage(nil), r.images...), image)
	if err := storage.Save(r.store, slotThemeImages, updated); err != nil {
		r.logger.Error().Err(err).Msg("add rolled back, collection not persisted")
		return models.ThemeImage{}, errs.NewSaveFailedError("theme images", err)
	}
	r.images = updated
	return image, nil
}

func (r *ThemeImageRepo) Update(id string, image models.ThemeImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.images {
		if r.images[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	image.ID = id
	// Only records that load cleanly may be persisted
	if err := image.Validate(); err != nil {
		return err
	}
	updated := append([]models.ThemeImage(nil), r.images...)
	updated[idx] = image
	if err := storage.Save(r.store, slotThemeImages, updated); err != nil {
		r.logger.Error().Err(err).Msg("update rolled back, collection not persisted")
		return errs.NewSaveFailedError("theme images", err)
	}
	r.images = updated
	return nil
}

func (r *ThemeImageRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]models.ThemeImage, 0, len(r.images))
	for _, image := range r.images {
		if image.ID != id {
			updated = append(updated, image)
		}
	}
	if len(updated) == len(r.images) {
		return nil
	}
	if err := storage.Save(r.store, slotThemeImages, updated); err != nil {
		r.logger.Error().Err(err).Msg("delete rolled back, collection not persisted")
		return errs.NewSaveFailedError("theme images", err)
	}
	r.images = updated
	return nil
}
