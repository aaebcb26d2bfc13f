package database

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
	"github.com/dsartorelli/book-site-backend/storage"
)

// PurchaseLinkRepo manages the bookPurchaseLinks collection. URLs are stored
// as entered; no reachability or format check beyond non-emptiness.
type PurchaseLinkRepo struct {
	mu     sync.Mutex
	store  *storage.Store
	links  []models.PurchaseLink
	logger zerolog.Logger
}

func NewPurchaseLinkRepo(store *storage.Store) *PurchaseLinkRepo {
	return &PurchaseLinkRepo{
		store:  store,
		links:  storage.Load(store, slotPurchaseLinks, defaultPurchaseLinks),
		logger: log.With().Str("collection", slotPurchaseLinks).Logger(),
	}
}

func (r *PurchaseLinkRepo) FindAll() []models.PurchaseLink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.PurchaseLink(nil), r.links...)
}

func (r *PurchaseLinkRepo) Add(link models.PurchaseLink) (models.PurchaseLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link.ID = newRecordID()
	if err := link.Validate(); err != nil {
		return models.PurchaseLink{}, err
	}
	updated := append(append([]models.PurchaseLink(nil), r.links...), link)
	if err := storage.Save(r.store, slotPurchaseLinks, updated); err != nil {
		r.logger.Error().Err(err).Msg("add rolled back, collection not persisted")
		return models.PurchaseLink{}, errs.NewSaveFailedError("purchase links", err)
	}
	r.links = updated
	return link, nil
}

func (r *PurchaseLinkRepo) Update(id string, link models.PurchaseLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.links {
		if r.links[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	link.ID = id
	// Only records that load cleanly may be persisted
	if err := link.Validate(); err != nil {
		return err
	}
	updated := append([]models.PurchaseLink(nil), r.links...)
	updated[idx] = link
	if err := storage.Save(r.store, slotPurchaseLinks, updated); err != nil {
		r.logger.Error().Err(err).Msg("update rolled back, collection not persisted")
		return errs.NewSaveFailedError("purchase links", err)
	}
	r.links = updated
	return nil
}

func (r *PurchaseLinkRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]models.PurchaseLink, 0, len(r.links))
	for _, link := range r.links {
		if link.ID != id {
			updated = append(updated, link)
		}
	}
	if len(updated) == len(r.links) {
		return nil
	}
	if err := storage.Save(r.store, slotPurchaseLinks, updated); err != nil {
		r.logger.Error().Err(err).Msg("delete rolled back, collection not persisted")
		return errs.NewSaveFailedError("purchase links", err)
	}
	r.links = updated
	return nil
}
