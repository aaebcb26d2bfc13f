package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
)

func TestPurchaseLinkRepo_SeedsOnFirstAccess(t *testing.T) {
	repo := NewPurchaseLinkRepo(newTestStore(t))

	links := repo.FindAll()
	require.Len(t, links, 3)
	assert.Equal(t, "Amazon", links[0].Title)
	assert.Equal(t, "Barnes & Noble", links[1].Title)
	assert.Equal(t, "Indie Bookstores", links[2].Title)
}

func TestPurchaseLinkRepo_AddValidatesRequiredFields(t *testing.T) {
	repo := NewPurchaseLinkRepo(newTestStore(t))

	_, err := repo.Add(models.PurchaseLink{URL: "https://example.com"})
	assert.ErrorIs(t, err, errs.ErrMissingRequiredField)

	_, err = repo.Add(models.PurchaseLink{Title: "Example Books"})
	assert.ErrorIs(t, err, errs.ErrMissingRequiredField)

	created, err := repo.Add(models.PurchaseLink{Title: "Example Books", URL: "https://example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestPurchaseLinkRepo_UpdateReplacesWholeRecord(t *testing.T) {
	repo := NewPurchaseLinkRepo(newTestStore(t))
	target := repo.FindAll()[0]

	err := repo.Update(target.ID, models.PurchaseLink{
		Title: "Amazon AU",
		URL:   "https://amazon.com.au",
	})
	require.NoError(t, err)

	updated := repo.FindAll()[0]
	assert.Equal(t, target.ID, updated.ID)
	assert.Equal(t, "Amazon AU", updated.Title)
	// Fields left blank in the replacement are blanked, not merged
	assert.Empty(t, updated.Description)
}

func TestPurchaseLinkRepo_UpdateRejectsInvalidRecord(t *testing.T) {
	store := newTestStore(t)
	repo := NewPurchaseLinkRepo(store)
	target := repo.FindAll()[0]

	err := repo.Update(target.ID, models.PurchaseLink{Title: "Amazon AU"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMissingRequiredField)

	reloaded := NewPurchaseLinkRepo(store)
	links := reloaded.FindAll()
	require.Len(t, links, 3)
	assert.Equal(t, "https://amazon.com", links[0].URL)
}

func TestPurchaseLinkRepo_DeleteUnknownIDIsNoOp(t *testing.T) {
	repo := NewPurchaseLinkRepo(newTestStore(t))

	require.NoError(t, repo.Delete("does-not-exist"))
	assert.Len(t, repo.FindAll(), 3)
}
