package database

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
	"github.com/dsartorelli/book-site-backend/storage"
)

func TestReviewRepo_SeedsOnFirstAccess(t *testing.T) {
	repo := NewReviewRepo(newTestStore(t))

	reviews := repo.FindAll()
	require.Len(t, reviews, 3)
	assert.Equal(t, "Sarah Johnson", reviews[0].Name)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestReviewRepo_AddAssignsIDAndDate(t *testing.T) {
	repo := NewReviewRepo(newTestStore(t))

	created, err := repo.Add(models.Review{Name: "Alex Reader", Text: "Loved it", Rating: 4})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Date)

	reviews := repo.FindAll()
	require.Len(t, reviews, 4)
	assert.Equal(t, created, reviews[3])
}

func TestReviewRepo_AddRejectsOutOfRangeRating(t *testing.T) {
	repo := NewReviewRepo(newTestStore(t))

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := repo.Add(models.Review{Name: "Alex", Text: "text", Rating: rating})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidField)
	}

	// Rejected reviews never reach the collection
	assert.Len(t, repo.FindAll(), 3)
}

func TestReviewRepo_UpdateUnknownIDIsNoOp(t *testing.T) {
	repo := NewReviewRepo(newTestStore(t))

	err := repo.Update("does-not-exist", models.Review{Name: "Ghost", Text: "boo", Rating: 3})
	require.NoError(t, err)

	for _, review := range repo.FindAll() {
		assert.NotEqual(t, "Ghost", review.Name)
	}
}

func TestReviewRepo_UpdatePreservesDateWhenBlank(t *testing.T) {
	repo := NewReviewRepo(newTestStore(t))
	original := repo.FindAll()[0]

	err := repo.Update(original.ID, models.Review{Name: "Edited", Text: "new text", Rating: 4})
	require.NoError(t, err)

	updated := repo.FindAll()[0]
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "Edited", updated.Name)
	assert.Equal(t, original.Date, updated.Date)
}

func TestReviewRepo_UpdateRejectsInvalidRecord(t *testing.T) {
	store := newTestStore(t)
	repo := NewReviewRepo(store)

	added, err := repo.Add(models.Review{Name: "Keeper", Text: "stays put", Rating: 4})
	require.NoError(t, err)

	err = repo.Update(added.ID, models.Review{Name: "Keeper", Text: "stays put", Rating: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidField)

	err = repo.Update(added.ID, models.Review{Text: "no name", Rating: 4})
	assert.ErrorIs(t, err, errs.ErrMissingRequiredField)

	// Nothing invalid was persisted: a fresh load over the same store still
	// sees the full collection, not a reseed
	reloaded := NewReviewRepo(store)
	reviews := reloaded.FindAll()
	require.Len(t, reviews, 4)
	assert.Equal(t, added, reviews[3])
}

func TestReviewRepo_DeleteIsIdempotent(t *testing.T) {
	repo := NewReviewRepo(newTestStore(t))
	target := repo.FindAll()[1]

	require.NoError(t, repo.Delete(target.ID))
	assert.Len(t, repo.FindAll(), 2)

	require.NoError(t, repo.Delete(target.ID))
	assert.Len(t, repo.FindAll(), 2)
}

func TestReviewRepo_RollsBackWhenSaveFails(t *testing.T) {
	slot := newFlakySlot()
	store := storage.NewStore(slot, zerolog.Nop())
	repo := NewReviewRepo(store)
	before := repo.FindAll()

	slot.failWrites = true

	_, err := repo.Add(models.Review{Name: "Alex", Text: "text", Rating: 4})
	require.Error(t, err)
	assert.True(t, errs.IsSaveFailed(err))

	err = repo.Delete(before[0].ID)
	require.Error(t, err)
	assert.True(t, errs.IsSaveFailed(err))

	// In-memory state still matches what persistence last accepted
	assert.Equal(t, before, repo.FindAll())
}

func TestReviewRepo_SnapshotIsDetached(t *testing.T) {
	repo := NewReviewRepo(newTestStore(t))

	snapshot := repo.FindAll()
	snapshot[0].Name = "Tampered"

	assert.NotEqual(t, "Tampered", repo.FindAll()[0].Name)
}
