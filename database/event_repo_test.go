package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
)

func TestEventRepo_SeedsOnFirstAccess(t *testing.T) {
	repo := NewEventRepo(newTestStore(t))

	events := repo.FindAll()
	require.Len(t, events, 2)
	assert.Equal(t, "Book Launch", events[0].Title)
	assert.Equal(t, "Sydney, Australia", events[0].Location)
}

func TestEventRepo_AddValidatesRequiredFields(t *testing.T) {
	repo := NewEventRepo(newTestStore(t))

	for _, event := range []models.Event{
		{Date: "2025-09-01", Location: "Melbourne"},
		{Title: "Signing", Location: "Melbourne"},
		{Title: "Signing", Date: "2025-09-01"},
	} {
		_, err := repo.Add(event)
		assert.ErrorIs(t, err, errs.ErrMissingRequiredField)
	}

	created, err := repo.Add(models.Event{
		Title:       "Signing",
		Date:        "2025-09-01",
		Location:    "Melbourne",
		Description: "Afternoon signing session",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, repo.FindAll(), 3)
}

func TestEventRepo_UpdateRejectsInvalidRecord(t *testing.T) {
	store := newTestStore(t)
	repo := NewEventRepo(store)

	err := repo.Update("1", models.Event{Title: "Relocated Launch", Date: "2025-05-15"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMissingRequiredField)

	reloaded := NewEventRepo(store)
	events := reloaded.FindAll()
	require.Len(t, events, 2)
	assert.Equal(t, "Sydney, Australia", events[0].Location)
}

func TestEventRepo_MutationsSurviveReload(t *testing.T) {
	store := newTestStore(t)
	repo := NewEventRepo(store)

	created, err := repo.Add(models.Event{Title: "Signing", Date: "2025-09-01", Location: "Melbourne"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete("1"))

	// A fresh repository over the same store sees the persisted state
	reloaded := NewEventRepo(store)
	events := reloaded.FindAll()
	require.Len(t, events, 2)
	assert.Equal(t, "Author Q&A Session", events[0].Title)
	assert.Equal(t, created, events[1])
}
