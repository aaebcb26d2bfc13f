package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsartorelli/book-site-backend/models"
	"github.com/dsartorelli/book-site-backend/storage"
)

// blogRepoWith replaces the seeded collection with the given posts so list
// derivation tests control exactly what is stored.
func blogRepoWith(t *testing.T, posts []models.BlogPost) *BlogPostRepo {
	t.Helper()
	store := newTestStore(t)
	require.NoError(t, storage.Save(store, slotBlogPosts, posts))
	return NewBlogPostRepo(store)
}

func TestBlogPostRepo_SeedsOnFirstAccess(t *testing.T) {
	repo := NewBlogPostRepo(newTestStore(t))

	posts := repo.FindAll()
	require.Len(t, posts, 3)
	assert.Equal(t, "Book Tour Announcement", posts[0].Title)
}

func TestBlogPostRepo_AddDerivesExcerpt(t *testing.T) {
	repo := NewBlogPostRepo(newTestStore(t))

	short, err := repo.Add(models.BlogPost{Title: "Short", Content: "A short update."})
	require.NoError(t, err)
	assert.Equal(t, "A short update.", short.Excerpt)

	longContent := strings.Repeat("a", 200)
	long, err := repo.Add(models.BlogPost{Title: "Long", Content: longContent})
	require.NoError(t, err)
	assert.Equal(t, longContent[:150]+"...", long.Excerpt)

	// An explicit excerpt is kept as given
	explicit, err := repo.Add(models.BlogPost{Title: "Explicit", Content: longContent, Excerpt: "my own"})
	require.NoError(t, err)
	assert.Equal(t, "my own", explicit.Excerpt)
}

func TestBlogPostRepo_FindByID(t *testing.T) {
	repo := NewBlogPostRepo(newTestStore(t))

	post := repo.FindByID("2")
	require.NotNil(t, post)
	assert.Equal(t, "Behind the Cover Design", post.Title)

	assert.Nil(t, repo.FindByID("does-not-exist"))
}

func TestBlogPostRepo_SortedNewestFirst(t *testing.T) {
	repo := blogRepoWith(t, []models.BlogPost{
		{ID: "old", Title: "Old", Content: "c", Date: "2024-01-01T12:00:00Z"},
		{ID: "new", Title: "New", Content: "c", Date: "2025-06-01T12:00:00Z"},
		{ID: "mid", Title: "Mid", Content: "c", Date: "2025-01-01T12:00:00Z"},
	})

	sorted := repo.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestBlogPostRepo_SortIsStableForEqualDates(t *testing.T) {
	repo := blogRepoWith(t, []models.BlogPost{
		{ID: "a", Title: "A", Content: "c", Date: "2025-01-01T12:00:00Z"},
		{ID: "b", Title: "B", Content: "c", Date: "2025-01-01T12:00:00Z"},
		{ID: "c", Title: "C", Content: "c", Date: "2025-01-01T12:00:00Z"},
	})

	sorted := repo.Sorted()
	assert.Equal(t, []string{"a", "b", "c"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestBlogPostRepo_UnparseableDatesSortOldest(t *testing.T) {
	repo := blogRepoWith(t, []models.BlogPost{
		{ID: "bad", Title: "Bad date", Content: "c", Date: "sometime in spring"},
		{ID: "good", Title: "Good date", Content: "c", Date: "2025-01-01"},
	})

	sorted := repo.Sorted()
	assert.Equal(t, "good", sorted[0].ID)
	assert.Equal(t, "bad", sorted[1].ID)
}

func TestBlogPostRepo_ByCategory(t *testing.T) {
	repo := blogRepoWith(t, []models.BlogPost{
		{ID: "1", Title: "One", Content: "c", Date: "2025-03-01", Category: "News"},
		{ID: "2", Title: "Two", Content: "c", Date: "2025-02-01"},
		{ID: "3", Title: "Three", Content: "c", Date: "2025-01-01", Category: "News"},
		{ID: "4", Title: "Four", Content: "c", Date: "2025-04-01", Category: "Writing"},
	})

	news := repo.ByCategory("News")
	require.Len(t, news, 2)
	assert.Equal(t, "1", news[0].ID)
	assert.Equal(t, "3", news[1].ID)

	// Uncategorized posts never match, even an empty filter
	assert.Empty(t, repo.ByCategory(""))
	assert.Empty(t, repo.ByCategory("news"))
}

func TestBlogPostRepo_SearchIsCaseInsensitive(t *testing.T) {
	repo := blogRepoWith(t, []models.BlogPost{
		{ID: "1", Title: "Tour Dates", Content: "The schedule", Date: "2025-03-01"},
		{ID: "2", Title: "Cover Story", Content: "About the TOUR artwork", Date: "2025-02-01"},
		{ID: "3", Title: "Unrelated", Content: "Nothing here", Excerpt: "a tour mention", Date: "2025-01-01"},
		{ID: "4", Title: "Guest Post", Content: "Nothing", Author: "Detour Press", Date: "2025-04-01"},
	})

	matched := repo.Search("tour")
	require.Len(t, matched, 4)

	matched = repo.Search("TOUR")
	require.Len(t, matched, 4)

	assert.Empty(t, repo.Search("zeppelin"))
}

func TestBlogPostRepo_Adjacent(t *testing.T) {
	repo := blogRepoWith(t, []models.BlogPost{
		{ID: "oldest", Title: "Oldest", Content: "c", Date: "2025-01-01"},
		{ID: "middle", Title: "Middle", Content: "c", Date: "2025-02-01"},
		{ID: "newest", Title: "Newest", Content: "c", Date: "2025-03-01"},
	})

	prev, next := repo.Adjacent("middle")
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "oldest", prev.ID)
	assert.Equal(t, "newest", next.ID)

	prev, next = repo.Adjacent("newest")
	require.NotNil(t, prev)
	assert.Equal(t, "middle", prev.ID)
	assert.Nil(t, next)

	prev, next = repo.Adjacent("oldest")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "middle", next.ID)

	prev, next = repo.Adjacent("does-not-exist")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestBlogPostRepo_CategoriesInFirstAppearanceOrder(t *testing.T) {
	repo := blogRepoWith(t, []models.BlogPost{
		{ID: "1", Title: "One", Content: "c", Date: "2025-01-01", Category: "News"},
		{ID: "2", Title: "Two", Content: "c", Date: "2025-02-01"},
		{ID: "3", Title: "Three", Content: "c", Date: "2025-03-01", Category: "Writing"},
		{ID: "4", Title: "Four", Content: "c", Date: "2025-04-01", Category: "News"},
	})

	assert.Equal(t, []string{"News", "Writing"}, repo.Categories())
}

func TestBlogPostRepo_UpdateRejectsInvalidRecord(t *testing.T) {
	store := newTestStore(t)
	repo := NewBlogPostRepo(store)

	err := repo.Update("1", models.BlogPost{Content: "body without a title"})
	require.Error(t, err)

	err = repo.Update("1", models.BlogPost{Title: "Title without body"})
	require.Error(t, err)

	// The stored collection still loads intact
	reloaded := NewBlogPostRepo(store)
	require.Len(t, reloaded.FindAll(), 3)
	post := reloaded.FindByID("1")
	require.NotNil(t, post)
	assert.Equal(t, "Book Tour Announcement", post.Title)
}

func TestBlogPostRepo_UpdateKeepsDateAndRederivesExcerpt(t *testing.T) {
	repo := NewBlogPostRepo(newTestStore(t))
	original := repo.FindByID("1")
	require.NotNil(t, original)

	err := repo.Update("1", models.BlogPost{Title: "Renamed", Content: "Fresh content."})
	require.NoError(t, err)

	updated := repo.FindByID("1")
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, original.Date, updated.Date)
	assert.Equal(t, "Fresh content.", updated.Excerpt)
}
