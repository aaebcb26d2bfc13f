package database

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
	"github.com/dsartorelli/book-site-backend/storage"
)

// BlogPostRepo manages the bookBlogPosts collection and the derived list
// views the public site renders: date-sorted, filtered, searched, and the
// previous/next links on a single post.
type BlogPostRepo struct {
	mu     sync.Mutex
	store  *storage.Store
	posts  []models.BlogPost
	logger zerolog.Logger
}

func NewBlogPostRepo(store *storage.Store) *BlogPostRepo {
	return &BlogPostRepo{
		store:  store,
		posts:  storage.Load(store, slotBlogPosts, defaultBlogPosts),
		logger: log.With().Str("collection", slotBlogPosts).Logger(),
	}
}

// FindAll returns a snapshot in insertion order.
func (r *BlogPostRepo) FindAll() []models.BlogPost {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.BlogPost(nil), r.posts...)
}

// FindByID returns the post with the given id, or nil.
func (r *BlogPostRepo) FindByID(id string) *models.BlogPost {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			post := r.posts[i]
			return &post
		}
	}
	return nil
}

// Add assigns an id and creation timestamp, derives the excerpt when none was
// given, appends the post, and persists the collection.
func (r *BlogPostRepo) Add(post models.BlogPost) (models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = newRecordID()
	post.Date = time.Now().UTC().Format(time.RFC3339)
	if post.Excerpt == "" {
		post.Excerpt = models.DeriveExcerpt(post.Content)
	}
	if err := post.Validate(); err != nil {
		return models.BlogPost{}, err
	}

	updated := append(append([]models.BlogPost(nil), r.posts...), post)
	if err := storage.Save(r.store, slotBlogPosts, updated); err != nil {
		r.logger.Error().Err(err).Msg("add rolled back, collection not persisted")
		return models.BlogPost{}, errs.NewSaveFailedError("blog posts", err)
	}
	r.posts = updated
	return post, nil
}

// Update replaces the post with the given id, keeping its original id and
// creation date. An unknown id is a no-op.
func (r *BlogPostRepo) Update(id string, post models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.posts {
		if r.posts[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	post.ID = id
	if post.Date == "" {
		post.Date = r.posts[idx].Date
	}
	if post.Excerpt == "" && post.Content != "" {
		post.Excerpt = models.DeriveExcerpt(post.Content)
	}
	// Only records that load cleanly may be persisted
	if err := post.Validate(); err != nil {
		return err
	}
	updated := append([]models.BlogPost(nil), r.posts...)
	updated[idx] = post
	if err := storage.Save(r.store, slotBlogPosts, updated); err != nil {
		r.logger.Error().Err(err).Msg("update rolled back, collection not persisted")
		return errs.NewSaveFailedError("blog posts", err)
	}
	r.posts = updated
	return nil
}

// Delete removes the post with the given id; absent ids are a no-op.
func (r *BlogPostRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]models.BlogPost, 0, len(r.posts))
	for _, post := range r.posts {
		if post.ID != id {
			updated = append(updated, post)
		}
	}
	if len(updated) == len(r.posts) {
		return nil
	}
	if err := storage.Save(r.store, slotBlogPosts, updated); err != nil {
		r.logger.Error().Err(err).Msg("delete rolled back, collection not persisted")
		return errs.NewSaveFailedError("blog posts", err)
	}
	r.posts = updated
	return nil
}

// Sorted returns posts newest first. The sort is stable: posts sharing a
// timestamp keep their stored relative order.
func (r *BlogPostRepo) Sorted() []models.BlogPost {
	posts := r.FindAll()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Time().After(posts[j].Time())
	})
	return posts
}

// ByCategory filters the sorted list on an exact category match. Posts
// without a category never match any filter.
func (r *BlogPostRepo) ByCategory(category string) []models.BlogPost {
	var matched []models.BlogPost
	for _, post := range r.Sorted() {
		if post.Category != "" && post.Category == category {
			matched = append(matched, post)
		}
	}
	return matched
}

// Search returns sorted posts whose title, content, excerpt, or author
// contains the query, case-insensitively.
func (r *BlogPostRepo) Search(query string) []models.BlogPost {
	q := strings.ToLower(query)
	var matched []models.BlogPost
	for _, post := range r.Sorted() {
		if strings.Contains(strings.ToLower(post.Title), q) ||
			strings.Contains(strings.ToLower(post.Content), q) ||
			strings.Contains(strings.ToLower(post.Excerpt), q) ||
			(post.Author != "" && strings.Contains(strings.ToLower(post.Author), q)) {
			matched = append(matched, post)
		}
	}
	return matched
}

// Adjacent returns the neighbours of the given post in the sorted list:
// prev is the next-older post, next the next-newer. Either is nil at the
// boundary or when the id is unknown.
func (r *BlogPostRepo) Adjacent(id string) (prev, next *models.BlogPost) {
	sorted := r.Sorted()
	for i := range sorted {
		if sorted[i].ID != id {
			continue
		}
		if i+1 < len(sorted) {
			p := sorted[i+1]
			prev = &p
		}
		if i > 0 {
			n := sorted[i-1]
			next = &n
		}
		return prev, next
	}
	return nil, nil
}

// Categories returns the distinct non-empty categories across all posts, in
// order of first appearance.
func (r *BlogPostRepo) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, post := range r.FindAll() {
		if post.Category == "" || seen[post.Category] {
			continue
		}
		seen[post.Category] = true
		categories = append(categories, post.Category)
	}
	return categories
}
