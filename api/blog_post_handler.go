package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dsartorelli/book-site-backend/database"
	"github.com/dsartorelli/book-site-backend/errs"
	"github.com/dsartorelli/book-site-backend/models"
	"github.com/dsartorelli/book-site-backend/services"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// BlogPostCollection represents a filtered, newest-first blog listing
type BlogPostCollection struct {
	BlogPosts  []models.BlogPost `json:"blogPosts"`
	Total      int               `json:"total"`
	Categories []string          `json:"categories,omitempty"`
}

// BlogPostDetail is a single post plus everything the post page needs: the
// rendered body and the neighbouring posts for prev/next navigation.
type BlogPostDetail struct {
	BlogPost    models.BlogPost  `json:"blogPost"`
	ContentHTML string           `json:"contentHtml"`
	PrevPost    *models.BlogPost `json:"prevPost,omitempty"`
	NextPost    *models.BlogPost `json:"nextPost,omitempty"`
}

// getAllBlogPosts lists posts newest first, honouring the optional category
// and search query parameters the blog page forwards.
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var posts []models.BlogPost
		switch {
		case r.URL.Query().Get("category") != "":
			posts = h.blogPostRepo.ByCategory(r.URL.Query().Get("category"))
		case r.URL.Query().Get("search") != "":
			posts = h.blogPostRepo.Search(r.URL.Query().Get("search"))
		default:
			posts = h.blogPostRepo.Sorted()
		}
		if posts == nil {
			posts = []models.BlogPost{}
		}

		h.responder.WriteJSON(w, BlogPostCollection{
			BlogPosts:  posts,
			Total:      len(posts),
			Categories: h.blogPostRepo.Categories(),
		})
	}
}

// getBlogPost returns a single post with rendered content and neighbours.
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID := chi.URLParam(r, "blogPostID")
		if blogPostID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogPostID"))
			return
		}

		post := h.blogPostRepo.FindByID(blogPostID)
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		contentHTML, err := services.RenderPostHTML(post.Content)
		if err != nil {
			h.logger.Error().Err(err).Str("blogPostID", blogPostID).Msg("Failed to render blog post content")
		}
		prev, next := h.blogPostRepo.Adjacent(blogPostID)

		h.responder.WriteJSON(w, BlogPostDetail{
			BlogPost:    *post,
			ContentHTML: contentHTML,
			PrevPost:    prev,
			NextPost:    next,
		})
	}
}

// getBlogCategories returns the distinct categories for the sidebar.
func (h blogPostHandler) getBlogCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := h.blogPostRepo.Categories()
		if categories == nil {
			categories = []string{}
		}
		h.responder.WriteJSON(w, map[string]any{
			"categories": categories,
		})
	}
}

// createBlogPost adds a post; a blank excerpt is derived from the content.
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		created, err := h.blogPostRepo.Add(post)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateBlogPost replaces an existing post; unknown ids are a no-op.
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID := chi.URLParam(r, "blogPostID")
		if blogPostID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogPostID"))
			return
		}

		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.blogPostRepo.Update(blogPostID, post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post updated successfully",
		})
	}
}

// deleteBlogPost removes a post. Deleting an absent id still succeeds.
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID := chi.URLParam(r, "blogPostID")
		if blogPostID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogPostID"))
			return
		}

		if err := h.blogPostRepo.Delete(blogPostID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
