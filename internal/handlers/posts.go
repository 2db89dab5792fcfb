package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/debghosh/mysticresin/internal/models"
	"github.com/debghosh/mysticresin/internal/store"
)

type BlogHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewBlogHandler(st *store.Store, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{store: st, log: logger}
}

// ListPublic serves published posts only.
func (h *BlogHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.PublishedBlogPosts())
}

// ListAll serves every post, drafts included. Admin only.
func (h *BlogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.BlogPosts())
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, ok := h.store.BlogPostByID(id)
	if !ok || !post.Published {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.BlogPostDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if errs := validateBlogFields(draft.Title, draft.Content, draft.Author); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	created, err := h.store.AddBlogPost(draft)
	if err != nil {
		h.log.Error("failed to persist blog post", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save post")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update replaces the whole record matching the URL id.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.store.BlogPostByID(id); !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	post.ID = id
	if errs := validateBlogFields(post.Title, post.Content, post.Author); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	if err := h.store.UpdateBlogPost(post); err != nil {
		h.log.Error("failed to persist blog post", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save post")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(confirmHeader) != "delete" {
		respondError(w, http.StatusPreconditionRequired, "destructive operation requires X-Confirm: delete")
		return
	}
	id := chi.URLParam(r, "id")
	existed, err := h.store.DeleteBlogPost(id)
	if err != nil {
		h.log.Error("failed to persist deletion", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateBlogFields(title, content, author string) []string {
	var errs []string
	if strings.TrimSpace(title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(content) == "" {
		errs = append(errs, "content is required")
	}
	if strings.TrimSpace(author) == "" {
		errs = append(errs, "author is required")
	}
	return errs
}
