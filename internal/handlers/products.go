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

// confirmHeader must be sent on destructive requests; it stands in for the
// "are you sure" dialog a browser client would show.
const confirmHeader = "X-Confirm"

type ProductsHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewProductsHandler(st *store.Store, logger *zap.Logger) *ProductsHandler {
	return &ProductsHandler{store: st, log: logger}
}

// List serves the catalog, newest first, with optional filters.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	featured := q.Get("featured") == "true"
	isNew := q.Get("new") == "true"
	bestseller := q.Get("bestseller") == "true"

	products := h.store.Products()
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && string(p.Category) != category {
			continue
		}
		if featured && !p.IsFeatured {
			continue
		}
		if isNew && !p.IsNew {
			continue
		}
		if bestseller && !p.IsBestSeller {
			continue
		}
		out = append(out, p)
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, ok := h.store.ProductByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Create adds a product from an admin-submitted draft. Validation lives
// here at the form boundary; the repository itself accepts any record.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if errs := validateProductDraft(&draft); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	created, err := h.store.AddProduct(draft)
	if err != nil {
		h.log.Error("failed to persist product", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save product")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update replaces the product matching the URL id with the submitted
// fields. The original creation time is preserved; the repository
// refreshes the update time.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, ok := h.store.ProductByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var draft models.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if errs := validateProductDraft(&draft); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	updated := models.Product{
		ID:               existing.ID,
		Title:            draft.Title,
		ShortDescription: draft.ShortDescription,
		LongDescription:  draft.LongDescription,
		Price:            draft.Price,
		Category:         draft.Category,
		Images:           draft.Images,
		MainImage:        draft.MainImage,
		IsFeatured:       draft.IsFeatured,
		IsNew:            draft.IsNew,
		IsBestSeller:     draft.IsBestSeller,
		Dimensions:       draft.Dimensions,
		Materials:        draft.Materials,
		CareInstructions: draft.CareInstructions,
		Weight:           draft.Weight,
		CreatedAt:        existing.CreatedAt,
	}

	saved, err := h.store.UpdateProduct(updated)
	if err != nil {
		h.log.Error("failed to persist product", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save product")
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// Delete removes a product permanently. The confirm header is required;
// without it nothing happens.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(confirmHeader) != "delete" {
		respondError(w, http.StatusPreconditionRequired, "destructive operation requires X-Confirm: delete")
		return
	}
	id := chi.URLParam(r, "id")
	existed, err := h.store.DeleteProduct(id)
	if err != nil {
		h.log.Error("failed to persist deletion", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateProductDraft enforces the form-boundary rules and normalizes the
// main image: if the chosen main image is no longer in the gallery it
// falls back to the first image, or empty when the gallery is empty.
func validateProductDraft(draft *models.ProductDraft) []string {
	var errs []string
	if strings.TrimSpace(draft.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(draft.ShortDescription) == "" {
		errs = append(errs, "short description is required")
	}
	if draft.Price <= 0 {
		errs = append(errs, "price must be greater than 0")
	}
	if len(draft.Images) == 0 {
		errs = append(errs, "at least one image is required")
	}
	if len(draft.Images) > models.MaxProductImages {
		errs = append(errs, "maximum 5 images allowed per product")
	}
	if !draft.Category.IsValid() {
		errs = append(errs, "unknown category")
	}
	if len(errs) > 0 {
		return errs
	}

	if !containsImage(draft.Images, draft.MainImage) {
		if len(draft.Images) > 0 {
			draft.MainImage = draft.Images[0]
		} else {
			draft.MainImage = ""
		}
	}
	return nil
}

func containsImage(images []string, img string) bool {
	for _, i := range images {
		if i == img {
			return true
		}
	}
	return false
}
