package handlers

import (
	"net/http"

	"github.com/debghosh/mysticresin/internal/models"
	"github.com/debghosh/mysticresin/internal/store"
	"github.com/debghosh/mysticresin/internal/theme"
)

type SiteHandler struct {
	store     *store.Store
	projector *theme.Projector
}

func NewSiteHandler(st *store.Store, projector *theme.Projector) *SiteHandler {
	return &SiteHandler{store: st, projector: projector}
}

// publicConfig is SiteConfig with the admin access code redacted.
type publicConfig struct {
	Name           string `json:"name"`
	Theme          string `json:"theme"`
	HeroTitle      string `json:"heroTitle"`
	HeroSubtitle   string `json:"heroSubtitle"`
	AboutText      string `json:"aboutText"`
	ContactEmail   string `json:"contactEmail"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

type siteResponse struct {
	Config  publicConfig  `json:"config"`
	Palette theme.Palette `json:"palette"`
}

// GetSite serves the public site configuration together with the palette
// projected from the current theme.
func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	cfg := h.store.Config()
	palette := h.projector.Apply(cfg.Theme)

	respondJSON(w, http.StatusOK, siteResponse{
		Config: publicConfig{
			Name:           cfg.Name,
			Theme:          cfg.Theme,
			HeroTitle:      cfg.HeroTitle,
			HeroSubtitle:   cfg.HeroSubtitle,
			AboutText:      cfg.AboutText,
			ContactEmail:   cfg.ContactEmail,
			PrimaryColor:   cfg.PrimaryColor,
			SecondaryColor: cfg.SecondaryColor,
		},
		Palette: palette,
	})
}

// GetServices serves the static services page entries.
func (h *SiteHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, store.Services())
}

// GetCategories serves the fixed category list for catalog filters.
func (h *SiteHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.Categories())
}
