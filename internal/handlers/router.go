package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/debghosh/mysticresin/internal/backup"
	appmiddleware "github.com/debghosh/mysticresin/internal/middleware"
	"github.com/debghosh/mysticresin/internal/store"
	"github.com/debghosh/mysticresin/internal/theme"
)

type RouterConfig struct {
	Store         *store.Store
	Backup        *backup.Service
	Projector     *theme.Projector
	SessionSecret []byte
	CorsOrigins   []string
	Logger        *zap.Logger
}

// NewRouter wires the public catalog surface and the session-gated admin
// surface. The returned stop func releases the rate limiter tickers and must
// be called when the router is retired.
func NewRouter(cfg RouterConfig) (http.Handler, func()) {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Confirm"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)

	r.Get("/health", Health)

	siteHandler := NewSiteHandler(cfg.Store, cfg.Projector)
	productsHandler := NewProductsHandler(cfg.Store, cfg.Logger)
	blogHandler := NewBlogHandler(cfg.Store, cfg.Logger)
	adminHandler := NewAdminHandler(cfg.Store, cfg.Backup, cfg.Projector, cfg.SessionSecret, cfg.Logger)

	// Tight limit on login attempts; the access code is all that gates
	// the admin console.
	loginLimiter := appmiddleware.NewRateLimiter(5, time.Minute)
	publicLimiter := appmiddleware.NewRateLimiter(30, time.Minute)
	stop := func() {
		loginLimiter.Stop()
		publicLimiter.Stop()
	}

	r.Route("/api", func(r chi.Router) {
		r.With(loginLimiter.Limit).Post("/login", adminHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(publicLimiter.Limit)
			r.Get("/site", siteHandler.GetSite)
			r.Get("/services", siteHandler.GetServices)
			r.Get("/categories", siteHandler.GetCategories)
			r.Get("/products", productsHandler.List)
			r.Get("/products/{id}", productsHandler.Get)
			r.Get("/posts", blogHandler.ListPublic)
			r.Get("/posts/{id}", blogHandler.Get)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(appmiddleware.SessionAuth(cfg.SessionSecret, cfg.Store))

			r.Post("/logout", adminHandler.Logout)
			r.Get("/session", adminHandler.Session)
			r.Patch("/config", adminHandler.UpdateConfig)

			r.Post("/products", productsHandler.Create)
			r.Put("/products/{id}", productsHandler.Update)
			r.Delete("/products/{id}", productsHandler.Delete)

			r.Get("/posts", blogHandler.ListAll)
			r.Post("/posts", blogHandler.Create)
			r.Put("/posts/{id}", blogHandler.Update)
			r.Delete("/posts/{id}", blogHandler.Delete)

			r.Get("/export", adminHandler.Export)
			r.Post("/import", adminHandler.Import)
			r.Post("/reset", adminHandler.Reset)
		})
	})

	return r, stop
}
