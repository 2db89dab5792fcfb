// Package store owns all site state: the singleton site configuration, the
// product and blog collections, and the admin session. Every mutation
// synchronously re-serializes the touched collection to the persistent
// key-value store, which is the sole source of truth across restarts.
package store

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/debghosh/mysticresin/internal/kv"
	"github.com/debghosh/mysticresin/internal/models"
)

// Storage keys. Fixed and namespaced; saved data from every prior release
// of the shop lives under these names, so they must never change, the
// rebrand notwithstanding.
const (
	keyConfig     = "shellysResin_config"
	keyProducts   = "shellysResin_products"
	keyBlogPosts  = "shellysResin_blogPosts"
	keyAdminState = "shellysResin_adminState"
)

// SessionDuration is how long an admin session stays valid after login.
const SessionDuration = time.Hour

type Store struct {
	kv  *kv.Store
	log *zap.Logger

	mu        sync.RWMutex
	config    models.SiteConfig
	products  []models.Product
	blogPosts []models.BlogPost
	admin     models.AdminState

	// now and genID are swappable for tests.
	now   func() time.Time
	genID func(prefix string) string
}

// Open loads all collections from the key-value store. An absent or
// unparseable entry falls back to its built-in defaults; that recovery is
// silent apart from a log line, per-entry, so one corrupt blob never takes
// the rest of the site down with it.
func Open(kvStore *kv.Store, logger *zap.Logger) *Store {
	s := &Store{
		kv:    kvStore,
		log:   logger,
		now:   time.Now,
		genID: NewID,
	}

	s.config = loadEntry(s, keyConfig, DefaultConfig)
	s.products = loadEntry(s, keyProducts, func() []models.Product { return DefaultProducts(s.now()) })
	s.blogPosts = loadEntry(s, keyBlogPosts, DefaultBlogPosts)

	s.admin = loadEntry(s, keyAdminState, func() models.AdminState { return models.AdminState{} })
	if !s.sessionValid(s.admin) {
		s.admin = models.AdminState{}
	}

	return s
}

func loadEntry[T any](s *Store, key string, defaults func() T) T {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("failed to read entry, using defaults", zap.String("key", key), zap.Error(err))
		return defaults()
	}
	if !ok {
		return defaults()
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Warn("unparseable entry, using defaults", zap.String("key", key), zap.Error(err))
		return defaults()
	}
	return v
}

// persist serializes v and writes it under key. Callers hold the write lock.
func (s *Store) persist(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(key, string(data))
}

// timestampLayout pads milliseconds to a fixed width so that string order
// matches time order; RFC3339Nano trims trailing zeros and breaks that.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

// Snapshot returns a consistent copy of the three exportable collections.
func (s *Store) Snapshot() (models.SiteConfig, []models.Product, []models.BlogPost) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	posts := make([]models.BlogPost, len(s.blogPosts))
	copy(posts, s.blogPosts)
	return s.config, products, posts
}

// Replace overwrites whichever collections are non-nil, wholesale, and
// persists each one. Used by import; nil arguments leave the corresponding
// collection untouched.
func (s *Store) Replace(config *models.SiteConfig, products []models.Product, blogPosts []models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if config != nil {
		s.config = *config
		if err := s.persist(keyConfig, s.config); err != nil {
			return err
		}
	}
	if products != nil {
		s.products = products
		if err := s.persist(keyProducts, s.products); err != nil {
			return err
		}
	}
	if blogPosts != nil {
		s.blogPosts = blogPosts
		if err := s.persist(keyBlogPosts, s.blogPosts); err != nil {
			return err
		}
	}
	return nil
}

// ResetToDefaults overwrites all three collections with the built-in
// datasets. Destructive; callers are responsible for confirmation.
func (s *Store) ResetToDefaults() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = DefaultConfig()
	s.products = DefaultProducts(s.now())
	s.blogPosts = DefaultBlogPosts()

	if err := s.persist(keyConfig, s.config); err != nil {
		return err
	}
	if err := s.persist(keyProducts, s.products); err != nil {
		return err
	}
	return s.persist(keyBlogPosts, s.blogPosts)
}

// Config returns the current site configuration.
func (s *Store) Config() models.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// ApplyConfig merges a partial update into the site configuration and
// persists the result.
func (s *Store) ApplyConfig(patch models.ConfigPatch) (models.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.Apply(&s.config)
	if err := s.persist(keyConfig, s.config); err != nil {
		return s.config, err
	}
	return s.config, nil
}
