package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/debghosh/mysticresin/internal/backup"
	"github.com/debghosh/mysticresin/internal/kv"
	"github.com/debghosh/mysticresin/internal/models"
	"github.com/debghosh/mysticresin/internal/store"
	"github.com/debghosh/mysticresin/internal/theme"
)

var testSecret = []byte("test-session-secret")

func newTestRouter(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	kvStore, err := kv.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { kvStore.Close() })

	st := store.Open(kvStore, zap.NewNop())
	router, stop := NewRouter(RouterConfig{
		Store:         st,
		Backup:        backup.NewService(st),
		Projector:     theme.NewProjector(st.Config().Theme),
		SessionSecret: testSecret,
		CorsOrigins:   []string{"*"},
		Logger:        zap.NewNop(),
	})
	t.Cleanup(stop)
	return router, st
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any, extraHeaders map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginAdmin(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/login", "",
		map[string]string{"accessCode": store.DefaultConfig().AdminAccessCode}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWithWrongCode(t *testing.T) {
	router, st := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/login", "",
		map[string]string{"accessCode": "nope"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, st.IsAuthenticated())
}

func TestAdminSurfaceRequiresSession(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/admin/posts", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/posts", "garbage-token", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginThenAccessAdmin(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/admin/posts", token, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/logout", token, nil, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The token signature still verifies but the stored session is gone.
	rec = doJSON(t, router, http.MethodGet, "/api/admin/posts", token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSiteRedactsAccessCode(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/site", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NotContains(t, rec.Body.String(), store.DefaultConfig().AdminAccessCode)
	assert.NotContains(t, rec.Body.String(), "adminAccessCode")

	var resp struct {
		Config  map[string]any `json:"config"`
		Palette theme.Palette  `json:"palette"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ocean", resp.Config["theme"])
	assert.NotEmpty(t, resp.Palette.Primary)
}

func TestPublicPostsHideDrafts(t *testing.T) {
	router, st := newTestRouter(t)

	draft, err := st.AddBlogPost(models.BlogPostDraft{
		Title: "Unpublished", Content: "wip", Author: "Mira", Published: false,
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/posts", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), draft.ID)

	// Direct fetch of a draft 404s too.
	rec = doJSON(t, router, http.MethodGet, "/api/posts/"+draft.ID, "", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func validDraftBody() map[string]any {
	return map[string]any{
		"title":            "Test Tray",
		"shortDescription": "A tray for tests.",
		"longDescription":  "Longer text.",
		"price":            25,
		"category":         "Jewelry Trays",
		"images":           []string{"https://example.com/1.jpg", "https://example.com/2.jpg"},
		"mainImage":        "https://example.com/1.jpg",
	}
}

func TestCreateProduct(t *testing.T) {
	router, st := newTestRouter(t)
	token := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/products", token, validDraftBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	_, ok := st.ProductByID(created.ID)
	assert.True(t, ok)
}

func TestCreateProductValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAdmin(t, router)

	t.Run("price must be positive", func(t *testing.T) {
		body := validDraftBody()
		body["price"] = 0
		rec := doJSON(t, router, http.MethodPost, "/api/admin/products", token, body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "price")
	})

	t.Run("at most five images", func(t *testing.T) {
		body := validDraftBody()
		body["images"] = []string{"a", "b", "c", "d", "e", "f"}
		rec := doJSON(t, router, http.MethodPost, "/api/admin/products", token, body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "5 images")
	})

	t.Run("at least one image", func(t *testing.T) {
		body := validDraftBody()
		body["images"] = []string{}
		rec := doJSON(t, router, http.MethodPost, "/api/admin/products", token, body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		body := validDraftBody()
		body["category"] = "Pottery"
		rec := doJSON(t, router, http.MethodPost, "/api/admin/products", token, body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMainImageFallsBackToFirstImage(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAdmin(t, router)

	body := validDraftBody()
	body["mainImage"] = "https://example.com/removed.jpg"
	rec := doJSON(t, router, http.MethodPost, "/api/admin/products", token, body, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "https://example.com/1.jpg", created.MainImage)
}

func TestUpdateProduct(t *testing.T) {
	router, st := newTestRouter(t)
	token := loginAdmin(t, router)

	existing := st.Products()[0]

	body := validDraftBody()
	body["title"] = "Updated Title"
	rec := doJSON(t, router, http.MethodPut, "/api/admin/products/"+existing.ID, token, body, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got, ok := st.ProductByID(existing.ID)
	require.True(t, ok)
	assert.Equal(t, "Updated Title", got.Title)
	assert.Equal(t, existing.CreatedAt, got.CreatedAt)

	rec = doJSON(t, router, http.MethodPut, "/api/admin/products/no-such-id", token, validDraftBody(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBlogPostValidatesLikeCreate(t *testing.T) {
	router, st := newTestRouter(t)
	token := loginAdmin(t, router)

	existing := st.BlogPosts()[0]

	body := map[string]any{
		"title":   "",
		"content": existing.Content,
		"author":  existing.Author,
	}
	rec := doJSON(t, router, http.MethodPut, "/api/admin/posts/"+existing.ID, token, body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	got, ok := st.BlogPostByID(existing.ID)
	require.True(t, ok)
	assert.Equal(t, existing.Title, got.Title, "rejected update must not blank the stored post")

	body["title"] = "Retitled"
	rec = doJSON(t, router, http.MethodPut, "/api/admin/posts/"+existing.ID, token, body, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got, ok = st.BlogPostByID(existing.ID)
	require.True(t, ok)
	assert.Equal(t, "Retitled", got.Title)
}

func TestDeleteProductRequiresConfirmation(t *testing.T) {
	router, st := newTestRouter(t)
	token := loginAdmin(t, router)

	target := st.Products()[0]

	rec := doJSON(t, router, http.MethodDelete, "/api/admin/products/"+target.ID, token, nil, nil)
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	_, ok := st.ProductByID(target.ID)
	assert.True(t, ok, "product must survive an unconfirmed delete")

	rec = doJSON(t, router, http.MethodDelete, "/api/admin/products/"+target.ID, token, nil,
		map[string]string{"X-Confirm": "delete"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok = st.ProductByID(target.ID)
	assert.False(t, ok)
}

func TestProductFilters(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/products?featured=true", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.True(t, p.IsFeatured)
	}
}

func TestUpdateConfigRejectsUnknownTheme(t *testing.T) {
	router, st := newTestRouter(t)
	token := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodPatch, "/api/admin/config", token,
		map[string]string{"theme": "neon"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ocean", st.Config().Theme)

	rec = doJSON(t, router, http.MethodPatch, "/api/admin/config", token,
		map[string]string{"theme": "sunset", "name": "New Name"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sunset", st.Config().Theme)
	assert.Equal(t, "New Name", st.Config().Name)
}

func TestExportImportThroughAPI(t *testing.T) {
	router, st := newTestRouter(t)
	token := loginAdmin(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/admin/export", token, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	snapshot := rec.Body.Bytes()

	// Wreck the catalog, then restore it from the snapshot.
	require.NoError(t, st.Replace(nil, []models.Product{}, nil))
	require.Empty(t, st.Products())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", bytes.NewReader(snapshot))
	req.Header.Set("Authorization", "Bearer "+token)
	importRec := httptest.NewRecorder()
	router.ServeHTTP(importRec, req)
	require.Equal(t, http.StatusOK, importRec.Code, importRec.Body.String())

	assert.Len(t, st.Products(), 6)
}

func TestImportRejectsGarbage(t *testing.T) {
	router, st := newTestRouter(t)
	token := loginAdmin(t, router)
	productsBefore := st.Products()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader("not valid json"))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, productsBefore, st.Products())
}

func TestResetRequiresDoubleConfirmation(t *testing.T) {
	router, st := newTestRouter(t)
	token := loginAdmin(t, router)

	_, err := st.AddProduct(models.ProductDraft{
		Title: "Doomed", ShortDescription: "x", Price: 1,
		Category: models.CategoryCoasters,
		Images:   []string{"https://example.com/d.jpg"}, MainImage: "https://example.com/d.jpg",
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/reset", token,
		map[string]bool{"confirm": true}, nil)
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Len(t, st.Products(), 7)

	rec = doJSON(t, router, http.MethodPost, "/api/admin/reset", token,
		map[string]bool{"confirm": true, "acknowledgeDataLoss": true}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, st.Products(), 6)
}

func TestRouterStopReleasesRateLimiters(t *testing.T) {
	kvStore, err := kv.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { kvStore.Close() })
	st := store.Open(kvStore, zap.NewNop())

	before := runtime.NumGoroutine()
	_, stop := NewRouter(RouterConfig{
		Store:         st,
		Backup:        backup.NewService(st),
		Projector:     theme.NewProjector(st.Config().Theme),
		SessionSecret: testSecret,
		CorsOrigins:   []string{"*"},
		Logger:        zap.NewNop(),
	})
	require.Greater(t, runtime.NumGoroutine(), before, "limiter cleanup goroutines should be running")

	stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= before {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("rate limiter goroutines still running after stop: %d > %d", runtime.NumGoroutine(), before)
}
