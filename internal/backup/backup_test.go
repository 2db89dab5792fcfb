package backup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/debghosh/mysticresin/internal/kv"
	"github.com/debghosh/mysticresin/internal/models"
	"github.com/debghosh/mysticresin/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	kvStore, err := kv.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { kvStore.Close() })

	st := store.Open(kvStore, zap.NewNop())
	return NewService(st), st
}

func TestExportShape(t *testing.T) {
	svc, _ := newTestService(t)

	data, err := svc.Export()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "config")
	assert.Contains(t, doc, "products")
	assert.Contains(t, doc, "blogPosts")
	assert.Contains(t, doc, "exportDate")
	assert.JSONEq(t, `"1.0"`, string(doc["version"]))
}

func TestImportExportRoundTrip(t *testing.T) {
	svc, st := newTestService(t)

	_, err := st.AddProduct(models.ProductDraft{
		Title:            "Round Trip Tray",
		ShortDescription: "Test tray.",
		Price:            10,
		Category:         models.CategoryTrays,
		Images:           []string{"https://example.com/t.jpg"},
		MainImage:        "https://example.com/t.jpg",
	})
	require.NoError(t, err)

	configBefore, productsBefore, postsBefore := st.Snapshot()

	data, err := svc.Export()
	require.NoError(t, err)
	require.NoError(t, svc.Import(data))

	configAfter, productsAfter, postsAfter := st.Snapshot()
	assert.Equal(t, configBefore, configAfter)
	assert.Equal(t, productsBefore, productsAfter)
	assert.Equal(t, postsBefore, postsAfter)
}

func TestPartialImportTouchesOnlyPresentKeys(t *testing.T) {
	svc, st := newTestService(t)
	configBefore := st.Config()
	postsBefore := st.BlogPosts()

	require.NoError(t, svc.Import([]byte(`{"products": []}`)))

	assert.Empty(t, st.Products())
	assert.Equal(t, configBefore, st.Config())
	assert.Equal(t, postsBefore, st.BlogPosts())
}

func TestImportInvalidJSONIsAtomic(t *testing.T) {
	svc, st := newTestService(t)
	configBefore, productsBefore, postsBefore := st.Snapshot()

	err := svc.Import([]byte("not valid json"))
	require.Error(t, err)

	configAfter, productsAfter, postsAfter := st.Snapshot()
	assert.Equal(t, configBefore, configAfter)
	assert.Equal(t, productsBefore, productsAfter)
	assert.Equal(t, postsBefore, postsAfter)
}

func TestImportRejectsWrongShape(t *testing.T) {
	svc, st := newTestService(t)
	productsBefore := st.Products()

	// products must be an array of objects.
	err := svc.Import([]byte(`{"products": {"id": "1"}}`))
	require.Error(t, err)
	assert.Equal(t, productsBefore, st.Products())

	err = svc.Import([]byte(`{"products": ["just a string"]}`))
	require.Error(t, err)
	assert.Equal(t, productsBefore, st.Products())
}

func TestImportIgnoresUnknownKeys(t *testing.T) {
	svc, st := newTestService(t)
	productsBefore := st.Products()

	require.NoError(t, svc.Import([]byte(`{"somethingElse": 42, "version": "0.9"}`)))
	assert.Equal(t, productsBefore, st.Products())
}

func TestImportReplacesWholesale(t *testing.T) {
	svc, st := newTestService(t)

	doc := `{
		"products": [{
			"id": "only-one",
			"title": "Sole Product",
			"shortDescription": "The only one left.",
			"price": 12,
			"category": "Coasters",
			"images": ["https://example.com/x.jpg"],
			"mainImage": "https://example.com/x.jpg",
			"isFeatured": false,
			"createdAt": "2025-01-01T00:00:00Z",
			"updatedAt": "2025-01-01T00:00:00Z"
		}]
	}`
	require.NoError(t, svc.Import([]byte(doc)))

	products := st.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "only-one", products[0].ID)
	assert.Equal(t, "Sole Product", products[0].Title)
}

func TestImportedConfigReplacesWholesale(t *testing.T) {
	svc, st := newTestService(t)

	doc := `{"config": {"name": "Imported Name", "theme": "marble"}}`
	require.NoError(t, svc.Import([]byte(doc)))

	cfg := st.Config()
	assert.Equal(t, "Imported Name", cfg.Name)
	assert.Equal(t, "marble", cfg.Theme)
	// Wholesale replacement: fields absent from the document zero out.
	assert.Empty(t, cfg.AdminAccessCode)
}

func TestImportWithoutAccessCodeLocksAdminGate(t *testing.T) {
	svc, st := newTestService(t)

	require.NoError(t, svc.Import([]byte(`{"config": {"name": "Imported", "theme": "ocean"}}`)))

	ok, err := st.Login("")
	require.NoError(t, err)
	assert.False(t, ok, "empty access code must not authenticate")
	assert.False(t, st.IsAuthenticated())
}
