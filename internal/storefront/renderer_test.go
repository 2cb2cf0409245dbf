// filepath: internal/storefront/renderer_test.go
package storefront

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
	"shopfront/internal/notify"
	"shopfront/internal/store"
)

func newTestStore(t *testing.T, bus *notify.Bus) *store.Store {
	t.Helper()
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "config.json"), 1<<20)
	st := store.NewStore(nil, fs, bus)
	require.NoError(t, st.Open())
	return st
}

func TestSectionOrderingAndTieBreaks(t *testing.T) {
	doc := models.NewDocument()
	doc.CustomSections = []models.CustomSection{
		// Same order as the built-in "problem" section: built-in wins the tie.
		{ID: 1, NameEn: "Featured", NameKm: "ពិសេស", Enabled: true, Order: 4},
		// Order zero falls back to 5.
		{ID: 2, NameEn: "Deals", NameKm: "បញ្ចុះតម្លៃ", Enabled: true},
		// Disabled sections never appear.
		{ID: 3, NameEn: "Hidden", NameKm: "លាក់", Enabled: false, Order: 1},
	}

	sections := buildSections(doc, "en")

	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"promotion", "event", "products", "problem", "custom-1", "custom-2"}, ids)
}

func TestSectionsSkipEmptyLabels(t *testing.T) {
	doc := models.NewDocument()
	doc.SectionSettings["promotion"] = models.SectionSetting{Enabled: true, Order: 1}
	doc.SectionSettings["event"] = models.SectionSetting{Enabled: false, NameEn: "EVENT", NameKm: "x", Order: 2}

	sections := buildSections(doc, "en")
	for _, s := range sections {
		assert.NotEqual(t, "promotion", s.ID, "nameless section must be skipped")
		assert.NotEqual(t, "event", s.ID, "disabled section must be skipped")
	}
}

func TestViewLanguageResolution(t *testing.T) {
	doc := models.NewDocument()
	doc.Categories = append(doc.Categories, models.Category{ID: "toys", Name: "Toys", NameKm: "ល្បែងក្មេង"})
	doc.Products = []models.Product{
		{ID: 1, Name: "Robot", Category: "toys"},
		{ID: 2, Name: "Ghost", Category: "deleted"},
	}

	view := buildView(doc, "km")
	assert.Equal(t, "គេហទំព័រទូរស័ព្ទ", view.Title)
	require.Len(t, view.Products, 2)
	assert.Equal(t, "ល្បែងក្មេង", view.Products[0].CategoryName)
	// Dangling category references fall back to the raw ID.
	assert.Equal(t, "deleted", view.Products[1].CategoryName)

	view = buildView(doc, "en")
	assert.Equal(t, "Toys", view.Products[0].CategoryName)
}

func TestRendererCacheInvalidation(t *testing.T) {
	bus := notify.NewBus()
	st := newTestStore(t, bus)
	r := NewRenderer(st, bus)

	view, err := r.Render("en")
	require.NoError(t, err)
	assert.Empty(t, view.Products)

	_, err = st.Mutate(func(doc *models.Document) error {
		doc.Products = append(doc.Products, models.Product{ID: 1, Name: "Chair", Category: "all"})
		return nil
	})
	require.NoError(t, err)

	view, err = r.Render("en")
	require.NoError(t, err)
	assert.Len(t, view.Products, 1)
}

func TestRendererDefersWhileDetailOpen(t *testing.T) {
	bus := notify.NewBus()
	st := newTestStore(t, bus)
	r := NewRenderer(st, bus)

	_, err := r.Render("en")
	require.NoError(t, err)

	r.HoldDetail()
	_, err = st.Mutate(func(doc *models.Document) error {
		doc.Products = append(doc.Products, models.Product{ID: 1, Name: "Chair", Category: "all"})
		return nil
	})
	require.NoError(t, err)

	// The update is parked while the detail is open.
	view, err := r.Render("en")
	require.NoError(t, err)
	assert.Empty(t, view.Products)

	r.ReleaseDetail()
	view, err = r.Render("en")
	require.NoError(t, err)
	assert.Len(t, view.Products, 1)
}

func TestRendererOnlyEnabledContent(t *testing.T) {
	bus := notify.NewBus()
	st := newTestStore(t, bus)
	r := NewRenderer(st, bus)

	_, err := st.Mutate(func(doc *models.Document) error {
		doc.Banners = []models.Banner{
			{ID: 1, MobileImage: "m.jpg", Enabled: true, ShowOnMobile: true},
			{ID: 2, MobileImage: "x.jpg", Enabled: false, ShowOnMobile: true},
		}
		doc.Posts = []models.Post{
			{ID: 1, Title: "Live", Enabled: true, Type: "image"},
			{ID: 2, Title: "Draft", Enabled: false, Type: "image"},
		}
		return nil
	})
	require.NoError(t, err)

	view, err := r.Render("en")
	require.NoError(t, err)
	require.Len(t, view.Banners, 1)
	assert.Equal(t, 1, view.Banners[0].ID)
	require.Len(t, view.Posts, 1)
	assert.Equal(t, "Live", view.Posts[0].Title)
}

func TestProxyImageURL(t *testing.T) {
	assert.Equal(t,
		"https://images.weserv.nl/?url=https%3A%2F%2Fcdn.example.com%2Fa.jpg",
		ProxyImageURL("https://cdn.example.com/a.jpg"))
	// Data URIs and relative paths cannot be proxied.
	assert.Equal(t, "data:image/png;base64,AAAA", ProxyImageURL("data:image/png;base64,AAAA"))
	assert.Equal(t, "img/local.png", ProxyImageURL("img/local.png"))
}
