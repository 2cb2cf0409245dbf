// filepath: internal/services/services_test.go
package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
	"shopfront/internal/notify"
	"shopfront/internal/store"
)

// newTestStore builds a file-only store in a temp dir.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "config.json"), 1<<20)
	st := store.NewStore(nil, fs, notify.NewBus())
	require.NoError(t, st.Open())
	return st
}

// ptr builds the pointer fields of partial payloads.
func ptr[T any](v T) *T { return &v }

func TestProductCreateFillsFallbacks(t *testing.T) {
	svc := NewProductService(newTestStore(t))

	product, err := svc.Create(models.ProductPayload{NameKm: ptr("កៅអី")})
	require.NoError(t, err)

	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "កៅអី", product.Name) // borrowed from the Khmer name
	assert.Equal(t, "កៅអី", product.NameKm)
	assert.Equal(t, "general", product.Category)
	assert.Equal(t, "$0", product.Price)
	assert.Equal(t, placeholderImage, product.Image)
	assert.Equal(t, "No description", product.Description)
	assert.Equal(t, "គ្មានការពិពណ៌នា", product.DescriptionKm)
	assert.NotNil(t, product.Images)
}

func TestProductCreateRequiresNameOrDescription(t *testing.T) {
	svc := NewProductService(newTestStore(t))

	_, err := svc.Create(models.ProductPayload{Price: ptr("$10")})
	assert.ErrorIs(t, err, ErrValidation)

	products, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductImageContactGuard(t *testing.T) {
	svc := NewProductService(newTestStore(t))

	_, err := svc.Create(models.ProductPayload{
		Name:  ptr("Chair"),
		Image: ptr("https://t.me/myshop"),
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(models.ProductPayload{Name: ptr("Chair"), Image: ptr("+85512345678")})
	assert.ErrorIs(t, err, ErrValidation)

	// A long data URI with a plus sign is fine.
	_, err = svc.Create(models.ProductPayload{
		Name:  ptr("Chair"),
		Image: ptr("data:image/png;base64,iVBORw0KGgoAAAANSUhEUg+AAAABJRU5ErkJggg=="),
	})
	assert.NoError(t, err)
}

func TestProductVideoURLNormalized(t *testing.T) {
	svc := NewProductService(newTestStore(t))

	product, err := svc.Create(models.ProductPayload{
		Name:     ptr("Chair"),
		VideoURL: ptr("https://youtu.be/dQw4w9WgXcQ"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", product.VideoURL)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", product.EmbedURL)
}

func TestIDsNeverReuseMiddleGaps(t *testing.T) {
	svc := NewProductService(newTestStore(t))

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(models.ProductPayload{Name: ptr(name)})
		require.NoError(t, err)
	}
	require.NoError(t, svc.Delete(2))

	product, err := svc.Create(models.ProductPayload{Name: ptr("d")})
	require.NoError(t, err)
	assert.Equal(t, 4, product.ID, "gap left by a deleted item must not be reused")
}

func TestProductUpdateKeepsOmittedFields(t *testing.T) {
	svc := NewProductService(newTestStore(t))

	product, err := svc.Create(models.ProductPayload{
		Name:        ptr("Chair"),
		Price:       ptr("$25"),
		Image:       ptr("https://cdn.example.com/chair.jpg"),
		Description: ptr("Solid oak chair"),
	})
	require.NoError(t, err)

	// Renaming must not reset the fields the payload left out.
	updated, err := svc.Update(product.ID, models.ProductPayload{Name: ptr("Chair Deluxe")})
	require.NoError(t, err)
	assert.Equal(t, "Chair Deluxe", updated.Name)
	assert.Equal(t, "$25", updated.Price)
	assert.Equal(t, "https://cdn.example.com/chair.jpg", updated.Image)
	assert.Equal(t, "Solid oak chair", updated.Description)

	// An explicit empty string still clears the field back to its default.
	cleared, err := svc.Update(product.ID, models.ProductPayload{Price: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "$0", cleared.Price)
	assert.Equal(t, "Chair Deluxe", cleared.Name)
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := NewProductService(newTestStore(t))

	_, err := svc.Update(42, models.ProductPayload{Name: ptr("Chair")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(42), ErrNotFound)
}

func TestPostFallbacksAndToggle(t *testing.T) {
	svc := NewPostService(newTestStore(t))

	post, err := svc.Create(models.PostPayload{ContentKm: ptr("មាតិកា"), Type: ptr("image")})
	require.NoError(t, err)
	assert.Equal(t, "Post", post.Title)
	assert.Equal(t, "ប្រកាស", post.TitleKm)
	assert.Equal(t, "មាតិកា", post.Content)
	assert.Equal(t, "#", post.Link)
	assert.Equal(t, imagePostPlaceholder, post.Image)
	assert.False(t, post.Enabled)

	toggled, err := svc.Toggle(post.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Enabled)

	toggled, err = svc.Toggle(post.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Enabled)
}

func TestVideoPostRequiresURL(t *testing.T) {
	svc := NewPostService(newTestStore(t))

	_, err := svc.Create(models.PostPayload{Title: ptr("Clip"), Type: ptr("video")})
	assert.ErrorIs(t, err, ErrValidation)

	post, err := svc.Create(models.PostPayload{
		Title:    ptr("Clip"),
		Type:     ptr("video"),
		VideoURL: ptr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", post.EmbedURL)
	assert.Equal(t, "1/1", post.AspectRatio)
	assert.Equal(t, videoPostPlaceholder, post.Image)
}

func TestPostUpdateKeepsOmittedFields(t *testing.T) {
	svc := NewPostService(newTestStore(t))

	post, err := svc.Create(models.PostPayload{
		Title:   ptr("News"),
		Content: ptr("Opening hours changed"),
		Type:    ptr("image"),
		Image:   ptr("news.jpg"),
	})
	require.NoError(t, err)

	_, err = svc.Toggle(post.ID)
	require.NoError(t, err)

	updated, err := svc.Update(post.ID, models.PostPayload{Title: ptr("Fresh News")})
	require.NoError(t, err)
	assert.Equal(t, "Fresh News", updated.Title)
	assert.Equal(t, "Opening hours changed", updated.Content)
	assert.Equal(t, "news.jpg", updated.Image)
	assert.True(t, updated.Enabled, "published state must survive an unrelated edit")
}

func TestEventRequiresAllTextFields(t *testing.T) {
	svc := NewEventService(newTestStore(t))

	_, err := svc.Create(models.EventPayload{
		Title: ptr("Launch"), TitleKm: ptr("បើកដំណើរការ"), Description: ptr("Grand opening"),
		Type: ptr("image"), Image: ptr("x.jpg"),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEventTypeRules(t *testing.T) {
	svc := NewEventService(newTestStore(t))
	base := models.EventPayload{
		Title: ptr("Launch"), TitleKm: ptr("បើកដំណើរការ"),
		Description: ptr("Grand opening"), DescriptionKm: ptr("ពិធីបើក"),
	}

	// Video events need an embed URL; the image field is cleared.
	payload := base
	payload.Type = ptr("video")
	_, err := svc.Create(payload)
	assert.ErrorIs(t, err, ErrValidation)

	payload.EmbedURL = ptr("https://www.youtube.com/embed/dQw4w9WgXcQ")
	payload.Image = ptr("leftover.jpg")
	event, err := svc.Create(payload)
	require.NoError(t, err)
	assert.Equal(t, "1/1", event.AspectRatio)
	assert.Equal(t, "", event.Image)

	// Image events need artwork; the embed URL is cleared.
	payload = base
	payload.Type = ptr("image")
	_, err = svc.Create(payload)
	assert.ErrorIs(t, err, ErrValidation)

	payload.Image = ptr("event.jpg")
	payload.EmbedURL = ptr("leftover")
	event, err = svc.Create(payload)
	require.NoError(t, err)
	assert.Equal(t, "event.jpg", event.Image)
	assert.Equal(t, "", event.EmbedURL)

	payload.Type = ptr("audio")
	_, err = svc.Create(payload)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEventUpdateTypeSwitch(t *testing.T) {
	svc := NewEventService(newTestStore(t))

	event, err := svc.Create(models.EventPayload{
		Title: ptr("Launch"), TitleKm: ptr("បើកដំណើរការ"),
		Description: ptr("Grand opening"), DescriptionKm: ptr("ពិធីបើក"),
		Type: ptr("image"), Image: ptr("event.jpg"),
	})
	require.NoError(t, err)

	// Switching to video needs fresh media; the old image cannot stand in.
	_, err = svc.Update(event.ID, models.EventPayload{Type: ptr("video")})
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := svc.Update(event.ID, models.EventPayload{
		Type:     ptr("video"),
		EmbedURL: ptr("https://www.youtube.com/embed/dQw4w9WgXcQ"),
	})
	require.NoError(t, err)
	assert.Equal(t, "video", updated.Type)
	assert.Equal(t, "1/1", updated.AspectRatio)
	assert.Equal(t, "", updated.Image)
	assert.Equal(t, "Launch", updated.Title, "text fields carry over untouched")
}

func TestSettingsCustomNavColorsGated(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))

	solid := "solid"
	colors := &models.NavColors{Background: "#111", Text: "#eee", ActiveButton: "#f00"}

	doc, err := svc.Update(models.SettingsPayload{NavigationStyle: &solid, CustomNavColors: colors})
	require.NoError(t, err)
	assert.Equal(t, "#2c3e50", doc.CustomNavColors.Background, "colors ignored unless style is custom")

	custom := "custom"
	doc, err = svc.Update(models.SettingsPayload{NavigationStyle: &custom, CustomNavColors: colors})
	require.NoError(t, err)
	assert.Equal(t, "#111", doc.CustomNavColors.Background)
}

func TestSettingsDefaultLanguage(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))

	assert.ErrorIs(t, svc.SetDefaultLanguage("fr"), ErrValidation)
	require.NoError(t, svc.SetDefaultLanguage("km"))

	doc, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "km", doc.DefaultLanguage)
}

func TestTranslationsUploadRejectedWholesale(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))

	require.NoError(t, svc.UploadTranslations([]byte(`{"welcome":{"en":"Hi","km":"សួស្តី"}}`)))

	err := svc.UploadTranslations([]byte(`{"welcome":"Hi","count":42}`))
	assert.ErrorIs(t, err, ErrValidation)

	doc, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Hi", doc.LanguageData["welcome"].En, "failed upload must keep the old table")

	require.NoError(t, svc.ResetTranslations())
	doc, err = svc.Get()
	require.NoError(t, err)
	assert.Nil(t, doc.LanguageData)
}

func TestLanguageFlags(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))

	assert.ErrorIs(t, svc.SetLanguageFlag("en", ""), ErrValidation)
	require.NoError(t, svc.SetLanguageFlag("en", "flag-en.png"))
	require.NoError(t, svc.SetLanguageFlag("km", "flag-km.png"))
	require.NoError(t, svc.DeleteLanguageFlag("en"))

	doc, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"km": "flag-km.png"}, doc.LanguageFlags)

	require.NoError(t, svc.ResetLanguageFlags())
	doc, err = svc.Get()
	require.NoError(t, err)
	assert.Nil(t, doc.LanguageFlags)
}

func TestBridgeServiceImportFailureLeavesStore(t *testing.T) {
	st := newTestStore(t)
	products := NewProductService(st)
	svc := NewBridgeService(st)

	_, err := products.Create(models.ProductPayload{Name: ptr("Chair")})
	require.NoError(t, err)

	_, err = svc.Import("this is not a config snippet")
	assert.ErrorIs(t, err, ErrValidation)

	list, err := products.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBridgeServiceRoundTrip(t *testing.T) {
	st := newTestStore(t)
	products := NewProductService(st)
	svc := NewBridgeService(st)

	_, err := products.Create(models.ProductPayload{Name: ptr("Chair"), Price: ptr("$10")})
	require.NoError(t, err)

	snippet, err := svc.Export()
	require.NoError(t, err)

	other := NewBridgeService(newTestStore(t))
	imported, err := other.Import(snippet)
	require.NoError(t, err)
	require.Len(t, imported.Products, 1)
	assert.Equal(t, "Chair", imported.Products[0].Name)
}
