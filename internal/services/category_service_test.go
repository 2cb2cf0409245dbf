// filepath: internal/services/category_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
)

func TestCategorySlug(t *testing.T) {
	assert.Equal(t, "homedecor", CategorySlug("  Home  Decor "))
	assert.Equal(t, "toys", CategorySlug("TOYS"))
	assert.Equal(t, "", CategorySlug("   "))
}

func TestCategoryCreate(t *testing.T) {
	svc := NewCategoryService(newTestStore(t))

	category, err := svc.Create(models.CategoryPayload{
		ID: "Home Decor", Name: "Home Decor", NameKm: "គ្រឿងតុបតែងផ្ទះ",
	})
	require.NoError(t, err)
	assert.Equal(t, "homedecor", category.ID)

	// The sentinel is always present ahead of new entries.
	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.AllCategoryID, list[0].ID)
}

func TestCategoryCreateRejectsDuplicateAndMissingFields(t *testing.T) {
	svc := NewCategoryService(newTestStore(t))

	_, err := svc.Create(models.CategoryPayload{ID: "toys", Name: "Toys"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(models.CategoryPayload{ID: "toys", Name: "Toys", NameKm: "ល្បែងក្មេង"})
	require.NoError(t, err)

	// Slugs collide even when the raw IDs differ.
	_, err = svc.Create(models.CategoryPayload{ID: " TOYS ", Name: "Other", NameKm: "ផ្សេង"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCategorySentinelImmune(t *testing.T) {
	svc := NewCategoryService(newTestStore(t))

	_, err := svc.Update(models.AllCategoryID, models.CategoryPayload{
		ID: "everything", Name: "Everything", NameKm: "ទាំងអស់",
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(models.AllCategoryID), ErrForbidden)

	// Renaming another category onto the sentinel is also rejected.
	_, err = svc.Create(models.CategoryPayload{ID: "toys", Name: "Toys", NameKm: "ល្បែងក្មេង"})
	require.NoError(t, err)
	_, err = svc.Update("toys", models.CategoryPayload{ID: "All", Name: "All", NameKm: "ទាំងអស់"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCategoryRenameLeavesDanglingProducts(t *testing.T) {
	st := newTestStore(t)
	categories := NewCategoryService(st)
	products := NewProductService(st)

	_, err := categories.Create(models.CategoryPayload{ID: "toys", Name: "Toys", NameKm: "ល្បែងក្មេង"})
	require.NoError(t, err)
	product, err := products.Create(models.ProductPayload{Name: ptr("Robot"), Category: ptr("toys")})
	require.NoError(t, err)

	_, err = categories.Update("toys", models.CategoryPayload{
		ID: "gadgets", Name: "Gadgets", NameKm: "ឧបករណ៍",
	})
	require.NoError(t, err)

	// The product keeps its old reference; that is allowed.
	got, err := products.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "toys", got.Category)
}

func TestCategoryDelete(t *testing.T) {
	svc := NewCategoryService(newTestStore(t))

	_, err := svc.Create(models.CategoryPayload{ID: "toys", Name: "Toys", NameKm: "ល្បែងក្មេង"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("toys"))
	assert.ErrorIs(t, svc.Delete("toys"), ErrNotFound)
}
