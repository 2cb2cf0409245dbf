// filepath: internal/store/filestore_test.go
package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
	"shopfront/internal/shared"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "config.json"), 0)
	require.NoError(t, fs.Init())

	// Nothing stored yet.
	doc, err := fs.Load()
	assert.ErrorIs(t, err, shared.ErrNoDocument)
	assert.Nil(t, doc)

	in := models.NewDocument()
	in.Products = []models.Product{{ID: 1, Name: "Chair", Price: "$10"}}
	require.NoError(t, fs.Save(in))

	out, err := fs.Load()
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Chair", out.Products[0].Name)
	assert.Greater(t, fs.Size(), int64(0))
}

func TestFileStoreQuota(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "config.json"), 64)
	require.NoError(t, fs.Init())

	doc := models.NewDocument()
	doc.Banners = []models.Banner{{ID: 1, MobileImage: "data:image/png;base64,AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"}}

	err := fs.Save(doc)
	require.Error(t, err)

	var qe *QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, int64(64), qe.QuotaBytes)
	assert.Greater(t, qe.AttemptedBytes, qe.QuotaBytes)
	assert.Equal(t, 1, qe.ItemCounts["banners"])

	// The rejected save must not leave anything behind.
	_, statErr := os.Stat(fs.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStoreAtomicReplace(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "config.json"), 0)
	require.NoError(t, fs.Init())

	first := models.NewDocument()
	first.Logo = "one"
	require.NoError(t, fs.Save(first))

	second := models.NewDocument()
	second.Logo = "two"
	require.NoError(t, fs.Save(second))

	out, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, "two", out.Logo)

	// No temp file left over.
	_, err = os.Stat(fs.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
