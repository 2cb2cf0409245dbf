// filepath: internal/notify/watcher_test.go
package notify_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
	"shopfront/internal/notify"
	"shopfront/internal/store"
)

// The test lives outside the package because it drives the watcher with a
// real file store, and store already imports notify.

func TestWatchFilePublishesExternalWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	fs := store.NewFileStore(path, 0)
	require.NoError(t, fs.Init())

	bus := notify.NewBus()
	got := make(chan *models.Document, 1)
	bus.Subscribe(func(doc *models.Document) {
		select {
		case got <- doc:
		default:
		}
	})

	w, err := notify.WatchFile(path, fs.Load, bus)
	require.NoError(t, err)
	defer w.Close()

	// Another process rewrites the config file.
	doc := models.NewDocument()
	doc.Logo = "from-another-process"
	require.NoError(t, fs.Save(doc))

	select {
	case published := <-got:
		require.NotNil(t, published)
		assert.Equal(t, "from-another-process", published.Logo)
	case <-time.After(2 * time.Second):
		t.Fatal("no update published after the config file was rewritten")
	}
}

func TestWatchFileSkipsNilDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	fs := store.NewFileStore(path, 0)
	require.NoError(t, fs.Init())

	bus := notify.NewBus()
	published := make(chan struct{}, 1)
	bus.Subscribe(func(doc *models.Document) {
		select {
		case published <- struct{}{}:
		default:
		}
	})

	// A loader returning nil signals "nothing new"; the daemon's store does
	// this when the write on disk was its own.
	w, err := notify.WatchFile(path, func() (*models.Document, error) { return nil, nil }, bus)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, fs.Save(models.NewDocument()))

	select {
	case <-published:
		t.Fatal("nil documents must not be published")
	case <-time.After(500 * time.Millisecond):
	}
}
