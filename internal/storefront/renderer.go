// filepath: internal/storefront/renderer.go
package storefront

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"shopfront/internal/models"
	"shopfront/internal/notify"
	"shopfront/internal/store"
)

// Renderer builds storefront views from the config document. Views are cached
// per language and invalidated when a new document is published on the bus.
//
// While a product detail is open (HoldDetail), published documents are parked
// instead of applied, so the open detail never has content swapped out under
// it. The newest parked document is applied when the last hold is released.
type Renderer struct {
	store *store.Store
	cache *cache.Cache

	mu      sync.Mutex
	doc     *models.Document
	pending *models.Document
	holds   int
}

// NewRenderer creates a renderer subscribed to document updates.
func NewRenderer(st *store.Store, bus *notify.Bus) *Renderer {
	r := &Renderer{
		store: st,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
	bus.Subscribe(r.onUpdate)
	return r
}

// Render returns the view for one language, serving from cache when possible.
func (r *Renderer) Render(lang string) (*View, error) {
	if lang != "km" {
		lang = "en"
	}
	if cached, ok := r.cache.Get(lang); ok {
		return cached.(*View), nil
	}

	doc, err := r.currentDoc()
	if err != nil {
		return nil, err
	}
	view := buildView(doc, lang)
	r.cache.Set(lang, view, cache.DefaultExpiration)
	return view, nil
}

// HoldDetail marks a product detail as open, deferring content updates.
func (r *Renderer) HoldDetail() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.holds++
}

// ReleaseDetail releases one hold. When the last hold goes, any document that
// arrived in the meantime takes effect.
func (r *Renderer) ReleaseDetail() {
	r.mu.Lock()
	flush := false
	if r.holds > 0 {
		r.holds--
	}
	if r.holds == 0 && r.pending != nil {
		r.doc = r.pending
		r.pending = nil
		flush = true
	}
	r.mu.Unlock()

	if flush {
		r.cache.Flush()
	}
}

// onUpdate receives published documents from the bus.
func (r *Renderer) onUpdate(doc *models.Document) {
	r.mu.Lock()
	if r.holds > 0 {
		r.pending = doc
		r.mu.Unlock()
		return
	}
	r.doc = doc
	r.mu.Unlock()

	r.cache.Flush()
}

// currentDoc returns the rendering snapshot, loading it on first use.
func (r *Renderer) currentDoc() (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.doc == nil {
		doc, err := r.store.Load()
		if err != nil {
			return nil, err
		}
		if doc == nil {
			doc = models.NewDocument()
		}
		r.doc = doc
	}
	return r.doc, nil
}
