// filepath: internal/store/store.go
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"

	"shopfront/internal/logging"
	"shopfront/internal/models"
	"shopfront/internal/notify"
	"shopfront/internal/shared"
)

// Store owns the config document. It writes through to both backends, keeps
// working when SQLite misbehaves, and is the only component allowed to mutate
// the document.
//
// Persistence rules: a save goes to SQLite first (best effort) and then
// always to the file store. A SQLite failure flips a sticky fallback bit for
// the rest of the process; a file store failure is the real error, rolls the
// in-memory document back to its pre-mutation snapshot and is returned to the
// caller.
type Store struct {
	mu   sync.Mutex
	db   Backend
	file *FileStore
	bus  *notify.Bus

	doc            *models.Document
	fallbackToFile bool
	closed         bool
}

// NewStore combines the two backends. db may be nil when SQLite could not be
// opened at all; the store then starts in file-only mode.
func NewStore(db Backend, file *FileStore, bus *notify.Bus) *Store {
	s := &Store{db: db, file: file, bus: bus}
	if db == nil {
		s.fallbackToFile = true
	}
	return s
}

// Open initializes both backends. A SQLite init failure is logged and flips
// the fallback bit instead of failing the whole store.
func (s *Store) Open() error {
	if err := s.file.Init(); err != nil {
		return err
	}
	if s.db != nil {
		if err := s.db.Init(); err != nil {
			logging.Log.Warnf("SQLite backend unavailable, falling back to file store: %v", err)
			s.fallbackToFile = true
		}
	}
	return nil
}

// Load returns a copy of the current document, or nil when nothing has been
// stored yet. The first call pulls the document from the backends, preferring
// SQLite.
func (s *Store) Load() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, shared.ErrBackendClosed
	}
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	if s.doc == nil {
		return nil, nil
	}
	return s.doc.Clone()
}

// ensureLoaded populates s.doc from the backends. Caller holds the lock.
func (s *Store) ensureLoaded() error {
	if s.doc != nil {
		return nil
	}

	if !s.fallbackToFile && s.db != nil {
		doc, err := s.db.Load()
		switch {
		case err == nil:
			s.doc = doc
			return nil
		case errors.Is(err, shared.ErrNoDocument):
			// Empty database, the file store may still have something.
		default:
			logging.Log.Warnf("SQLite load failed, falling back to file store: %v", err)
			s.fallbackToFile = true
		}
	}

	doc, err := s.file.Load()
	if errors.Is(err, shared.ErrNoDocument) {
		return nil // nothing stored anywhere, s.doc stays nil
	}
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// Mutate applies fn to the document under the store lock, persists the result
// and publishes the new document on the bus. When no document exists yet, fn
// receives a fresh default document.
//
// If fn returns an error, or persistence fails, the document is restored to
// its pre-mutation state and the error is returned; nothing is published.
func (s *Store) Mutate(fn func(doc *models.Document) error) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, shared.ErrBackendClosed
	}
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	if s.doc == nil {
		s.doc = models.NewDocument()
	}

	snapshot, err := s.doc.Clone()
	if err != nil {
		return nil, err
	}

	if err := fn(s.doc); err != nil {
		s.doc = snapshot
		return nil, err
	}

	if err := s.persist(s.doc); err != nil {
		s.doc = snapshot
		return nil, err
	}

	published, err := s.doc.Clone()
	if err != nil {
		return nil, err
	}
	s.bus.Publish(published)
	return published, nil
}

// persist writes to SQLite (best effort) and then to the file store.
func (s *Store) persist(doc *models.Document) error {
	if !s.fallbackToFile && s.db != nil {
		if err := s.db.Save(doc); err != nil {
			logging.Log.Warnf("SQLite save failed, falling back to file store: %v", err)
			s.fallbackToFile = true
		}
	}
	return s.file.Save(doc)
}

// Reload discards the cached document and re-reads it from the backends.
// Used when another process rewrote the config file. Re-reading a document
// identical to the cached one returns (nil, nil): the change was this
// process's own write echoed back by the filesystem, and the file watcher
// must not publish it a second time.
func (s *Store) Reload() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, shared.ErrBackendClosed
	}

	prev := s.doc
	s.doc = nil
	if err := s.ensureLoaded(); err != nil {
		s.doc = prev
		return nil, err
	}
	if s.doc == nil || (prev != nil && documentsEqual(prev, s.doc)) {
		return nil, nil
	}
	return s.doc.Clone()
}

// documentsEqual compares two documents by their canonical JSON encoding.
func documentsEqual(a, b *models.Document) bool {
	ra, err := json.Marshal(a)
	if err != nil {
		return false
	}
	rb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ra, rb)
}

// Stats reports which backend is active and the file store's usage.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	backend := "sqlite"
	if s.fallbackToFile {
		backend = "file"
	}
	st := Stats{
		Backend:    backend,
		FileBytes:  s.file.Size(),
		QuotaBytes: s.file.Quota(),
	}
	if s.doc != nil {
		st.ItemCounts = s.doc.ItemCounts()
	}
	return st
}

// FilePath exposes the file store location for the cross-process watcher.
func (s *Store) FilePath() string { return s.file.Path() }

// Close closes the backends. Every later Load, Mutate or Reload reports
// shared.ErrBackendClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
