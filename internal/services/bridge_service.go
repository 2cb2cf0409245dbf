// filepath: internal/services/bridge_service.go
package services

import (
	"fmt"
	"time"

	"shopfront/internal/bridge"
	"shopfront/internal/models"
	"shopfront/internal/store"
)

type bridgeService struct {
	store *store.Store
	now   func() time.Time
}

// NewBridgeService creates the import/export service.
func NewBridgeService(st *store.Store) BridgeService {
	return &bridgeService{store: st, now: time.Now}
}

var _ BridgeService = (*bridgeService)(nil)

// Export renders the current document as a config.js snippet.
func (s *bridgeService) Export() (string, error) {
	doc, err := s.store.Load()
	if err != nil {
		return "", err
	}
	if doc == nil {
		doc = models.NewDocument()
	}
	return bridge.ExportDocument(doc, s.now())
}

// Import merges a config.js snippet over the current document. A snippet that
// cannot be parsed leaves the document untouched.
func (s *bridgeService) Import(snippet string) (*models.Document, error) {
	return s.store.Mutate(func(doc *models.Document) error {
		merged, err := bridge.ImportSnippet(snippet, doc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		*doc = *merged
		return nil
	})
}

// Backup wraps the current document for download.
func (s *bridgeService) Backup() (*bridge.BackupPayload, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = models.NewDocument()
	}
	payload := bridge.NewBackup(doc, s.now())
	return &payload, nil
}

// Restore replaces the document with the contents of a backup file.
func (s *bridgeService) Restore(raw []byte) (*models.Document, error) {
	return s.store.Mutate(func(doc *models.Document) error {
		restored, err := bridge.ParseBackup(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		*doc = *restored
		return nil
	})
}
