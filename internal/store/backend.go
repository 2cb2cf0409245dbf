// filepath: internal/store/backend.go
package store

import (
	"fmt"

	"shopfront/internal/models"
)

// Backend persists the config document. Load reports shared.ErrNoDocument
// when nothing has been stored yet.
type Backend interface {
	Init() error
	Load() (*models.Document, error)
	Save(doc *models.Document) error
	Close() error
}

// QuotaError is returned when a save would exceed the file store's byte
// quota. It carries enough context to tell the admin what got too big.
type QuotaError struct {
	AttemptedBytes int64
	QuotaBytes     int64
	ItemCounts     map[string]int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("config of %.2fMB exceeds the %.2fMB storage quota",
		float64(e.AttemptedBytes)/1024/1024, float64(e.QuotaBytes)/1024/1024)
}

// Stats describes the state of the persistent store. Values may be unknown
// when a backend cannot report them.
type Stats struct {
	Backend    string         `json:"backend"` // "sqlite" or "file"
	FileBytes  int64          `json:"file_bytes"`
	QuotaBytes int64          `json:"quota_bytes"`
	ItemCounts map[string]int `json:"item_counts"`
}
