// filepath: internal/bridge/backup.go
package bridge

import (
	"encoding/json"
	"fmt"
	"time"

	"shopfront/internal/models"
)

// BackupPayload is the downloadable backup wrapper around the document.
type BackupPayload struct {
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version"`
	Config    *models.Document `json:"config"`
}

// backupVersion identifies the backup layout.
const backupVersion = "1.0"

// NewBackup wraps the document for download.
func NewBackup(doc *models.Document, now time.Time) BackupPayload {
	return BackupPayload{
		Timestamp: now.UTC().Format(time.RFC3339),
		Version:   backupVersion,
		Config:    doc,
	}
}

// ParseBackup decodes a backup file and returns the wrapped document.
func ParseBackup(raw []byte) (*models.Document, error) {
	var payload BackupPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid backup file: %w", err)
	}
	if payload.Config == nil {
		return nil, fmt.Errorf("backup file has no config block")
	}
	models.EnsureDefaults(payload.Config)
	return payload.Config, nil
}
