// filepath: internal/store/filestore.go
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"shopfront/internal/models"
	"shopfront/internal/shared"
)

// FileStore keeps the document as a single JSON file. It is the synchronous,
// capacity-limited backend: simple, always written, and the one an operator
// can read or replace with a text editor.
type FileStore struct {
	path  string
	quota int64 // bytes, 0 disables the check
}

var _ Backend = (*FileStore)(nil)

// NewFileStore creates a file store at path with the given byte quota.
func NewFileStore(path string, quota int64) *FileStore {
	return &FileStore{path: path, quota: quota}
}

// Path returns the location of the JSON file.
func (f *FileStore) Path() string { return f.path }

// Init makes sure the parent directory exists.
func (f *FileStore) Init() error {
	dir := filepath.Dir(f.path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// Load reads and decodes the document. A missing file reports
// shared.ErrNoDocument: nothing has been stored yet.
func (f *FileStore) Load() (*models.Document, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, shared.ErrNoDocument
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	return &doc, nil
}

// Save encodes the document and writes it atomically via a temp file and
// rename. A document larger than the quota is rejected with a QuotaError
// before anything touches disk.
func (f *FileStore) Save(doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if f.quota > 0 && int64(len(raw)) > f.quota {
		return &QuotaError{
			AttemptedBytes: int64(len(raw)),
			QuotaBytes:     f.quota,
			ItemCounts:     doc.ItemCounts(),
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// Size reports the current file size in bytes, 0 when absent.
func (f *FileStore) Size() int64 {
	info, err := os.Stat(f.path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// Quota returns the configured byte limit.
func (f *FileStore) Quota() int64 { return f.quota }

// Close is a no-op; the file store holds no open handles.
func (f *FileStore) Close() error { return nil }
