// filepath: internal/notify/watcher.go
package notify

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"shopfront/internal/logging"
	"shopfront/internal/models"
)

// Watcher republishes changes written to the config file by another process,
// the cross-process counterpart of the in-process bus.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchFile watches path and, whenever it is written, loads the document via
// load and publishes it on bus. Events are debounced because editors and
// atomic renames produce bursts.
func WatchFile(path string, load func() (*models.Document, error), bus *Bus) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: atomic rename writes replace the file node, and
	// a watch on the old node would go stale after the first save.
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{watcher: fw, done: make(chan struct{})}
	target := filepath.Clean(path)

	go func() {
		var pending <-chan time.Time
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				pending = time.After(100 * time.Millisecond)
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logging.Log.Warnf("Config file watcher error: %v", err)
			case <-pending:
				pending = nil
				doc, err := load()
				if err != nil {
					logging.Log.Warnf("Failed to reload config after external change: %v", err)
					continue
				}
				if doc != nil {
					logging.Log.Debug("Config file changed externally, publishing update")
					bus.Publish(doc)
				}
			case <-w.done:
				return
			}
		}
	}()

	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
