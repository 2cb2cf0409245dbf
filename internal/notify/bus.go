// filepath: internal/notify/bus.go
package notify

import (
	"sync"

	"shopfront/internal/models"
)

// Handler receives the document after a successful save. Handlers must treat
// the document as read-only.
type Handler func(doc *models.Document)

// Bus fans out change notifications to in-process subscribers. Delivery is
// fire-and-forget and at most once per publish: a failed or slow subscriber
// never blocks or retries a save.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]Handler)}
}

// Subscribe registers a handler and returns a function that removes it.
// Unsubscribing twice is harmless.
func (b *Bus) Subscribe(fn Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers the document to every current subscriber. Subscribers are
// invoked synchronously, so a notification published during a save is visible
// before the save call returns.
func (b *Bus) Publish(doc *models.Document) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(doc)
	}
}
