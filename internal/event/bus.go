// Package event provides the synchronous in-process event bus that decouples
// match/message/report writes from notification fan-out. Handlers run in
// subscription order on the publisher's goroutine; a handler error never rolls
// back the write that produced the event.
package event

import (
	"context"
	"errors"
	"sync"
)

// Event is anything that can be published on the bus.
type Event interface {
	Name() string
}

// Handler consumes a published event. Handlers must tolerate redelivery of
// semantically equal events.
type Handler func(ctx context.Context, e Event) error

// Bus is a minimal synchronous publish/subscribe hub.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all events.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers e to every handler in order and returns the joined errors.
// Delivery is best-effort: a failing handler does not stop later ones.
func (b *Bus) Publish(ctx context.Context, e Event) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
