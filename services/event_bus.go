package services

import (
	"log"
	"sync"
	"time"

	"futnion_server/models"
)

// EventHandler reacts to a published event. Handlers must not assume they run
// on the publisher's goroutine.
type EventHandler func(event models.Event)

// EventBus is the in-process publish/subscribe channel that decouples state
// transitions from their side effects. Events are queued and delivered by a
// single dispatcher goroutine, so every subscriber sees events in publish
// order, and the publishing operation never waits for listener work. A
// panicking handler is isolated: it is logged and the remaining handlers for
// that event still run.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler

	queue   chan models.Event
	pending sync.WaitGroup
	done    chan struct{}
	once    sync.Once
}

// DefaultEventQueueSize bounds the dispatch queue. Publish blocks instead of
// dropping when the queue is full.
const DefaultEventQueueSize = 256

func NewEventBus(queueSize int) *EventBus {
	if queueSize <= 0 {
		queueSize = DefaultEventQueueSize
	}
	bus := &EventBus{
		handlers: make(map[string][]EventHandler),
		queue:    make(chan models.Event, queueSize),
		done:     make(chan struct{}),
	}
	go bus.dispatchLoop()
	return bus
}

// Subscribe registers a handler for an event kind. Handlers for the same kind
// run in registration order. Call during startup wiring, before traffic.
func (b *EventBus) Subscribe(kind string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], handler)
}

// Publish enqueues an event for delivery. Publishing with zero subscribers is
// a no-op. The event's timestamp is stamped here if the caller left it zero.
func (b *EventBus) Publish(event models.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	b.pending.Add(1)
	select {
	case <-b.done:
		b.pending.Done()
	case b.queue <- event:
	}
}

func (b *EventBus) dispatchLoop() {
	for {
		select {
		case event := <-b.queue:
			b.deliver(event)
		case <-b.done:
			// Drain whatever was queued before Close.
			for {
				select {
				case event := <-b.queue:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *EventBus) deliver(event models.Event) {
	defer b.pending.Done()

	b.mu.RLock()
	handlers := b.handlers[event.Kind]
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.invoke(handler, event)
	}
}

// invoke isolates a single handler so one failing listener cannot stop
// delivery to the rest.
func (b *EventBus) invoke(handler EventHandler, event models.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Event listener panicked on %s: %v", event.Kind, r)
		}
	}()
	handler(event)
}

// Drain blocks until every event published so far has been delivered. Used at
// shutdown and by tests that assert on listener state.
func (b *EventBus) Drain() {
	b.pending.Wait()
}

// Close stops the dispatcher after draining queued events. Publish after
// Close is a no-op.
func (b *EventBus) Close() {
	b.once.Do(func() {
		b.pending.Wait()
		close(b.done)
	})
}
