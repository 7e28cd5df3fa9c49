package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"shopfront/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventProductFound         = domain.EventProductFound
	EventCatalogLoadStarted   = domain.EventCatalogLoadStarted
	EventCatalogLoadCompleted = domain.EventCatalogLoadCompleted
	EventCatalogLoadRequested = domain.EventCatalogLoadRequested
	EventCatalogChanged       = domain.EventCatalogChanged
	EventAssetLoadRequested   = domain.EventAssetLoadRequested
	EventAssetLoaded          = domain.EventAssetLoaded
	EventTileRevealed         = domain.EventTileRevealed
	EventShortlistChanged     = domain.EventShortlistChanged
	EventConfigLoaded         = domain.EventConfigLoaded
	EventConfigSaved          = domain.EventConfigSaved
	EventConfigChanged        = domain.EventConfigChanged
	EventError                = domain.EventError
	EventAppReady             = domain.EventAppReady
)

// Re-export domain event types
type ProductFoundEvent = domain.ProductFoundEvent
type CatalogLoadStartedEvent = domain.CatalogLoadStartedEvent
type CatalogLoadCompletedEvent = domain.CatalogLoadCompletedEvent
type CatalogLoadRequestedEvent = domain.CatalogLoadRequestedEvent
type CatalogChangedEvent = domain.CatalogChangedEvent
type AssetLoadRequestedEvent = domain.AssetLoadRequestedEvent
type AssetLoadedEvent = domain.AssetLoadedEvent
type TileRevealedEvent = domain.TileRevealedEvent
type ShortlistChangedEvent = domain.ShortlistChangedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type ErrorEvent = domain.ErrorEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type handlerEntry struct {
	id int64
	fn EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]handlerEntry
	nextID    int64
	eventChan chan DomainEvent
	dispatch  sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus and starts its dispatcher
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]handlerEntry),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		logger:    logger,
	}

	b.dispatch.Add(1)
	go b.run()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventTileRevealed, EventAssetLoadRequested:
	default:
		b.logger.Debug("publishing event", zap.String("type", string(event.Type())))
	}

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		b.logger.Warn("event bus channel full, dropping event",
			zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], handlerEntry{id: id, fn: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		entries := b.handlers[eventType]
		for i, e := range entries {
			if e.id == id {
				b.handlers[eventType] = append(entries[:i], entries[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and waits for in-flight handlers to finish
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.dispatch.Wait()
	})
}

// run handles event distribution to subscribers. Handlers are invoked
// inline so every subscriber observes events in publish order — the UI's
// load lifecycle (started, products, completed) relies on it.
func (b *bus) run() {
	defer b.dispatch.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	entries := b.handlers[event.Type()]
	// Copy to avoid holding the lock during handler execution
	entriesCopy := make([]handlerEntry, len(entries))
	copy(entriesCopy, entries)
	b.mu.RUnlock()

	for _, entry := range entriesCopy {
		b.invoke(entry.fn, event)
	}
}

// invoke isolates handler panics so one bad subscriber cannot take the
// dispatcher down with it
func (b *bus) invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}
