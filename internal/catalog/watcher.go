package catalog

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"shopfront/internal/eventbus"
)

// Watcher republishes product files through the bus when they change on
// disk, so an edited catalog shows up without restarting the app.
type Watcher struct {
	bus     eventbus.EventBus
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher starts watching the catalog directory for product file changes
func NewWatcher(bus eventbus.EventBus, logger *zap.Logger, dir string) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		bus:     bus,
		logger:  logger,
		watcher: fsw,
		done:    make(chan struct{}),
	}

	go w.run()

	return w, nil
}

// AddDir watches an additional directory, e.g. a products/ subdirectory
func (w *Watcher) AddDir(dir string) error {
	return w.watcher.Add(dir)
}

// Close stops the watcher
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

// handleEvent turns one filesystem event into bus traffic
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !IsProductFile(event.Name) {
		return
	}

	switch {
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		w.logger.Info("product file removed", zap.String("path", event.Name))
		w.bus.Publish(eventbus.CatalogChangedEvent{Path: event.Name, Removed: true})

	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		product, err := ParseProductFile(event.Name)
		if err != nil {
			// Editors write in chunks; a half-written record shows up here
			w.logger.Debug("ignoring unparseable product file change",
				zap.String("path", event.Name), zap.Error(err))
			return
		}
		w.logger.Info("product file changed", zap.String("path", event.Name),
			zap.String("sku", product.SKU))
		w.bus.Publish(eventbus.ProductFoundEvent{Product: *product})
		w.bus.Publish(eventbus.CatalogChangedEvent{Path: event.Name})
	}
}
