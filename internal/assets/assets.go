package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"shopfront/internal/domain"
	"shopfront/internal/eventbus"
)

const (
	// loadTimeout bounds a single file read.
	loadTimeout = 10 * time.Second
	// maxConcurrentLoads limits parallel disk reads.
	maxConcurrentLoads = 4
	// defaultMaxBytes caps how much of an asset is read into memory.
	defaultMaxBytes = 4 << 20
)

// Service loads deferred product assets on demand.
type Service interface {
	Load(ctx context.Context, sku, path string) ([]byte, domain.AssetKind, error)
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	logger   *zap.Logger
	root     string
	maxBytes int64

	workerPool chan struct{} // Semaphore for limiting concurrent reads

	mu    sync.Mutex
	cache map[string]cachedAsset
}

type cachedAsset struct {
	kind    domain.AssetKind
	content []byte
}

// NewService creates an asset loader rooted at the catalog directory.
// It subscribes to load requests and answers them in the background.
func NewService(bus eventbus.EventBus, logger *zap.Logger, root string) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &service{
		bus:        bus,
		logger:     logger,
		root:       root,
		maxBytes:   defaultMaxBytes,
		workerPool: make(chan struct{}, maxConcurrentLoads),
		cache:      make(map[string]cachedAsset),
	}

	// Subscribe to asset load requests
	bus.Subscribe(eventbus.EventAssetLoadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AssetLoadRequestedEvent); ok {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
				defer cancel()
				s.Load(ctx, event.SKU, event.Path)
			}()
		}
	})

	return s
}

// Load reads a single asset and publishes the outcome. A missing or
// unreadable file publishes an event with Err set rather than failing
// the caller; the detail view renders a placeholder for those.
func (s *service) Load(ctx context.Context, sku, path string) ([]byte, domain.AssetKind, error) {
	resolved := s.resolve(path)
	kind := domain.KindForPath(resolved)

	// Serve repeat requests from the cache; a tile revealed twice
	// must not hit the disk twice.
	s.mu.Lock()
	if hit, ok := s.cache[resolved]; ok {
		s.mu.Unlock()
		s.publishLoaded(sku, path, hit.kind, hit.content, nil)
		return hit.content, hit.kind, nil
	}
	s.mu.Unlock()

	// Acquire worker slot
	select {
	case s.workerPool <- struct{}{}:
		defer func() { <-s.workerPool }()
	case <-ctx.Done():
		s.publishLoaded(sku, path, kind, nil, ctx.Err())
		return nil, kind, ctx.Err()
	}

	start := time.Now()
	content, err := s.readCapped(resolved)
	if err != nil {
		s.logger.Warn("Asset load failed",
			zap.String("sku", sku),
			zap.String("path", resolved),
			zap.Error(err))
		s.publishLoaded(sku, path, kind, nil, err)
		return nil, kind, err
	}

	s.mu.Lock()
	s.cache[resolved] = cachedAsset{kind: kind, content: content}
	s.mu.Unlock()

	s.logger.Debug("Asset loaded",
		zap.String("sku", sku),
		zap.String("path", resolved),
		zap.String("kind", string(kind)),
		zap.Int("bytes", len(content)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	s.publishLoaded(sku, path, kind, content, nil)
	return content, kind, nil
}

// resolve maps a catalog-relative source to an absolute path.
func (s *service) resolve(path string) string {
	if filepath.IsAbs(path) || s.root == "" {
		return path
	}
	return filepath.Join(s.root, path)
}

// readCapped reads the file, refusing anything over the size cap.
func (s *service) readCapped(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("asset is a directory: %s", path)
	}
	if info.Size() > s.maxBytes {
		return nil, fmt.Errorf("asset too large: %s is %d bytes (limit %d)", path, info.Size(), s.maxBytes)
	}
	return os.ReadFile(path)
}

// publishLoaded publishes an asset load outcome
func (s *service) publishLoaded(sku, path string, kind domain.AssetKind, content []byte, err error) {
	s.bus.Publish(eventbus.AssetLoadedEvent{
		SKU:     sku,
		Path:    path,
		Kind:    kind,
		Content: content,
		Err:     err,
	})
}
