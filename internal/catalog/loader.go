// Package catalog loads product records from a catalog directory and keeps
// them fresh while the app runs.
package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"shopfront/internal/config"
	"shopfront/internal/domain"
	"shopfront/internal/eventbus"
)

// Loader scans a catalog directory for product records
type Loader interface {
	StartLoad(ctx context.Context, dir string) error
	StopLoad()
}

// loader is the concrete implementation
type loader struct {
	bus        eventbus.EventBus
	logger     *zap.Logger
	mu         sync.Mutex
	isLoading  bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewLoader creates a catalog loader. It reloads on CatalogLoadRequested.
func NewLoader(bus eventbus.EventBus, logger *zap.Logger) Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &loader{
		bus:    bus,
		logger: logger,
	}

	bus.Subscribe(eventbus.EventCatalogLoadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CatalogLoadRequestedEvent); ok {
			go l.StartLoad(context.Background(), event.Dir)
		}
	})

	return l
}

// StartLoad starts scanning the catalog directory in the background
func (l *loader) StartLoad(ctx context.Context, dir string) error {
	l.mu.Lock()
	if l.isLoading {
		l.mu.Unlock()
		return fmt.Errorf("catalog load already in progress")
	}
	l.isLoading = true

	loadCtx, cancel := context.WithCancel(ctx)
	l.cancelFunc = cancel
	l.mu.Unlock()

	l.bus.Publish(eventbus.CatalogLoadStartedEvent{Dir: dir})

	found := 0

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			l.mu.Lock()
			l.isLoading = false
			l.cancelFunc = nil
			l.mu.Unlock()

			l.bus.Publish(eventbus.CatalogLoadCompletedEvent{ProductsFound: found})
		}()

		found = l.scanDirectory(loadCtx, dir)
	}()

	return nil
}

// StopLoad stops any ongoing load
func (l *loader) StopLoad() {
	l.mu.Lock()
	if l.cancelFunc != nil {
		l.cancelFunc()
	}
	l.mu.Unlock()

	l.wg.Wait()
}

// scanDirectory walks the catalog dir publishing a ProductFound per record.
// Bad records are skipped, never fatal.
func (l *loader) scanDirectory(ctx context.Context, dir string) int {
	found := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			l.logger.Warn("error walking catalog path", zap.String("path", path), zap.Error(err))
			return nil // keep walking
		}

		if d.IsDir() {
			// Asset trees hold no product records
			if d.Name() == "assets" || strings.HasPrefix(d.Name(), ".") && path != dir {
				return fs.SkipDir
			}
			return nil
		}

		if !IsProductFile(path) {
			return nil
		}

		product, perr := ParseProductFile(path)
		if perr != nil {
			l.logger.Warn("skipping bad product file", zap.String("path", path), zap.Error(perr))
			l.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Bad product file %s", filepath.Base(path)),
				Err:     perr,
			})
			return nil
		}

		l.bus.Publish(eventbus.ProductFoundEvent{Product: *product})
		found++
		return nil
	})

	if err != nil && err != context.Canceled {
		l.logger.Error("catalog scan failed", zap.String("dir", dir), zap.Error(err))
		l.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to scan %s", dir),
			Err:     err,
		})
	}

	return found
}

// IsProductFile reports whether path looks like a product record
func IsProductFile(path string) bool {
	if filepath.Ext(path) != ".toml" {
		return false
	}
	// The per-catalog config lives alongside the records
	return filepath.Base(path) != config.FileName
}

// productRecord is the on-disk product schema
type productRecord struct {
	SKU         string        `toml:"sku"`
	Name        string        `toml:"name"`
	Category    string        `toml:"category"`
	PricePaise  int64         `toml:"price_paise"`
	Unit        string        `toml:"unit"`
	Tags        []string      `toml:"tags"`
	Description string        `toml:"description"`
	MinQty      int           `toml:"min_qty"`
	MaxQty      int           `toml:"max_qty"`
	Media       []mediaRecord `toml:"media"`
}

type mediaRecord struct {
	Label  string `toml:"label"`
	Source string `toml:"source"`
}

// ParseProductFile reads and validates one product record
func ParseProductFile(path string) (*domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product file: %w", err)
	}

	var rec productRecord
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse product file: %w", err)
	}

	if rec.SKU == "" {
		return nil, fmt.Errorf("product file %s has no sku", filepath.Base(path))
	}
	if rec.Name == "" {
		return nil, fmt.Errorf("product %s has no name", rec.SKU)
	}
	if rec.PricePaise < 0 {
		return nil, fmt.Errorf("product %s has a negative price", rec.SKU)
	}

	if rec.MinQty < 1 {
		rec.MinQty = 1
	}
	if rec.MaxQty < rec.MinQty {
		rec.MaxQty = defaultMaxQty
		if rec.MaxQty < rec.MinQty {
			rec.MaxQty = rec.MinQty
		}
	}

	product := &domain.Product{
		SKU:         rec.SKU,
		Path:        path,
		Name:        rec.Name,
		DisplayName: rec.Name,
		Category:    rec.Category,
		Price:       domain.Price(rec.PricePaise),
		Unit:        rec.Unit,
		Tags:        rec.Tags,
		Description: rec.Description,
		MinQty:      rec.MinQty,
		MaxQty:      rec.MaxQty,
	}

	for _, m := range rec.Media {
		if m.Source == "" {
			continue
		}
		product.Media = append(product.Media, domain.Media{
			Label:          m.Label,
			DeferredSource: m.Source,
			Kind:           domain.KindForPath(m.Source),
		})
	}

	return product, nil
}

const defaultMaxQty = 99
