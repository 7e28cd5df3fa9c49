package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/eventbus"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	svc := NewService()
	cfg := &Config{
		Version:         1,
		CatalogDir:      "/srv/catalog",
		RevealThreshold: 0.25,
		TileHeight:      3,
		Currency:        "₹",
		UISettings: UISettings{
			ShowPrices:     true,
			AutosaveOnExit: true,
			SortMode:       "price",
		},
	}

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.CatalogDir, loaded.CatalogDir)
	assert.Equal(t, cfg.RevealThreshold, loaded.RevealThreshold)
	assert.Equal(t, cfg.TileHeight, loaded.TileHeight)
	assert.Equal(t, cfg.UISettings, loaded.UISettings)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewService()
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadClampsThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	raw := []byte("version = 1\ncatalog_dir = \"/srv/catalog\"\nreveal_threshold = 2.5\ntile_height = 0\n")
	require.NoError(t, os.WriteFile(path, raw, 0644))

	svc := NewService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.RevealThreshold)
	assert.Equal(t, DefaultTileHeight, cfg.TileHeight)
	assert.Equal(t, DefaultCurrency, cfg.Currency)
	assert.Equal(t, "name", cfg.UISettings.SortMode)
}

func TestSaveAnnouncesOnBus(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()
	saved := make(chan struct{}, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- struct{}{}
	})

	svc := NewServiceWithBus(bus)
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, svc.SaveToPath(Default(), path))

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("save never announced")
	}
}

func TestNormalizeNegativeThreshold(t *testing.T) {
	cfg := &Config{RevealThreshold: -0.3, TileHeight: 2, Currency: "₹"}
	cfg.Normalize()
	assert.Equal(t, 0.0, cfg.RevealThreshold)
}

func TestDefaultIsNormalized(t *testing.T) {
	cfg := Default()
	before := *cfg
	cfg.Normalize()
	assert.Equal(t, before, *cfg)
}
