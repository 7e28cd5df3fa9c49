package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"shopfront/internal/eventbus"
)

// FileName is the per-catalog configuration file name
const FileName = "shopfront.toml"

// Config represents the application configuration
type Config struct {
	Version         int        `toml:"version"`
	CatalogDir      string     `toml:"catalog_dir"`
	RevealThreshold float64    `toml:"reveal_threshold"` // fraction of a tile that must be visible
	TileHeight      int        `toml:"tile_height"`      // rows per catalog tile
	Currency        string     `toml:"currency"`
	UISettings      UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowPrices                bool   `toml:"show_prices"`
	CollapseCategoriesOnStart bool   `toml:"collapse_categories_on_start"`
	AutosaveOnExit            bool   `toml:"autosave_on_exit"`
	SortMode                  string `toml:"sort_mode"` // "name", "price" or "category"
}

// Service handles configuration management. The config file lives inside
// the browsed catalog directory, so callers always name the path.
type Service interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	bus eventbus.EventBus
}

// NewService creates a config service without bus announcements
func NewService() Service {
	return &service{}
}

// NewServiceWithBus creates a config service that announces loads and
// saves on the bus
func NewServiceWithBus(bus eventbus.EventBus) Service {
	return &service{bus: bus}
}

// LoadFromPath loads configuration from a specific path
func (cs *service) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{CatalogDir: cfg.CatalogDir})
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// Normalize clamps out-of-range values to usable ones
func (c *Config) Normalize() {
	if c.RevealThreshold < 0 {
		c.RevealThreshold = 0
	}
	if c.RevealThreshold > 1 {
		c.RevealThreshold = 1
	}
	if c.TileHeight < 1 {
		c.TileHeight = DefaultTileHeight
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	switch c.UISettings.SortMode {
	case "name", "price", "category":
	default:
		c.UISettings.SortMode = "name"
	}
}

// Defaults
const (
	DefaultRevealThreshold = 0.5
	DefaultTileHeight      = 2
	DefaultCurrency        = "₹"
)

// Default returns the default configuration
func Default() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Version:         1,
		CatalogDir:      filepath.Join(homeDir, "catalog"),
		RevealThreshold: DefaultRevealThreshold,
		TileHeight:      DefaultTileHeight,
		Currency:        DefaultCurrency,
		UISettings: UISettings{
			ShowPrices:     true,
			AutosaveOnExit: true,
			SortMode:       "name",
		},
	}
}
