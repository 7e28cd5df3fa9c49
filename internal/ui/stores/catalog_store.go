package stores

import (
	"shopfront/internal/domain"
	"shopfront/internal/ui/state"
)

// CatalogStore provides read access to catalog and shortlist data
type CatalogStore interface {
	// Product operations
	GetProduct(sku string) (*domain.Product, bool)
	GetAllProducts() map[string]*domain.Product
	GetOrderedSKUs() []string

	// Category operations
	GetCategories() []string
	IsCategoryExpanded(name string) bool

	// Shortlist operations
	IsShortlisted(sku string) bool
	GetShortlist() map[string]bool
	GetShortlistCount() int
	GetQuantity(sku string) int

	// Reveal and asset state
	IsRevealed(sku string) bool
	IsAssetLoading(path string) bool
	GetAsset(path string) (state.AssetContent, bool)

	// UI state queries
	IsLoading() bool
	GetStatusMessage() string

	// Search and filter state
	GetSearchQuery() string
	GetFilterQuery() string
	IsFiltered() bool
}

// StateCatalogStore implements CatalogStore using AppState
type StateCatalogStore struct {
	state *state.AppState
}

// NewStateCatalogStore creates a new catalog store backed by AppState
func NewStateCatalogStore(appState *state.AppState) *StateCatalogStore {
	return &StateCatalogStore{
		state: appState,
	}
}

// Product operations
func (s *StateCatalogStore) GetProduct(sku string) (*domain.Product, bool) {
	return s.state.GetProduct(sku)
}

func (s *StateCatalogStore) GetAllProducts() map[string]*domain.Product {
	return s.state.Products
}

func (s *StateCatalogStore) GetOrderedSKUs() []string {
	return s.state.OrderedSKUs
}

// Category operations
func (s *StateCatalogStore) GetCategories() []string {
	return s.state.Categories()
}

func (s *StateCatalogStore) IsCategoryExpanded(name string) bool {
	return s.state.IsExpanded(name)
}

// Shortlist operations
func (s *StateCatalogStore) IsShortlisted(sku string) bool {
	return s.state.Shortlist[sku]
}

func (s *StateCatalogStore) GetShortlist() map[string]bool {
	return s.state.Shortlist
}

func (s *StateCatalogStore) GetShortlistCount() int {
	return len(s.state.Shortlist)
}

func (s *StateCatalogStore) GetQuantity(sku string) int {
	return s.state.QuantityFor(sku)
}

// Reveal and asset state
func (s *StateCatalogStore) IsRevealed(sku string) bool {
	return s.state.IsRevealed(sku)
}

func (s *StateCatalogStore) IsAssetLoading(path string) bool {
	return s.state.LoadingAssets[path]
}

func (s *StateCatalogStore) GetAsset(path string) (state.AssetContent, bool) {
	return s.state.AssetFor(path)
}

// UI state queries
func (s *StateCatalogStore) IsLoading() bool {
	return s.state.Loading
}

func (s *StateCatalogStore) GetStatusMessage() string {
	return s.state.StatusMessage
}

// Search and filter state
func (s *StateCatalogStore) GetSearchQuery() string {
	return s.state.SearchQuery
}

func (s *StateCatalogStore) GetFilterQuery() string {
	return s.state.FilterQuery
}

func (s *StateCatalogStore) IsFiltered() bool {
	return s.state.IsFiltered
}
