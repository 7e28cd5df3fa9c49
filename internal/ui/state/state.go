package state

import (
	"sort"

	"shopfront/internal/domain"
	"shopfront/internal/gallery"
)

// AssetContent is a loaded (or failed) asset kept for rendering
type AssetContent struct {
	Kind    domain.AssetKind
	Content []byte
	Err     error
}

// AppState contains all the application state
type AppState struct {
	// Catalog data
	Products    map[string]*domain.Product // sku -> product
	OrderedSKUs []string                   // ordered SKUs for display

	// Category data
	ExpandedCategories map[string]bool // explicit expand/collapse choices
	CollapseByDefault  bool            // categories start collapsed when set

	// Shortlist state
	SelectedIndex int             // currently selected item
	Shortlist     map[string]bool // shortlisted SKUs
	Quantities    map[string]int  // sku -> chosen quantity

	// Reveal and asset state
	Revealed      map[string]bool         // tiles already revealed
	LoadingAssets map[string]bool         // asset paths with loads in flight
	Assets        map[string]AssetContent // asset path -> content

	// UI state
	ViewportOffset   int  // offset for scrolling
	ViewportHeight   int  // available height for the tile list
	TileHeight       int  // rows a tile occupies
	Loading          bool // whether a catalog load is in progress
	ShowHelp         bool
	HelpScrollOffset int // scroll offset for help popup
	ShowDetail       bool
	DetailSKU        string
	DetailScroll     int
	Gallery          *gallery.Group // media controls for the open detail view
	StatusMessage    string         // status bar message
	LoadingCount     int            // products seen during the current load

	// Preferences
	ShowPrices bool
	SortMode   string

	// Search and filter state
	SearchQuery     string // current search query
	SearchMatches   []int  // indices of matching items
	SearchIndex     int    // current match index
	SortOptionIndex int    // current selected sort option in sort mode
	FilterQuery     string // current filter query
	IsFiltered      bool   // whether filter is active
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Products:           make(map[string]*domain.Product),
		OrderedSKUs:        make([]string, 0),
		ExpandedCategories: make(map[string]bool),
		Shortlist:          make(map[string]bool),
		Quantities:         make(map[string]int),
		Revealed:           make(map[string]bool),
		LoadingAssets:      make(map[string]bool),
		Assets:             make(map[string]AssetContent),
		ViewportHeight:     20, // Default
		TileHeight:         2,
		SortMode:           "name",
		ShowPrices:         true,
	}
}

// Catalog operations

// AddProduct adds or updates a product
func (s *AppState) AddProduct(p *domain.Product) {
	if p != nil && p.SKU != "" {
		s.Products[p.SKU] = p
	}
}

// GetProduct retrieves a product by SKU
func (s *AppState) GetProduct(sku string) (*domain.Product, bool) {
	p, ok := s.Products[sku]
	return p, ok
}

// RemoveProduct removes a product and every trace of it
func (s *AppState) RemoveProduct(sku string) {
	delete(s.Products, sku)
	delete(s.Shortlist, sku)
	delete(s.Quantities, sku)
	delete(s.Revealed, sku)
	if s.DetailSKU == sku {
		s.CloseDetail()
	}
}

// Categories returns the distinct category names in sorted order.
// The empty category, if present, sorts last.
func (s *AppState) Categories() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	hasUncategorized := false
	for _, p := range s.Products {
		if p.Category == "" {
			hasUncategorized = true
			continue
		}
		if !seen[p.Category] {
			seen[p.Category] = true
			names = append(names, p.Category)
		}
	}
	sort.Strings(names)
	if hasUncategorized {
		names = append(names, "")
	}
	return names
}

// IsExpanded reports whether a category is currently expanded
func (s *AppState) IsExpanded(category string) bool {
	if v, ok := s.ExpandedCategories[category]; ok {
		return v
	}
	return !s.CollapseByDefault
}

// ToggleCategory flips a category between expanded and collapsed
func (s *AppState) ToggleCategory(category string) {
	s.ExpandedCategories[category] = !s.IsExpanded(category)
}

// Shortlist operations

// ToggleShortlist toggles the shortlist state of a product
func (s *AppState) ToggleShortlist(sku string) {
	if s.Shortlist[sku] {
		delete(s.Shortlist, sku)
	} else if _, ok := s.Products[sku]; ok {
		s.Shortlist[sku] = true
	}
}

// ClearShortlist removes every product from the shortlist
func (s *AppState) ClearShortlist() {
	s.Shortlist = make(map[string]bool)
}

// ShortlistAll shortlists every known product
func (s *AppState) ShortlistAll() {
	for sku := range s.Products {
		s.Shortlist[sku] = true
	}
}

// ShortlistTotal sums price times quantity over the shortlist
func (s *AppState) ShortlistTotal() domain.Price {
	var total domain.Price
	for sku := range s.Shortlist {
		if p, ok := s.Products[sku]; ok {
			total += p.Price * domain.Price(s.QuantityFor(sku))
		}
	}
	return total
}

// Quantity operations

// QuantityFor returns the chosen quantity for a product, defaulting
// to the product's minimum.
func (s *AppState) QuantityFor(sku string) int {
	if q, ok := s.Quantities[sku]; ok {
		return q
	}
	if p, ok := s.Products[sku]; ok {
		return p.MinQty
	}
	return 1
}

// SetQuantity stores a quantity, clamped to the product's bounds,
// and returns the value actually applied.
func (s *AppState) SetQuantity(sku string, qty int) int {
	p, ok := s.Products[sku]
	if !ok {
		return 0
	}
	if qty < p.MinQty {
		qty = p.MinQty
	}
	if qty > p.MaxQty {
		qty = p.MaxQty
	}
	s.Quantities[sku] = qty
	return qty
}

// AdjustQuantity shifts the quantity by delta within the product's bounds
func (s *AppState) AdjustQuantity(sku string, delta int) int {
	return s.SetQuantity(sku, s.QuantityFor(sku)+delta)
}

// Reveal and asset state

// MarkRevealed records that a tile has been revealed
func (s *AppState) MarkRevealed(sku string) {
	s.Revealed[sku] = true
}

// IsRevealed reports whether a tile has been revealed
func (s *AppState) IsRevealed(sku string) bool {
	return s.Revealed[sku]
}

// SetAssetLoading marks an asset load as in flight
func (s *AppState) SetAssetLoading(path string) {
	s.LoadingAssets[path] = true
}

// SetAsset stores a load outcome and clears the in-flight mark
func (s *AppState) SetAsset(path string, content AssetContent) {
	delete(s.LoadingAssets, path)
	s.Assets[path] = content
}

// AssetFor retrieves a loaded asset by path
func (s *AppState) AssetFor(path string) (AssetContent, bool) {
	a, ok := s.Assets[path]
	return a, ok
}

// Detail view

// OpenDetail opens the detail view for a product
func (s *AppState) OpenDetail(sku string, g *gallery.Group) {
	s.ShowDetail = true
	s.DetailSKU = sku
	s.DetailScroll = 0
	s.Gallery = g
}

// CloseDetail closes the detail view
func (s *AppState) CloseDetail() {
	s.ShowDetail = false
	s.DetailSKU = ""
	s.DetailScroll = 0
	s.Gallery = nil
}
