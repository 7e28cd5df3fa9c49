package input

import (
	"shopfront/internal/ui/logic"
	"shopfront/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State       *state.AppState
	Navigator   *logic.Navigator
	CurrentSort logic.SortMode
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.GetSelectedIndex()
}

// TotalItems returns the total number of display items
func (c *ModelContext) TotalItems() int {
	return len(c.Navigator.Items())
}

// HasShortlist returns true if any products are shortlisted
func (c *ModelContext) HasShortlist() bool {
	return len(c.State.Shortlist) > 0
}

// ShortlistCount returns the number of shortlisted products
func (c *ModelContext) ShortlistCount() int {
	return len(c.State.Shortlist)
}

// CurrentSKU returns the SKU at the current index, or "" on a header or gap
func (c *ModelContext) CurrentSKU() string {
	item, ok := c.Navigator.SelectedItem()
	if !ok {
		return ""
	}
	return item.SKU
}

// IsOnCategory returns true if the current selection is on a category header
func (c *ModelContext) IsOnCategory() bool {
	item, ok := c.Navigator.SelectedItem()
	return ok && item.Kind == logic.ItemCategory
}

// CurrentCategory returns the category at the current index. On a
// product tile this is the owning category.
func (c *ModelContext) CurrentCategory() string {
	item, ok := c.Navigator.SelectedItem()
	if !ok {
		return ""
	}
	return item.Category
}

// SearchQuery returns the current search query
func (c *ModelContext) SearchQuery() string {
	return c.State.SearchQuery
}

// GetCurrentSort returns the current sort mode
func (c *ModelContext) GetCurrentSort() string {
	return c.CurrentSort.String()
}

// CurrentQuantity returns the chosen quantity for the current product
func (c *ModelContext) CurrentQuantity() int {
	sku := c.CurrentSKU()
	if sku == "" {
		return 1
	}
	return c.State.QuantityFor(sku)
}
