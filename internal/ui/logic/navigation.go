package logic

// ItemKind distinguishes the entries of the display list
type ItemKind int

const (
	ItemCategory ItemKind = iota
	ItemProduct
	ItemGap
)

// Item is one entry of the display list. Category headers and gaps
// occupy a single row; product tiles span several.
type Item struct {
	Kind     ItemKind
	Category string // category name for headers, owning category for tiles
	SKU      string // product SKU, empty for headers and gaps
	Span     int    // rows this item occupies
}

// Navigator handles navigation and viewport management. Selection
// indexes into the display list while scrolling happens in row space,
// so a tall tile can be partially visible at the viewport edge.
type Navigator struct {
	selectedIndex  int
	viewportOffset int // in rows
	viewportHeight int // in rows
	tileHeight     int

	items     []Item
	startRows []int // starting row per item
	totalRows int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{tileHeight: 1}
}

// UpdateLayout rebuilds the display list from the catalog ordering.
// Collapsed categories contribute only their header row.
func (n *Navigator) UpdateLayout(orderedCategories []string, categorySKUs map[string][]string, expanded map[string]bool, tileHeight int) {
	if tileHeight < 1 {
		tileHeight = 1
	}
	n.tileHeight = tileHeight

	items := make([]Item, 0)
	for i, category := range orderedCategories {
		items = append(items, Item{Kind: ItemCategory, Category: category, Span: 1})
		if expanded[category] {
			for _, sku := range categorySKUs[category] {
				items = append(items, Item{Kind: ItemProduct, Category: category, SKU: sku, Span: tileHeight})
			}
		}
		// Gap after each category except the last
		if i < len(orderedCategories)-1 {
			items = append(items, Item{Kind: ItemGap, Span: 1})
		}
	}
	n.items = items

	n.startRows = make([]int, len(items))
	row := 0
	for i, item := range items {
		n.startRows[i] = row
		row += item.Span
	}
	n.totalRows = row

	if n.selectedIndex > n.MaxIndex() {
		n.selectedIndex = n.MaxIndex()
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible()
}

// SetViewport records the viewport geometry
func (n *Navigator) SetViewport(offset, height int) {
	n.viewportOffset = offset
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// Items returns the current display list
func (n *Navigator) Items() []Item {
	return n.items
}

// ItemAt returns the display item at an index
func (n *Navigator) ItemAt(index int) (Item, bool) {
	if index < 0 || index >= len(n.items) {
		return Item{}, false
	}
	return n.items[index], true
}

// SelectedItem returns the currently selected item
func (n *Navigator) SelectedItem() (Item, bool) {
	return n.ItemAt(n.selectedIndex)
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset in rows
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// TotalRows returns the height of the whole display list in rows
func (n *Navigator) TotalRows() int {
	return n.totalRows
}

// MaxIndex returns the maximum selectable index
func (n *Navigator) MaxIndex() int {
	return len(n.items) - 1
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	if index < 0 {
		index = 0
	}
	if index > n.MaxIndex() {
		index = n.MaxIndex()
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// MoveSelection moves the selection by delta, skipping gap rows
func (n *Navigator) MoveSelection(delta int) (int, int) {
	if len(n.items) == 0 {
		return n.selectedIndex, n.viewportOffset
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	index := n.selectedIndex
	for moved := 0; moved < delta; moved++ {
		next := index + step
		// Skip over gaps
		for next >= 0 && next < len(n.items) && n.items[next].Kind == ItemGap {
			next += step
		}
		if next < 0 || next >= len(n.items) {
			break
		}
		index = next
	}
	return n.SetSelectedIndex(index)
}

// SelectFirst moves the selection to the top of the list
func (n *Navigator) SelectFirst() (int, int) {
	return n.SetSelectedIndex(0)
}

// SelectLast moves the selection to the bottom of the list
func (n *Navigator) SelectLast() (int, int) {
	index := n.MaxIndex()
	for index > 0 && n.items[index].Kind == ItemGap {
		index--
	}
	return n.SetSelectedIndex(index)
}

// PageMove moves the selection by roughly one viewport of rows
func (n *Navigator) PageMove(down bool) (int, int) {
	if len(n.items) == 0 {
		return n.selectedIndex, n.viewportOffset
	}
	span := n.tileHeight
	if span < 1 {
		span = 1
	}
	steps := n.viewportHeight / span
	if steps < 1 {
		steps = 1
	}
	if down {
		return n.MoveSelection(steps)
	}
	return n.MoveSelection(-steps)
}

// JumpToNextCategory selects the next category header
func (n *Navigator) JumpToNextCategory() bool {
	for i := n.selectedIndex + 1; i < len(n.items); i++ {
		if n.items[i].Kind == ItemCategory {
			n.SetSelectedIndex(i)
			return true
		}
	}
	return false
}

// JumpToPreviousCategory selects the previous category header
func (n *Navigator) JumpToPreviousCategory() bool {
	for i := n.selectedIndex - 1; i >= 0; i-- {
		if n.items[i].Kind == ItemCategory {
			n.SetSelectedIndex(i)
			return true
		}
	}
	return false
}

// IndexForSKU finds the display index of a product
func (n *Navigator) IndexForSKU(sku string) int {
	for i, item := range n.items {
		if item.Kind == ItemProduct && item.SKU == sku {
			return i
		}
	}
	return -1
}

// IndexForCategory finds the display index of a category header
func (n *Navigator) IndexForCategory(category string) int {
	for i, item := range n.items {
		if item.Kind == ItemCategory && item.Category == category {
			return i
		}
	}
	return -1
}

// RowsOf returns the starting row and span of an item
func (n *Navigator) RowsOf(index int) (int, int) {
	if index < 0 || index >= len(n.items) {
		return 0, 0
	}
	return n.startRows[index], n.items[index].Span
}

// VisibleRatios reports, per product, how much of its tile the
// viewport currently shows, as a fraction of the tile's span.
func (n *Navigator) VisibleRatios() map[string]float64 {
	ratios := make(map[string]float64)
	top := n.viewportOffset
	bottom := n.viewportOffset + n.viewportHeight
	for i, item := range n.items {
		if item.Kind != ItemProduct {
			continue
		}
		start := n.startRows[i]
		end := start + item.Span
		overlap := min(end, bottom) - max(start, top)
		if overlap < 0 {
			overlap = 0
		}
		ratios[item.SKU] = float64(overlap) / float64(item.Span)
	}
	return ratios
}

// EnsureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.viewportHeight <= 0 || len(n.items) == 0 {
		return
	}

	selStart, selSpan := n.RowsOf(n.selectedIndex)
	selEnd := selStart + selSpan

	// If selected item starts above the viewport, scroll up
	if selStart < n.viewportOffset {
		n.viewportOffset = selStart
	}

	// Determine if we'll have scroll indicators
	needsTopIndicator := n.viewportOffset > 0
	needsBottomIndicator := n.viewportOffset+n.viewportHeight < n.totalRows

	// Calculate effective visible area
	effectiveHeight := n.viewportHeight
	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	// If selected item ends below the effective viewport, scroll down
	if selEnd > n.viewportOffset+effectiveHeight {
		newOffset := selEnd - effectiveHeight

		maxPossibleOffset := n.totalRows - effectiveHeight
		if maxPossibleOffset < 0 {
			maxPossibleOffset = 0
		}
		if newOffset > maxPossibleOffset {
			newOffset = maxPossibleOffset
		}
		if newOffset < 0 {
			newOffset = 0
		}
		n.viewportOffset = newOffset
	}

	// Final validation: ensure viewport doesn't exceed bounds
	maxOffset := n.totalRows - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
