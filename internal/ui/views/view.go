package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"shopfront/internal/domain"
	"shopfront/internal/gallery"
	"shopfront/internal/ui/input/modes"
	"shopfront/internal/ui/logic"
	"shopfront/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width              int
	Height             int
	Products           map[string]*domain.Product
	Items              []logic.Item
	CategorySKUs       map[string][]string
	ExpandedCategories map[string]bool // effective expansion per category
	SelectedIndex      int
	Shortlist          map[string]bool
	Quantities         map[string]int
	Revealed           map[string]bool
	LoadingAssets      map[string]bool
	Assets             map[string]state.AssetContent
	Loading            bool
	LoadingCount       int
	StatusMessage      string
	ShowHelp           bool
	HelpScrollOffset   int
	ShowDetail         bool
	DetailSKU          string
	DetailScroll       int
	Gallery            *gallery.Group
	ViewportOffset     int // rows scrolled past, not items
	ViewportHeight     int // rows available for the tile list
	SearchQuery        string
	SearchSuggestions  []string // matched product names shown while typing a search
	FilterQuery        string
	IsFiltered         bool
	ShowPrices         bool
	HelpModel          help.Model
	ConfirmCount       int // pending clear-shortlist confirmation, 0 when none
	TextInput          string
	InputMode          string
	SortOptionIndex    int
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	tileRender     *TileRenderer
	categoryRender *CategoryRenderer
	detailRender   *DetailRenderer
	popupRender    *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(currency string) *Renderer {
	if currency == "" {
		currency = "₹"
	}
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		tileRender:     NewTileRenderer(styles, currency),
		categoryRender: NewCategoryRenderer(styles),
		detailRender:   NewDetailRenderer(styles, currency),
		popupRender:    NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with loading indicator
	logo := r.styles.Title.Render("shopfront")

	// Build loading indicators
	loadingIndicators := []string{}

	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		if state.LoadingCount > 0 {
			loadingIndicators = append(loadingIndicators, fmt.Sprintf("%s Loading catalog (%d)", spinner[frame], state.LoadingCount))
		} else {
			loadingIndicators = append(loadingIndicators, fmt.Sprintf("%s Loading catalog", spinner[frame]))
		}
	}

	if len(state.LoadingAssets) > 0 {
		loadingIndicators = append(loadingIndicators, fmt.Sprintf("↓ Fetching %d", len(state.LoadingAssets)))
	}

	// Build the title line with right-aligned indicators
	var titleLine string
	if len(loadingIndicators) > 0 || state.FilterQuery != "" {
		// Calculate widths
		logoWidth := lipgloss.Width(logo)

		// Build right side content
		rightContent := ""
		if len(loadingIndicators) > 0 {
			rightContent = r.styles.Dim.Render(strings.Join(loadingIndicators, " | "))
		}
		if state.FilterQuery != "" {
			filterText := r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery))
			if rightContent != "" {
				rightContent = fmt.Sprintf("%s  %s", rightContent, filterText)
			} else {
				rightContent = filterText
			}
		}

		// Calculate padding needed
		rightWidth := lipgloss.Width(rightContent)
		// Use a default width if state.Width is not set
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80 // Default terminal width
		}
		availableWidth := termWidth - 4 // Account for main container padding
		paddingWidth := availableWidth - logoWidth - rightWidth

		if paddingWidth > 0 {
			padding := strings.Repeat(" ", paddingWidth)
			titleLine = fmt.Sprintf("%s%s%s", logo, padding, rightContent)
		} else {
			// If not enough space, just show with minimal spacing
			titleLine = fmt.Sprintf("%s  %s", logo, rightContent)
		}
	} else {
		titleLine = logo
	}

	content.WriteString(titleLine)
	content.WriteString("\n")

	// Clear-shortlist confirmation
	if state.ConfirmCount > 0 {
		content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Clear shortlist (%d items)? (y/n): ", state.ConfirmCount)))
		content.WriteString("\n")
	} else if state.InputMode != "" {
		if state.InputMode == "sort" {
			content.WriteString(r.renderSortOptions(state))
		} else {
			content.WriteString(state.TextInput)
			if state.InputMode == "search" && len(state.SearchSuggestions) > 0 {
				content.WriteString("\n")
				content.WriteString(r.styles.Dim.Render("  " + strings.Join(state.SearchSuggestions, " · ")))
			}
		}
		content.WriteString("\n")
		content.WriteString("\n")
	}

	// Main content
	mainContent := ""
	if state.Loading && len(state.Products) == 0 {
		// Don't show a duplicate loading message - it's already in the title
		mainContent = r.styles.Dim.Render("Reading catalog files...")
	} else if len(state.Products) == 0 {
		mainContent = r.styles.Dim.Render("No products found. Press r to reload.")
	} else {
		mainContent = r.renderTileList(state)
	}

	// Add main content
	content.WriteString(mainContent)

	// Calculate footer text (shown at bottom when no popups are visible)
	footerText := ""
	if !state.ShowHelp && !state.ShowDetail {
		footerText = r.styles.Help.Render("Press ? for help")
	}
	if state.StatusMessage != "" {
		statusLine := r.styles.Status.Render(state.StatusMessage)
		if footerText != "" {
			footerText = statusLine + "\n" + footerText
		} else {
			footerText = statusLine
		}
	}

	// If we have footer text, add padding to push it to the bottom
	if footerText != "" {
		// Count current lines
		currentContent := content.String()
		currentLines := strings.Count(currentContent, "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		footerLines := strings.Count(footerText, "\n") + 1

		// Calculate padding needed
		paddingNeeded := availableLines - currentLines - footerLines

		// Add padding
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}

		// Add footer
		content.WriteString("\n")
		content.WriteString(footerText)
	}

	// Apply main container style
	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	if state.ShowDetail && state.DetailSKU != "" {
		detailContent := r.detailRender.RenderDetail(state)
		if detailContent != "" {
			return r.popupRender.RenderPopupOverlay(finalContent, detailContent, state.Height, state.Width, r.styles.DetailBox)
		}
	}

	if state.ShowHelp {
		helpContent := r.renderHelpContent(state.Height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.DetailBox)
	}

	return finalContent
}

// renderTileList renders the category headers and product tiles. Tiles span
// several rows, so the viewport is sliced in row space rather than item
// space; the offsets here mirror the ones navigation maintains.
func (r *Renderer) renderTileList(state ViewState) string {
	rows := make([]string, 0, len(state.Items))

	for i, item := range state.Items {
		isSelected := i == state.SelectedIndex

		switch item.Kind {
		case logic.ItemCategory:
			skus := state.CategorySKUs[item.Category]
			all := true
			any := false
			for _, sku := range skus {
				if state.Shortlist[sku] {
					any = true
				} else {
					all = false
				}
			}
			fullyShortlisted := len(skus) > 0 && all && any
			header := r.categoryRender.RenderCategoryHeader(item.Category,
				state.ExpandedCategories[item.Category], isSelected,
				state.SearchQuery, len(skus), state.Width, fullyShortlisted)
			rows = append(rows, header)

		case logic.ItemProduct:
			product := state.Products[item.SKU]
			if product == nil {
				for j := 0; j < item.Span; j++ {
					rows = append(rows, "")
				}
				continue
			}

			mediaPath := ""
			if len(product.Media) > 0 {
				mediaPath = product.Media[0].DeferredSource
			}
			isLoading := mediaPath != "" && state.LoadingAssets[mediaPath]
			assetFailed := false
			if asset, ok := state.Assets[mediaPath]; ok && asset.Err != nil {
				assetFailed = true
			}

			quantity := state.Quantities[item.SKU]
			if quantity == 0 {
				quantity = product.MinQty
			}
			if quantity == 0 {
				quantity = 1
			}

			tile := r.tileRender.RenderTile(product, isSelected,
				len(state.Shortlist) > 0, state.Shortlist[item.SKU],
				state.Revealed[item.SKU], isLoading, assetFailed,
				quantity, state.SearchQuery, state.ShowPrices, item.Span)
			rows = append(rows, tile...)

		case logic.ItemGap:
			rows = append(rows, "")
		}
	}

	// Calculate effective height
	effectiveHeight := state.ViewportHeight
	needsTopIndicator := state.ViewportOffset > 0
	needsBottomIndicator := len(rows) > state.ViewportOffset+state.ViewportHeight

	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}

	var lines []string

	// Add scroll indicators
	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}

	// Add visible rows (up to effective height)
	start := state.ViewportOffset
	if start > len(rows) {
		start = len(rows)
	}
	end := start + effectiveHeight
	if end > len(rows) {
		end = len(rows)
	}
	lines = append(lines, rows[start:end]...)

	// Add bottom scroll indicator
	if needsBottomIndicator {
		rowsBelow := len(rows) - end
		if rowsBelow < 0 {
			rowsBelow = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", rowsBelow)))
	}

	return strings.Join(lines, "\n")
}

// renderSortOptions renders the sort mode selection interface
func (r *Renderer) renderSortOptions(state ViewState) string {
	// Show only the current sort option
	if state.SortOptionIndex >= 0 && state.SortOptionIndex < len(modes.SortOptions) {
		option := modes.SortOptions[state.SortOptionIndex]
		sortLine := fmt.Sprintf("Sort by: %s - %s", option.Name, option.Description)
		helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
		return sortLine + "\n" + helpLine
	}
	return ""
}

// renderHelpContent renders the help information
func (r *Renderer) renderHelpContent(height int, scrollOffset int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("Shopfront Help"))
	help.WriteString("\n")

	// Navigation section
	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Navigate up/down")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Collapse/expand categories")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Page up/down")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("gg/G"), descStyle.Render("Go to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Shift+J/K"), descStyle.Render("Jump to next/previous category")))

	// Shortlist section
	help.WriteString(sectionStyle.Render("Shortlist"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Space"), descStyle.Render("Toggle product or whole category")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("a/A"), descStyle.Render("Shortlist all / clear")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("x"), descStyle.Render("Clear shortlist (asks first)")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("e"), descStyle.Render("Edit quantity")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("+/-"), descStyle.Render("Adjust quantity")))

	// Catalog section
	help.WriteString(sectionStyle.Render("Catalog"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Enter"), descStyle.Render("Open product / toggle category")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("z"), descStyle.Render("Toggle category")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("d"), descStyle.Render("Read product description")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("$"), descStyle.Render("Show/hide prices")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("r"), descStyle.Render("Reload catalog")))

	// Search & filter section
	help.WriteString(sectionStyle.Render("Search & Filter"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("/"), descStyle.Render("Search products")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("n"), descStyle.Render("Next search result")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Shift+N"), descStyle.Render("Previous search result")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Ctrl+F"), descStyle.Render("Filter products")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("s"), descStyle.Render("Sort options")))

	// Filter examples
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Filter examples: cat:oils, tag:organic, price:<500"))
	help.WriteString("\n")

	// Detail view section
	help.WriteString(sectionStyle.Render("Detail View"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Switch media")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("1-9"), descStyle.Render("Select media directly")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Scroll description")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("d"), descStyle.Render("Full description in pager")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("Esc"), descStyle.Render("Close")))

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("d"), descStyle.Render("Open this help in the pager (while open)")))
	help.WriteString(fmt.Sprintf("  %s            %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	// Split into lines for scrolling
	content := help.String()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Calculate visible window (account for popup border and padding)
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	// Apply scrolling
	if totalLines > visibleHeight {
		// Ensure scroll offset is valid
		maxOffset := totalLines - visibleHeight
		if scrollOffset > maxOffset {
			scrollOffset = maxOffset
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}

		// Extract visible lines
		endLine := scrollOffset + visibleHeight
		if endLine > totalLines {
			endLine = totalLines
		}
		lines = lines[scrollOffset:endLine]

		// Add scroll indicators
		if scrollOffset > 0 {
			lines[0] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↑ (more above)")
		}
		if endLine < totalLines {
			lines[len(lines)-1] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↓ (more below)")
		}
	}

	return strings.Join(lines, "\n")
}
