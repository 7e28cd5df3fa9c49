package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopfront/internal/domain"
)

// TileRenderer handles rendering of product tiles
type TileRenderer struct {
	styles   *Styles
	currency string
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(styles *Styles, currency string) *TileRenderer {
	return &TileRenderer{
		styles:   styles,
		currency: currency,
	}
}

// RenderTile renders a product tile as one line per row of its span. The
// first row carries name, unit and price; the second the media state. Any
// remaining rows are blank.
func (t *TileRenderer) RenderTile(product *domain.Product, isSelected bool, hasShortlist bool,
	isShortlisted bool, isRevealed bool, isLoading bool, assetFailed bool,
	quantity int, searchQuery string, showPrices bool, height int) []string {
	if product == nil {
		return nil
	}
	if height < 1 {
		height = 1
	}

	// Background color for selection
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}

	// Get status components
	status := t.getRevealIcon(isRevealed, isLoading, assetFailed)
	unitName := t.formatUnit(product.Unit)

	// Apply styles
	statusStyle := t.getRevealStyle(isRevealed, isLoading, assetFailed)
	if isSelected {
		statusStyle = statusStyle.Background(lipgloss.Color(bgColor))
	}

	// Unit styling
	unitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	if isShortlisted {
		unitStyle = unitStyle.Bold(true)
	}
	if isSelected {
		unitStyle = unitStyle.Background(lipgloss.Color(bgColor))
	}
	coloredUnit := unitStyle.Render(unitName)

	// Build the first tile row
	var parts []string

	// Indentation under the category header
	parts = append(parts, "  ")

	// Shortlist indicator
	if hasShortlist {
		indicator := "[ ]"
		if isShortlisted {
			indicator = "[x]"
		}
		indicatorStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
		parts = append(parts, indicatorStyle.Render(indicator))
		parts = append(parts, " ")
	}

	// Reveal status icon
	if status != "" {
		parts = append(parts, statusStyle.Render(status))
		parts = append(parts, " ")
	}

	// Product name (with search highlighting if applicable)
	name := product.Name
	if product.DisplayName != "" {
		name = product.DisplayName
	}
	nameStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
	if searchQuery != "" && strings.Contains(strings.ToLower(name), strings.ToLower(searchQuery)) {
		name = t.highlightMatch(name, searchQuery,
			nameStyle.Foreground(lipgloss.Color("226")), nameStyle)
	}
	parts = append(parts, nameStyle.Render(name))

	// Unit info
	parenStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
	parts = append(parts, parenStyle.Render(" ("))
	parts = append(parts, coloredUnit)
	parts = append(parts, parenStyle.Render(")"))

	// Price
	if showPrices {
		priceStyle := t.styles.Price
		if isSelected {
			priceStyle = priceStyle.Background(lipgloss.Color(bgColor))
		}
		parts = append(parts, parenStyle.Render("  "))
		parts = append(parts, priceStyle.Render(product.Price.Format(t.currency)))
	}

	// Quantity marker
	if quantity > 1 {
		qtyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color(bgColor))
		parts = append(parts, qtyStyle.Render(fmt.Sprintf(" ×%d", quantity)))
	}

	lines := []string{strings.Join(parts, "")}
	if height >= 2 {
		lines = append(lines, t.renderMediaRow(product, isSelected, isRevealed, isLoading, assetFailed, bgColor))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// renderMediaRow renders the second tile row showing the media state
func (t *TileRenderer) renderMediaRow(product *domain.Product, isSelected bool,
	isRevealed bool, isLoading bool, assetFailed bool, bgColor string) string {
	var parts []string
	parts = append(parts, "    ")

	withBg := func(s lipgloss.Style) lipgloss.Style {
		if isSelected {
			return s.Background(lipgloss.Color(bgColor))
		}
		return s
	}

	if len(product.Media) == 0 {
		parts = append(parts, withBg(t.styles.Dim).Render("no media"))
	} else {
		m := product.Media[0]
		base := filepath.Base(m.DeferredSource)
		switch {
		case isLoading:
			parts = append(parts, withBg(t.styles.AssetLoading).Render("⟳ "+base))
		case assetFailed:
			parts = append(parts, withBg(t.styles.AssetError).Render("✗ "+base))
		case isRevealed:
			kindStyle := withBg(lipgloss.NewStyle().Foreground(lipgloss.Color(GetKindColor(m.Kind))))
			parts = append(parts, kindStyle.Render(KindGlyph(m.Kind)+" "+base))
		default:
			// The source stays unfetched until the tile scrolls into view
			parts = append(parts, withBg(t.styles.Pending).Render("░ deferred"))
		}
		if extra := len(product.Media) - 1; extra > 0 {
			parts = append(parts, withBg(t.styles.Dim).Render(fmt.Sprintf(" +%d more", extra)))
		}
	}

	if len(product.Tags) > 0 {
		tagStyle := withBg(t.styles.Tag)
		for _, tag := range product.Tags {
			parts = append(parts, tagStyle.Render("  #"+tag))
		}
	}

	return strings.Join(parts, "")
}

// getRevealIcon returns the appropriate status icon for a tile
func (t *TileRenderer) getRevealIcon(isRevealed, isLoading, assetFailed bool) string {
	if isLoading {
		return "⟳"
	}
	if assetFailed {
		return "✗"
	}
	if isRevealed {
		return "●"
	}
	return "○"
}

// getRevealStyle returns the appropriate style for a tile's status icon
func (t *TileRenderer) getRevealStyle(isRevealed, isLoading, assetFailed bool) lipgloss.Style {
	if isLoading {
		return t.styles.AssetLoading
	}
	if assetFailed {
		return t.styles.AssetError
	}
	if isRevealed {
		return t.styles.Revealed
	}
	return t.styles.Pending
}

// formatUnit formats a pack size for display
func (t *TileRenderer) formatUnit(unit string) string {
	if unit == "" {
		return "each"
	}
	// Truncate long units
	if len(unit) > 20 {
		return unit[:17] + "..."
	}
	return unit
}

// highlightMatch highlights matching text within a string
func (t *TileRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	// Split the text into parts
	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	// Render with appropriate styles
	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
