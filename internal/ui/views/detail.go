package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"shopfront/internal/domain"
)

// maxDescriptionLines caps the description window inside the detail modal
const maxDescriptionLines = 12

// descriptionWrapWidth keeps rendered markdown inside the modal borders
const descriptionWrapWidth = 56

// DetailRenderer handles rendering of the product detail modal
type DetailRenderer struct {
	styles   *Styles
	currency string
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer(styles *Styles, currency string) *DetailRenderer {
	return &DetailRenderer{
		styles:   styles,
		currency: currency,
	}
}

// RenderDetail builds the content of the detail modal for the open product.
// The first line is the bare product name; the overlay uses it to keep the
// matching tile colored behind the modal.
func (d *DetailRenderer) RenderDetail(state ViewState) string {
	product, ok := state.Products[state.DetailSKU]
	if !ok || product == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	name := product.Name
	if product.DisplayName != "" {
		name = product.DisplayName
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n")

	// Meta row: price, unit, shortlist state
	meta := product.Unit
	if meta == "" {
		meta = "each"
	}
	if state.ShowPrices {
		meta = fmt.Sprintf("%s · %s", product.Price.Format(d.currency), meta)
	}
	if state.Shortlist[product.SKU] {
		qty := state.Quantities[product.SKU]
		if qty == 0 {
			qty = product.MinQty
		}
		if qty == 0 {
			qty = 1
		}
		meta = fmt.Sprintf("%s · on shortlist ×%d", meta, qty)
	}
	b.WriteString(d.styles.Status.Render(meta))
	b.WriteString("\n")

	if len(product.Tags) > 0 {
		var tags []string
		for _, tag := range product.Tags {
			tags = append(tags, "#"+tag)
		}
		b.WriteString(d.styles.Tag.Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}

	// Media controls strip driving the display surface
	if state.Gallery != nil && state.Gallery.Len() > 0 {
		b.WriteString("\n")
		var controls []string
		for i, control := range state.Gallery.Controls() {
			label := fmt.Sprintf(" %d:%s ", i+1, control.Label)
			if control.IsActive() {
				controls = append(controls, d.styles.ControlActive.Render(label))
			} else {
				controls = append(controls, d.styles.ControlInactive.Render(label))
			}
		}
		b.WriteString(strings.Join(controls, " "))
		b.WriteString("\n")
		b.WriteString(d.renderDisplay(state))
		b.WriteString("\n")
	}

	if desc := d.renderDescription(state, product); desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(d.styles.Help.Render("←/→ media · 1-9 select · d full description · esc close"))
	return b.String()
}

// renderDisplay renders the primary display surface for the active control
func (d *DetailRenderer) renderDisplay(state ViewState) string {
	src := state.Gallery.Source()
	if src == "" {
		return d.styles.Dim.Render("no media selected")
	}
	base := filepath.Base(src)
	if state.LoadingAssets[src] {
		return d.styles.AssetLoading.Render("⟳ " + base)
	}
	asset, ok := state.Assets[src]
	if !ok {
		return d.styles.Dim.Render("… " + base)
	}
	if asset.Err != nil {
		return d.styles.AssetError.Render("✗ " + base + ": unavailable")
	}

	kindStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(GetKindColor(asset.Kind)))
	head := kindStyle.Render(fmt.Sprintf("%s %s", KindGlyph(asset.Kind), base))
	head += d.styles.Dim.Render(" " + formatBytes(len(asset.Content)))

	switch asset.Kind {
	case domain.AssetImage:
		return head + "\n" + d.styles.Dim.Render("image loaded; no inline preview in the terminal")
	case domain.AssetModel:
		return head + "\n" + d.styles.Dim.Render("3D model loaded; open externally to view")
	default:
		return head
	}
}

// renderDescription renders the scrollable description section
func (d *DetailRenderer) renderDescription(state ViewState, product *domain.Product) string {
	if product.Description == "" {
		return ""
	}
	if state.LoadingAssets[product.Description] {
		return d.styles.AssetLoading.Render("⟳ loading description")
	}
	asset, ok := state.Assets[product.Description]
	if !ok {
		return ""
	}
	if asset.Err != nil {
		return d.styles.AssetError.Render("✗ description unavailable")
	}
	rendered := RenderMarkdown(string(asset.Content), descriptionWrapWidth)
	return d.scrollWindow(rendered, state.DetailScroll)
}

// scrollWindow applies the detail scroll offset to long content
func (d *DetailRenderer) scrollWindow(content string, scrollOffset int) string {
	lines := strings.Split(content, "\n")
	totalLines := len(lines)
	if totalLines <= maxDescriptionLines {
		return content
	}

	maxOffset := totalLines - maxDescriptionLines
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	endLine := scrollOffset + maxDescriptionLines
	lines = lines[scrollOffset:endLine]

	if scrollOffset > 0 {
		lines[0] = d.styles.Scroll.Render("↑ (more above)")
	}
	if endLine < totalLines {
		lines[len(lines)-1] = d.styles.Scroll.Render("↓ (more below)")
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders markdown for terminal display. Glamour can panic on
// malformed input, so fall back to the raw text.
func RenderMarkdown(content string, width int) (out string) {
	out = content
	defer func() {
		if r := recover(); r != nil {
			out = content
		}
	}()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// formatBytes renders a byte count in a compact human form
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
