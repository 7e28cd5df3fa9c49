package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup overlay on top of main content. Rows the
// popup covers are spliced cell-wise: left slice, popup row, right slice, so
// the surrounding content stays visible beside the modal.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	// Render the popup with its style without forcing width/height – keep it tight
	styledPopup := popupStyle.Render(popupContent)

	// Compute modal placement using actual rendered size
	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	// Base greyscale layer, but keep the target product line colored
	targetName := extractTitlePlain(popupContent)
	grayBase := desaturateKeeping(mainContent, targetName)

	baseLines := strings.Split(grayBase, "\n")
	for len(baseLines) < y+modalH {
		baseLines = append(baseLines, "")
	}

	grayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	popupLines := strings.Split(styledPopup, "\n")
	for i, popupLine := range popupLines {
		row := y + i
		// Covered rows drop their own styling so the splice cannot cut
		// an escape sequence in half
		plain := ansiRE.ReplaceAllString(baseLines[row], "")
		left := runewidth.FillRight(runewidth.Truncate(plain, x, ""), x)
		right := cutLeft(plain, x+lipgloss.Width(popupLine))
		baseLines[row] = grayStyle.Render(left) + popupLine + grayStyle.Render(right)
	}

	return strings.Join(baseLines, "\n")
}

// cutLeft drops the leading cells of a plain string, returning the remainder
func cutLeft(s string, cells int) string {
	if cells <= 0 {
		return s
	}
	w := 0
	for i, r := range s {
		if w >= cells {
			return s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}

// extractTitlePlain returns the first line of popup content without ANSI (product name in the detail modal)
func extractTitlePlain(popup string) string {
	// first line before newline
	for i := 0; i < len(popup); i++ {
		if popup[i] == '\n' {
			return ansiRE.ReplaceAllString(popup[:i], "")
		}
	}
	return ansiRE.ReplaceAllString(popup, "")
}

// desaturateKeeping turns everything greyscale except lines containing keepSubstr (plain text match)
func desaturateKeeping(s, keepSubstr string) string {
	if keepSubstr == "" {
		return desaturateANSI(s)
	}
	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		plain := ansiRE.ReplaceAllString(line, "")
		if keepSubstr != "" && strings.Contains(plain, keepSubstr) {
			// keep original colored line
			out[i] = line
		} else {
			out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
		}
	}
	return strings.Join(out, "\n")
}
