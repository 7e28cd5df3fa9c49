package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CategoryRenderer handles rendering of category headers
type CategoryRenderer struct {
	styles *Styles
}

// NewCategoryRenderer creates a new category renderer
func NewCategoryRenderer(styles *Styles) *CategoryRenderer {
	return &CategoryRenderer{
		styles: styles,
	}
}

// RenderCategoryHeader renders a category header
func (c *CategoryRenderer) RenderCategoryHeader(category string, isExpanded bool, isSelected bool,
	searchQuery string, productCount int, width int, fullyShortlisted bool) string {

	// Determine arrow
	arrow := "▶"
	if isExpanded {
		arrow = "▼"
	}

	// The empty category collects products without one
	name := category
	if name == "" {
		name = "Uncategorized"
	}

	// Build category name with search highlighting
	if searchQuery != "" && strings.Contains(strings.ToLower(name), strings.ToLower(searchQuery)) {
		name = c.highlightMatch(name, searchQuery, c.styles.Highlight, lipgloss.NewStyle())
	}

	// Format the complete line
	line := fmt.Sprintf("%s %s (%d)", arrow, name, productCount)

	// Apply background color based on selection state
	var bgColor string
	if isSelected && fullyShortlisted {
		bgColor = "33" // Blue background for cursor on a fully shortlisted category
	} else if isSelected {
		bgColor = "238" // Darker background for cursor selection
	} else if fullyShortlisted {
		bgColor = "240" // Lighter background when every product is shortlisted
	}

	// Apply background if needed
	if bgColor != "" {
		// Pad the line to full width
		if width > 0 {
			lineLen := lipgloss.Width(line)
			if lineLen < width {
				line = line + strings.Repeat(" ", width-lineLen)
			}
		}
		style := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
		return style.Render(line)
	}

	// Dim the catch-all category
	if category == "" {
		return c.styles.Dim.Render(line)
	}

	return line
}

// highlightMatch highlights matching text within a string
func (c *CategoryRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
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
