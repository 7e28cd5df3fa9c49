package views

import (
	"github.com/charmbracelet/lipgloss"

	"shopfront/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Confirm         lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	Filter          lipgloss.Style
	DetailBox       lipgloss.Style
	Help            lipgloss.Style
	Main            lipgloss.Style
	Scroll          lipgloss.Style
	Highlight       lipgloss.Style
	HighlightBg     lipgloss.Style
	Price           lipgloss.Style
	Tag             lipgloss.Style
	Revealed        lipgloss.Style
	Pending         lipgloss.Style
	AssetLoading    lipgloss.Style
	AssetError      lipgloss.Style
	ControlActive   lipgloss.Style
	ControlInactive lipgloss.Style
	SelectionBg     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			MarginBottom(1).
			Width(62).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Price:           lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Tag:             lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Revealed:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Pending:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		AssetLoading:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		AssetError:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		ControlActive:   lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("231")).Bold(true),
		ControlInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		SelectionBg:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

// GetKindColor returns the appropriate color for an asset kind
func GetKindColor(kind domain.AssetKind) string {
	switch kind {
	case domain.AssetImage:
		return "78" // green
	case domain.AssetModel:
		return "33" // blue
	case domain.AssetMarkdown:
		return "99" // purple
	default:
		return "252"
	}
}

// KindGlyph returns the marker drawn next to an asset of the given kind
func KindGlyph(kind domain.AssetKind) string {
	switch kind {
	case domain.AssetImage:
		return "▣"
	case domain.AssetModel:
		return "◆"
	default:
		return "≡"
	}
}
