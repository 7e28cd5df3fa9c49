package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/eventbus"
	"shopfront/internal/ui/logic"
	"shopfront/internal/ui/state"
)

// TickMsg is a tick message for animations
type TickMsg time.Time

// EventHandler handles domain events and updates state
type EventHandler struct {
	state              *state.AppState
	searchFilter       *logic.SearchFilter
	updateOrderedLists func()
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, updateOrderedLists func()) *EventHandler {
	return &EventHandler{
		state:              appState,
		searchFilter:       logic.NewSearchFilter(appState.Products),
		updateOrderedLists: updateOrderedLists,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ProductFoundEvent:
		// Add or update the product
		p := e.Product
		h.state.AddProduct(&p)
		h.updateOrderedLists()
		// Update searchFilter with new products
		h.searchFilter = logic.NewSearchFilter(h.state.Products)
		// Update loading count if we're in a loading state
		if h.state.Loading {
			h.state.LoadingCount = len(h.state.Products)
		}

	case eventbus.CatalogLoadStartedEvent:
		h.state.Loading = true
		h.state.StatusMessage = "Loading catalog..."
		h.state.LoadingCount = 0
		// Return a tick command to start the spinner animation
		return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
			return TickMsg(t)
		})

	case eventbus.CatalogLoadCompletedEvent:
		h.state.Loading = false
		h.state.LoadingCount = 0
		h.state.StatusMessage = fmt.Sprintf("Catalog loaded. %d products.", e.ProductsFound)

	case eventbus.CatalogChangedEvent:
		if e.Removed {
			// Find the product that came from the removed file
			for sku, p := range h.state.Products {
				if p.Path == e.Path {
					h.state.RemoveProduct(sku)
					break
				}
			}
			h.updateOrderedLists()
			h.searchFilter = logic.NewSearchFilter(h.state.Products)
			h.state.StatusMessage = "Product removed from catalog"
		}
		// Creations and edits arrive as ProductFoundEvent

	case eventbus.AssetLoadedEvent:
		h.state.SetAsset(e.Path, state.AssetContent{
			Kind:    e.Kind,
			Content: e.Content,
			Err:     e.Err,
		})

	case eventbus.ShortlistChangedEvent:
		if e.Total == 0 {
			h.state.StatusMessage = "Shortlist empty"
		} else {
			h.state.StatusMessage = fmt.Sprintf("Shortlist: %d items, %s",
				e.Total, h.state.ShortlistTotal())
		}

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = "Preferences saved"

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}

// GetSearchFilter returns the current search filter
func (h *EventHandler) GetSearchFilter() *logic.SearchFilter {
	return h.searchFilter
}

// UpdateSearchFilter updates the search filter with current products
func (h *EventHandler) UpdateSearchFilter() {
	h.searchFilter = logic.NewSearchFilter(h.state.Products)
}
