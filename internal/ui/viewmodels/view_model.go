package viewmodels

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"shopfront/internal/ui/logic"
	"shopfront/internal/ui/state"
	"shopfront/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	width            int
	height           int
	help             help.Model
	confirmCount     int
	items            []logic.Item
	categorySKUs     map[string][]string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetConfirmCount sets the pending clear-shortlist confirmation count
func (vm *ViewModel) SetConfirmCount(count int) {
	vm.confirmCount = count
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetItems sets the display list and the category contents backing it
func (vm *ViewModel) SetItems(items []logic.Item, categorySKUs map[string][]string) {
	vm.items = items
	vm.categorySKUs = categorySKUs
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	expanded := make(map[string]bool, len(vm.categorySKUs))
	for category := range vm.categorySKUs {
		expanded[category] = vm.state.IsExpanded(category)
	}

	return views.ViewState{
		Width:              vm.width,
		Height:             vm.height,
		Products:           vm.state.Products,
		Items:              vm.items,
		CategorySKUs:       vm.categorySKUs,
		ExpandedCategories: expanded,
		SelectedIndex:      vm.state.SelectedIndex,
		Shortlist:          vm.state.Shortlist,
		Quantities:         vm.state.Quantities,
		Revealed:           vm.state.Revealed,
		LoadingAssets:      vm.state.LoadingAssets,
		Assets:             vm.state.Assets,
		Loading:            vm.state.Loading,
		LoadingCount:       vm.state.LoadingCount,
		StatusMessage:      vm.state.StatusMessage,
		ShowHelp:           vm.state.ShowHelp,
		HelpScrollOffset:   vm.state.HelpScrollOffset,
		ShowDetail:         vm.state.ShowDetail,
		DetailSKU:          vm.state.DetailSKU,
		DetailScroll:       vm.state.DetailScroll,
		Gallery:            vm.state.Gallery,
		ViewportOffset:     vm.state.ViewportOffset,
		ViewportHeight:     vm.state.ViewportHeight,
		SearchQuery:        vm.state.SearchQuery,
		SearchSuggestions:  vm.searchSuggestions(maxSearchSuggestions),
		FilterQuery:        vm.state.FilterQuery,
		IsFiltered:         vm.state.IsFiltered,
		ShowPrices:         vm.state.ShowPrices,
		HelpModel:          vm.help,
		ConfirmCount:       vm.confirmCount,
		TextInput:          vm.inputTransformer.GetInputText(),
		InputMode:          vm.inputTransformer.GetInputModeString(),
		SortOptionIndex:    vm.state.SortOptionIndex,
	}
}

const maxSearchSuggestions = 3

// searchSuggestions lists the matched product names for the suggestion row,
// name-prefix matches ahead of other matches, in display order within each
// tier.
func (vm *ViewModel) searchSuggestions(limit int) []string {
	if vm.state.SearchQuery == "" || len(vm.state.SearchMatches) == 0 {
		return nil
	}

	lower := strings.ToLower(vm.state.SearchQuery)
	var prefixed, rest []string
	for _, idx := range vm.state.SearchMatches {
		if idx < 0 || idx >= len(vm.items) {
			continue
		}
		item := vm.items[idx]
		if item.Kind != logic.ItemProduct {
			continue
		}
		p, ok := vm.state.Products[item.SKU]
		if !ok {
			continue
		}
		if strings.HasPrefix(strings.ToLower(p.Name), lower) {
			prefixed = append(prefixed, p.Name)
		} else {
			rest = append(rest, p.Name)
		}
	}

	suggestions := append(prefixed, rest...)
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
