package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter toggles a category header; on a product it opens the detail view
		if ctx.IsOnCategory() {
			return []types.Action{types.ToggleCategoryAction{}}, true
		}
		if ctx.CurrentSKU() != "" {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "z":
		// z toggles category expansion (works on header or product inside)
		if ctx.IsOnCategory() || ctx.CurrentSKU() != "" {
			return []types.Action{types.ToggleCategoryAction{}}, true
		}
		return nil, false

	case "J":
		// Shift+J jumps to the next category
		return []types.Action{types.JumpCategoryAction{Direction: "next"}}, true

	case "K":
		// Shift+K jumps to the previous category
		return []types.Action{types.JumpCategoryAction{Direction: "prev"}}, true

	case " ":
		// Space shortlists the product, or the whole category from its header
		if ctx.IsOnCategory() {
			return []types.Action{types.ShortlistCategoryAction{Category: ctx.CurrentCategory()}}, true
		}
		if ctx.CurrentSKU() != "" {
			return []types.Action{types.ToggleShortlistAction{Index: -1}}, true
		}
		return nil, false

	case "a", "A":
		// Toggle shortlist all
		if ctx.HasShortlist() {
			return []types.Action{types.ClearShortlistAction{}}, true
		}
		return []types.Action{types.ShortlistAllAction{}}, true

	case "x":
		// Clear shortlist, with confirmation
		if ctx.HasShortlist() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeClearConfirm}}, true
		}
		return nil, false

	case "r":
		// Reload the catalog
		return []types.Action{types.ReloadAction{}}, true

	case "+", "=":
		if ctx.CurrentSKU() != "" {
			return []types.Action{types.AdjustQuantityAction{Delta: 1}}, true
		}
		return nil, false

	case "-", "_":
		if ctx.CurrentSKU() != "" {
			return []types.Action{types.AdjustQuantityAction{Delta: -1}}, true
		}
		return nil, false

	case "e":
		// Edit quantity for the current product
		if ctx.CurrentSKU() != "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeQuantity}}, true
		}
		return nil, false

	case "/":
		// Enter search mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "ctrl+f", "F":
		// Enter filter mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case "n":
		// Navigate to next search result
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
		}
		return nil, true // Consume the key even if no action

	case "N":
		// Navigate to previous search result
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
		}
		return nil, true // Consume the key even if no action

	case "d":
		// Read the full description in the pager
		if ctx.CurrentSKU() != "" && !ctx.IsOnCategory() {
			return []types.Action{types.OpenDescriptionAction{}}, true
		}
		return nil, false

	case "s":
		// Sort mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true

	case "$":
		// Toggle price display
		return []types.Action{types.TogglePricesAction{}}, true

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clear an active search, otherwise do nothing
		if ctx.SearchQuery() != "" {
			return []types.Action{types.CancelTextAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		} else {
			// First g, wait for next key
			m.lastKeyWasG = true
			m.lastGTime = time.Now()
			return nil, true // consume the key but don't do anything
		}

	case "G":
		// G - go to bottom
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG && msg.String() != "g" {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
