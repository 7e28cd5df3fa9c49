package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"shopfront/internal/ui/input/types"
)

type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", ti),
	}
}

// Enter overrides the base Enter to expand all categories for better filter visibility
func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	// First call the base Enter to handle text input setup
	actions := m.TextInputMode.Enter(ctx)

	// Then expand all categories
	return append(actions, types.ExpandAllCategoriesAction{})
}
