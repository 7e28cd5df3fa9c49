package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/ui/input/types"
)

type ConfirmMode struct {
	count int
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "clear-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Remember how many items are at stake for the prompt
	m.count = ctx.ShortlistCount()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		// Cancel and return to normal mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "y", "Y":
		// Confirm clearing the shortlist
		return []types.Action{
			types.ClearShortlistAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "n", "N":
		// Keep the shortlist
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	return nil, false
}

// Count returns the shortlist size captured on entry
func (m *ConfirmMode) Count() int {
	return m.count
}
