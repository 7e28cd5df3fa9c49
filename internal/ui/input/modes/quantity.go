package modes

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/ui/input/types"
)

// QuantityMode prompts for an order quantity. Only digits reach the
// text input; the final value is clamped to the product's bounds when
// it is applied.
type QuantityMode struct {
	TextInputMode
}

func NewQuantityMode(ti *textinput.Model) *QuantityMode {
	return &QuantityMode{
		TextInputMode: NewTextInputMode(types.ModeQuantity, "quantity", ti),
	}
}

// Enter overrides the base Enter to pre-fill the current quantity
func (m *QuantityMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.SetValue(strconv.Itoa(ctx.CurrentQuantity()))
		m.textInput.CursorEnd()
	}
	return actions
}

func (m *QuantityMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Swallow non-digit characters before they reach the text input
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return nil, true
			}
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
