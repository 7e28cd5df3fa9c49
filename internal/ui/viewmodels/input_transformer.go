package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
	InputModeFilter
	InputModeQuantity
	InputModeClearConfirm
	InputModeSort
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case InputModeNormal:
		return ""
	case InputModeSearch:
		return "Search: " + it.textInput.View()
	case InputModeFilter:
		return "Filter: " + it.textInput.View()
	case InputModeQuantity:
		return "Quantity: " + it.textInput.View()
	case InputModeClearConfirm:
		// The confirmation prompt renders through its own view slot
		return ""
	case InputModeSort:
		// Sort mode uses interactive selection, not text input
		return ""
	default:
		return it.textInput.View()
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeNormal:
		return ""
	case InputModeSearch:
		return "search"
	case InputModeFilter:
		return "filter"
	case InputModeQuantity:
		return "quantity"
	case InputModeClearConfirm:
		return "clear-confirm"
	case InputModeSort:
		return "sort"
	default:
		return ""
	}
}
