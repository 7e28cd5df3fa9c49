package modes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"shopfront/internal/ui/input/types"
)

func TestConfirmModeCapturesCountOnEnter(t *testing.T) {
	m := NewConfirmMode()
	m.Enter(stubContext{shortlist: 4})
	assert.Equal(t, 4, m.Count())
}

func TestConfirmModeYesClearsAndReturns(t *testing.T) {
	m := NewConfirmMode()
	for _, key := range []string{"y", "Y"} {
		actions, consumed := m.HandleKey(runeKey(key), stubContext{})
		assert.True(t, consumed)
		assert.Equal(t, []types.Action{
			types.ClearShortlistAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, actions)
	}
}

func TestConfirmModeNoKeepsShortlist(t *testing.T) {
	m := NewConfirmMode()
	for _, msg := range []tea.KeyMsg{runeKey("n"), runeKey("N"), {Type: tea.KeyEsc}} {
		actions, consumed := m.HandleKey(msg, stubContext{})
		assert.True(t, consumed)
		assert.Equal(t, []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, actions)
	}
}

func TestConfirmModeIgnoresOtherKeys(t *testing.T) {
	m := NewConfirmMode()
	actions, consumed := m.HandleKey(runeKey("j"), stubContext{})
	assert.False(t, consumed)
	assert.Empty(t, actions)
}
