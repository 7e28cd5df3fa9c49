package modes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"shopfront/internal/ui/input/types"
)

func TestSortSelectStartsOnCurrentSort(t *testing.T) {
	m := NewSortSelectMode()
	actions := m.Enter(stubContext{sort: "price"})

	assert.Equal(t, []types.Action{types.UpdateSortIndexAction{Index: 1}}, actions)
	assert.Equal(t, 1, m.GetCurrentIndex())
}

func TestSortSelectAppliesWhileMoving(t *testing.T) {
	m := NewSortSelectMode()
	m.Enter(stubContext{sort: "name"})

	actions, consumed := m.HandleKey(runeKey("j"), stubContext{})
	assert.True(t, consumed)
	assert.Equal(t, []types.Action{
		types.UpdateSortIndexAction{Index: 1},
		types.SortByAction{Criteria: "price"},
	}, actions)

	// Moving up from the top wraps to the last option
	m.HandleKey(runeKey("k"), stubContext{})
	actions, _ = m.HandleKey(runeKey("k"), stubContext{})
	assert.Equal(t, []types.Action{
		types.UpdateSortIndexAction{Index: 2},
		types.SortByAction{Criteria: "category"},
	}, actions)
}

func TestSortSelectEnterAccepts(t *testing.T) {
	m := NewSortSelectMode()
	m.Enter(stubContext{sort: "name"})
	m.HandleKey(runeKey("j"), stubContext{})

	actions, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, stubContext{})
	assert.True(t, consumed)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, actions)
}

func TestSortSelectEscRestoresOriginalSort(t *testing.T) {
	m := NewSortSelectMode()
	m.Enter(stubContext{sort: "price"})
	m.HandleKey(runeKey("j"), stubContext{})
	m.HandleKey(runeKey("j"), stubContext{})

	actions, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, stubContext{})
	assert.True(t, consumed)
	assert.Equal(t, []types.Action{
		types.SortByAction{Criteria: "price"},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, actions)
}
