package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/eventbus"
	"shopfront/internal/ui/services/shortlist"
	"shopfront/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, shortlist *shortlist.Service) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:     state,
			Bus:       bus,
			Shortlist: shortlist,
		},
	}
}

// ExecuteReload creates and executes a reload command
func (e *Executor) ExecuteReload(dir string) tea.Cmd {
	cmd := NewReloadCommand(e.ctx, dir)
	return cmd.Execute()
}

// ExecuteToggleShortlist creates and executes a toggle shortlist command
func (e *Executor) ExecuteToggleShortlist(index int) tea.Cmd {
	cmd := NewToggleShortlistCommand(e.ctx, index)
	return cmd.Execute()
}

// ExecuteShortlistAll creates and executes a shortlist all command
func (e *Executor) ExecuteShortlistAll(skus []string) tea.Cmd {
	cmd := NewShortlistAllCommand(e.ctx, skus)
	return cmd.Execute()
}

// ExecuteShortlistCategory creates and executes a shortlist category command
func (e *Executor) ExecuteShortlistCategory(category string, skus []string) tea.Cmd {
	cmd := NewShortlistCategoryCommand(e.ctx, category, skus)
	return cmd.Execute()
}

// ExecuteClearShortlist creates and executes a clear shortlist command
func (e *Executor) ExecuteClearShortlist() tea.Cmd {
	cmd := NewClearShortlistCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteSetQuantity creates and executes a set quantity command
func (e *Executor) ExecuteSetQuantity(sku string, qty int) tea.Cmd {
	cmd := NewSetQuantityCommand(e.ctx, sku, qty)
	return cmd.Execute()
}

// ExecuteAdjustQuantity creates and executes an adjust quantity command
func (e *Executor) ExecuteAdjustQuantity(sku string, delta int) tea.Cmd {
	cmd := NewAdjustQuantityCommand(e.ctx, sku, delta)
	return cmd.Execute()
}

// ExecuteTogglePrices creates and executes a toggle prices command
func (e *Executor) ExecuteTogglePrices() tea.Cmd {
	cmd := NewTogglePricesCommand(e.ctx)
	return cmd.Execute()
}

// ExecutePrefsChanged creates and executes a prefs changed command
func (e *Executor) ExecutePrefsChanged() tea.Cmd {
	cmd := NewPrefsChangedCommand(e.ctx)
	return cmd.Execute()
}

// Bus exposes the event bus for handlers that publish directly
func (e *Executor) Bus() eventbus.EventBus {
	return e.ctx.Bus
}
