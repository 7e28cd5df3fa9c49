package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/eventbus"
	"shopfront/internal/ui/services/shortlist"
	"shopfront/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Bus       eventbus.EventBus
	Shortlist *shortlist.Service
}

// ReloadCommand requests a fresh catalog scan
type ReloadCommand struct {
	ctx *CommandContext
	dir string
}

// NewReloadCommand creates a new reload command
func NewReloadCommand(ctx *CommandContext, dir string) *ReloadCommand {
	return &ReloadCommand{
		ctx: ctx,
		dir: dir,
	}
}

// Execute requests the scan
func (c *ReloadCommand) Execute() tea.Cmd {
	c.ctx.State.Loading = true
	c.ctx.State.StatusMessage = "Reloading catalog..."
	if c.ctx.Bus != nil && c.dir != "" {
		c.ctx.Bus.Publish(eventbus.CatalogLoadRequestedEvent{
			Dir: c.dir,
		})
	}
	return nil
}

// ToggleShortlistCommand toggles the shortlist entry at an index
type ToggleShortlistCommand struct {
	ctx   *CommandContext
	index int
}

// NewToggleShortlistCommand creates a new toggle shortlist command
func NewToggleShortlistCommand(ctx *CommandContext, index int) *ToggleShortlistCommand {
	return &ToggleShortlistCommand{
		ctx:   ctx,
		index: index,
	}
}

// Execute toggles the entry
func (c *ToggleShortlistCommand) Execute() tea.Cmd {
	if c.ctx.Shortlist != nil {
		c.ctx.Shortlist.Toggle(c.index)
	}
	return nil
}

// ShortlistAllCommand toggles shortlisting every product
type ShortlistAllCommand struct {
	ctx  *CommandContext
	skus []string
}

// NewShortlistAllCommand creates a new shortlist all command
func NewShortlistAllCommand(ctx *CommandContext, skus []string) *ShortlistAllCommand {
	return &ShortlistAllCommand{
		ctx:  ctx,
		skus: skus,
	}
}

// Execute toggles shortlist all
func (c *ShortlistAllCommand) Execute() tea.Cmd {
	if c.ctx.Shortlist == nil {
		return nil
	}
	if c.ctx.Shortlist.Count() == len(c.skus) && len(c.skus) > 0 {
		c.ctx.Shortlist.Clear()
		c.ctx.State.StatusMessage = "Shortlist cleared"
	} else {
		c.ctx.Shortlist.ShortlistAll(c.skus)
		c.ctx.State.StatusMessage = fmt.Sprintf("Shortlisted %d products", c.ctx.Shortlist.Count())
	}
	return nil
}

// ShortlistCategoryCommand toggles shortlisting a whole category
type ShortlistCategoryCommand struct {
	ctx      *CommandContext
	category string
	skus     []string
}

// NewShortlistCategoryCommand creates a new shortlist category command
func NewShortlistCategoryCommand(ctx *CommandContext, category string, skus []string) *ShortlistCategoryCommand {
	return &ShortlistCategoryCommand{
		ctx:      ctx,
		category: category,
		skus:     skus,
	}
}

// Execute toggles the category
func (c *ShortlistCategoryCommand) Execute() tea.Cmd {
	if c.ctx.Shortlist == nil || len(c.skus) == 0 {
		return nil
	}
	c.ctx.Shortlist.ToggleCategory(c.skus)
	name := c.category
	if name == "" {
		name = "Uncategorized"
	}
	c.ctx.State.StatusMessage = fmt.Sprintf("Toggled '%s' (%d on shortlist)", name, c.ctx.Shortlist.Count())
	return nil
}

// ClearShortlistCommand empties the shortlist
type ClearShortlistCommand struct {
	ctx *CommandContext
}

// NewClearShortlistCommand creates a new clear shortlist command
func NewClearShortlistCommand(ctx *CommandContext) *ClearShortlistCommand {
	return &ClearShortlistCommand{ctx: ctx}
}

// Execute clears the shortlist
func (c *ClearShortlistCommand) Execute() tea.Cmd {
	if c.ctx.Shortlist != nil {
		c.ctx.Shortlist.Clear()
		c.ctx.State.StatusMessage = "Shortlist cleared"
	}
	return nil
}

// SetQuantityCommand applies an order quantity, clamped to the
// product's bounds
type SetQuantityCommand struct {
	ctx *CommandContext
	sku string
	qty int
}

// NewSetQuantityCommand creates a new set quantity command
func NewSetQuantityCommand(ctx *CommandContext, sku string, qty int) *SetQuantityCommand {
	return &SetQuantityCommand{
		ctx: ctx,
		sku: sku,
		qty: qty,
	}
}

// Execute applies the quantity
func (c *SetQuantityCommand) Execute() tea.Cmd {
	if c.sku == "" {
		return nil
	}
	applied := c.ctx.State.SetQuantity(c.sku, c.qty)
	if applied != c.qty {
		c.ctx.State.StatusMessage = fmt.Sprintf("Quantity adjusted to %d (allowed range)", applied)
	} else {
		c.ctx.State.StatusMessage = fmt.Sprintf("Quantity set to %d", applied)
	}
	return nil
}

// AdjustQuantityCommand shifts an order quantity by a delta
type AdjustQuantityCommand struct {
	ctx   *CommandContext
	sku   string
	delta int
}

// NewAdjustQuantityCommand creates a new adjust quantity command
func NewAdjustQuantityCommand(ctx *CommandContext, sku string, delta int) *AdjustQuantityCommand {
	return &AdjustQuantityCommand{
		ctx:   ctx,
		sku:   sku,
		delta: delta,
	}
}

// Execute shifts the quantity
func (c *AdjustQuantityCommand) Execute() tea.Cmd {
	if c.sku == "" {
		return nil
	}
	applied := c.ctx.State.AdjustQuantity(c.sku, c.delta)
	c.ctx.State.StatusMessage = fmt.Sprintf("Quantity: %d", applied)
	return nil
}

// TogglePricesCommand flips the price display preference
type TogglePricesCommand struct {
	ctx *CommandContext
}

// NewTogglePricesCommand creates a new toggle prices command
func NewTogglePricesCommand(ctx *CommandContext) *TogglePricesCommand {
	return &TogglePricesCommand{ctx: ctx}
}

// Execute flips the preference and notifies the config layer
func (c *TogglePricesCommand) Execute() tea.Cmd {
	c.ctx.State.ShowPrices = !c.ctx.State.ShowPrices
	if c.ctx.State.ShowPrices {
		c.ctx.State.StatusMessage = "Prices shown"
	} else {
		c.ctx.State.StatusMessage = "Prices hidden"
	}
	publishPrefs(c.ctx)
	return nil
}

// PrefsChangedCommand notifies the config layer of the current preferences
type PrefsChangedCommand struct {
	ctx *CommandContext
}

// NewPrefsChangedCommand creates a new prefs changed command
func NewPrefsChangedCommand(ctx *CommandContext) *PrefsChangedCommand {
	return &PrefsChangedCommand{ctx: ctx}
}

// Execute publishes the current preferences
func (c *PrefsChangedCommand) Execute() tea.Cmd {
	publishPrefs(c.ctx)
	return nil
}

func publishPrefs(ctx *CommandContext) {
	if ctx.Bus != nil {
		ctx.Bus.Publish(eventbus.ConfigChangedEvent{
			ShowPrices: ctx.State.ShowPrices,
			SortMode:   ctx.State.SortMode,
		})
	}
}
