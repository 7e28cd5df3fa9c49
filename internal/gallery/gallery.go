// Package gallery maintains a product's media strip: an ordered set of
// selectable controls driving one primary display. At most one control is
// active at any time.
package gallery

// Control is one selectable thumbnail in a media group
type Control struct {
	ID           string
	Label        string
	TargetSource string // resource the display switches to when selected
	active       bool
}

// IsActive reports whether this control is the currently active one
func (c *Control) IsActive() bool {
	return c.active
}

// Display is the primary media surface whose source the controls swap
type Display struct {
	Source string
}

// Group is an ordered collection of controls driving one display
type Group struct {
	controls []*Control
	display  *Display
}

// New creates a media group. No control starts active. A nil display is
// tolerated: selection still tracks the active control and the source swap
// is skipped.
func New(display *Display, controls ...*Control) *Group {
	return &Group{
		display:  display,
		controls: controls,
	}
}

// Select makes control the single active control of the group and swaps the
// display source to its target. The swap and the flag updates happen in one
// step with no observable in-between state. Selecting the already active
// control changes nothing. Controls that do not belong to the group are
// ignored.
func (g *Group) Select(control *Control) {
	if g == nil || control == nil {
		return
	}
	member := false
	for _, c := range g.controls {
		if c == control {
			member = true
			break
		}
	}
	if !member {
		return
	}
	if control.active {
		return
	}
	for _, c := range g.controls {
		c.active = c == control
	}
	if g.display != nil {
		g.display.Source = control.TargetSource
	}
}

// SelectIndex selects the control at the given position
func (g *Group) SelectIndex(i int) {
	if g == nil || i < 0 || i >= len(g.controls) {
		return
	}
	g.Select(g.controls[i])
}

// Active returns the active control, or nil when none has been selected
func (g *Group) Active() *Control {
	if g == nil {
		return nil
	}
	for _, c := range g.controls {
		if c.active {
			return c
		}
	}
	return nil
}

// ActiveIndex returns the position of the active control, or -1
func (g *Group) ActiveIndex() int {
	if g == nil {
		return -1
	}
	for i, c := range g.controls {
		if c.active {
			return i
		}
	}
	return -1
}

// Controls returns the group's controls in order
func (g *Group) Controls() []*Control {
	if g == nil {
		return nil
	}
	return g.controls
}

// Len returns the number of controls in the group
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.controls)
}

// Source returns the display's current source, or "" without a display
func (g *Group) Source() string {
	if g == nil || g.display == nil {
		return ""
	}
	return g.display.Source
}
