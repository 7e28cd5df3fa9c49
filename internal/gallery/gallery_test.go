package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countActive returns how many controls in the group report active
func countActive(g *Group) int {
	n := 0
	for _, c := range g.Controls() {
		if c.IsActive() {
			n++
		}
	}
	return n
}

func TestSelectSwapsSourceAndActivates(t *testing.T) {
	display := &Display{Source: "x.jpg"}
	a := &Control{ID: "a", TargetSource: "a.jpg"}
	b := &Control{ID: "b", TargetSource: "b.glb"}
	c := &Control{ID: "c", TargetSource: "c.jpg"}
	g := New(display, a, b, c)

	g.Select(b)

	assert.Equal(t, "b.glb", display.Source)
	assert.True(t, b.IsActive())
	assert.False(t, a.IsActive())
	assert.False(t, c.IsActive())
}

func TestSelectIsIdempotent(t *testing.T) {
	display := &Display{Source: "x.jpg"}
	a := &Control{ID: "a", TargetSource: "a.jpg"}
	b := &Control{ID: "b", TargetSource: "b.glb"}
	c := &Control{ID: "c", TargetSource: "c.jpg"}
	g := New(display, a, b, c)

	g.Select(b)
	g.Select(b)

	assert.Equal(t, "b.glb", display.Source)
	assert.True(t, b.IsActive())
	assert.False(t, a.IsActive())
	assert.False(t, c.IsActive())
	assert.Equal(t, 1, countActive(g))
}

func TestNoInitialSelection(t *testing.T) {
	g := New(&Display{Source: "x.jpg"}, &Control{ID: "a"}, &Control{ID: "b"})

	assert.Nil(t, g.Active())
	assert.Equal(t, -1, g.ActiveIndex())
	assert.Equal(t, 0, countActive(g))
	assert.Equal(t, "x.jpg", g.Source())
}

func TestAtMostOneActiveAcrossSequences(t *testing.T) {
	display := &Display{}
	a := &Control{ID: "a", TargetSource: "a.jpg"}
	b := &Control{ID: "b", TargetSource: "b.jpg"}
	c := &Control{ID: "c", TargetSource: "c.jpg"}
	g := New(display, a, b, c)

	sequence := []*Control{a, c, c, b, a, a, c}
	for _, ctrl := range sequence {
		g.Select(ctrl)
		require.LessOrEqual(t, countActive(g), 1)
	}

	assert.Equal(t, c, g.Active())
	assert.Equal(t, "c.jpg", display.Source)
}

func TestNilDisplayTolerated(t *testing.T) {
	a := &Control{ID: "a", TargetSource: "a.jpg"}
	b := &Control{ID: "b", TargetSource: "b.jpg"}
	g := New(nil, a, b)

	g.Select(b)

	assert.True(t, b.IsActive())
	assert.False(t, a.IsActive())
	assert.Equal(t, "", g.Source())
}

func TestForeignControlIgnored(t *testing.T) {
	display := &Display{Source: "x.jpg"}
	a := &Control{ID: "a", TargetSource: "a.jpg"}
	g := New(display, a)

	stranger := &Control{ID: "b", TargetSource: "b.jpg"}
	g.Select(stranger)

	assert.Nil(t, g.Active())
	assert.Equal(t, "x.jpg", display.Source)
	assert.False(t, stranger.IsActive())
}

func TestSelectIndex(t *testing.T) {
	display := &Display{}
	a := &Control{ID: "a", TargetSource: "a.jpg"}
	b := &Control{ID: "b", TargetSource: "b.jpg"}
	g := New(display, a, b)

	g.SelectIndex(1)
	assert.Equal(t, b, g.Active())
	assert.Equal(t, 1, g.ActiveIndex())

	// Out-of-range indexes change nothing
	g.SelectIndex(5)
	g.SelectIndex(-1)
	assert.Equal(t, b, g.Active())
}

func TestNilGroupAndNilControl(t *testing.T) {
	var g *Group
	g.Select(&Control{ID: "a"})
	assert.Nil(t, g.Active())
	assert.Equal(t, 0, g.Len())

	real := New(&Display{}, &Control{ID: "a"})
	real.Select(nil)
	assert.Nil(t, real.Active())
}
