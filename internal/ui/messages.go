package ui

import (
	"time"

	"shopfront/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// clearStatusMsg clears the status bar message
type clearStatusMsg struct{}

// descriptionPagerMsg contains the result of a description pager command
type descriptionPagerMsg struct {
	sku string
	err error
}

// quitMsg signals that the application should quit
type quitMsg struct {
	savePrefs bool
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
